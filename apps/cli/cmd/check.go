package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/envconfirm/packages/config"
	"github.com/abdul-hamid-achik/envconfirm/packages/confirm"
	"github.com/abdul-hamid-achik/envconfirm/packages/env"
	"github.com/abdul-hamid-achik/envconfirm/packages/output"
	"github.com/abdul-hamid-achik/envconfirm/packages/rules"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] RULE...",
	Short: "Confirm environment variables against rules",
	Long: `Confirm environment variables against rules, in order, failing
at the first rule that does not hold.

A rule is NAME[=default] [!]OP [ARG[,ARG...]]. Operators: == != > >= <
<= len contains matches in defined path path+. A "!" prefix negates the
operator; "path+" creates the directory when missing.

Examples:
  envconfirm check "SERVER_PORT >= 1000" "SERVER_PORT <= 60000"
  envconfirm check "MODE in dev,test,prod" "DB_URL matches ^postgres://"
  envconfirm check --env-file .env "LOG_PATH=./logs path+"`,
	Args: cobra.MinimumNArgs(1),
	RunE: checkCommand,
}

const (
	// WatchDebounceDelay is the debounce delay for file watch events
	WatchDebounceDelay = 300 * time.Millisecond
)

var (
	configFlag  string
	envFileFlag []string
	modeVarFlag string
	bailFlag    bool
	watchFlag   bool
	noColorFlag bool
	verboseFlag bool
)

func init() {
	checkCmd.Flags().StringVar(&configFlag, "config", getEnvString("ENVCONFIRM_CONFIG", ""), "Path to config file (env: ENVCONFIRM_CONFIG)")
	checkCmd.Flags().StringArrayVar(&envFileFlag, "env-file", nil, "Path to .env file exported before checks (repeatable)")
	checkCmd.Flags().StringVar(&modeVarFlag, "mode-var", getEnvString("ENVCONFIRM_MODE_VAR", ""), "Variable naming the execution mode for the suffix fallback (env: ENVCONFIRM_MODE_VAR)")
	checkCmd.Flags().BoolVar(&bailFlag, "bail", true, "Stop at the first failed rule")
	checkCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Watch env files for changes and re-run checks")
	checkCmd.Flags().BoolVar(&noColorFlag, "no-color", getEnvBool("ENVCONFIRM_NO_COLOR", false), "Disable colored output (env: ENVCONFIRM_NO_COLOR)")
	checkCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Show passing rules, not only failures")
}

func checkCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configFlag)
	if err != nil {
		fmt.Fprintf(cmd.OutOrStderr(), "Error: %v\n", err)
		os.Exit(ExitConfigError)
	}

	flagCfg := &config.Config{
		ModeVar:  modeVarFlag,
		EnvFiles: envFileFlag,
	}
	if cmd.Flags().Changed("no-color") {
		flagCfg.NoColor = config.BoolPtr(noColorFlag)
	}
	if cmd.Flags().Changed("verbose") {
		flagCfg.Verbose = config.BoolPtr(verboseFlag)
	}
	if cmd.Flags().Changed("bail") {
		flagCfg.Bail = config.BoolPtr(bailFlag)
	}
	cfg = cfg.Merge(flagCfg)

	formatter := output.NewConsoleFormatter(
		output.WithVerbose(cfg.GetVerbose()),
		output.WithNoColor(cfg.GetNoColor()),
	)

	parsed, err := rules.ParseAll(args)
	if err != nil {
		formatter.FormatError(err)
		os.Exit(ExitRuleError)
	}

	table := env.OS()
	for _, file := range cfg.EnvFiles {
		if err := env.Export(table, file); err != nil {
			formatter.FormatError(err)
			os.Exit(ExitConfigError)
		}
	}

	runChecks := func() checkResult {
		cf := confirm.Confirmer{Table: table, ModeVar: cfg.ModeVar}
		return runRules(cf, parsed, formatter, cfg.GetBail())
	}

	result := runChecks()

	// If watch mode is not enabled, exit with the failure category
	if !watchFlag {
		if code := result.exitCode(); code != ExitSuccess {
			os.Exit(code)
		}
		return nil
	}

	if len(cfg.EnvFiles) == 0 {
		return fmt.Errorf("--watch needs at least one env file (--env-file or envFiles in config)")
	}

	// Watch mode: set up file watcher on the env file directories
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	watchedFiles := make(map[string]bool)
	watchedDirs := make(map[string]bool)
	for _, file := range cfg.EnvFiles {
		abs, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", file, err)
		}
		watchedFiles[abs] = true
		dir := filepath.Dir(abs)
		if !watchedDirs[dir] {
			if err := watcher.Add(dir); err != nil {
				formatter.FormatError(fmt.Errorf("failed to watch %s: %w", dir, err))
			}
			watchedDirs[dir] = true
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nWatching for changes... (press Ctrl+C to stop)\n\n")

	// Debounce timer for rapid file changes
	var debounceTimer *time.Timer

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			abs, _ := filepath.Abs(event.Name)
			if event.Has(fsnotify.Write) && watchedFiles[abs] {
				// Debounce: reset timer on each event
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(WatchDebounceDelay, func() {
					fmt.Fprintf(cmd.OutOrStdout(), "\n\nFile changed: %s\nRe-running checks...\n\n", event.Name)

					for _, file := range cfg.EnvFiles {
						if err := env.ExportOverride(table, file); err != nil {
							formatter.FormatError(err)
							return
						}
					}
					runChecks()

					fmt.Fprintf(cmd.OutOrStdout(), "\nWatching for changes... (press Ctrl+C to stop)\n")
				})
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			formatter.FormatError(fmt.Errorf("watcher error: %w", err))
		}
	}
}

// checkResult is the outcome of one pass over the rules.
type checkResult struct {
	passed int
	failed int

	// configFailed is set when any failure was a resolution problem
	// rather than a failed predicate; it decides the exit code.
	configFailed bool
}

func (r checkResult) exitCode() int {
	switch {
	case r.configFailed:
		return ExitConfigError
	case r.failed > 0:
		return ExitCheckFailure
	default:
		return ExitSuccess
	}
}

// runRules applies every rule in order, reporting through the
// formatter. With bail, it stops at the first failure.
func runRules(cf confirm.Confirmer, parsed []*rules.Rule, formatter *output.ConsoleFormatter, bail bool) checkResult {
	var result checkResult
	for _, r := range parsed {
		if err := r.Apply(cf); err != nil {
			result.failed++
			var cerr *confirm.Error
			if errors.As(err, &cerr) && cerr.Kind == confirm.KindConfig {
				result.configFailed = true
			}
			formatter.FormatFail(r.Raw, err)
			if bail {
				break
			}
			continue
		}
		result.passed++
		formatter.FormatPass(r.Raw)
	}
	formatter.FormatSummary(result.passed, result.failed)
	return result
}
