package cmd

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "envconfirm",
	Short: "Confirm environment variables before your process does.",
	Long: `envconfirm validates environment-variable values at startup.
Each rule is one confirmation: resolve the variable (directly, through
the mode-suffix fallback, or a default) and apply a comparison, failing
at the first rule that does not hold.`,
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitUsageError)
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

// getEnvString returns the environment variable value or a default.
func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

// getEnvBool returns the environment variable as a bool or a default.
func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}
