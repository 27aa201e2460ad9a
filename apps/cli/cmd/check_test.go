package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdul-hamid-achik/envconfirm/packages/confirm"
	"github.com/abdul-hamid-achik/envconfirm/packages/env"
	"github.com/abdul-hamid-achik/envconfirm/packages/output"
	"github.com/abdul-hamid-achik/envconfirm/packages/rules"
)

func runRulesOn(t *testing.T, vars map[string]string, bail bool, raws ...string) checkResult {
	t.Helper()
	parsed, err := rules.ParseAll(raws)
	require.NoError(t, err)

	var buf bytes.Buffer
	formatter := output.NewConsoleFormatter(output.WithWriter(&buf), output.WithNoColor(true))
	cf := confirm.Confirmer{Table: env.Map(vars)}
	return runRules(cf, parsed, formatter, bail)
}

func TestRunRules_AllPass(t *testing.T) {
	result := runRulesOn(t, map[string]string{"SERVER_PORT": "4000"}, true,
		"SERVER_PORT >= 1000", "SERVER_PORT <= 60000")

	assert.Equal(t, 2, result.passed)
	assert.Equal(t, 0, result.failed)
	assert.Equal(t, ExitSuccess, result.exitCode())
}

func TestRunRules_FailedPredicateExitsCheckFailure(t *testing.T) {
	result := runRulesOn(t, map[string]string{"SERVER_PORT": "4000"}, true,
		"SERVER_PORT == 4001")

	assert.Equal(t, 1, result.failed)
	assert.False(t, result.configFailed)
	assert.Equal(t, ExitCheckFailure, result.exitCode())
}

func TestRunRules_UnresolvedVariableExitsConfigError(t *testing.T) {
	// The variable never resolves: that is a configuration problem,
	// not a failed predicate, and gets its own exit code.
	result := runRulesOn(t, nil, true, "MISSING defined")

	assert.Equal(t, 1, result.failed)
	assert.True(t, result.configFailed)
	assert.Equal(t, ExitConfigError, result.exitCode())
}

func TestRunRules_ConfigErrorWinsOverCheckFailure(t *testing.T) {
	result := runRulesOn(t, map[string]string{"SERVER_PORT": "80"}, false,
		"SERVER_PORT >= 1000", "MISSING defined")

	assert.Equal(t, 2, result.failed)
	assert.True(t, result.configFailed)
	assert.Equal(t, ExitConfigError, result.exitCode())
}

func TestRunRules_BailStopsAtFirstFailure(t *testing.T) {
	result := runRulesOn(t, map[string]string{"SERVER_PORT": "80"}, true,
		"SERVER_PORT >= 1000", "SERVER_PORT <= 60000")

	assert.Equal(t, 0, result.passed)
	assert.Equal(t, 1, result.failed)
}

func TestRunRules_NoBailRunsEverything(t *testing.T) {
	result := runRulesOn(t, map[string]string{"SERVER_PORT": "80"}, false,
		"SERVER_PORT >= 1000", "SERVER_PORT <= 60000")

	assert.Equal(t, 1, result.passed)
	assert.Equal(t, 1, result.failed)
}
