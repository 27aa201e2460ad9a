package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Direct(t *testing.T) {
	table := Map(map[string]string{"SERVER_PORT": "4000"})

	value, err := Resolve(table, "", "SERVER_PORT")
	require.NoError(t, err)
	assert.Equal(t, "4000", value)
}

func TestResolve_NameUppercased(t *testing.T) {
	table := Map(map[string]string{"SERVER_PORT": "4000"})

	value, err := Resolve(table, "", "server_port")
	require.NoError(t, err)
	assert.Equal(t, "4000", value)
}

func TestResolve_ModeSuffixFallback(t *testing.T) {
	table := Map(map[string]string{
		"MODE":      "TEST",
		"NAME_TEST": "suffixed",
	})

	value, err := Resolve(table, "", "NAME")
	require.NoError(t, err)
	assert.Equal(t, "suffixed", value)

	// The suffixed entry is renamed, not copied.
	renamed, ok := table.Lookup("NAME")
	assert.True(t, ok)
	assert.Equal(t, "suffixed", renamed)
	_, ok = table.Lookup("NAME_TEST")
	assert.False(t, ok)
}

func TestResolve_ModeValueIsUppercasedInSuffix(t *testing.T) {
	table := Map(map[string]string{
		"MODE":    "test",
		"DB_TEST": "sqlite::memory:",
	})

	value, err := Resolve(table, "", "DB")
	require.NoError(t, err)
	assert.Equal(t, "sqlite::memory:", value)
}

func TestResolve_CustomModeVar(t *testing.T) {
	table := Map(map[string]string{
		"APP_ENV":     "staging",
		"URL_STAGING": "https://staging.example.com",
	})

	value, err := Resolve(table, "APP_ENV", "URL")
	require.NoError(t, err)
	assert.Equal(t, "https://staging.example.com", value)
}

func TestResolve_DefaultWrittenToTable(t *testing.T) {
	table := Map(nil)

	value, err := Resolve(table, "", "NAME", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", value)

	written, ok := table.Lookup("NAME")
	assert.True(t, ok)
	assert.Equal(t, "fallback", written)
}

func TestResolve_EmptyValueUsesDefault(t *testing.T) {
	table := Map(map[string]string{"NAME": ""})

	value, err := Resolve(table, "", "NAME", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", value)
}

func TestResolve_SuffixedWinsOverDefault(t *testing.T) {
	table := Map(map[string]string{
		"MODE":      "TEST",
		"NAME_TEST": "suffixed",
	})

	value, err := Resolve(table, "", "NAME", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "suffixed", value)
}

func TestResolve_MissingWithoutDefault(t *testing.T) {
	table := Map(nil)

	_, err := Resolve(table, "", "NAME")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NAME is not set")
}

func TestResolve_EmptyName(t *testing.T) {
	table := Map(nil)

	_, err := Resolve(table, "", "  ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name must not be empty")
}
