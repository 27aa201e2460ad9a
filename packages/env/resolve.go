package env

import (
	"fmt"
	"strings"
)

// DefaultModeVar is the variable naming the current execution mode,
// used for the suffix fallback (NAME unset but NAME_<mode> set).
const DefaultModeVar = "MODE"

// Resolve looks up name in the table and returns its value.
//
// The name is normalized to upper case. If the variable is unset and the
// mode variable carries a value M, NAME_M is tried; when found it is
// renamed: the value is written under NAME and the suffixed entry is
// removed. If the value is still unset or empty, the default (when
// supplied) is written under NAME and returned. Otherwise an error is
// returned.
//
// An empty modeVar falls back to DefaultModeVar.
func Resolve(t Table, modeVar, name string, def ...string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("variable name must not be empty")
	}
	name = strings.ToUpper(name)
	if modeVar == "" {
		modeVar = DefaultModeVar
	}

	value, found := t.Lookup(name)
	if !found {
		if mode, ok := t.Lookup(modeVar); ok && mode != "" {
			suffixed := name + "_" + strings.ToUpper(mode)
			if v, ok := t.Lookup(suffixed); ok {
				// One-time rename: NAME_<mode> becomes NAME.
				t.Set(name, v)
				t.Unset(suffixed)
				value, found = v, true
			}
		}
	}

	if !found || value == "" {
		if len(def) == 0 {
			return "", fmt.Errorf("environment variable %s is not set and has no default", name)
		}
		value = def[0]
		t.Set(name, value)
	}

	return value, nil
}
