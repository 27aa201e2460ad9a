package env

import "os"

// Table is the environment the confirmation chain reads and writes.
// The process environment is the usual backing store; tests use Map.
type Table interface {
	Lookup(name string) (string, bool)
	Set(name, value string)
	Unset(name string)
}

type osTable struct{}

// OS returns a Table backed by the process environment.
func OS() Table { return osTable{} }

func (osTable) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

func (osTable) Set(name, value string) {
	_ = os.Setenv(name, value) // Error ignored: only fails for invalid key names
}

func (osTable) Unset(name string) {
	_ = os.Unsetenv(name)
}

// MapTable is an in-memory Table for tests and dry runs.
type MapTable map[string]string

// Map returns a MapTable seeded with the given pairs.
func Map(pairs map[string]string) MapTable {
	m := make(MapTable, len(pairs))
	for k, v := range pairs {
		m[k] = v
	}
	return m
}

func (m MapTable) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

func (m MapTable) Set(name, value string) {
	m[name] = value
}

func (m MapTable) Unset(name string) {
	delete(m, name)
}
