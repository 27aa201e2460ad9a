package env

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadDotEnv parses a .env file and returns its key-value pairs.
// Supports KEY=value, KEY="quoted value", KEY='single quoted', # comments.
// Nothing is written to any Table; use Export for that.
func LoadDotEnv(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open env file: %w", err)
	}
	defer file.Close()

	result := make(map[string]string)
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		key, value, ok := parseDotEnvLine(scanner.Text())
		if !ok {
			continue
		}
		result[key] = value
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading env file: %w", err)
	}

	return result, nil
}

// Export parses a .env file and writes each entry into the table,
// skipping variables that already have a non-empty value. This seeds
// the table before any confirmation runs.
func Export(t Table, path string) error {
	vars, err := LoadDotEnv(path)
	if err != nil {
		return err
	}
	for k, v := range vars {
		if existing, ok := t.Lookup(k); ok && existing != "" {
			continue
		}
		t.Set(k, v)
	}
	return nil
}

// ExportOverride writes every entry of the .env file into the table,
// replacing existing values. Watch mode uses it so edits take effect on
// re-runs.
func ExportOverride(t Table, path string) error {
	vars, err := LoadDotEnv(path)
	if err != nil {
		return err
	}
	for k, v := range vars {
		t.Set(k, v)
	}
	return nil
}

func parseDotEnvLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}

	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}

	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)
	if key == "" {
		return "", "", false
	}

	// Strip matching surrounding quotes.
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if first == last && (first == '"' || first == '\'') {
			value = value[1 : len(value)-1]
		}
	}

	return key, value, true
}
