// Package ghoutput reports run results to GitHub Actions via GITHUB_OUTPUT.
package ghoutput

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Write appends the given key/value pairs to the GITHUB_OUTPUT file. Outside
// of Actions (no GITHUB_OUTPUT in the environment) it is a no-op.
func Write(values map[string]string) error {
	path := strings.TrimSpace(os.Getenv("GITHUB_OUTPUT"))
	if path == "" || len(values) == 0 {
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	keys := make([]string, 0, len(values))
	for k := range values {
		if strings.TrimSpace(k) != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		if _, err := fmt.Fprintf(f, "%s=%s\n", key, sanitize(values[key])); err != nil {
			return err
		}
	}
	return nil
}

// sanitize escapes line breaks so multi-line values stay single-line records.
func sanitize(value string) string {
	value = strings.ReplaceAll(value, "\r", "%0D")
	return strings.ReplaceAll(value, "\n", "%0A")
}
