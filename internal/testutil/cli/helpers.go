package cli

import (
	"encoding/json"
	"testing"
)

// ParseJSON parses JSON object output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}

// ParseJSONArray parses JSON array output from list commands
func ParseJSONArray(t *testing.T, output string) []map[string]any {
	t.Helper()

	var result []map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}
