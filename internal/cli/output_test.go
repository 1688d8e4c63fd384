package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/thenoetrevino/stockbox/internal/database"
	"github.com/thenoetrevino/stockbox/internal/testutil"
)

type mockDataWithID struct {
	ID   int
	Name string
}

func (m mockDataWithID) GetID() int {
	return m.ID
}

type mockDataWithIDs struct {
	IDs []int
}

func (m mockDataWithIDs) GetIDs() []int {
	return m.IDs
}

type mockHuman struct {
	Text string
}

func (m mockHuman) Human() string {
	return m.Text
}

func TestOutputFormatter_Success_JSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		validate func(t *testing.T, data any)
	}{
		{
			name: "struct with ID",
			data: mockDataWithID{ID: 123, Name: "Bolt"},
			validate: func(t *testing.T, data any) {
				dataMap := data.(map[string]any)
				if dataMap["Name"] != "Bolt" {
					t.Errorf("Expected data.Name to be 'Bolt', got %v", dataMap["Name"])
				}
			},
		},
		{
			name: "string data",
			data: "simple string",
			validate: func(t *testing.T, data any) {
				if data != "simple string" {
					t.Errorf("Expected data to be 'simple string', got %v", data)
				}
			},
		},
		{
			name: "human readable data is still encoded as JSON",
			data: mockHuman{Text: "hello"},
			validate: func(t *testing.T, data any) {
				dataMap := data.(map[string]any)
				if dataMap["Text"] != "hello" {
					t.Errorf("Expected data.Text to be 'hello', got %v", dataMap["Text"])
				}
			},
		},
		{
			name: "nil data",
			data: nil,
			validate: func(t *testing.T, data any) {
				if data != nil {
					t.Errorf("Expected data to be nil, got %v", data)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := &OutputFormatter{JSON: true}
			var err error
			output := testutil.CaptureOutput(t, func() {
				err = formatter.Success(tt.data)
			})
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}

			var result map[string]any
			if err := json.Unmarshal([]byte(output), &result); err != nil {
				t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, output)
			}
			if !result["success"].(bool) {
				t.Error("Expected success to be true")
			}
			tt.validate(t, result["data"])
		})
	}
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	tests := []struct {
		name       string
		data       any
		wantOutput string
	}{
		{
			name:       "single ID",
			data:       mockDataWithID{ID: 42, Name: "Test"},
			wantOutput: "42",
		},
		{
			name:       "pointer to value receiver",
			data:       &mockDataWithID{ID: 55},
			wantOutput: "55",
		},
		{
			name:       "ID list prints one per line",
			data:       mockDataWithIDs{IDs: []int{1, 2, 3}},
			wantOutput: "1\n2\n3",
		},
		{
			name:       "empty ID list prints nothing",
			data:       mockDataWithIDs{},
			wantOutput: "",
		},
		{
			name:       "no ID falls through to pretty print",
			data:       "plain string output",
			wantOutput: "plain string output",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := &OutputFormatter{Quiet: true}
			var err error
			output := testutil.CaptureOutput(t, func() {
				err = formatter.Success(tt.data)
			})
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if got := strings.TrimSpace(output); got != tt.wantOutput {
				t.Errorf("Expected output %q, got %q", tt.wantOutput, got)
			}
		})
	}
}

func TestOutputFormatter_Success_HumanReadable(t *testing.T) {
	tests := []struct {
		name          string
		data          any
		shouldContain string
	}{
		{
			name:          "struct falls back to field dump",
			data:          mockDataWithID{ID: 42, Name: "Test"},
			shouldContain: "Name:Test",
		},
		{
			name:          "human readable renders itself",
			data:          mockHuman{Text: "Bolt x10\n"},
			shouldContain: "Bolt x10",
		},
		{
			name:          "slice",
			data:          []string{"item1", "item2"},
			shouldContain: "item1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := &OutputFormatter{}
			output := testutil.CaptureOutput(t, func() {
				_ = formatter.Success(tt.data)
			})
			if !strings.Contains(output, tt.shouldContain) {
				t.Errorf("Expected output to contain %q, got %q", tt.shouldContain, output)
			}
		})
	}
}

func TestOutputFormatter_Error_JSON(t *testing.T) {
	formatter := &OutputFormatter{JSON: true}
	output := testutil.CaptureOutput(t, func() {
		_ = formatter.ErrorWithSuggestion("BOX_NOT_FOUND", "box not found", "pass --create-box")
	})

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, output)
	}
	if result["success"].(bool) {
		t.Error("Expected success to be false")
	}
	errorData := result["error"].(map[string]any)
	if errorData["code"] != "BOX_NOT_FOUND" {
		t.Errorf("Expected code BOX_NOT_FOUND, got %v", errorData["code"])
	}
	if errorData["suggestion"] != "pass --create-box" {
		t.Errorf("Expected suggestion, got %v", errorData["suggestion"])
	}
}

func TestOutputFormatter_Error_JSONOmitsEmptySuggestion(t *testing.T) {
	formatter := &OutputFormatter{JSON: true}
	output := testutil.CaptureOutput(t, func() {
		_ = formatter.Error("INTERNAL_ERROR", "boom")
	})

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, output)
	}
	errorData := result["error"].(map[string]any)
	if _, ok := errorData["suggestion"]; ok {
		t.Error("Expected no suggestion key")
	}
}

func TestOutputFormatter_Report(t *testing.T) {
	err := WithHint(fmt.Errorf("failed to create product: %w", database.ErrBoxNotFound), "pass --create-box")

	formatter := &OutputFormatter{JSON: true}
	output := testutil.CaptureOutput(t, func() {
		_ = formatter.Report(err)
	})

	var result map[string]any
	if jsonErr := json.Unmarshal([]byte(output), &result); jsonErr != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", jsonErr, output)
	}
	errorData := result["error"].(map[string]any)
	if errorData["code"] != "BOX_NOT_FOUND" {
		t.Errorf("Expected code BOX_NOT_FOUND, got %v", errorData["code"])
	}
	if !strings.Contains(errorData["message"].(string), "box not found") {
		t.Errorf("Expected message to mention the box, got %v", errorData["message"])
	}
	if errorData["suggestion"] != "pass --create-box" {
		t.Errorf("Expected suggestion, got %v", errorData["suggestion"])
	}

	if !errors.Is(err, database.ErrBoxNotFound) {
		t.Error("Expected hint wrapper to keep the sentinel reachable")
	}
}
