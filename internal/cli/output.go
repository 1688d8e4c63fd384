package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// HumanReadable is implemented by results that render their own plain-text form
type HumanReadable interface {
	Human() string
}

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		switch v := data.(type) {
		case interface{ GetID() int }:
			fmt.Printf("%d\n", v.GetID())
			return nil
		case interface{ GetIDs() []int }:
			for _, id := range v.GetIDs() {
				fmt.Printf("%d\n", id)
			}
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	fmt.Fprintf(os.Stderr, "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// Report prints err in the active output mode
func (f *OutputFormatter) Report(err error) error {
	return f.ErrorWithSuggestion(ErrorCode(err), err.Error(), Suggestion(err))
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	if h, ok := data.(HumanReadable); ok {
		fmt.Print(h.Human())
		return nil
	}
	fmt.Printf("%+v\n", data)
	return nil
}
