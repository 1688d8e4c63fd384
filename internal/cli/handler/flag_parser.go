// Package handler provides flag parsing utilities
package handler

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/stockbox/internal/cli"
	"github.com/thenoetrevino/stockbox/internal/selection"
)

// FlagParser provides common flag extraction patterns
type FlagParser struct {
	cmd *cobra.Command
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command) *FlagParser {
	return &FlagParser{cmd: cmd}
}

// ParseID extracts a required positive id from a flag
func (p *FlagParser) ParseID(flagName string) (int, error) {
	id, err := p.cmd.Flags().GetInt(flagName)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	if id <= 0 {
		return 0, cli.Usagef("%s must be greater than 0", flagName)
	}
	return id, nil
}

// ParseSelection reads a non-empty list of positive ids from an int slice flag
func (p *FlagParser) ParseSelection(flagName string) (*selection.Set, error) {
	ids, err := p.cmd.Flags().GetIntSlice(flagName)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	return cli.SelectProducts(ids)
}

// ParseIDs is ParseSelection flattened to ascending ids without duplicates
func (p *FlagParser) ParseIDs(flagName string) ([]int, error) {
	set, err := p.ParseSelection(flagName)
	if err != nil {
		return nil, err
	}
	return set.IDs(), nil
}

// ParseString extracts a required string flag
func (p *FlagParser) ParseString(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", cli.Usagef("%s is required", flagName)
	}
	return value, nil
}

// ParseIntOptional extracts an optional int flag
func (p *FlagParser) ParseIntOptional(flagName string) (int, error) {
	return p.cmd.Flags().GetInt(flagName)
}

// ParseBool extracts a boolean flag
func (p *FlagParser) ParseBool(flagName string) (bool, error) {
	return p.cmd.Flags().GetBool(flagName)
}

// RequireAny fails unless at least one of the named flags was set
func (p *FlagParser) RequireAny(flagNames ...string) error {
	for _, name := range flagNames {
		if p.cmd.Flags().Changed(name) {
			return nil
		}
	}
	return cli.Usagef("at least one of --%s is required", strings.Join(flagNames, ", --"))
}

// OutputFormats extracts the json and quiet output flags. A command that does
// not declare one of them reads it as false.
func (p *FlagParser) OutputFormats() (jsonOutput bool, quietMode bool, err error) {
	jsonOutput, err = p.optionalBool("json")
	if err != nil {
		return false, false, err
	}
	quietMode, err = p.optionalBool("quiet")
	if err != nil {
		return false, false, err
	}
	return jsonOutput, quietMode, nil
}

func (p *FlagParser) optionalBool(flagName string) (bool, error) {
	if p.cmd.Flags().Lookup(flagName) == nil {
		return false, nil
	}
	value, err := p.cmd.Flags().GetBool(flagName)
	if err != nil {
		return false, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	return value, nil
}
