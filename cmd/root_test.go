package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRootCmd_RegistersCommands(t *testing.T) {
	root := NewRootCmd()

	for _, path := range [][]string{
		{"product", "add"},
		{"product", "list"},
		{"product", "search"},
		{"product", "update"},
		{"product", "remove"},
		{"product", "bulk-update"},
		{"product", "choices"},
		{"box", "add"},
		{"box", "list"},
		{"box", "update"},
		{"box", "delete"},
		{"summary"},
		{"seed"},
		{"reset"},
	} {
		cmd, _, err := root.Find(path)
		if assert.NoError(t, err, "path %v", path) {
			assert.Equal(t, path[len(path)-1], cmd.Name())
		}
	}
}
