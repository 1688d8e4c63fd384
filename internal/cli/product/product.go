// Package product holds all cli commands related to products
// e.g., stockbox product ...
package product

import (
	"github.com/spf13/cobra"
)

// ProductCmd returns the product parent command
func ProductCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Manage products",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(SearchCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(RemoveCmd())
	cmd.AddCommand(BulkUpdateCmd())
	cmd.AddCommand(ChoicesCmd())

	return cmd
}
