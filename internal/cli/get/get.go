// Package get implements the get command for querying configuration
// objects.
package get

import (
	"github.com/spf13/cobra"
)

// NewGetCmd creates the get parent command
func NewGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get configuration objects",
		Long: `Get PAN-OS configuration objects.

With a name, fetches a single object; without one, lists every object
of that type in the scope.`,
		Example: `  # List all addresses in the shared scope
  panosctl get address

  # Fetch a single address
  panosctl get address web-1

  # List address groups in a device group, as JSON
  panosctl get group -d Branch-Offices -o json`,
	}

	cmd.AddCommand(newGetAddressCmd())
	cmd.AddCommand(newGetGroupCmd())

	return cmd
}
