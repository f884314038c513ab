// Package set implements the set command for creating and updating
// configuration objects.
package set

import (
	"github.com/spf13/cobra"
)

// NewSetCmd creates the set parent command
func NewSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Create or update configuration objects",
		Long: `Create or update PAN-OS configuration objects.

Setting an existing object overwrites its fields. Objects are placed
in the shared scope unless a device group is specified.`,
		Example: `  # Create an address object in the shared scope
  panosctl set address web-1 --ip-netmask 10.0.0.10/32

  # Create an FQDN address in a device group
  panosctl set address api --fqdn api.example.com -d Branch-Offices

  # Create a static address group
  panosctl set group web-servers --members web-1,web-2

  # Create a dynamic address group
  panosctl set group prod --filter "'prod' and 'web'"`,
	}

	cmd.AddCommand(newSetAddressCmd())
	cmd.AddCommand(newSetGroupCmd())

	return cmd
}
