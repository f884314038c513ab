// Package del implements the delete command for removing
// configuration objects.
package del

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aryankumar/panosctl/internal/cli/cmdutil"
	"github.com/spf13/cobra"
)

// NewDeleteCmd creates the delete parent command
func NewDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete",
		Aliases: []string{"del"},
		Short:   "Delete configuration objects",
		Long: `Delete PAN-OS configuration objects.

Deleting an object that is referenced by other configuration fails
with a conflict error from the device.`,
		Example: `  # Delete an address from the shared scope
  panosctl delete address web-1

  # Delete an address group from a device group
  panosctl delete group web-servers -d Branch-Offices`,
	}

	cmd.AddCommand(newDeleteAddressCmd())
	cmd.AddCommand(newDeleteGroupCmd())

	return cmd
}

// newDeleteAddressCmd creates the delete address command
func newDeleteAddressCmd() *cobra.Command {
	var deviceGroup string

	cmd := &cobra.Command{
		Use:   "address NAME",
		Short: "Delete an address object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd.Context(), "address", deviceGroup, args[0])
		},
	}

	cmd.Flags().StringVarP(&deviceGroup, "device-group", "d", "", "Panorama device group (default is the shared scope)")

	return cmd
}

// newDeleteGroupCmd creates the delete group command
func newDeleteGroupCmd() *cobra.Command {
	var deviceGroup string

	cmd := &cobra.Command{
		Use:   "group NAME",
		Short: "Delete an address group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd.Context(), "group", deviceGroup, args[0])
		},
	}

	cmd.Flags().StringVarP(&deviceGroup, "device-group", "d", "", "Panorama device group (default is the shared scope)")

	return cmd
}

func runDelete(ctx context.Context, kind, deviceGroup, name string) error {
	client, _, err := cmdutil.Connect(ctx)
	if err != nil {
		return err
	}

	var msg string
	switch kind {
	case "address":
		msg, err = client.DeleteAddress(ctx, deviceGroup, name)
	case "group":
		msg, err = client.DeleteAddressGroup(ctx, deviceGroup, name)
	default:
		return fmt.Errorf("unknown object kind %q", kind)
	}
	if err != nil {
		return fmt.Errorf("failed to delete %s %q: %w", kind, name, err)
	}

	slog.Debug("object deleted", "kind", kind, "name", name, "response", msg)
	fmt.Printf("%s/%s %s\n", kind, name, msg)
	return nil
}
