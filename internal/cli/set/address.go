package set

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aryankumar/panosctl/internal/cli/cmdutil"
	"github.com/aryankumar/panosctl/internal/model"
	"github.com/spf13/cobra"
)

// newSetAddressCmd creates the set address command
func newSetAddressCmd() *cobra.Command {
	var (
		deviceGroup string
		ipNetmask   string
		fqdn        string
		ipRange     string
		description string
		tags        []string
	)

	cmd := &cobra.Command{
		Use:   "address NAME",
		Short: "Create or update an address object",
		Long: `Create or update an address object.

Exactly one of --ip-netmask, --fqdn or --ip-range must be given.`,
		Example: `  # CIDR address
  panosctl set address web-1 --ip-netmask 10.0.0.10/32

  # FQDN address with tags
  panosctl set address api --fqdn api.example.com --tags web,prod

  # Range address in a device group
  panosctl set address dhcp-pool --ip-range 10.0.1.100-10.0.1.200 -d Branch-Offices`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := model.Address{
				Name:        args[0],
				IPNetmask:   ipNetmask,
				FQDN:        fqdn,
				IPRange:     ipRange,
				Description: description,
				Tags:        tags,
			}
			return runSetAddress(cmd.Context(), deviceGroup, addr)
		},
	}

	cmd.Flags().StringVarP(&deviceGroup, "device-group", "d", "", "Panorama device group (default is the shared scope)")
	cmd.Flags().StringVar(&ipNetmask, "ip-netmask", "", "IP address or network in CIDR notation")
	cmd.Flags().StringVar(&fqdn, "fqdn", "", "fully qualified domain name")
	cmd.Flags().StringVar(&ipRange, "ip-range", "", "IP range (start-end)")
	cmd.Flags().StringVar(&description, "description", "", "object description")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "tags (comma-separated)")

	return cmd
}

func runSetAddress(ctx context.Context, deviceGroup string, addr model.Address) error {
	if err := addr.Validate(); err != nil {
		return err
	}

	client, _, err := cmdutil.Connect(ctx)
	if err != nil {
		return err
	}

	msg, err := client.SetAddress(ctx, deviceGroup, addr)
	if err != nil {
		return fmt.Errorf("failed to set address %q: %w", addr.Name, err)
	}

	slog.Debug("address set", "name", addr.Name, "response", msg)
	fmt.Printf("address/%s %s\n", addr.Name, msg)
	return nil
}
