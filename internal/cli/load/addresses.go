package load

import (
	"context"
	"fmt"

	"github.com/aryankumar/panosctl/internal/executor"
	"github.com/aryankumar/panosctl/internal/model"
	"github.com/aryankumar/panosctl/internal/panos"
	"github.com/spf13/cobra"
)

// newLoadAddressesCmd creates the load addresses command
func newLoadAddressesCmd() *cobra.Command {
	opts := &loadOptions{}

	cmd := &cobra.Command{
		Use:   "addresses",
		Short: "Bulk-load address objects from a YAML file",
		Long: `Bulk-load address objects from a YAML file.

The file holds objects under an "addresses" key:

  addresses:
    - name: web-1
      ip_netmask: 10.0.0.10/32
      tags: [web, prod]
    - name: api
      fqdn: api.example.com`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoadAddresses(cmd.Context(), opts)
		},
	}

	addLoadFlags(cmd, opts)

	return cmd
}

func runLoadAddresses(ctx context.Context, opts *loadOptions) error {
	addrs, err := model.LoadAddresses(opts.filename)
	if err != nil {
		return fmt.Errorf("failed to load addresses from %s: %w", opts.filename, err)
	}
	if len(addrs) == 0 {
		return fmt.Errorf("no addresses found in %s", opts.filename)
	}

	items := make([]executor.Item[model.Address], 0, len(addrs))
	for _, a := range addrs {
		items = append(items, executor.Item[model.Address]{Label: a.Name, Payload: a})
	}

	deviceGroup := opts.deviceGroup
	return runBatch(ctx, opts, items, func(client *panos.Client) executor.Handler[model.Address, string] {
		return func(ctx context.Context, item executor.Item[model.Address]) (string, error) {
			return client.SetAddress(ctx, deviceGroup, item.Payload)
		}
	})
}
