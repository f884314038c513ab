package load

import (
	"context"
	"fmt"

	"github.com/aryankumar/panosctl/internal/executor"
	"github.com/aryankumar/panosctl/internal/model"
	"github.com/aryankumar/panosctl/internal/panos"
	"github.com/spf13/cobra"
)

// newLoadGroupsCmd creates the load groups command
func newLoadGroupsCmd() *cobra.Command {
	opts := &loadOptions{}

	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Bulk-load address groups from a YAML file",
		Long: `Bulk-load address groups from a YAML file.

The file holds objects under an "address_groups" key:

  address_groups:
    - name: web-servers
      static_members: [web-1, web-2]
    - name: prod-web
      dynamic_filter: "'prod' and 'web'"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoadGroups(cmd.Context(), opts)
		},
	}

	addLoadFlags(cmd, opts)

	return cmd
}

func runLoadGroups(ctx context.Context, opts *loadOptions) error {
	groups, err := model.LoadAddressGroups(opts.filename)
	if err != nil {
		return fmt.Errorf("failed to load address groups from %s: %w", opts.filename, err)
	}
	if len(groups) == 0 {
		return fmt.Errorf("no address groups found in %s", opts.filename)
	}

	items := make([]executor.Item[model.AddressGroup], 0, len(groups))
	for _, g := range groups {
		items = append(items, executor.Item[model.AddressGroup]{Label: g.Name, Payload: g})
	}

	deviceGroup := opts.deviceGroup
	return runBatch(ctx, opts, items, func(client *panos.Client) executor.Handler[model.AddressGroup, string] {
		return func(ctx context.Context, item executor.Item[model.AddressGroup]) (string, error) {
			return client.SetAddressGroup(ctx, deviceGroup, item.Payload)
		}
	})
}
