package set

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aryankumar/panosctl/internal/cli/cmdutil"
	"github.com/aryankumar/panosctl/internal/model"
	"github.com/spf13/cobra"
)

// newSetGroupCmd creates the set group command
func newSetGroupCmd() *cobra.Command {
	var (
		deviceGroup string
		members     []string
		filter      string
		description string
		tags        []string
	)

	cmd := &cobra.Command{
		Use:   "group NAME",
		Short: "Create or update an address group",
		Long: `Create or update an address group.

A group is either static (--members) or dynamic (--filter), never both.`,
		Example: `  # Static group
  panosctl set group web-servers --members web-1,web-2,web-3

  # Dynamic group matching tagged objects
  panosctl set group prod-web --filter "'prod' and 'web'"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grp := model.AddressGroup{
				Name:          args[0],
				StaticMembers: members,
				DynamicFilter: filter,
				Description:   description,
				Tags:          tags,
			}
			return runSetGroup(cmd.Context(), deviceGroup, grp)
		},
	}

	cmd.Flags().StringVarP(&deviceGroup, "device-group", "d", "", "Panorama device group (default is the shared scope)")
	cmd.Flags().StringSliceVar(&members, "members", nil, "static member names (comma-separated)")
	cmd.Flags().StringVar(&filter, "filter", "", "dynamic match filter expression")
	cmd.Flags().StringVar(&description, "description", "", "object description")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "tags (comma-separated)")

	return cmd
}

func runSetGroup(ctx context.Context, deviceGroup string, grp model.AddressGroup) error {
	if err := grp.Validate(); err != nil {
		return err
	}

	client, _, err := cmdutil.Connect(ctx)
	if err != nil {
		return err
	}

	msg, err := client.SetAddressGroup(ctx, deviceGroup, grp)
	if err != nil {
		return fmt.Errorf("failed to set address group %q: %w", grp.Name, err)
	}

	slog.Debug("address group set", "name", grp.Name, "response", msg)
	fmt.Printf("addressgroup/%s %s\n", grp.Name, msg)
	return nil
}
