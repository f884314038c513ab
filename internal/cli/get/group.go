package get

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aryankumar/panosctl/internal/cli/cmdutil"
	"github.com/aryankumar/panosctl/internal/model"
	"github.com/spf13/cobra"
)

// newGetGroupCmd creates the get group command
func newGetGroupCmd() *cobra.Command {
	var deviceGroup string

	cmd := &cobra.Command{
		Use:     "group [NAME]",
		Aliases: []string{"groups"},
		Short:   "Get address groups",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return runGetGroup(cmd.Context(), deviceGroup, name)
		},
	}

	cmd.Flags().StringVarP(&deviceGroup, "device-group", "d", "", "Panorama device group (default is the shared scope)")

	return cmd
}

func runGetGroup(ctx context.Context, deviceGroup, name string) error {
	client, cfg, err := cmdutil.Connect(ctx)
	if err != nil {
		return err
	}

	formatter := cmdutil.Formatter(cfg)

	if name != "" {
		grp, err := client.GetAddressGroup(ctx, deviceGroup, name)
		if err != nil {
			return fmt.Errorf("failed to get address group %q: %w", name, err)
		}
		return formatter.Format(os.Stdout, groupRow(*grp))
	}

	groups, err := client.ListAddressGroups(ctx, deviceGroup)
	if err != nil {
		return fmt.Errorf("failed to list address groups: %w", err)
	}
	if len(groups) == 0 {
		fmt.Println("No address groups found")
		return nil
	}

	rows := make([]map[string]interface{}, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, groupRow(g))
	}
	return formatter.Format(os.Stdout, rows)
}

// groupRow flattens an address group for display
func groupRow(g model.AddressGroup) map[string]interface{} {
	kind := "dynamic"
	value := g.DynamicFilter
	if g.IsStatic() {
		kind = "static"
		value = strings.Join(g.StaticMembers, ",")
	}
	return map[string]interface{}{
		"name":        g.Name,
		"type":        kind,
		"value":       value,
		"description": g.Description,
	}
}
