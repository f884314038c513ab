package show

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aryankumar/panosctl/internal/cli/cmdutil"
	"github.com/aryankumar/panosctl/internal/model"
	"github.com/spf13/cobra"
)

// newShowAddressesCmd creates the show addresses command
func newShowAddressesCmd() *cobra.Command {
	var deviceGroup string

	cmd := &cobra.Command{
		Use:   "addresses",
		Short: "Show all address objects in a scope",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShowAddresses(cmd.Context(), deviceGroup)
		},
	}

	cmd.Flags().StringVarP(&deviceGroup, "device-group", "d", "", "Panorama device group (default is the shared scope)")

	return cmd
}

func runShowAddresses(ctx context.Context, deviceGroup string) error {
	client, cfg, err := cmdutil.Connect(ctx)
	if err != nil {
		return err
	}

	addrs, err := client.ListAddresses(ctx, deviceGroup)
	if err != nil {
		return fmt.Errorf("failed to list addresses: %w", err)
	}
	if len(addrs) == 0 {
		fmt.Println("No addresses found")
		return nil
	}

	rows := make([]map[string]interface{}, 0, len(addrs))
	for _, a := range addrs {
		rows = append(rows, map[string]interface{}{
			"name":        a.Name,
			"type":        a.Type(),
			"value":       a.Value(),
			"description": a.Description,
			"tags":        strings.Join(a.Tags, ","),
		})
	}

	formatter := cmdutil.Formatter(cfg)
	return formatter.Format(os.Stdout, rows)
}

// newShowAddressGroupsCmd creates the show address-groups command
func newShowAddressGroupsCmd() *cobra.Command {
	var deviceGroup string

	cmd := &cobra.Command{
		Use:     "address-groups",
		Aliases: []string{"groups"},
		Short:   "Show all address groups in a scope",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShowAddressGroups(cmd.Context(), deviceGroup)
		},
	}

	cmd.Flags().StringVarP(&deviceGroup, "device-group", "d", "", "Panorama device group (default is the shared scope)")

	return cmd
}

func runShowAddressGroups(ctx context.Context, deviceGroup string) error {
	client, cfg, err := cmdutil.Connect(ctx)
	if err != nil {
		return err
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
		rows = append(rows, map[string]interface{}{
			"name":        g.Name,
			"type":        groupType(g),
			"members":     groupMembers(g),
			"description": g.Description,
			"tags":        strings.Join(g.Tags, ","),
		})
	}

	formatter := cmdutil.Formatter(cfg)
	return formatter.Format(os.Stdout, rows)
}

func groupType(g model.AddressGroup) string {
	if g.DynamicFilter != "" {
		return "dynamic"
	}
	return "static"
}

func groupMembers(g model.AddressGroup) string {
	if g.DynamicFilter != "" {
		return g.DynamicFilter
	}
	return strings.Join(g.StaticMembers, ",")
}
