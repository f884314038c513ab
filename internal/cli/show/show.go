// Package show implements the show command for device and
// configuration overviews.
package show

import (
	"context"
	"fmt"
	"os"

	"github.com/aryankumar/panosctl/internal/cli/cmdutil"
	"github.com/aryankumar/panosctl/internal/model"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// NewShowCmd creates the show parent command
func NewShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show device and configuration information",
		Example: `  # Show device information
  panosctl show system

  # Show an overview of configuration objects in a device group
  panosctl show objects -d Branch-Offices`,
	}

	cmd.AddCommand(newShowSystemCmd())
	cmd.AddCommand(newShowObjectsCmd())
	cmd.AddCommand(newShowAddressesCmd())
	cmd.AddCommand(newShowAddressGroupsCmd())

	return cmd
}

// newShowSystemCmd creates the show system command
func newShowSystemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "system",
		Short: "Show device information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShowSystem(cmd.Context())
		},
	}

	return cmd
}

func runShowSystem(ctx context.Context) error {
	client, cfg, err := cmdutil.Connect(ctx)
	if err != nil {
		return err
	}

	info, err := client.SystemInfo(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch system info: %w", err)
	}

	formatter := cmdutil.Formatter(cfg)
	return formatter.Format(os.Stdout, map[string]interface{}{
		"hostname":   info.Hostname,
		"model":      info.Model,
		"serial":     info.Serial,
		"sw_version": info.SWVersion,
	})
}

// newShowObjectsCmd creates the show objects command
func newShowObjectsCmd() *cobra.Command {
	var deviceGroup string

	cmd := &cobra.Command{
		Use:   "objects",
		Short: "Show an overview of configuration objects",
		Long: `Show an overview of configuration objects in a scope.

Addresses and address groups are fetched concurrently.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShowObjects(cmd.Context(), deviceGroup)
		},
	}

	cmd.Flags().StringVarP(&deviceGroup, "device-group", "d", "", "Panorama device group (default is the shared scope)")

	return cmd
}

func runShowObjects(ctx context.Context, deviceGroup string) error {
	client, cfg, err := cmdutil.Connect(ctx)
	if err != nil {
		return err
	}

	var (
		addrs  []model.Address
		groups []model.AddressGroup
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		addrs, err = client.ListAddresses(gctx, deviceGroup)
		return err
	})
	g.Go(func() error {
		var err error
		groups, err = client.ListAddressGroups(gctx, deviceGroup)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to fetch objects: %w", err)
	}

	scope := deviceGroup
	if scope == "" {
		scope = "shared"
	}

	formatter := cmdutil.Formatter(cfg)
	return formatter.Format(os.Stdout, map[string]interface{}{
		"scope":          scope,
		"addresses":      len(addrs),
		"address_groups": len(groups),
	})
}
