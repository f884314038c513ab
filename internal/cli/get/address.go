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

// newGetAddressCmd creates the get address command
func newGetAddressCmd() *cobra.Command {
	var deviceGroup string

	cmd := &cobra.Command{
		Use:     "address [NAME]",
		Aliases: []string{"addresses"},
		Short:   "Get address objects",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return runGetAddress(cmd.Context(), deviceGroup, name)
		},
	}

	cmd.Flags().StringVarP(&deviceGroup, "device-group", "d", "", "Panorama device group (default is the shared scope)")

	return cmd
}

func runGetAddress(ctx context.Context, deviceGroup, name string) error {
	client, cfg, err := cmdutil.Connect(ctx)
	if err != nil {
		return err
	}

	formatter := cmdutil.Formatter(cfg)

	if name != "" {
		addr, err := client.GetAddress(ctx, deviceGroup, name)
		if err != nil {
			return fmt.Errorf("failed to get address %q: %w", name, err)
		}
		return formatter.Format(os.Stdout, addressRow(*addr))
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
		rows = append(rows, addressRow(a))
	}
	return formatter.Format(os.Stdout, rows)
}

// addressRow flattens an address for display
func addressRow(a model.Address) map[string]interface{} {
	return map[string]interface{}{
		"name":        a.Name,
		"type":        a.Type(),
		"value":       a.Value(),
		"description": a.Description,
		"tags":        strings.Join(a.Tags, ","),
	}
}
