package cli

import (
	"context"
	"fmt"

	"github.com/aryankumar/panosctl/internal/cli/cmdutil"
	"github.com/spf13/cobra"
)

// newTestCmd creates the test command for verifying connectivity
func newTestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test connectivity and credentials",
	}

	cmd.AddCommand(newTestAuthCmd())

	return cmd
}

// newTestAuthCmd creates the test auth command
func newTestAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Verify that the configured credentials work",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTestAuth(cmd.Context())
		},
	}

	return cmd
}

func runTestAuth(ctx context.Context) error {
	client, cfg, err := cmdutil.Connect(ctx)
	if err != nil {
		return err
	}

	info, err := client.SystemInfo(ctx)
	if err != nil {
		return fmt.Errorf("authenticated but system info failed: %w", err)
	}

	fmt.Printf("Authentication successful: %s (%s, PAN-OS %s)\n",
		cfg.Hostname, info.Model, info.SWVersion)
	return nil
}
