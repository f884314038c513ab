// Package commit implements the commit command.
package commit

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aryankumar/panosctl/internal/cli/cmdutil"
	"github.com/spf13/cobra"
)

// NewCommitCmd creates the commit command
func NewCommitCmd() *cobra.Command {
	var (
		description  string
		wait         bool
		pollInterval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Commit candidate configuration",
		Long: `Commit the candidate configuration to the device.

A commit runs asynchronously on the device; by default the command
prints the job ID and returns. With --wait it polls until the job
finishes.`,
		Example: `  # Start a commit and return immediately
  panosctl commit

  # Commit with a description and wait for the result
  panosctl commit --description "add web addresses" --wait`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommit(cmd.Context(), description, wait, pollInterval)
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "commit description")
	cmd.Flags().BoolVar(&wait, "wait", false, "wait for the commit job to finish")
	cmd.Flags().DurationVar(&pollInterval, "poll-interval", 5*time.Second, "how often to poll the job while waiting")

	cmd.AddCommand(newStatusCmd())

	return cmd
}

func runCommit(ctx context.Context, description string, wait bool, pollInterval time.Duration) error {
	client, _, err := cmdutil.Connect(ctx)
	if err != nil {
		return err
	}

	jobID, err := client.Commit(ctx, description)
	if err != nil {
		return fmt.Errorf("commit failed: %w", err)
	}
	if jobID == "" {
		fmt.Println("Nothing to commit")
		return nil
	}

	if !wait {
		fmt.Printf("Commit started (job %s)\n", jobID)
		return nil
	}

	fmt.Printf("Commit started (job %s), waiting...\n", jobID)

	status, err := client.WaitForJob(ctx, jobID, pollInterval)
	if err != nil {
		return err
	}

	fmt.Printf("Commit finished: %s\n", status.Result)
	return nil
}

// newStatusCmd creates the commit status command
func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status JOB",
		Short: "Show the status of a commit job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd.Context(), args[0])
		},
	}

	return cmd
}

func runStatus(ctx context.Context, jobID string) error {
	client, cfg, err := cmdutil.Connect(ctx)
	if err != nil {
		return err
	}

	status, err := client.CommitStatus(ctx, jobID)
	if err != nil {
		return fmt.Errorf("failed to fetch job %s: %w", jobID, err)
	}

	formatter := cmdutil.Formatter(cfg)
	return formatter.Format(os.Stdout, map[string]interface{}{
		"job":      status.ID,
		"status":   status.Status,
		"result":   status.Result,
		"progress": status.Progress,
	})
}
