// Package load implements the load command for bulk-creating
// configuration objects from YAML files.
package load

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aryankumar/panosctl/internal/cli/cmdutil"
	"github.com/aryankumar/panosctl/internal/config"
	"github.com/aryankumar/panosctl/internal/executor"
	"github.com/aryankumar/panosctl/internal/output"
	"github.com/aryankumar/panosctl/internal/panos"
	"github.com/aryankumar/panosctl/internal/util"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// loadOptions holds the flags shared by the load subcommands
type loadOptions struct {
	filename    string
	deviceGroup string
	rateLimit   float64
	commit      bool
	wait        bool
}

// NewLoadCmd creates the load parent command
func NewLoadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Bulk-load configuration objects from YAML files",
		Long: `Bulk-load PAN-OS configuration objects from YAML files.

Objects are pushed concurrently with a bounded worker pool. Every
object is validated before any API call happens, and each object's
outcome is reported individually: one failure never aborts the batch.`,
		Example: `  # Load addresses from a file
  panosctl load addresses -f addresses.yaml

  # Load into a device group with 20 workers
  panosctl load addresses -f addresses.yaml -d Branch-Offices -t 20

  # Load, throttled to 5 API calls per second
  panosctl load addresses -f addresses.yaml --rate-limit 5

  # Load address groups and commit when done
  panosctl load groups -f groups.yaml --commit --wait`,
	}

	cmd.AddCommand(newLoadAddressesCmd())
	cmd.AddCommand(newLoadGroupsCmd())

	return cmd
}

func addLoadFlags(cmd *cobra.Command, opts *loadOptions) {
	cmd.Flags().StringVarP(&opts.filename, "file", "f", "", "Path to the YAML file (required)")
	cmd.Flags().StringVarP(&opts.deviceGroup, "device-group", "d", "", "Panorama device group (default is the shared scope)")
	cmd.Flags().Float64Var(&opts.rateLimit, "rate-limit", 0, "maximum API calls per second (0 means unlimited)")
	cmd.Flags().BoolVar(&opts.commit, "commit", false, "commit the configuration after a fully successful load")
	cmd.Flags().BoolVar(&opts.wait, "wait", false, "wait for the commit job to finish (implies --commit)")

	cmd.MarkFlagRequired("file")
}

// runBatch executes and reports one bulk load.
// handlerFor builds the per-object push function once the client is
// connected.
func runBatch[T any](
	ctx context.Context,
	opts *loadOptions,
	items []executor.Item[T],
	handlerFor func(*panos.Client) executor.Handler[T, string],
) error {
	client, cfg, err := cmdutil.Connect(ctx)
	if err != nil {
		return err
	}

	summary, err := execute(ctx, cfg, opts, items, handlerFor(client))
	if err != nil {
		return err
	}

	formatter := cmdutil.Formatter(cfg, output.WithWide(true))
	if err := formatter.FormatBatch(os.Stdout, output.Report(summary, nil)); err != nil {
		return err
	}

	if summary.HasFailures() {
		return util.WrapErrorf(batchError(summary), "%d of %d objects failed", summary.Failed, summary.Total)
	}

	if opts.commit || opts.wait {
		return runCommit(ctx, client, opts.wait)
	}

	return nil
}

// batchError aggregates per-object failures so callers can inspect
// each one with errors.As
func batchError[R any](summary *executor.Summary[R]) error {
	merr := &util.MultiError{}
	for _, res := range summary.Results {
		if res.Err != nil {
			merr.Add(&util.ObjectError{Name: res.Label, Err: res.Err})
		}
	}
	return merr.ErrorOrNil()
}

// execute runs the batch through a worker pool with a progress bar
func execute[T any](
	ctx context.Context,
	cfg *config.Config,
	opts *loadOptions,
	items []executor.Item[T],
	push executor.Handler[T, string],
) (*executor.Summary[string], error) {
	poolOpts := []executor.Option[T, string]{
		executor.WithLogger[T, string](slog.Default()),
	}
	if opts.rateLimit > 0 {
		poolOpts = append(poolOpts, executor.WithRateLimit[T, string](opts.rateLimit, 1))
	}

	pool, err := executor.New(cfg.Threads, push, poolOpts...)
	if err != nil {
		return nil, err
	}
	if err := pool.Submit(items...); err != nil {
		return nil, err
	}

	execCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	stopProgress := trackProgress(pool, len(items))
	defer stopProgress()

	summary, err := pool.Execute(execCtx)
	if err != nil {
		return nil, err
	}

	stopProgress()
	fmt.Println()

	return summary, nil
}

// trackProgress renders a progress bar from pool snapshots until the
// returned stop function is called
func trackProgress[T any](pool *executor.Pool[T, string], total int) func() {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("pushing"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionThrottle(65*time.Millisecond),
	)

	done := make(chan struct{})
	finished := make(chan struct{})

	go func() {
		defer close(finished)
		ticker := time.NewTicker(150 * time.Millisecond)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				snap := pool.Snapshot()
				bar.Set(snap.Completed)
				bar.Finish()
				return
			case <-ticker.C:
				snap := pool.Snapshot()
				bar.Set(snap.Completed)
			}
		}
	}()

	var once bool
	return func() {
		if once {
			return
		}
		once = true
		close(done)
		<-finished
	}
}

// runCommit commits after a successful load
func runCommit(ctx context.Context, client *panos.Client, wait bool) error {
	jobID, err := client.Commit(ctx, "panosctl bulk load")
	if err != nil {
		return fmt.Errorf("commit failed: %w", err)
	}
	if jobID == "" {
		fmt.Println("Nothing to commit")
		return nil
	}

	fmt.Printf("Commit started (job %s)\n", jobID)

	if !wait {
		return nil
	}

	status, err := client.WaitForJob(ctx, jobID, 5*time.Second)
	if err != nil {
		return err
	}
	fmt.Printf("Commit finished: %s\n", status.Result)
	return nil
}
