package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aryankumar/panosctl/internal/cli/commit"
	"github.com/aryankumar/panosctl/internal/cli/del"
	"github.com/aryankumar/panosctl/internal/cli/get"
	"github.com/aryankumar/panosctl/internal/cli/load"
	"github.com/aryankumar/panosctl/internal/cli/set"
	"github.com/aryankumar/panosctl/internal/cli/show"
	"github.com/aryankumar/panosctl/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
)

// Execute runs the root command with the provided context
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// newRootCmd creates the root command
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "panosctl",
		Short: "panosctl - PAN-OS configuration management tool",
		Long: `panosctl is a CLI tool for managing PAN-OS firewall and Panorama
configuration objects. It provides commands for creating, querying and
deleting address objects and address groups, bulk-loading objects from
YAML files with bounded concurrency, and committing changes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
		},
	}

	// Define persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.panosctl/config.yaml)")
	rootCmd.PersistentFlags().String("hostname", "", "PAN-OS device hostname or IP")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output format (json, yaml, table)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output with debug logging")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	rootCmd.PersistentFlags().Bool("mock", false, "simulate API calls without connecting to a device")
	rootCmd.PersistentFlags().Bool("insecure", false, "skip TLS certificate verification")
	rootCmd.PersistentFlags().Duration("timeout", 60*time.Second, "timeout for operations")
	rootCmd.PersistentFlags().IntP("threads", "t", 10, "number of concurrent operations")

	// Bind flags to viper
	viper.BindPFlag("hostname", rootCmd.PersistentFlags().Lookup("hostname"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("no_color", rootCmd.PersistentFlags().Lookup("no-color"))
	viper.BindPFlag("mock", rootCmd.PersistentFlags().Lookup("mock"))
	viper.BindPFlag("skip_verify", rootCmd.PersistentFlags().Lookup("insecure"))
	viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	viper.BindPFlag("threads", rootCmd.PersistentFlags().Lookup("threads"))

	// Add subcommands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newTestCmd())
	rootCmd.AddCommand(set.NewSetCmd())
	rootCmd.AddCommand(get.NewGetCmd())
	rootCmd.AddCommand(del.NewDeleteCmd())
	rootCmd.AddCommand(load.NewLoadCmd())
	rootCmd.AddCommand(show.NewShowCmd())
	rootCmd.AddCommand(commit.NewCommitCmd())

	return rootCmd
}

// initConfig resolves configuration and sets up logging.
// The resolved config is attached to the command context so
// subcommands can read it without re-resolving.
func initConfig(cmd *cobra.Command) error {
	mgr := config.NewManagerWith(viper.GetViper(), cfgFile)

	cfg, err := mgr.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	setupLogging(cmd)

	if mgr.ConfigFileUsed() != "" {
		slog.Debug("loaded configuration", "file", mgr.ConfigFileUsed())
	}

	cmd.SetContext(config.NewContext(cmd.Context(), cfg))

	return nil
}

// setupLogging configures structured logging with slog
func setupLogging(cmd *cobra.Command) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	noColor, _ := cmd.Flags().GetBool("no-color")

	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	var handler slog.Handler
	if noColor {
		// Use JSON handler for no-color mode
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	if verbose {
		slog.Debug("verbose logging enabled")
	}
}
