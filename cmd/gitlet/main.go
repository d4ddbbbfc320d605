package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/utkarsh5026/gitlet/cmd/ui"
	gerr "github.com/utkarsh5026/gitlet/pkg/common/err"
	"github.com/utkarsh5026/gitlet/pkg/common/logger"
)

var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
	CommitSHA = "unknown"
)

var (
	logLevel  string
	logFormat string
	verbose   bool

	// configOverrides holds --config key=value pairs.
	configOverrides []string

	// userConfigPath replaces ~/.config/gitlet/config.json when set.
	userConfigPath string
)

func main() {
	os.Exit(execute(context.Background(), newRootCmd(), os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs root with args. Failures a user can cause are printed as
// their one-line message on stdout and still exit 0. Anything else is an
// internal failure and exits 1.
func execute(ctx context.Context, root *cobra.Command, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	if gerr.GetCode(err) == "" {
		fmt.Fprintf(stderr, "gitlet: %v\n", err)
		return 1
	}
	logger.Debug("command failed", "error", err)
	fmt.Fprintln(stdout, ui.ErrorMessage(gerr.UserMessage(err)))
	return 0
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gitlet",
		Short:         "Gitlet - a small version-control system",
		Long:          getBanner(),
		Version:       fmt.Sprintf("%s (built: %s, commit: %s)", Version, BuildTime, CommitSHA),
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errNoCommand
			}
			return errUnknownCommand
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return incorrectOperands(err)
	})

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output (sets log level to debug)")
	rootCmd.PersistentFlags().StringArrayVarP(&configOverrides, "config", "c", nil, "Override a configuration value (key=value)")

	rootCmd.AddCommand(
		newInitCmd(),
		newConfigCmd(),
		newAddCmd(),
		newCommitCmd(),
		newRmCmd(),
		newLogCmd(),
		newGlobalLogCmd(),
		newFindCmd(),
		newStatusCmd(),
		newCheckoutCmd(),
		newBranchCmd(),
		newRmBranchCmd(),
		newResetCmd(),
		newMergeCmd(),
		newAddRemoteCmd(),
		newRmRemoteCmd(),
		newPushCmd(),
		newFetchCmd(),
		newPullCmd(),
	)
	return rootCmd
}

func getBanner() string {
	return `
  gitlet keeps snapshots of the files in a single flat directory.

  Get started with: gitlet init
  Check status with: gitlet status
  Need help? Run:   gitlet --help
`
}

func setupLogging(out io.Writer) error {
	level, err := logger.ParseLevel(logLevel)
	if err != nil {
		return incorrectOperands(err)
	}
	if verbose {
		level = logger.LevelDebug
	}

	format, err := logger.ParseFormat(logFormat)
	if err != nil {
		return incorrectOperands(err)
	}

	logger.Default = logger.New(logger.Config{
		Level:  level,
		Format: format,
		Output: out,
	})
	return nil
}
