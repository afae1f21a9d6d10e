package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	logger
	verbose    bool
	profileDir string
	timeout    time.Duration
	profiler   interface{ Stop() }
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := cliParser().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	config := &rootCmdConfig{}
	rootCmd := &cobra.Command{
		Use:   "sapling",
		Short: "sapling is a tool to grow decision trees",
		Long:  `A tool to grow binary decision trees from labeled data, evaluate them with leave-one-out cross-validation, and use them to classify samples`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.setUp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			config.tearDown()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "log the progress of the command on STDERR")
	rootCmd.PersistentFlags().StringVar(&(config.profileDir), "profile", "", "path to a directory where a CPU profile of the command will be written")
	rootCmd.PersistentFlags().DurationVar(&(config.timeout), "timeout", 0, "maximum duration of the command, e.g. 30s (defaults to 0: no limit)")
	rootCmd.AddCommand(
		versionCmd(),
		growCmd(config),
		classifyCmd(config),
		looCmd(config),
		testCmd(config),
		bestCmd(config),
		splitCmd(config),
	)
	return rootCmd
}

func (rc *rootCmdConfig) setUp() error {
	l, err := newLogger(rc.verbose)
	if err != nil {
		return err
	}
	rc.logger = l
	if rc.profileDir != "" {
		rc.profiler = profile.Start(profile.CPUProfile, profile.ProfilePath(rc.profileDir), profile.Quiet, profile.NoShutdownHook)
		rc.Logf("Writing CPU profile to %s", rc.profileDir)
	}
	return nil
}

func (rc *rootCmdConfig) tearDown() {
	if rc.profiler != nil {
		rc.profiler.Stop()
		rc.profiler = nil
	}
	rc.Sync()
}

// exit prints the given error on STDERR and exits with the given code.
func (rc *rootCmdConfig) exit(code int, err error) {
	fmt.Fprintln(os.Stderr, err)
	rc.tearDown()
	os.Exit(code)
}

// commandContext returns the context for the command, limited by the timeout flag
// if it was set.
func (rc *rootCmdConfig) commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if rc.timeout > 0 {
		return context.WithTimeout(ctx, rc.timeout)
	}
	return context.WithCancel(ctx)
}
