// Package main provides the entry point for the scamguard CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version    = "0.1.0-dev"
	globalHome string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "scamguard",
		Short:         "Classify messages as scam, possibly scam or safe",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&globalHome, "home", "", "Base directory holding .scamguard (default: user home directory)")

	rootCmd.AddCommand(
		newInitCmd(),
		newScanCmd(),
		newHistoryCmd(),
		newWatchCmd(),
		newSimilarCmd(),
		newServeCmd(),
	)

	return rootCmd
}
