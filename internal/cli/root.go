// Package cli implements the schedsim command line interface.
package cli

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/me/schedsim/internal/logging"
)

var (
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	logger *slog.Logger
)

// defaultDBPath returns the default local database path, checking the
// SCHEDSIM_DB env var first.
func defaultDBPath() string {
	if p := os.Getenv("SCHEDSIM_DB"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "schedsim.db"
	}
	return filepath.Join(home, ".schedsim", "schedsim.db")
}

// NewRootCmd creates the root cobra command for the schedsim CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "schedsim",
		Short: "schedsim — CPU scheduling simulator",
		Long: "schedsim simulates FCFS, RR, SRR, and FB scheduling over a workload file\n" +
			"and reports per-process and average turnaround and waiting times.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagDebug {
				flagLogLevel = "debug"
			}
			logger = logging.NewLogger(logging.ParseLevel(flagLogLevel), flagLogFormat)
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newRunCmd(),
		newServeCmd(),
		newListCmd(),
		newShowCmd(),
	)

	return root
}
