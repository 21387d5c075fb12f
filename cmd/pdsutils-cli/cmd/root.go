package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pdsutils/internal/adapters/sqlite"
	"pdsutils/internal/config"
	"pdsutils/internal/logging"
	"pdsutils/internal/ports"
)

var (
	rootPath string
	dbPath   string
	logLevel string

	logger  *zap.Logger
	history *sqlite.History
)

var rootCmd = &cobra.Command{
	Use:   "pdsutils-cli",
	Short: "Utilities for rigid-body simulation results",
	Long: `pdsutils-cli scans simulation results for the maximum relative motion
between adjacent rigid bodies, and edits simulator configuration files.

It provides commands to scan results, patch ini properties, duplicate
bodies, list per-realization files, and browse recorded scans.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		logger, err = logging.New(logLevel)
		if err != nil {
			return err
		}
		cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// execute runs the command tree and releases the logger and history
// whether or not the command failed
func execute() error {
	err := rootCmd.Execute()
	if closeErr := closeResources(); err == nil {
		err = closeErr
	}
	return err
}

func closeResources() error {
	if logger != nil {
		_ = logger.Sync()
		logger = nil
	}
	if history == nil {
		return nil
	}
	err := history.Close()
	history = nil
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootPath, "root", "r", config.Root(), "results root folder")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", config.HistoryPath(), "scan history database")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.LogLevel(), "log level (debug, info, warn, error)")
}

// GetHistory opens the scan history on first use
func GetHistory() (ports.ScanHistory, error) {
	if history != nil {
		return history, nil
	}
	h := sqlite.NewHistory()
	if err := h.Open(dbPath); err != nil {
		return nil, err
	}
	history = h
	return history, nil
}
