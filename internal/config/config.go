package config

import (
	"os"
	"path/filepath"
	"strconv"
)

const (
	DefaultRoot = "."

	// DefaultSampleInterval is the spacing in seconds between position.dat rows
	// written by the simulator
	DefaultSampleInterval = 0.1

	DefaultLogLevel = "info"
)

// Root returns the results root from PDSUTILS_ROOT env var,
// falling back to DefaultRoot.
func Root() string {
	if env := os.Getenv("PDSUTILS_ROOT"); env != "" {
		return env
	}
	return DefaultRoot
}

// SampleInterval returns PDSUTILS_SAMPLE_INTERVAL when it holds a positive
// number, falling back to DefaultSampleInterval.
func SampleInterval() float64 {
	if env := os.Getenv("PDSUTILS_SAMPLE_INTERVAL"); env != "" {
		if v, err := strconv.ParseFloat(env, 64); err == nil && v > 0 {
			return v
		}
	}
	return DefaultSampleInterval
}

// LogLevel returns PDSUTILS_LOG_LEVEL, falling back to DefaultLogLevel.
func LogLevel() string {
	if env := os.Getenv("PDSUTILS_LOG_LEVEL"); env != "" {
		return env
	}
	return DefaultLogLevel
}

// HistoryPath returns the scan history database path from PDSUTILS_DB,
// falling back to $XDG_DATA_HOME/pdsutils/history.db.
func HistoryPath() string {
	if env := os.Getenv("PDSUTILS_DB"); env != "" {
		return env
	}
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "pdsutils", "history.db")
}
