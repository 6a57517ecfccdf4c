package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/colonyops/threads/internal/core/config"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	Sort       string

	ProfilerPort int

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// SessionID identifies this process in log events
	SessionID string
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "threads", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/threads/threads.log
// On Linux: $XDG_STATE_HOME/threads/threads.log (defaults to ~/.local/state/threads/threads.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "threads", "threads.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "threads", "threads.log")
	}

	return filepath.Join(home, ".local", "state", "threads", "threads.log")
}
