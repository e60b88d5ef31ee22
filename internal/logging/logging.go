// Package logging configures structured logging for wattdeck using log/slog.
//
// The terminal belongs to the TUI, so log output goes to a file or nowhere.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
)

// Setup installs the default slog logger.
//
//   - empty path: logs are discarded
//   - otherwise:  a text handler appends to path, creating its directory
//
// verbose lowers the level from INFO to DEBUG. The returned func closes the
// log file and is safe to call when nothing was opened.
func Setup(path string, verbose bool) (func(), error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	if path == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: level})))
		return func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return func() {}, err
	}
	// LogToFile also points the standard logger at the file, which catches
	// anything Bubble Tea itself logs.
	f, err := tea.LogToFile(path, "wattdeck")
	if err != nil {
		return func() {}, err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
	return func() { _ = f.Close() }, nil
}

// DefaultPath returns $HOME/.local/state/wattdeck/wattdeck.log, or "" when
// the home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "state", "wattdeck", "wattdeck.log")
}
