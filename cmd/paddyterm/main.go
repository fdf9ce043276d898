// Paddyterm is a terminal browser for sports betting pages.
//
// It shows a sports menu, the tabs of the selected page and the cards and
// coupons of the selected tab in a full-screen, keyboard-driven interface.
// Pages come from built-in fixtures or from the live strands content API.
//
// Usage:
//
//	paddyterm [command] [flags]
//
// Running without arguments launches the browser.
// See 'paddyterm --help' for available commands.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/muurk/paddyterm/internal/catalog"
	"github.com/muurk/paddyterm/internal/config"
	"github.com/muurk/paddyterm/internal/logging"
	"github.com/muurk/paddyterm/internal/tui"
	"github.com/muurk/paddyterm/internal/ui"
	"github.com/muurk/paddyterm/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "paddyterm",
	Short: "Terminal sports betting browser",
	Long: `A full-screen terminal browser for sports betting pages.

Use the arrow keys to move, Tab to switch between the sports menu, the tab
strip and the content list, Enter or Space to open the selection and q to
quit.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBrowser,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "paddyterm %s\n", version.Full())
	},
}

func runBrowser(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := initLogging(cfg, true); err != nil {
		return err
	}
	defer logging.Sync()

	cat := catalog.Default()
	src, err := newSource(cfg, cat)
	if err != nil {
		return err
	}

	model := tui.New(tui.Options{
		Catalog:   cat,
		Source:    src,
		StartPage: cfg.UI.StartPage,
		Palette:   ui.Palette(),
	})
	logging.Info("Starting browser", zapSource(cfg)...)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	// An interrupt is a request to quit, not a failure.
	if err != nil && !errors.Is(err, tea.ErrInterrupted) {
		return fmt.Errorf("browser error: %w", err)
	}
	if err := model.Err(); err != nil {
		return fmt.Errorf("cannot start: %w", err)
	}
	return nil
}

// initLogging starts logging from flags, the config file and the
// environment, in that order. The browser owns the terminal, so when it is
// running and no file is named the log goes to the config directory.
func initLogging(cfg *config.Config, interactive bool) error {
	level := firstNonEmpty(logLevel, cfg.Log.Level, os.Getenv(logging.LogLevelEnvVar))
	path := firstNonEmpty(logFile, cfg.Log.File, os.Getenv(logging.LogFileEnvVar))
	if level != "" && path == "" && interactive {
		p, err := config.DefaultLogPath()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		path = p
	}
	return logging.Initialize(level, path)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
