package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/paddyterm/internal/catalog"
	"github.com/muurk/paddyterm/internal/config"
	"github.com/muurk/paddyterm/internal/content"
	"github.com/muurk/paddyterm/internal/logging"
	"github.com/muurk/paddyterm/internal/pane"
	"github.com/muurk/paddyterm/internal/ui"
)

// Global flags
var (
	configPath string
	sourceMode string
	baseURL    string
	timeout    int
	startPage  string
	logLevel   string
	logFile    string
	forceInit  bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is the platform config directory)")
	rootCmd.PersistentFlags().StringVar(&sourceMode, "source", "", "Content source (fixtures, strands)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Strands API base URL")
	rootCmd.PersistentFlags().IntVar(&timeout, "timeout", 0, "HTTP request timeout in seconds")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); logging is off by default")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file")
	rootCmd.Flags().StringVar(&startPage, "page", "", "Page to open at startup, by menu label or page id")

	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file without asking")

	rootCmd.AddCommand(pagesCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the config file and applies command line overrides.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if sourceMode != "" {
		cfg.Source.Mode = sourceMode
	}
	if baseURL != "" {
		cfg.Source.BaseURL = baseURL
	}
	if timeout > 0 {
		cfg.Source.TimeoutSeconds = timeout
	}
	if startPage != "" {
		id, err := resolvePage(catalog.Default(), startPage)
		if err != nil {
			return nil, err
		}
		cfg.UI.StartPage = id
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newSource builds the configured content source.
func newSource(cfg *config.Config, cat *catalog.Catalog) (content.Source, error) {
	switch cfg.Source.Mode {
	case config.ModeFixtures:
		return content.NewFixtureSource(cat.Contains), nil
	case config.ModeStrands:
		src := content.NewStrandsSource(cfg.Source.BaseURL, cfg.StrandsOptions())
		src.SetTimeout(cfg.Timeout())
		src.Known = cat.Contains
		return src, nil
	default:
		return nil, fmt.Errorf("unknown source mode %q", cfg.Source.Mode)
	}
}

func zapSource(cfg *config.Config) []zap.Field {
	fields := []zap.Field{zap.String("source", cfg.Source.Mode), zap.String("page", cfg.UI.StartPage)}
	if cfg.Source.Mode == config.ModeStrands {
		fields = append(fields,
			zap.String("base_url", cfg.Source.BaseURL),
			zap.Duration("timeout", cfg.Timeout()),
		)
	}
	return fields
}

// resolvePage accepts a page id or a menu label, ignoring case.
func resolvePage(cat *catalog.Catalog, arg string) (string, error) {
	if cat.Contains(arg) {
		return arg, nil
	}
	if id, ok := cat.PageID(arg); ok {
		return id, nil
	}
	for _, e := range cat.Entries() {
		if strings.EqualFold(e.Label, arg) || strings.EqualFold(e.PageID, arg) {
			return e.PageID, nil
		}
	}
	return "", fmt.Errorf("unknown page %q (see 'paddyterm pages')", arg)
}

// pagesCmd prints the navigation catalog
var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "List the pages in the sports menu",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ui.NewPrinter(cmd.OutOrStdout()).PrintCatalog(catalog.Default())
		return nil
	},
}

// dumpCmd loads a page and prints it
var dumpCmd = &cobra.Command{
	Use:   "dump <page>",
	Short: "Load a page and print every tab",
	Long: `Load a page through the configured content source and print the
cards and coupons of every tab, as the browser would show them.

The page may be given by menu label or page id.`,
	Example: `  # Print the homepage from the built-in fixtures
  paddyterm dump Home

  # Fetch the football page from the live API
  paddyterm dump FOOTBALL --source strands`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

func runDump(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := initLogging(cfg, false); err != nil {
		return err
	}
	defer logging.Sync()

	cat := catalog.Default()
	id, err := resolvePage(cat, args[0])
	if err != nil {
		return err
	}
	src, err := newSource(cfg, cat)
	if err != nil {
		return err
	}

	printer := ui.NewPrinter(cmd.OutOrStdout())
	page, err := src.LoadPage(id)
	if err != nil {
		printer.PrintError("load "+id, err, []string{
			"check the network connection",
			"check source.base_url in " + displayConfigPath(),
			"try --source fixtures",
		})
		return fmt.Errorf("failed to load page %s: %w", id, err)
	}

	label, _ := cat.Label(id)
	printer.PrintHeader(label, map[string]string{
		"Page":   id,
		"Source": cfg.Source.Mode,
		"Tabs":   fmt.Sprint(len(page.Tabs)),
	})
	printer.PrintPage(page, pane.FlattenTab)
	return nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		p, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		path = p
	}

	printer := ui.NewPrinter(cmd.OutOrStdout())
	if _, err := os.Stat(path); err == nil && !forceInit {
		if !ui.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Overwrite configuration", []string{path + " already exists"}) {
			printer.Println("Aborted.")
			return nil
		}
	}

	if err := config.NewConfig().SaveFile(path); err != nil {
		return err
	}
	printer.PrintSuccess("Configuration written", path)
	return nil
}

func displayConfigPath() string {
	if configPath != "" {
		return configPath
	}
	if p, err := config.GetConfigPath(); err == nil {
		return p
	}
	return "the config file"
}
