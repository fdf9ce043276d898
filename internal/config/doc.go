// Package config provides user configuration management for paddyterm.
//
// This package manages a YAML-based configuration file that selects the
// content source (built-in fixtures or the live strands API), the HTTP and
// query options for that API, the page shown at startup and logging. The
// configuration follows OS-specific conventions for storage location.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/paddyterm/config.yaml or $HOME/.config/paddyterm/config.yaml
//   - macOS: $HOME/.config/paddyterm/config.yaml
//   - Windows: %LOCALAPPDATA%\paddyterm\config.yaml
//
// A missing file is not an error; Load returns the defaults.
//
// # Usage Example
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	if cfg.Source.Mode == config.ModeStrands {
//	    src := content.NewStrandsSource(cfg.Source.BaseURL, cfg.StrandsOptions())
//	    src.SetTimeout(cfg.Timeout())
//	}
//
// # File Format
//
//	version: 1
//	source:
//	  mode: fixtures
//	  base_url: https://strands.paddypower.com/sdspp
//	  timeout_seconds: 10
//	  strands:
//	    app_key: vsd0Rm5ph2sS2uaK
//	    currency: GBP
//	ui:
//	  start_page: HOMEPAGE
//	log:
//	  level: ""
//	  file: ""
package config
