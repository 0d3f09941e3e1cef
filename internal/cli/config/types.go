// Package config provides configuration management for the roster CLI.
//
// Values are layered with koanf, lowest to highest precedence: built-in
// defaults, a YAML file (roster.yaml), ROSTER_* environment variables and
// explicitly set command-line flags.
package config

import "github.com/leapstack-labs/roster/internal/cli/output"

// Config holds all CLI configuration options.
type Config struct {
	Color        string `koanf:"color"`
	TableStyle   string `koanf:"table_style"`
	ExportHeader bool   `koanf:"export_header"`
	HistoryFile  string `koanf:"history_file"`
	Verbose      bool   `koanf:"verbose"`
}

// Default configuration values.
const (
	DefaultColor       = string(output.ColorAuto)
	DefaultTableStyle  = string(output.TablePlain)
	DefaultHistoryFile = ""
	EnvPrefix          = "ROSTER_"
)

// ConfigFileNames are the file names searched in the working directory when
// no explicit config file is given.
var ConfigFileNames = []string{"roster.yaml", "roster.yml"}

// OutputOptions converts the rendering settings for output.NewRenderer.
func (c *Config) OutputOptions() output.Options {
	return output.Options{
		Color: output.ColorMode(c.Color),
		Table: output.TableStyle(c.TableStyle),
	}
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		Color:       DefaultColor,
		TableStyle:  DefaultTableStyle,
		HistoryFile: DefaultHistoryFile,
	}
}
