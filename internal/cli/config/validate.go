package config

import (
	"fmt"

	"github.com/leapstack-labs/roster/internal/cli/output"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch output.ColorMode(c.Color) {
	case output.ColorAuto, output.ColorAlways, output.ColorNever:
	default:
		return fmt.Errorf("invalid color %q: expected auto, always or never", c.Color)
	}

	switch output.TableStyle(c.TableStyle) {
	case output.TablePlain, output.TableBox:
	default:
		return fmt.Errorf("invalid table_style %q: expected plain or box", c.TableStyle)
	}
	return nil
}
