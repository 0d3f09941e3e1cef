package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/roster/internal/cli/output"
)

const initTemplate = "default"

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a starter configuration and sample data",
		Long: `Initialize a directory for Roster.

This creates:
  - roster.yaml configuration file
  - employees.csv sample employee data to import`,
		Example: `  # Initialize in current directory
  roster init

  # Initialize in a new directory
  roster init my-team

  # Force overwrite existing files
  roster init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			cc := NewCommandContext(cmd)
			cc.Logger.Debug("initializing directory", "dir", dir, "force", force)
			return runInit(cc.Renderer, initTemplate, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")

	return cmd
}

func runInit(r *output.Renderer, template, dir string, force bool) error {
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	configPath := filepath.Join(dir, "roster.yaml")
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("roster.yaml already exists. Use --force to overwrite")
	}

	written, err := copyTemplate(template, dir, force)
	if err != nil {
		return fmt.Errorf("failed to initialize directory: %w", err)
	}

	files, err := listTemplateFiles(template)
	if err != nil {
		return fmt.Errorf("failed to list template files: %w", err)
	}
	for _, f := range files {
		if slices.Contains(written, f) {
			r.Success("  created " + f)
		} else {
			r.Warning("  kept existing " + f)
		}
	}

	r.Println("")
	r.Success("Roster initialized!")
	r.Println("")
	r.Info("Next steps:")
	r.Println("  1. Run 'roster' to open the menu")
	r.Println("  2. Choose 1 and enter " + filepath.Join(dir, "employees.csv") + " to import the sample data")
	r.Println("  3. Edit roster.yaml to change colors, table style or export headers")

	return nil
}
