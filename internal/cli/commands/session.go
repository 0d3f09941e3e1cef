package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/roster/internal/console"
)

// RunSession runs the interactive menu over the command's input and output.
func RunSession(cmd *cobra.Command) error {
	cc := NewCommandContext(cmd)

	in, err := console.NewLineReader(cmd.InOrStdin(), cmd.OutOrStdout(), cc.Cfg.HistoryFile)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	cc.Logger.Debug("starting session",
		"color", cc.Cfg.Color,
		"table_style", cc.Cfg.TableStyle,
		"export_header", cc.Cfg.ExportHeader,
	)

	ctrl := console.New(console.Options{
		Input:        in,
		Renderer:     cc.Renderer,
		Logger:       cc.Logger,
		ExportHeader: cc.Cfg.ExportHeader,
	})
	return ctrl.Run(cmd.Context())
}
