package cli

import (
	"fmt"

	"github.com/alexanderramin/iamonit/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	var scope scopeFlags

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show completion and deadline counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := scope.statsRequest(cmd.Flags(), app.today())
			summary, err := app.Stats.Summary(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSummary(summary))
			return nil
		},
	}

	scope.register(cmd.Flags())

	return cmd
}
