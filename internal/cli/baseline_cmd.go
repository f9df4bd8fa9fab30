package cli

import (
	"fmt"

	"github.com/alexanderramin/huddle/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newBaselineCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "baseline",
		Short: "Muestra el EPA medio de la liga y el tamaño de la base de datos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := app.Stats.Stats(cmd.Context())
			if err != nil {
				return fmt.Errorf("baseline: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStats(stats))
			return nil
		},
	}
}
