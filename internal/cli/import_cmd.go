package cli

import (
	"fmt"

	"github.com/alexanderramin/huddle/internal/cli/formatter"
	"github.com/alexanderramin/huddle/internal/contract"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	var (
		replace bool
		yes     bool
	)

	cmd := &cobra.Command{
		Use:   "import <archivo>",
		Short: "Importa partidos y jugadas desde un archivo YAML o JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if replace && !yes && app.interactive() {
				ok, err := app.confirm("¿Borrar todos los partidos y jugadas antes de importar?")
				if err != nil {
					return fmt.Errorf("confirm: %w", err)
				}
				if !ok {
					fmt.Fprintln(out, formatter.Dim("Importación cancelada."))
					return nil
				}
			}

			result, err := app.Import.Import(cmd.Context(), contract.ImportRequest{
				Path:    args[0],
				Replace: replace,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(out, formatter.FormatImportResult(result))
			return nil
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "Borrar los datos existentes antes de importar")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "No pedir confirmación")
	return cmd
}
