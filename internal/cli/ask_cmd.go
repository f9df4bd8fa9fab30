package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/huddle/internal/cli/formatter"
	"github.com/alexanderramin/huddle/internal/contract"
	"github.com/spf13/cobra"
)

func newAskCmd(app *App) *cobra.Command {
	var showEntities bool

	cmd := &cobra.Command{
		Use:   `ask "<pregunta>"`,
		Short: "Responde una pregunta en lenguaje natural",
		Long: `Analiza una pregunta en español y responde con los últimos resultados
de un equipo o con las métricas tácticas de sus jugadas.`,
		Example: `  huddle ask "¿Cómo le va a los Cowboys con el pase en zona roja?"
  huddle ask "¿Quién ganó el último Steelers vs Ravens?" --entities`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.Join(args, " ")

			stop := func() {}
			if app.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Analizando...")
			}
			resp, err := app.Ask.Ask(cmd.Context(), contract.NewAskRequest(question))
			stop()
			if err != nil {
				return fmt.Errorf("ask: %w", err)
			}

			out := cmd.OutOrStdout()
			if showEntities {
				fmt.Fprintln(out, formatter.FormatEntities(resp.Record, resp.Plan))
			}
			fmt.Fprint(out, formatter.FormatAskResponse(resp))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showEntities, "entities", false, "Mostrar las entidades extraídas y el plan elegido")
	return cmd
}
