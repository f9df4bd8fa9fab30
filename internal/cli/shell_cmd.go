package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newShellCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Sesión interactiva de preguntas",
		Long: `Abre una sesión interactiva: cada línea es una pregunta. Los comandos
/equipos, /ayuda y /salir están disponibles en cualquier momento.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, app)
		},
	}
}

func runShell(cmd *cobra.Command, app *App) error {
	p := tea.NewProgram(
		newShellModel(cmd.Context(), app),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("shell: %w", err)
	}
	return nil
}
