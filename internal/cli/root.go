package cli

import (
	"github.com/alexanderramin/huddle/internal/config"
	"github.com/alexanderramin/huddle/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// annotationNoStore marks commands that run without opening the database.
const annotationNoStore = "huddle/no-store"

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Ask    service.AskService
	Stats  service.StatsService
	Import service.ImportService

	// Bootstrap wires the services above from the parsed persistent flags.
	// It runs once before any command that needs the store; nil leaves the
	// App as constructed, which is how tests inject in-memory services.
	Bootstrap func(flags *pflag.FlagSet) error

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool

	// Confirm asks a yes/no question. Defaults to a huh confirmation.
	Confirm func(title string) (bool, error)
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) confirm(title string) (bool, error) {
	if a.Confirm != nil {
		return a.Confirm(title)
	}
	return huhConfirm(title)
}

// NewRootCmd creates the top-level "huddle" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "huddle",
		Short:         "Preguntas tácticas e históricas sobre la NFL",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Bootstrap == nil || cmd.Annotations[annotationNoStore] == "true" {
				return nil
			}
			return app.Bootstrap(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runShell(cmd, app)
			}
			return cmd.Help()
		},
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newAskCmd(app),
		newShellCmd(app),
		newTeamsCmd(),
		newBaselineCmd(app),
		newImportCmd(app),
	)

	return root
}
