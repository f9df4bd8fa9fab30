package cli

import (
	"fmt"

	"github.com/alexanderramin/huddle/internal/cli/formatter"
	"github.com/alexanderramin/huddle/internal/intelligence"
	"github.com/spf13/cobra"
)

func newTeamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "teams",
		Aliases:     []string{"equipos"},
		Short:       "Lista los equipos por conferencia",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoStore: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTeams(intelligence.Conferences()))
			return nil
		},
	}
}
