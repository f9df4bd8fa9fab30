package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/huddle/internal/contract"
	"github.com/alexanderramin/huddle/internal/intelligence"
)

// FormatTeams renders the conference rosters side by side.
func FormatTeams(rosters []intelligence.ConferenceRoster) string {
	headers := make([]string, len(rosters))
	longest := 0
	for i, r := range rosters {
		headers[i] = string(r.Conference)
		longest = max(longest, len(r.Teams))
	}

	rows := make([][]string, longest)
	for i := range rows {
		rows[i] = make([]string, len(rosters))
		for j, r := range rosters {
			if i < len(r.Teams) {
				rows[i][j] = r.Teams[i]
			}
		}
	}
	return RenderTable(headers, rows)
}

// FormatStats renders the store summary.
func FormatStats(s *contract.StoreStats) string {
	var b strings.Builder
	b.WriteString(Heading("Base de datos") + "\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim(padRight("Partidos:", 14)), Count(s.Games)))
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim(padRight("Jugadas:", 14)), Count(s.Plays)))
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim(padRight("EPA de liga:", 14)), SignedEPA(s.Baseline)))
	return b.String()
}

// FormatImportResult renders the outcome of an import.
func FormatImportResult(r *contract.ImportResult) string {
	var b strings.Builder
	if r.Replaced {
		b.WriteString(StyleYellow.Render("Datos anteriores reemplazados.") + "\n")
	}
	b.WriteString(StyleGreen.Render("✔ Importación completada") + "\n")
	b.WriteString(fmt.Sprintf("  %s %s %s\n", Dim(padRight("Partidos:", 10)), Count(r.GameCount), Dim(fmt.Sprintf("(total %s)", Count(r.TotalGames)))))
	b.WriteString(fmt.Sprintf("  %s %s %s\n", Dim(padRight("Jugadas:", 10)), Count(r.PlayCount), Dim(fmt.Sprintf("(total %s)", Count(r.TotalPlays)))))
	return b.String()
}
