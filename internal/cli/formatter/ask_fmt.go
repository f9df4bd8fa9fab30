package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/huddle/internal/analytics"
	"github.com/alexanderramin/huddle/internal/contract"
	"github.com/alexanderramin/huddle/internal/domain"
	"github.com/alexanderramin/huddle/internal/intelligence"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const (
	chartWidth = 30
	cardWidth  = 20

	msgNoPlays = "No encontré jugadas que coincidan exactamente con esa combinación de criterios."
	msgNoGames = "No encontré partidos terminados para %s."
)

// FormatAskResponse renders the full answer: diagnostics first, then the
// body for the response outcome.
func FormatAskResponse(resp *contract.AskResponse) string {
	var b strings.Builder
	b.WriteString(FormatDiagnostics(resp.Diagnostics))
	if resp.Empty() {
		b.WriteString(FormatNoResults(resp.Plan))
		return b.String()
	}

	switch resp.Outcome {
	case contract.OutcomeHistorical:
		b.WriteString(FormatHistorical(resp.Plan.Historical.Teams, resp.Games))
	case contract.OutcomeTactical:
		b.WriteString(FormatTactical(resp.Summary))
	case contract.OutcomeFallback:
		b.WriteString(FormatFallback(resp.Help))
	}
	return b.String()
}

// FormatDiagnostics renders user-visible degradations in red, one per line.
func FormatDiagnostics(diags []string) string {
	var b strings.Builder
	for _, d := range diags {
		b.WriteString(StyleRed.Render("✖ "+d) + "\n")
	}
	return b.String()
}

func teamsLabel(teams []string) string {
	return strings.Join(teams, " vs ")
}

// FormatHistorical renders recent results, newest first. The winner of each
// game is bold.
func FormatHistorical(teams []string, games []domain.GameResult) string {
	var b strings.Builder
	b.WriteString(Heading("Últimos resultados de "+teamsLabel(teams)) + "\n")
	for _, g := range games {
		winner := g.Winner()
		b.WriteString(fmt.Sprintf("  %s: %s %s - %s %s\n",
			Bold(fmt.Sprintf("Semana %d (%d)", g.Week, g.Season)),
			gameTeam(g.HomeTeam, winner),
			Bold(Score(g.HomeScore)),
			Bold(Score(g.AwayScore)),
			gameTeam(g.AwayTeam, winner),
		))
	}
	return b.String()
}

func gameTeam(code, winner string) string {
	if code == winner {
		return Bold(code)
	}
	return code
}

// FormatTactical renders the metric cards, the yardage distribution and the
// comparison against the league.
func FormatTactical(s *analytics.TacticalSummary) string {
	var b strings.Builder

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		RenderCard("Eficiencia (EPA)", fmt.Sprintf("%.3f", s.MeanEPA), cardWidth),
		RenderCard("Tasa de Éxito", fmt.Sprintf("%.1f%%", s.SuccessRate), cardWidth),
		RenderCard("Touchdowns", fmt.Sprintf("%d", s.Touchdowns), cardWidth),
	)
	b.WriteString(cards + "\n")
	b.WriteString(Dim("Jugadas analizadas: ") + Count(s.Plays) + "\n\n")

	b.WriteString(FormatYardage(s.Yardage) + "\n")
	b.WriteString(FormatComparison(s.Comparison))
	return b.String()
}

// FormatYardage renders the yards-gained distribution as a bar chart scaled
// to the fullest bucket.
func FormatYardage(buckets []analytics.YardageBucket) string {
	var b strings.Builder
	b.WriteString(Heading("Distribución de yardaje") + "\n")

	labelWidth, most := 0, 0
	for _, bk := range buckets {
		labelWidth = max(labelWidth, lipgloss.Width(bk.Label))
		most = max(most, bk.Count)
	}
	for _, bk := range buckets {
		frac := 0.0
		if most > 0 {
			frac = float64(bk.Count) / float64(most)
		}
		b.WriteString(fmt.Sprintf("  %s  %s %s\n",
			padRight(bk.Label, labelWidth),
			RenderBar(frac, chartWidth, StyleYards),
			Count(bk.Count),
		))
	}
	return b.String()
}

// FormatComparison renders the selection and league bars, scaled to the
// larger magnitude, followed by the finding line.
func FormatComparison(c analytics.Comparison) string {
	var b strings.Builder
	b.WriteString(Heading("Comparativa vs. promedio de la liga") + "\n")

	scale := math.Max(math.Abs(c.Selection), math.Abs(c.League))
	rows := []struct {
		label string
		value float64
		style lipgloss.Style
	}{
		{"Selección Actual", c.Selection, DeltaStyle(c.AboveLeague)},
		{"Promedio NFL", c.League, StyleBlue},
	}
	for _, r := range rows {
		frac := 0.0
		if scale > 0 {
			frac = math.Abs(r.value) / scale
		}
		b.WriteString(fmt.Sprintf("  %s  %s %s\n",
			padRight(r.label, lipgloss.Width("Selección Actual")),
			RenderBar(frac, chartWidth, r.style),
			SignedEPA(r.value),
		))
	}

	b.WriteString("\n" + FindingLine(c) + "\n")
	return b.String()
}

// FindingLine states how the selection compares with the league. Equal
// values read as "below".
func FindingLine(c analytics.Comparison) string {
	if c.AboveLeague {
		return StyleGreen.Render("Hallazgo: ") +
			fmt.Sprintf("El rendimiento es %.3f puntos superior a la media de la liga.", c.Selection-c.League)
	}
	return StyleYellow.Render("Nota: ") +
		fmt.Sprintf("El rendimiento está %.3f puntos por debajo de la media.", c.League-c.Selection)
}

// FormatNoResults renders the empty-result message for the plan kind.
func FormatNoResults(plan intelligence.DispatchPlan) string {
	if plan.Kind == intelligence.PlanHistorical && plan.Historical != nil {
		return StyleYellow.Render(fmt.Sprintf(msgNoGames, teamsLabel(plan.Historical.Teams))) + "\n"
	}
	return StyleYellow.Render(msgNoPlays) + "\n"
}

// FormatFallback renders the not-understood answer with the example
// questions as markdown and any glossary hits.
func FormatFallback(h *intelligence.HelpAnswer) string {
	var b strings.Builder
	b.WriteString(StyleRed.Render(h.Answer) + "\n")
	b.WriteString(RenderMarkdown(h.ExamplesMarkdown()))
	if len(h.Glossary) > 0 {
		b.WriteString(Header("Glosario") + "\n")
		for _, g := range h.Glossary {
			b.WriteString("  " + Dim(g) + "\n")
		}
	}
	return b.String()
}

// RenderMarkdown renders md for the terminal, returning md unchanged if the
// renderer cannot be built.
func RenderMarkdown(md string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

// FormatEntities renders an extracted record and the plan chosen for it.
func FormatEntities(rec intelligence.EntityRecord, plan intelligence.DispatchPlan) string {
	var b strings.Builder
	b.WriteString(Heading("Entidades") + "\n")

	teams := "—"
	if len(rec.Teams) > 0 {
		teams = strings.Join(rec.Teams, ", ")
	}
	year := "—"
	if rec.Year != nil {
		year = fmt.Sprintf("%d", *rec.Year)
	}
	home := "no"
	if rec.HomeContext {
		home = "sí"
	}

	rows := [][2]string{
		{"Equipos", teams},
		{"Jugada", orDash(string(rec.PlayType))},
		{"Situación", SituationLabel(rec.Situation)},
		{"Año", year},
		{"Intención", string(rec.Intent)},
		{"En casa", home},
	}
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim(padRight(r[0]+":", 11)), r[1]))
	}

	b.WriteString(fmt.Sprintf("  %s %s\n", Dim(padRight("Plan:", 11)), PlanLabel(plan)))
	return b.String()
}

// SituationLabel renders a situation in Spanish.
func SituationLabel(s domain.Situation) string {
	if s.IsRedZone() {
		return "zona roja"
	}
	if d, ok := s.Down(); ok {
		return fmt.Sprintf("%d.º down", d)
	}
	return "—"
}

// PlanLabel summarises a dispatch plan on one line.
func PlanLabel(plan intelligence.DispatchPlan) string {
	switch plan.Kind {
	case intelligence.PlanHistorical:
		return fmt.Sprintf("histórico (%s, límite %d)", teamsLabel(plan.Historical.Teams), plan.Historical.Limit)
	case intelligence.PlanTactical:
		f := plan.Tactical
		var parts []string
		if f.Season != nil {
			parts = append(parts, fmt.Sprintf("temporada %d", *f.Season))
		}
		if f.Team != "" {
			parts = append(parts, f.Team)
		}
		if f.PlayType != "" {
			parts = append(parts, string(f.PlayType))
		}
		if f.Situation.IsSet() {
			parts = append(parts, SituationLabel(f.Situation))
		}
		return fmt.Sprintf("táctico (%s)", strings.Join(parts, ", "))
	default:
		return "ambiguo"
	}
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

func padRight(s string, width int) string {
	pad := width - lipgloss.Width(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}
