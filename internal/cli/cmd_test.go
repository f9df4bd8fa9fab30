package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/alexanderramin/huddle/internal/domain"
	"github.com/alexanderramin/huddle/internal/repository"
	"github.com/alexanderramin/huddle/internal/service"
	"github.com/alexanderramin/huddle/internal/testutil"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
// The store holds two DAL/PHI games and three DAL plays.
func testApp(t *testing.T) *App {
	t.Helper()
	conn := testutil.NewTestDB(t)
	ctx := context.Background()

	games := repository.NewSQLiteGameRepo(conn)
	plays := repository.NewSQLitePlayRepo(conn)

	g1 := testutil.NewTestGame("DAL", "PHI", "2023-12-10", testutil.WithScore(13, 33), testutil.WithWeek(14))
	g2 := testutil.NewTestGame("PHI", "DAL", "2024-11-10", testutil.WithScore(34, 6), testutil.WithWeek(10))
	require.NoError(t, games.Create(ctx, g1))
	require.NoError(t, games.Create(ctx, g2))
	for _, p := range []*domain.Play{
		testutil.NewTestPlay(g1.ID, "DAL", 0.8, testutil.WithYardline(12), testutil.WithTouchdown(), testutil.WithYards(12)),
		testutil.NewTestPlay(g1.ID, "DAL", -0.4, testutil.WithYardline(18), testutil.WithYards(-3)),
		testutil.NewTestPlay(g2.ID, "DAL", 0.2, testutil.WithDown(3), testutil.WithPlayType("run")),
	} {
		require.NoError(t, plays.Create(ctx, p))
	}

	baseline := service.NewBaselineCache(plays)
	return &App{
		Ask:    service.NewAskService(games, plays, baseline),
		Stats:  service.NewStatsService(games, plays, baseline),
		Import: service.NewImportService(games, testutil.NewTestUoW(conn)),
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return stripANSI(buf.String()), err
}

// --- root ---

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, output, "huddle")
	assert.Contains(t, output, "ask")
	assert.Contains(t, output, "import")
}

func TestRootCmd_BootstrapReceivesFlags(t *testing.T) {
	app := testApp(t)
	var gotDB string
	calls := 0
	app.Bootstrap = func(flags *pflag.FlagSet) error {
		calls++
		gotDB = flags.Lookup("db").Value.String()
		return nil
	}

	_, err := executeCmd(t, app, "baseline", "--db", "/tmp/otra.db")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "/tmp/otra.db", gotDB)
}

func TestRootCmd_BootstrapSkippedForTeams(t *testing.T) {
	app := testApp(t)
	app.Bootstrap = func(*pflag.FlagSet) error {
		t.Fatal("bootstrap must not run for teams")
		return nil
	}

	_, err := executeCmd(t, app, "teams")
	require.NoError(t, err)
}

func TestRootCmd_BootstrapErrorStopsCommand(t *testing.T) {
	app := testApp(t)
	app.Bootstrap = func(*pflag.FlagSet) error {
		return assert.AnError
	}

	_, err := executeCmd(t, app, "ask", "Resultado Cowboys vs Eagles")
	assert.ErrorIs(t, err, assert.AnError)
}

// --- ask ---

func TestAskCmd_Historical(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "ask", "Resultado Cowboys vs Eagles")
	require.NoError(t, err)
	assert.Contains(t, output, "Últimos resultados de DAL vs PHI")
	assert.Contains(t, output, "Semana 10 (2024): PHI 34 - 6 DAL")
	assert.Contains(t, output, "Semana 14 (2023): DAL 13 - 33 PHI")
	assert.Less(t,
		bytes.Index([]byte(output), []byte("Semana 10")),
		bytes.Index([]byte(output), []byte("Semana 14")),
		"newest game first")
}

func TestAskCmd_Tactical(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "ask", "¿Cómo le va a los Cowboys con el pase en zona roja?")
	require.NoError(t, err)
	assert.Contains(t, output, "Eficiencia (EPA)")
	assert.Contains(t, output, "Jugadas analizadas: 2")
	assert.Contains(t, output, "Distribución de yardaje")
	assert.Contains(t, output, "Comparativa vs. promedio de la liga")
}

func TestAskCmd_JoinsArgs(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "ask", "Resultado", "Cowboys", "vs", "Eagles")
	require.NoError(t, err)
	assert.Contains(t, output, "Últimos resultados de DAL vs PHI")
}

func TestAskCmd_NoResults(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "ask", "Jets en 4to down")
	require.NoError(t, err)
	assert.Contains(t, output, "No encontré jugadas que coincidan exactamente con esa combinación de criterios.")
}

func TestAskCmd_Fallback(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "ask", "Hola, ¿qué tal?")
	require.NoError(t, err)
	assert.Contains(t, output, "No estoy seguro de qué me preguntas.")
	assert.Contains(t, output, "Cowboys")
}

func TestAskCmd_Entities(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "ask", "--entities", "¿Cómo le va a los Cowboys con el pase en zona roja?")
	require.NoError(t, err)
	assert.Contains(t, output, "Equipos:    DAL")
	assert.Contains(t, output, "táctico (DAL, pass, zona roja)")
	assert.Contains(t, output, "Eficiencia (EPA)")
}

func TestAskCmd_RequiresQuestion(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "ask")
	assert.Error(t, err)
}

// --- teams / baseline ---

func TestTeamsCmd(t *testing.T) {
	output, err := executeCmd(t, &App{}, "teams")
	require.NoError(t, err)
	assert.Contains(t, output, "AFC  NFC")
	assert.Contains(t, output, "KC   CAR")
}

func TestTeamsCmd_SpanishAlias(t *testing.T) {
	output, err := executeCmd(t, &App{}, "equipos")
	require.NoError(t, err)
	assert.Contains(t, output, "AFC")
}

func TestBaselineCmd(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "baseline")
	require.NoError(t, err)
	assert.Contains(t, output, "Partidos:      2")
	assert.Contains(t, output, "Jugadas:       3")
	assert.Contains(t, output, "EPA de liga:   +0.200")
}

// --- import ---

const importYAML = `games:
  - game_id: 2023_01_DET_KC
    season: 2023
    week: 1
    gameday: "2023-09-07"
    home_team: KC
    away_team: DET
    home_score: 20
    away_score: 21
plays:
  - game_id: 2023_01_DET_KC
    posteam: KC
    down: 3
    play_type: pass
    yards_gained: 12
    touchdown: false
    epa: 0.84
    yardline_100: 45
`

func writeImportFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestImportCmd_Appends(t *testing.T) {
	app := testApp(t)
	path := writeImportFile(t, importYAML)

	output, err := executeCmd(t, app, "import", path)
	require.NoError(t, err)
	assert.Contains(t, output, "✔ Importación completada")
	assert.Contains(t, output, "(total 3)")
	assert.Contains(t, output, "(total 4)")
	assert.NotContains(t, output, "reemplazados")
}

func TestImportCmd_ReplaceNonInteractiveSkipsConfirm(t *testing.T) {
	app := testApp(t)
	app.Confirm = func(string) (bool, error) {
		t.Fatal("confirm must not be asked without a terminal")
		return false, nil
	}
	path := writeImportFile(t, importYAML)

	output, err := executeCmd(t, app, "import", path, "--replace")
	require.NoError(t, err)
	assert.Contains(t, output, "Datos anteriores reemplazados.")
	assert.Contains(t, output, "(total 1)")
}

func TestImportCmd_ReplaceDeclined(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return true }
	asked := ""
	app.Confirm = func(title string) (bool, error) {
		asked = title
		return false, nil
	}
	path := writeImportFile(t, importYAML)

	output, err := executeCmd(t, app, "import", path, "--replace")
	require.NoError(t, err)
	assert.NotEmpty(t, asked)
	assert.Contains(t, output, "Importación cancelada.")

	stats, err := app.Stats.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Games)
}

func TestImportCmd_ReplaceWithYes(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return true }
	app.Confirm = func(string) (bool, error) {
		t.Fatal("--yes must skip the confirmation")
		return false, nil
	}
	path := writeImportFile(t, importYAML)

	_, err := executeCmd(t, app, "import", path, "--replace", "--yes")
	require.NoError(t, err)

	stats, err := app.Stats.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Games)
	assert.Equal(t, 1, stats.Plays)
}

func TestImportCmd_InvalidFile(t *testing.T) {
	app := testApp(t)
	path := writeImportFile(t, `games:
  - game_id: x
    season: 2023
    week: 1
    gameday: "2023-09-07"
    home_team: KC
    away_team: KC
`)

	_, err := executeCmd(t, app, "import", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid dataset")
}

func TestImportCmd_MissingFile(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "import", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading import file")
}
