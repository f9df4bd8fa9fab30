package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/huddle/internal/cli/formatter"
	"github.com/alexanderramin/huddle/internal/contract"
	"github.com/alexanderramin/huddle/internal/intelligence"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	shellCmdTeams    = "/equipos"
	shellCmdGlossary = "/glosario"
	shellCmdHelp     = "/ayuda"
	shellCmdQuit     = "/salir"
)

var shellCommands = []string{shellCmdTeams, shellCmdGlossary, shellCmdHelp, shellCmdQuit}

// answerMsg carries the rendered answer to a question asked in the shell.
type answerMsg struct {
	output string
}

// shellModel is the bubbletea Model for the interactive question shell.
type shellModel struct {
	input textinput.Model
	width int

	ctx context.Context
	app *App

	// history is kept for the session only.
	history    []string
	historyIdx int

	// lastOutput is the most recent block printed above the prompt.
	lastOutput string

	// pending is set while a question is being answered.
	pending bool

	quitting bool
}

func newShellModel(ctx context.Context, app *App) shellModel {
	if ctx == nil {
		ctx = context.Background()
	}

	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.Placeholder = "¿Cómo le va a KC en 3er down con el pase?"
	ti.ShowSuggestions = true
	ti.CharLimit = 500
	ti.SetSuggestions(shellCommands)
	// Up/Down walk the history; suggestions cycle with ctrl+n / ctrl+p.
	ti.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	ti.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))

	return shellModel{
		input: ti,
		ctx:   ctx,
		app:   app,
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m shellModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.Println(formatter.FormatShellWelcome()),
	)
}

func (m shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len("huddle ❯ ") - 1
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyEnter:
			if m.pending {
				return m, nil
			}
			line := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if line == "" {
				return m, nil
			}
			m.addHistory(line)
			if !strings.HasPrefix(line, "/") {
				m.pending = true
				return m, m.askCmd(line)
			}
			output, cmd := m.execute(line)
			m.lastOutput = output
			var cmds []tea.Cmd
			if output != "" {
				cmds = append(cmds, tea.Println(output))
			}
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
			return m, tea.Batch(cmds...)

		case tea.KeyUp:
			m.historyUp()
			return m, nil

		case tea.KeyDown:
			m.historyDown()
			return m, nil
		}

	case answerMsg:
		m.pending = false
		m.lastOutput = msg.output
		return m, tea.Println(msg.output)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m shellModel) View() string {
	if m.quitting {
		return formatter.Dim("Hasta luego.") + "\n"
	}
	if m.pending {
		return formatter.StylePurple.Render("huddle") + " " + formatter.Dim("pensando…")
	}
	return formatter.StylePurple.Render("huddle") + " " + formatter.Dim("❯") + " " + m.input.View()
}

// ── commands ─────────────────────────────────────────────────────────────────

// execute runs one slash command and returns the text to print above the
// prompt.
func (m *shellModel) execute(line string) (string, tea.Cmd) {
	switch strings.ToLower(strings.Fields(line)[0]) {
	case shellCmdQuit:
		m.quitting = true
		return "", tea.Quit
	case shellCmdTeams:
		return formatter.FormatTeams(intelligence.Conferences()), nil
	case shellCmdGlossary:
		return formatter.RenderBox("Glosario", strings.TrimRight(intelligence.FormatGlossary(), "\n")), nil
	case shellCmdHelp:
		help := intelligence.FallbackHelp("")
		return formatter.FormatShellHelp() + "\n" + formatter.RenderMarkdown(help.ExamplesMarkdown()), nil
	default:
		return formatter.StyleYellow.Render(fmt.Sprintf("Comando desconocido: %s. Usa /ayuda.", line)), nil
	}
}

// askCmd answers question off the update loop.
func (m *shellModel) askCmd(question string) tea.Cmd {
	ctx, ask := m.ctx, m.app.Ask
	return func() tea.Msg {
		resp, err := ask.Ask(ctx, contract.NewAskRequest(question))
		if err != nil {
			return answerMsg{output: formatter.StyleRed.Render(fmt.Sprintf("Error: %v", err))}
		}
		return answerMsg{output: strings.TrimRight(formatter.FormatAskResponse(resp), "\n")}
	}
}

// ── history ──────────────────────────────────────────────────────────────────

func (m *shellModel) addHistory(line string) {
	if n := len(m.history); n > 0 && m.history[n-1] == line {
		m.historyIdx = n
		return
	}
	m.history = append(m.history, line)
	m.historyIdx = len(m.history)
}

func (m *shellModel) historyUp() {
	if m.historyIdx > 0 {
		m.historyIdx--
		m.input.SetValue(m.history[m.historyIdx])
		m.input.CursorEnd()
	}
}

func (m *shellModel) historyDown() {
	if m.historyIdx < len(m.history)-1 {
		m.historyIdx++
		m.input.SetValue(m.history[m.historyIdx])
		m.input.CursorEnd()
	} else {
		m.historyIdx = len(m.history)
		m.input.SetValue("")
	}
}
