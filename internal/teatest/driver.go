// Package teatest drives bubbletea models synchronously in tests.
//
// Update is called directly and every returned Cmd is run to completion
// before the next input, so assertions never race a tea.Program goroutine.
// Cmds that block (cursor blink timers) are abandoned after a short timeout.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth bounds how many chained Cmds one input may trigger.
const MaxDrainDepth = 100

// DefaultCmdTimeout separates instant Cmds (service calls, print messages)
// from timer-driven ones.
const DefaultCmdTimeout = 10 * time.Millisecond

// Driver feeds input to a tea.Model and drains the resulting Cmds.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once tea.Quit has been returned by the model.
	Quitting bool

	// Seen lists the type of every message fed back into Update while
	// draining, in order.
	Seen []string

	timeout time.Duration
}

// Option configures a Driver.
type Option func(*Driver)

// WithSize sends a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.Model, _ = d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// WithCmdTimeout overrides DefaultCmdTimeout.
func WithCmdTimeout(timeout time.Duration) Option {
	return func(d *Driver) {
		d.timeout = timeout
	}
}

// New wraps model. Call DrainInit to run the model's Init command.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model, timeout: DefaultCmdTimeout}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DrainInit runs Init and drains what it returns.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drain(d.Model.Init(), 0)
}

// Send feeds msg through Update and drains the result. Input after quit is
// dropped, the way tea.Program stops reading.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.drain(cmd, 0)
}

// ── keyboard ─────────────────────────────────────────────────────────────────

// Key sends a key of the given type.
func (d *Driver) Key(k tea.KeyType) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: k})
}

// Type sends s one rune at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// Submit types line and presses Enter.
func (d *Driver) Submit(line string) {
	d.T.Helper()
	d.Type(line)
	d.Key(tea.KeyEnter)
}

func (d *Driver) PressEnter() { d.T.Helper(); d.Key(tea.KeyEnter) }
func (d *Driver) PressUp()    { d.T.Helper(); d.Key(tea.KeyUp) }
func (d *Driver) PressDown()  { d.T.Helper(); d.Key(tea.KeyDown) }
func (d *Driver) PressCtrlC() { d.T.Helper(); d.Key(tea.KeyCtrlC) }

// View returns the model's current rendering.
func (d *Driver) View() string {
	return d.Model.View()
}

// ── draining ─────────────────────────────────────────────────────────────────

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest: drain depth limit (%d) reached", MaxDrainDepth)
		return
	}

	msg := d.run(cmd)
	if msg == nil || isBlink(msg) {
		return
	}

	switch m := msg.(type) {
	case tea.BatchMsg:
		for _, sub := range m {
			d.drain(sub, depth+1)
		}
		return
	case tea.QuitMsg:
		d.Quitting = true
	}

	d.Seen = append(d.Seen, fmt.Sprintf("%T", msg))
	var next tea.Cmd
	d.Model, next = d.Model.Update(msg)
	if d.Quitting {
		return
	}
	d.drain(next, depth+1)
}

// run executes cmd, giving up after the driver timeout.
func (d *Driver) run(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() {
		ch <- cmd()
	}()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(d.timeout):
		return nil
	}
}

// isBlink matches the unexported cursor blink messages from bubbles.
func isBlink(msg tea.Msg) bool {
	return strings.Contains(strings.ToLower(fmt.Sprintf("%T", msg)), "blink")
}
