// Package testing provides test utilities for TUI components.
package testing

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// defaultCommandTimeout bounds how long a command may run before it is
// treated as a timer and dropped.
const defaultCommandTimeout = 50 * time.Millisecond

// TestRenderer drives a Bubble Tea model without a terminal. Commands
// returned by Update are run inline and their messages fed back, the way
// the program loop would.
type TestRenderer struct {
	// Output contains the last rendered view
	Output string

	// Messages contains every message delivered to the model
	Messages []tea.Msg

	// CommandTimeout bounds each command; ticks and blinks never finish in time
	CommandTimeout time.Duration

	// UpdateCount tracks how many times Update was called
	UpdateCount int

	// Quit is set once the model asked the program to exit
	Quit bool
}

// NewTestRenderer creates a new test renderer.
func NewTestRenderer() *TestRenderer {
	return &TestRenderer{
		Messages:       make([]tea.Msg, 0),
		CommandTimeout: defaultCommandTimeout,
	}
}

// Render renders a component and captures its output.
func (r *TestRenderer) Render(model tea.Model) string {
	r.Output = model.View()
	return r.Output
}

// Update sends a single message to the model without running the returned command.
func (r *TestRenderer) Update(model tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	r.Messages = append(r.Messages, msg)
	r.UpdateCount++

	newModel, cmd := model.Update(msg)
	r.Output = newModel.View()
	return newModel, cmd
}

// Send delivers msg and then drains the resulting commands until the model
// settles.
func (r *TestRenderer) Send(model tea.Model, msg tea.Msg) tea.Model {
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		if _, ok := next.(tea.QuitMsg); ok {
			r.Quit = true
			continue
		}

		var cmd tea.Cmd
		model, cmd = r.Update(model, next)
		queue = append(queue, r.run(cmd)...)
	}
	return model
}

// run executes cmd, expanding batches. Commands that outlive the timeout are
// dropped.
func (r *TestRenderer) run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(r.CommandTimeout):
		return nil
	}

	switch msg := msg.(type) {
	case nil:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, r.run(c)...)
		}
		return out
	default:
		return []tea.Msg{msg}
	}
}

// StripANSI removes ANSI escape codes from the output for content-only testing.
func (r *TestRenderer) StripANSI() string {
	return StripANSI(r.Output)
}

// Lines returns the output split by newlines.
func (r *TestRenderer) Lines() []string {
	return strings.Split(r.Output, "\n")
}

// Reset clears all captured data.
func (r *TestRenderer) Reset() {
	r.Output = ""
	r.Messages = nil
	r.UpdateCount = 0
	r.Quit = false
}
