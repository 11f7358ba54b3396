package ui

import tea "github.com/charmbracelet/bubbletea"

// Harness drives the UI model programmatically for integration tests. Every
// state change happens synchronously inside Update, so returned commands
// carry only cursor blink ticks and quit signals and are discarded.
type Harness struct {
	model *Model
}

// NewHarness creates a harness for the provided model and runs its Init so
// the initial data load has happened before the first Send.
func NewHarness(model *Model) *Harness {
	if model != nil {
		model.Init()
	}
	return &Harness{model: model}
}

// Send routes a message through the model.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, _ := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
}

// SendKey sends a plain character key press.
func (h *Harness) SendKey(runes ...rune) {
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: runes})
}

// SendSpecial sends a named key press such as tea.KeyTab or tea.KeyEnter.
func (h *Harness) SendSpecial(key tea.KeyType) {
	h.Send(tea.KeyMsg{Type: key})
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
