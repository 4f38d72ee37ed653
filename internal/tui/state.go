package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
)

type state struct {
	// Provider info for the header
	providerName string
	model        string

	// Input
	input textinput.Model

	// Pending request; at most one at a time
	pending     bool
	pendingText string
	spinner     spinner.Model

	// Number of finished exchanges
	count int
}

// exchange is one command and what came back for it.
type exchange struct {
	command string
	reply   any
	err     error

	label        string
	schemaIssues int
}

func newState(providerName, model string) *state {
	input := textinput.New()
	input.Prompt = "📝 "
	input.Placeholder = "Clinicon-Befehl (exit zum Beenden)"
	input.CharLimit = 0
	input.Width = 60
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styleSpinner

	return &state{
		providerName: providerName,
		model:        model,
		input:        input,
		spinner:      sp,
	}
}
