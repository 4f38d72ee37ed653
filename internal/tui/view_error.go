package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/clinicon/clinicon-ai/internal/repl"
)

func (a *App) renderError(err error) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(colorError).
		Render(repl.ErrorPrefix + err.Error()))

	if suggestions := suggestionsFor(err.Error()); len(suggestions) > 0 {
		b.WriteString("\n")
		b.WriteString(styleSubtitle.Render(strings.Join(suggestions, "\n")))
	}

	return b.String()
}

// suggestionsFor derives hints from the error text.
func suggestionsFor(errMsg string) []string {
	var suggestions []string
	errLower := strings.ToLower(errMsg)

	switch {
	case strings.Contains(errLower, "api key") || strings.Contains(errLower, "status 401") || strings.Contains(errLower, "unauthorized"):
		suggestions = append(suggestions, "  OPENAI_API_KEY in der Umgebung oder in .env prüfen")
	case strings.Contains(errLower, "status 429") || strings.Contains(errLower, "rate limit"):
		suggestions = append(suggestions, "  Limit der API erreicht, später erneut versuchen")
	case strings.Contains(errLower, "connection") || strings.Contains(errLower, "connect") || strings.Contains(errLower, "no such host"):
		suggestions = append(suggestions, "  Internetverbindung und base_url prüfen")
	case strings.Contains(errLower, "json"):
		suggestions = append(suggestions, "  Befehl anders formulieren und erneut senden")
	}

	return suggestions
}
