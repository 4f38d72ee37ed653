package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderPrompt() string {
	var b strings.Builder

	title := styleTitle.Render("Clinicon Assistent")
	model := styleSubtitle.Render(a.modelDisplayName())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Bottom, title, "  ", model))
	b.WriteString("\n")

	if a.state.pending {
		line := fmt.Sprintf("%s %s", a.state.spinner.View(),
			styleCommand.Render("> "+truncate(a.state.pendingText, 60)))
		b.WriteString(line)
		b.WriteString("\n")
	} else {
		width := 72
		if a.width > 0 {
			width = min(72, a.width-2)
		}
		inputBox := styleBox.Copy().
			Width(width).
			BorderForeground(colorSecondary).
			Render(a.state.input.View())
		b.WriteString(inputBox)
		b.WriteString("\n")
	}

	var status string
	if a.state.pending {
		status = styleStatusBar.Render("Anfrage läuft...  [Esc] Abbrechen")
	} else {
		parts := []string{"[Enter] Senden", "exit/quit Beenden", "[Esc] Abbrechen"}
		if a.state.count > 0 {
			parts = append([]string{fmt.Sprintf("%d Befehle", a.state.count)}, parts...)
		}
		status = styleStatusBar.Render(strings.Join(parts, "  "))
	}
	b.WriteString(status)

	return b.String()
}

func (a *App) modelDisplayName() string {
	if a.state.providerName == "" || strings.Contains(a.state.model, a.state.providerName) {
		return a.state.model
	}
	return fmt.Sprintf("%s via %s", a.state.model, a.state.providerName)
}
