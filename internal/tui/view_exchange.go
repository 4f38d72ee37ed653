package tui

import (
	"fmt"
	"strings"

	"github.com/clinicon/clinicon-ai/internal/repl"
)

// renderExchange draws a finished command for the scrollback above the prompt.
func (a *App) renderExchange(ex exchange) string {
	var b strings.Builder

	b.WriteString(styleCommand.Render("> " + ex.command))
	b.WriteString("\n")

	if ex.err != nil {
		b.WriteString(a.renderError(ex.err))
		return b.String()
	}

	if ex.label != "" {
		b.WriteString(styleLabel.Render("Vorschlag: " + ex.label))
		b.WriteString("\n")
	}

	text, err := repl.Format(ex.reply)
	if err != nil {
		b.WriteString(a.renderError(err))
		return b.String()
	}
	b.WriteString(styleReply.Render(text))

	if ex.schemaIssues > 0 {
		b.WriteString("\n")
		b.WriteString(styleWarning.Render(fmt.Sprintf("Hinweis: Antwort weicht in %d Punkt(en) vom Schema ab", ex.schemaIssues)))
	}

	return b.String()
}
