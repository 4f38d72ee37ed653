package prompts

import (
	_ "embed"
	"strings"
)

//go:embed command.md
var Command string

// BuildCommandPrompt returns the system instruction sent ahead of every
// staffing command.
func BuildCommandPrompt() string {
	return strings.TrimSpace(Command)
}
