package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/clinicon/clinicon-ai/internal/intent"
	"github.com/clinicon/clinicon-ai/internal/repl"
)

type App struct {
	ctx      context.Context
	parser   repl.CommandParser
	log      *zap.Logger
	width    int
	height   int
	state    *state
	quitting bool
}

func NewApp(ctx context.Context, parser repl.CommandParser, providerName, model string, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	return &App{
		ctx:    ctx,
		parser: parser,
		log:    log,
		state:  newState(providerName, model),
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(tea.WindowSize(), textinput.Blink)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd, handled := a.handleKey(msg); handled {
			return a, cmd
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if msg.Width > 8 {
			a.state.input.Width = min(70, msg.Width-8)
		}

	case spinner.TickMsg:
		if !a.state.pending {
			return a, nil
		}
		var cmd tea.Cmd
		a.state.spinner, cmd = a.state.spinner.Update(msg)
		return a, cmd

	case replyMsg:
		a.state.pending = false
		a.state.pendingText = ""
		a.state.count++
		ex := a.newExchange(msg)
		return a, tea.Println(a.renderExchange(ex))
	}

	var cmd tea.Cmd
	a.state.input, cmd = a.state.input.Update(msg)
	cmds = append(cmds, cmd)

	return a, tea.Batch(cmds...)
}

// handleKey returns handled=true when the key must not reach the text input.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.Quit):
		a.quitting = true
		return tea.Quit, true

	case key.Matches(msg, keys.Enter):
		if a.state.pending {
			return nil, true
		}
		return a.handleInput(), true
	}

	// Typing is ignored while a request is in flight.
	if a.state.pending {
		return nil, true
	}
	return nil, false
}

func (a *App) handleInput() tea.Cmd {
	line := a.state.input.Value()
	if repl.IsExit(line) {
		a.quitting = true
		return tea.Quit
	}
	if strings.TrimSpace(line) == "" {
		return nil
	}

	a.state.input.Reset()
	a.state.pending = true
	a.state.pendingText = line

	return tea.Batch(a.dispatch(line), a.state.spinner.Tick)
}

func (a *App) dispatch(line string) tea.Cmd {
	return func() tea.Msg {
		reply, err := a.parser.Parse(a.ctx, line)
		return replyMsg{command: line, reply: reply, err: err}
	}
}

type replyMsg struct {
	command string
	reply   any
	err     error
}

func (a *App) newExchange(msg replyMsg) exchange {
	ex := exchange{command: msg.command, reply: msg.reply, err: msg.err}
	if msg.err != nil {
		return ex
	}

	if err := intent.Validate(msg.reply); err != nil {
		a.log.Warn("reply deviates from command schema", zap.Error(err))
		var se *intent.SchemaError
		if errors.As(err, &se) {
			ex.schemaIssues = len(se.Issues)
		}
	}

	if cmd, err := intent.Decode(msg.reply); err == nil && cmd.Intent != "" {
		ex.label = intent.Label(cmd.Intent)
	}
	return ex
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}
	return a.renderPrompt()
}
