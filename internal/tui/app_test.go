package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicon/clinicon-ai/internal/intent"
)

type stubParser struct {
	raw   string
	err   error
	calls []string
}

func (s *stubParser) Parse(_ context.Context, text string) (any, error) {
	s.calls = append(s.calls, text)
	if s.err != nil {
		return nil, s.err
	}
	return intent.Recover(s.raw)
}

func newTestApp(p *stubParser) *App {
	return NewApp(context.Background(), p, "openai", "gpt-4.1-mini", nil)
}

func enter() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestExitCommandsQuit(t *testing.T) {
	for _, line := range []string{"exit", "EXIT", "quit", "QUIT"} {
		t.Run(line, func(t *testing.T) {
			p := &stubParser{}
			a := newTestApp(p)
			a.state.input.SetValue(line)

			_, cmd := a.Update(enter())

			assert.True(t, isQuit(cmd))
			assert.True(t, a.quitting)
			assert.Empty(t, p.calls)
			assert.Empty(t, a.View())
		})
	}
}

func TestOtherInputDoesNotQuit(t *testing.T) {
	for _, line := range []string{"exit bitte", "beenden", "Wer arbeitet auf 3B?"} {
		t.Run(line, func(t *testing.T) {
			a := newTestApp(&stubParser{raw: `{"intent":"unknown"}`})
			a.state.input.SetValue(line)

			_, cmd := a.Update(enter())

			assert.False(t, a.quitting)
			assert.True(t, a.state.pending)
			require.NotNil(t, cmd)
		})
	}
}

func TestLongInputIsNotTruncated(t *testing.T) {
	long := strings.Repeat("Müller auf 3B versetzen ", 400)
	a := newTestApp(&stubParser{raw: `{"intent":"unknown"}`})
	a.state.input.SetValue(long)

	_, cmd := a.Update(enter())
	require.NotNil(t, cmd)
	assert.Equal(t, long, a.state.pendingText)
}

func TestEscQuits(t *testing.T) {
	a := newTestApp(&stubParser{})
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, isQuit(cmd))
}

func TestBlankInputIsIgnored(t *testing.T) {
	a := newTestApp(&stubParser{})
	a.state.input.SetValue("   ")

	_, cmd := a.Update(enter())
	assert.Nil(t, cmd)
	assert.False(t, a.state.pending)
}

func TestDispatchRunsParserAndRendersReply(t *testing.T) {
	p := &stubParser{raw: `Gerne: {"intent":"adjust_person_fte_rel","fields":{"employee_name":"Anna Schmidt","delta_fte":-0.5},"confidence":0.9,"needs_clarification":false,"clarification_question":null,"notes":null}`}
	a := newTestApp(p)
	a.state.input.SetValue("Anna Schmidt um 0,5 VK reduzieren")

	_, _ = a.Update(enter())
	require.True(t, a.state.pending)
	assert.Empty(t, a.state.input.Value())

	msg := a.dispatch("Anna Schmidt um 0,5 VK reduzieren")()
	reply, ok := msg.(replyMsg)
	require.True(t, ok)
	require.NoError(t, reply.err)
	assert.Equal(t, []string{"Anna Schmidt um 0,5 VK reduzieren"}, p.calls)

	ex := a.newExchange(reply)
	assert.Equal(t, "Stellenanteil anpassen", ex.label)
	assert.Zero(t, ex.schemaIssues)

	out := a.renderExchange(ex)
	assert.Contains(t, out, "Vorschlag: Stellenanteil anpassen")
	assert.Contains(t, out, `"employee_name": "Anna Schmidt"`)
	assert.Contains(t, out, `"delta_fte": -0.5`)

	_, cmd := a.Update(reply)
	assert.False(t, a.state.pending)
	assert.Equal(t, 1, a.state.count)
	assert.NotNil(t, cmd)
}

func TestEnterIgnoredWhilePending(t *testing.T) {
	a := newTestApp(&stubParser{})
	a.state.pending = true
	a.state.input.SetValue("exit")

	_, cmd := a.Update(enter())
	assert.Nil(t, cmd)
	assert.False(t, a.quitting, "one request at a time; exit waits for the reply")
}

func TestErrorExchangeRendering(t *testing.T) {
	a := newTestApp(&stubParser{})

	out := a.renderExchange(exchange{
		command: "Hallo",
		err:     errors.New("openai error (status 401): invalid api key"),
	})
	assert.Contains(t, out, "⚠️ Fehler: openai error (status 401)")
	assert.Contains(t, out, "OPENAI_API_KEY")

	_, err := intent.Recover("kein JSON")
	out = a.renderExchange(exchange{command: "Hallo", err: err})
	assert.Contains(t, out, "Antwort konnte nicht als JSON geparst werden: kein JSON")
}

func TestSchemaDeviationIsShownNotEnforced(t *testing.T) {
	a := newTestApp(&stubParser{})
	reply, err := intent.Recover(`{"intent":"fire_everyone"}`)
	require.NoError(t, err)

	ex := a.newExchange(replyMsg{command: "x", reply: reply})
	assert.Positive(t, ex.schemaIssues)
	assert.Equal(t, "Aktion ausführen", ex.label)

	out := a.renderExchange(ex)
	assert.Contains(t, out, `"intent": "fire_everyone"`)
	assert.Contains(t, out, "vom Schema ab")
}

func TestViewShowsModel(t *testing.T) {
	a := newTestApp(&stubParser{})
	a.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	view := a.View()
	assert.Contains(t, view, "gpt-4.1-mini via openai")
	assert.Contains(t, view, "exit/quit")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Müller", truncate("Müller", 10))
	assert.Equal(t, "Mül...", truncate("Müllermeier", 6))
	assert.Equal(t, "Mü", truncate("Müller", 2))
}
