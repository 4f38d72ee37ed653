package repl

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/clinicon/clinicon-ai/internal/intent"
)

const (
	Prompt      = "📝 Clinicon-Befehl (exit zum Beenden): "
	ErrorPrefix = "⚠️ Fehler: "
)

// CommandParser is what the loop needs from intent.Parser.
type CommandParser interface {
	Parse(ctx context.Context, text string) (any, error)
}

// IsExit reports whether line is one of the quit commands.
func IsExit(line string) bool {
	switch strings.ToLower(line) {
	case "exit", "quit":
		return true
	}
	return false
}

// Format pretty-prints a reply with two-space indentation, leaving non-ASCII
// characters and HTML-sensitive runes as they are.
func Format(reply any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(reply); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// Loop reads one command per line and prints the recovered reply. Each line
// is handled on its own; nothing carries over between commands.
type Loop struct {
	parser CommandParser
	log    *zap.Logger
}

// New returns a loop that sends each line to parser. A nil logger disables
// logging.
func New(parser CommandParser, log *zap.Logger) *Loop {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loop{parser: parser, log: log}
}

// Run blocks until an exit command, end of input, or ctx is done. Parse
// failures are printed and the loop goes on. Lines have no length limit.
func (l *Loop) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(out, Prompt)
		line, err := reader.ReadString('\n')
		if line == "" && err != nil {
			fmt.Fprintln(out)
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if IsExit(line) {
			return nil
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		fmt.Fprintln(out, l.handle(ctx, line))
	}
}

func (l *Loop) handle(ctx context.Context, line string) string {
	reply, err := l.parser.Parse(ctx, line)
	if err != nil {
		return ErrorPrefix + err.Error()
	}

	if err := intent.Validate(reply); err != nil {
		l.log.Warn("reply deviates from command schema", zap.Error(err))
	}

	text, err := Format(reply)
	if err != nil {
		return ErrorPrefix + err.Error()
	}
	return text
}
