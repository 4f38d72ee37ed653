package intent

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/clinicon/clinicon-ai/internal/llm"
	"github.com/clinicon/clinicon-ai/internal/prompts"
)

// ErrEmptyCommand is returned for blank input; no request is sent.
var ErrEmptyCommand = errors.New("empty command")

// Parser forwards staffing commands to the model and recovers its reply.
type Parser struct {
	provider     llm.Provider
	model        string
	temperature  float64
	systemPrompt string
	log          *zap.Logger
}

// NewParser creates a parser bound to one provider and a pinned model.
// A nil logger disables logging.
func NewParser(provider llm.Provider, model string, temperature float64, log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{
		provider:     provider,
		model:        model,
		temperature:  temperature,
		systemPrompt: prompts.BuildCommandPrompt(),
		log:          log,
	}
}

// Dispatch sends the system prompt and text as one request and returns the
// raw reply. Service errors are returned as they come.
func (p *Parser) Dispatch(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyCommand
	}

	log := p.log.With(
		zap.String("request_id", uuid.NewString()),
		zap.String("provider", p.provider.Name()),
		zap.String("model", p.model),
	)
	log.Debug("dispatching command", zap.Int("chars", len(text)))

	start := time.Now()
	resp, err := p.provider.Complete(ctx, llm.NewRequest(p.model, p.temperature, p.systemPrompt, text))
	if err != nil {
		log.Warn("completion failed", zap.Error(err), zap.Duration("latency", time.Since(start)))
		return "", err
	}

	log.Debug("reply received",
		zap.Duration("latency", time.Since(start)),
		zap.String("finish_reason", resp.FinishReason),
		zap.Int("total_tokens", resp.Usage.TotalTokens),
	)
	return resp.Content, nil
}

// Parse dispatches text and recovers a JSON value from the reply.
func (p *Parser) Parse(ctx context.Context, text string) (any, error) {
	raw, err := p.Dispatch(ctx, text)
	if err != nil {
		return nil, err
	}

	reply, err := Recover(raw)
	if err != nil {
		p.log.Debug("reply is not JSON", zap.String("reply", raw), zap.Error(err))
		return nil, err
	}
	return reply, nil
}
