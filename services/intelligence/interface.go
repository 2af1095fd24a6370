package ai

import (
	"context"
	"errors"
	"fmt"

	"tea/models"

	"go.uber.org/zap"
)

// ErrKeyMissing is returned when no interpreter credential is configured.
// It is checked before any network call is made.
var ErrKeyMissing = errors.New("interpreter API key is not configured")

// UpstreamError indicates the reasoning backend was unreachable or returned
// a non-success status. Status is 0 when no HTTP status was observed.
type UpstreamError struct {
	Status int
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("interpreter upstream error (status %d): %v", e.Status, e.Err)
	}
	return fmt.Sprintf("interpreter upstream error: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Interpreter converts a natural-language food query into a summary plus
// candidate establishments. Malformed backend payloads are recovered into a
// degraded result; callers never see a parse error.
type Interpreter interface {
	Interpret(ctx context.Context, query string) (*models.InterpretationResult, error)
}

// Config carries the interpreter configuration, passed explicitly at
// construction.
type Config struct {
	Provider string // "grok" or "gemini"
	Model    string
	APIKey   string
	BaseURL  string // chat-completions base URL, grok provider only
}

// NewInterpreter builds the configured interpreter backend.
func NewInterpreter(cfg Config, logger *zap.Logger) (Interpreter, error) {
	switch cfg.Provider {
	case "", "grok":
		return NewGrokClient(cfg, logger), nil
	case "gemini":
		return NewGeminiClient(cfg, logger), nil
	default:
		return nil, fmt.Errorf("unknown interpreter provider %q", cfg.Provider)
	}
}
