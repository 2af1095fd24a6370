package ai

import (
	"context"
	"strings"
	"sync"

	"tea/models"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// GeminiClient is the alternative interpreter backend, driven by the Google
// Generative AI SDK instead of the chat-completions wire contract.
type GeminiClient struct {
	cfg    Config
	logger *zap.Logger

	// newClient is swapped out in tests.
	newClient func(ctx context.Context, opts ...option.ClientOption) (*genai.Client, error)

	mu    sync.Mutex
	model *genai.GenerativeModel
}

func NewGeminiClient(cfg Config, logger *zap.Logger) *GeminiClient {
	if cfg.Model == "" || strings.HasPrefix(cfg.Model, "grok") {
		cfg.Model = "models/gemini-1.5-pro"
	}
	return &GeminiClient{cfg: cfg, logger: logger, newClient: genai.NewClient}
}

// connect creates the SDK client on first use so that a missing credential
// is reported per request, not at process start. A failed creation is not
// cached; the next request retries it.
func (g *GeminiClient) connect(ctx context.Context) (*genai.GenerativeModel, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.model != nil {
		return g.model, nil
	}

	client, err := g.newClient(ctx, option.WithAPIKey(g.cfg.APIKey))
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}
	model := client.GenerativeModel(g.cfg.Model)
	model.SystemInstruction = genai.NewUserContent(genai.Text(systemPrompt))
	model.ResponseMIMEType = "application/json"
	g.model = model
	return model, nil
}

func (g *GeminiClient) Interpret(ctx context.Context, query string) (*models.InterpretationResult, error) {
	if g.cfg.APIKey == "" {
		return nil, ErrKeyMissing
	}

	model, err := g.connect(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := model.GenerateContent(ctx, genai.Text(userPrompt(query)))
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}

	var sb strings.Builder
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if textPart, ok := part.(genai.Text); ok {
				sb.WriteString(string(textPart))
			}
		}
	}
	return decodeInterpretation(sb.String(), g.logger), nil
}
