package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"tea/models"

	"go.uber.org/zap"
)

// GrokClient talks to an OpenAI-style chat-completions endpoint (x.ai).
type GrokClient struct {
	cfg    Config
	client *http.Client
	logger *zap.Logger
}

func NewGrokClient(cfg Config, logger *zap.Logger) *GrokClient {
	return &GrokClient{
		cfg:    cfg,
		client: &http.Client{Timeout: 30 * time.Second},
		logger: logger,
	}
}

type chatCompletionRequest struct {
	Model          string        `json:"model"`
	Temperature    float64       `json:"temperature"`
	ResponseFormat responseFmt   `json:"response_format"`
	Messages       []chatMessage `json:"messages"`
}

type responseFmt struct {
	Type string `json:"type"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Interpret sends the query to the chat-completions endpoint and decodes the
// returned payload into an InterpretationResult.
func (g *GrokClient) Interpret(ctx context.Context, query string) (*models.InterpretationResult, error) {
	if g.cfg.APIKey == "" {
		return nil, ErrKeyMissing
	}

	payload, err := json.Marshal(chatCompletionRequest{
		Model:          g.cfg.Model,
		Temperature:    0.7,
		ResponseFormat: responseFmt{Type: "json_object"},
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt(query)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal interpreter request: %w", err)
	}

	url := g.cfg.BaseURL + "/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("build interpreter request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		g.logger.Error("Interpreter returned non-OK status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body))
		return nil, &UpstreamError{Status: resp.StatusCode, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		g.logger.Warn("Failed to decode interpreter envelope", zap.Error(err))
		return degradedResult(), nil
	}

	content := "{}"
	if len(completion.Choices) > 0 {
		content = completion.Choices[0].Message.Content
	}
	return decodeInterpretation(content, g.logger), nil
}
