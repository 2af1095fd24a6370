package ai

import (
	"encoding/json"
	"strings"

	"tea/models"

	"go.uber.org/zap"
)

// FallbackAnswer is the summary returned when the backend payload could not
// be parsed. Parse failures never propagate; the caller only sees this
// degraded result with an empty candidate list.
const FallbackAnswer = "I had trouble parsing the response"

func degradedResult() *models.InterpretationResult {
	return &models.InterpretationResult{
		Answer:     FallbackAnswer,
		Candidates: []models.Candidate{},
	}
}

// decodeInterpretation parses the backend's content field. The payload is
// expected to be a JSON document matching the answer schema, but models
// routinely wrap it in markdown fences or return prose instead; both are
// tolerated.
func decodeInterpretation(content string, logger *zap.Logger) *models.InterpretationResult {
	trimmed := stripCodeFences(content)

	var result models.InterpretationResult
	if err := json.Unmarshal([]byte(trimmed), &result); err != nil {
		logger.Warn("Failed to parse interpreter JSON",
			zap.Error(err),
			zap.String("content", truncate(content, 512)))
		return degradedResult()
	}

	if result.Candidates == nil {
		result.Candidates = []models.Candidate{}
	}
	// Entries without a name cannot be enriched or mapped; drop them here.
	kept := result.Candidates[:0]
	for _, c := range result.Candidates {
		if strings.TrimSpace(c.Name) != "" {
			c.Name = strings.TrimSpace(c.Name)
			kept = append(kept, c)
		}
	}
	result.Candidates = kept
	return &result
}

// stripCodeFences removes a surrounding ```json ... ``` block if present.
func stripCodeFences(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
