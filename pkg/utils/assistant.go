package utils

import (
	"context"
	"strings"
)

// AssistantClientInterface is the single seam to the generative collaborator.
// CompleteJSON must return a raw JSON object/array string; Complete returns
// plain prose. Neither retries internally: callers substitute fallbacks.
type AssistantClientInterface interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
	CompleteJSON(ctx context.Context, system, prompt string) (string, error)
}

// CleanJSONResponse strips markdown fencing and whitespace that models wrap
// around JSON payloads.
func CleanJSONResponse(raw string) string {
	raw = strings.ReplaceAll(raw, "```json", "")
	raw = strings.ReplaceAll(raw, "```", "")
	return strings.TrimSpace(raw)
}
