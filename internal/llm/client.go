package llm

import (
	"context"
)

// Request carries one completion call: a system instruction, the user
// prompt and the sampling parameters the caller wants applied.
type Request struct {
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int
}

type Client interface {
	Generate(ctx context.Context, req Request) (string, error)
}
