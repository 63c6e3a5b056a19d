package extraction

import (
	"context"

	"github.com/sessionlab/therapynotes/internal/llm"
)

type MockLLMClient struct {
	Response   string
	Err        error
	LastPrompt string
	LastSystem string
}

func (m *MockLLMClient) Generate(ctx context.Context, req llm.Request) (string, error) {
	m.LastPrompt = req.Prompt
	m.LastSystem = req.System
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
