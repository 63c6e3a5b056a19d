package extraction

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sessionlab/therapynotes/internal/core/prompt"
)

func newTestExtractor(t *testing.T, client *MockLLMClient) (*Extractor, string) {
	t.Helper()
	dir := t.TempDir()
	diag := NewDiagnostics(dir, zerolog.Nop())
	return New(client, diag, DefaultOptions(), zerolog.Nop()), dir
}

func diagFileCount(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	return len(entries)
}

func TestExtractParsesPlainJSON(t *testing.T) {
	mock := &MockLLMClient{Response: `{"session_summary": "ok", "speakers": []}`}
	ex, dir := newTestExtractor(t, mock)

	res, err := ex.Extract(context.Background(), "SPEAKER_00: hi", prompt.DefaultSet().General)

	require.NoError(t, err)
	assert.True(t, res.IsObject())
	assert.Equal(t, prompt.GeneralTherapyExtraction, res.Template)
	assert.JSONEq(t, `{"session_summary": "ok", "speakers": []}`, string(res.Object))
	assert.Zero(t, diagFileCount(t, dir))
}

func TestExtractStripsCodeFences(t *testing.T) {
	mock := &MockLLMClient{Response: "```json\n{\"session_summary\": \"fenced\"}\n```"}
	ex, _ := newTestExtractor(t, mock)

	res, err := ex.Extract(context.Background(), "SPEAKER_00: hi", prompt.DefaultSet().General)

	require.NoError(t, err)
	assert.True(t, res.IsObject())
	assert.JSONEq(t, `{"session_summary": "fenced"}`, string(res.Object))
}

func TestExtractReturnsNonJSONTextUnchanged(t *testing.T) {
	mock := &MockLLMClient{Response: "  I could not produce JSON today.  "}
	ex, dir := newTestExtractor(t, mock)

	res, err := ex.Extract(context.Background(), "SPEAKER_00: hi", prompt.DefaultSet().Progress)

	require.NoError(t, err)
	assert.False(t, res.IsObject())
	assert.Equal(t, "I could not produce JSON today.", res.Raw)
	assert.Zero(t, diagFileCount(t, dir), "no diagnostic file for non-JSON-looking responses")
}

func TestExtractSavesDiagnosticOnParseFailure(t *testing.T) {
	// Brace-delimited but not valid JSON.
	mock := &MockLLMClient{Response: `{"session_summary": "unterminated}`}
	ex, dir := newTestExtractor(t, mock)

	res, err := ex.Extract(context.Background(), "SPEAKER_00: hi", prompt.DefaultSet().Relational)

	require.NoError(t, err)
	assert.False(t, res.IsObject())
	assert.Equal(t, `{"session_summary": "unterminated}`, res.Raw)
	assert.Equal(t, 1, diagFileCount(t, dir))
}

func TestExtractPropagatesTransportError(t *testing.T) {
	mock := &MockLLMClient{Err: errors.New("API request failed: 503 - service unavailable")}
	ex, _ := newTestExtractor(t, mock)

	_, err := ex.Extract(context.Background(), "SPEAKER_00: hi", prompt.DefaultSet().General)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
	assert.Contains(t, err.Error(), prompt.GeneralTherapyExtraction)
}

func TestExtractEmbedsConversationAndDirective(t *testing.T) {
	mock := &MockLLMClient{Response: `{}`}
	ex, _ := newTestExtractor(t, mock)

	_, err := ex.Extract(context.Background(), "SPEAKER_00: my transcript line", prompt.DefaultSet().General)

	require.NoError(t, err)
	assert.Contains(t, mock.LastPrompt, "SPEAKER_00: my transcript line")
	assert.Contains(t, mock.LastPrompt, "valid JSON object")
	assert.Contains(t, mock.LastSystem, "always responds with valid JSON")
}
