package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/sessionlab/therapynotes/internal/config"
	"github.com/sessionlab/therapynotes/internal/core/prompt"
	"github.com/sessionlab/therapynotes/internal/llm"
)

const (
	systemInstruction = "You are a medical information extraction assistant that always responds with valid JSON."

	jsonDirective = "\n\nIMPORTANT: Please ensure your response is a valid JSON object. Do not include any text before or after the JSON."
)

// Result is one template's extraction outcome. Object holds the response
// when it parsed as a JSON object; otherwise Raw carries the trimmed
// response text. Degrading an unparseable result to a default record is
// the merge engine's decision, not the adapter's.
type Result struct {
	Template string
	Object   json.RawMessage
	Raw      string
}

func (r Result) IsObject() bool {
	return r.Object != nil
}

type Options struct {
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

func DefaultOptions() Options {
	return Options{
		Temperature: 0.1,
		MaxTokens:   4000,
		Timeout:     120 * time.Second,
	}
}

// OptionsFromConfig layers configured values over the defaults.
func OptionsFromConfig(cfg config.ExtractionConfig) Options {
	opts := DefaultOptions()
	if cfg.Temperature > 0 {
		opts.Temperature = cfg.Temperature
	}
	if cfg.MaxTokens > 0 {
		opts.MaxTokens = cfg.MaxTokens
	}
	if cfg.TimeoutSeconds > 0 {
		opts.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	return opts
}

// Extractor sends a normalized conversation plus one instruction
// template to the completion service and recovers a structured record
// from the free-form response. Single attempt, no retries: transport
// failures are fatal to the caller.
type Extractor struct {
	llm  llm.Client
	diag *Diagnostics
	opts Options
	log  zerolog.Logger
}

func New(client llm.Client, diag *Diagnostics, opts Options, log zerolog.Logger) *Extractor {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultOptions().Timeout
	}
	return &Extractor{
		llm:  client,
		diag: diag,
		opts: opts,
		log:  log,
	}
}

func (e *Extractor) Extract(ctx context.Context, conversation string, tmpl prompt.Template) (Result, error) {
	fullPrompt := tmpl.Render(conversation) + jsonDirective

	e.log.Info().
		Str("template", tmpl.Name).
		Int("prompt_length", len(fullPrompt)).
		Msg("sending extraction request")

	ctx, cancel := context.WithTimeout(ctx, e.opts.Timeout)
	defer cancel()

	response, err := e.llm.Generate(ctx, llm.Request{
		System:      systemInstruction,
		Prompt:      fullPrompt,
		Temperature: e.opts.Temperature,
		MaxTokens:   e.opts.MaxTokens,
	})
	if err != nil {
		return Result{}, fmt.Errorf("extraction request for template %s failed: %w", tmpl.Name, err)
	}

	clean := stripFences(response)

	if strings.HasPrefix(clean, "{") && strings.HasSuffix(clean, "}") {
		var probe map[string]any
		if err := json.Unmarshal([]byte(clean), &probe); err != nil {
			e.log.Warn().
				Str("template", tmpl.Name).
				Err(err).
				Msg("failed to parse response as JSON")
			e.diag.WriteFailedResponse("failed_json_response", response)
			return Result{Template: tmpl.Name, Raw: clean}, nil
		}
		return Result{Template: tmpl.Name, Object: json.RawMessage(clean)}, nil
	}

	e.log.Warn().
		Str("template", tmpl.Name).
		Str("head", head(clean, 50)).
		Msg("response doesn't look like JSON")
	return Result{Template: tmpl.Name, Raw: clean}, nil
}

// stripFences removes a surrounding markdown code fence and trims
// whitespace.
func stripFences(s string) string {
	clean := strings.TrimSpace(s)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}

func head(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
