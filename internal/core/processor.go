package core

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/sessionlab/therapynotes/internal/core/extraction"
	"github.com/sessionlab/therapynotes/internal/core/merge"
	"github.com/sessionlab/therapynotes/internal/core/model"
	"github.com/sessionlab/therapynotes/internal/core/prompt"
	"github.com/sessionlab/therapynotes/internal/core/transcript"
	"github.com/sessionlab/therapynotes/internal/store"
)

// Result is the uniform envelope returned by a pipeline run. No error
// escapes Process: transport failures come back as Success=false with a
// message, and a persistence failure still carries the computed record.
type Result struct {
	Success     bool                 `json:"success"`
	SessionID   string               `json:"session_id,omitempty"`
	Data        *model.SessionRecord `json:"processed_data,omitempty"`
	Persistence store.Status         `json:"persistence,omitempty"`
	Error       string               `json:"error,omitempty"`
}

// Processor runs the full pipeline: normalize the raw diarization, fan
// out the three extractions, merge, persist. Store may be nil to skip
// persistence.
type Processor struct {
	Extractor *extraction.Extractor
	Merger    *merge.Engine
	Store     store.RecordStore
	Templates prompt.Set
	log       zerolog.Logger
}

func NewProcessor(ex *extraction.Extractor, m *merge.Engine, st store.RecordStore, templates prompt.Set, log zerolog.Logger) *Processor {
	return &Processor{
		Extractor: ex,
		Merger:    m,
		Store:     st,
		Templates: templates,
		log:       log,
	}
}

func (p *Processor) Process(ctx context.Context, rawDiarization string) Result {
	conversation, speakerMap := transcript.Normalize(rawDiarization)

	p.log.Info().
		Int("speakers", len(speakerMap)).
		Msg("processing conversation")

	sessionID := "therapy_session_" + uuid.NewString()

	// The three extractions are independent; run them concurrently and
	// join before merging.
	var general, relational, progress extraction.Result
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		general, err = p.Extractor.Extract(gctx, conversation, p.Templates.General)
		return err
	})
	g.Go(func() error {
		var err error
		relational, err = p.Extractor.Extract(gctx, conversation, p.Templates.Relational)
		return err
	})
	g.Go(func() error {
		var err error
		progress, err = p.Extractor.Extract(gctx, conversation, p.Templates.Progress)
		return err
	})
	if err := g.Wait(); err != nil {
		p.log.Error().Err(err).Msg("extraction failed")
		return Result{Success: false, Error: err.Error()}
	}

	record := p.Merger.Merge(sessionID, general, relational, progress, speakerMap)

	if p.Store == nil {
		return Result{Success: true, SessionID: sessionID, Data: &record}
	}

	status, err := p.Store.SaveRecord(ctx, record)
	if err != nil {
		p.log.Error().Err(err).Str("status", string(status)).Msg("failed to persist therapy record")
		return Result{
			Success:     false,
			SessionID:   sessionID,
			Data:        &record,
			Persistence: status,
			Error:       err.Error(),
		}
	}

	return Result{
		Success:     true,
		SessionID:   sessionID,
		Data:        &record,
		Persistence: status,
	}
}
