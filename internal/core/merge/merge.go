package merge

import (
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"github.com/sessionlab/therapynotes/internal/core/extraction"
	"github.com/sessionlab/therapynotes/internal/core/model"
	"github.com/sessionlab/therapynotes/internal/core/prompt"
	"github.com/sessionlab/therapynotes/internal/core/transcript"
)

// Engine reconciles the three extraction results into one normalized,
// speaker-indexed record. It owns default-record substitution: a result
// whose text never parsed is replaced with the zero value of its schema,
// and the offending text is kept for postmortem.
type Engine struct {
	diag *extraction.Diagnostics
	log  zerolog.Logger
}

func New(diag *extraction.Diagnostics, log zerolog.Logger) *Engine {
	return &Engine{diag: diag, log: log}
}

// Merge builds the session record for one pipeline run. Speaker order in
// the output is unspecified.
func (e *Engine) Merge(sessionID string, general, relational, progress extraction.Result, speakerMap transcript.SpeakerMap) model.SessionRecord {
	gen, err := decode[model.GeneralExtraction](general)
	if err != nil {
		e.substituteDefault(general, err)
	}
	rel, err := decode[model.RelationalExtraction](relational)
	if err != nil {
		e.substituteDefault(relational, err)
	}
	prog, err := decode[model.ProgressExtraction](progress)
	if err != nil {
		e.substituteDefault(progress, err)
	}

	gen.Normalize()
	rel.Normalize()
	prog.Normalize()

	record := model.SessionRecord{
		SessionID:                 sessionID,
		SessionDate:               time.Now().UTC().Format(time.RFC3339),
		SessionSummary:            gen.SessionSummary,
		GroupDynamics:             gen.GroupDynamics,
		RelationalDynamicsSummary: rel.GroupDynamicsSummary,
		FacilitatorAssessment:     rel.FacilitatorRole,
		SessionProgressSummary:    prog.SessionProgressSummary,
		SpeakerMapping:            map[string]string(speakerMap),
		Speakers:                  []model.SpeakerRecord{},
		PowerDynamics:             rel.PowerDynamics,
		Alliances:                 rel.Alliances,
		CommunicationPatterns:     rel.CommunicationPatterns,
		EffectiveInterventions:    prog.EffectiveInterventions,
	}
	if record.SpeakerMapping == nil {
		record.SpeakerMapping = map[string]string{}
	}

	for id := range speakerUniverse(gen, prog, speakerMap) {
		record.Speakers = append(record.Speakers, buildSpeakerRecord(id, gen, rel, prog))
	}

	return record
}

// speakerUniverse unions the ids mentioned across the extraction
// results. SpeakerMap keys are the floor only when no result mentioned
// any speaker.
func speakerUniverse(gen model.GeneralExtraction, prog model.ProgressExtraction, speakerMap transcript.SpeakerMap) map[string]struct{} {
	ids := map[string]struct{}{}

	for _, s := range gen.Speakers {
		if s.SpeakerID != "" {
			ids[s.SpeakerID] = struct{}{}
		}
	}
	for _, i := range prog.KeyInsights {
		if i.SpeakerID != "" {
			ids[i.SpeakerID] = struct{}{}
		}
	}
	for _, r := range prog.ResistanceAreas {
		if r.SpeakerID != "" {
			ids[r.SpeakerID] = struct{}{}
		}
	}
	for _, p := range prog.ProgressIndicators {
		if p.SpeakerID != "" {
			ids[p.SpeakerID] = struct{}{}
		}
	}
	for _, f := range prog.SuggestedFocusAreas {
		if f.SpeakerID != "" {
			ids[f.SpeakerID] = struct{}{}
		}
	}

	if len(ids) == 0 && len(speakerMap) > 0 {
		for id := range speakerMap {
			ids[id] = struct{}{}
		}
	}

	return ids
}

func buildSpeakerRecord(id string, gen model.GeneralExtraction, rel model.RelationalExtraction, prog model.ProgressExtraction) model.SpeakerRecord {
	rec := model.SpeakerRecord{
		SpeakerID:             id,
		PrimaryConcerns:       []string{},
		EmotionsExpressed:     []string{},
		Challenges:            []string{},
		CopingMechanisms:      []string{},
		NotableQuotes:         []string{},
		Insights:              []model.SpeakerInsight{},
		ResistanceAreas:       []model.SpeakerResistance{},
		ProgressIndicators:    []model.SpeakerProgress{},
		SuggestedFocusAreas:   []model.SpeakerFocus{},
		ExternalRelationships: []model.SpeakerRelationship{},
	}

	for _, s := range gen.Speakers {
		if s.SpeakerID != id {
			continue
		}
		if s.PrimaryConcerns != nil {
			rec.PrimaryConcerns = s.PrimaryConcerns
		}
		if s.EmotionsExpressed != nil {
			rec.EmotionsExpressed = s.EmotionsExpressed
		}
		rec.RelationshipDynamics = s.RelationshipDynamics
		rec.SelfPerception = s.SelfPerception
		if s.Challenges != nil {
			rec.Challenges = s.Challenges
		}
		if s.CopingMechanisms != nil {
			rec.CopingMechanisms = s.CopingMechanisms
		}
		if s.NotableQuotes != nil {
			rec.NotableQuotes = s.NotableQuotes
		}
	}

	for _, i := range prog.KeyInsights {
		if i.SpeakerID == id {
			rec.Insights = append(rec.Insights, model.SpeakerInsight{
				Insight:      i.Insight,
				Significance: i.Significance,
			})
		}
	}
	for _, r := range prog.ResistanceAreas {
		if r.SpeakerID == id {
			rec.ResistanceAreas = append(rec.ResistanceAreas, model.SpeakerResistance{
				Description:      r.Description,
				PossibleApproach: r.PossibleApproach,
			})
		}
	}
	for _, p := range prog.ProgressIndicators {
		if p.SpeakerID == id {
			rec.ProgressIndicators = append(rec.ProgressIndicators, model.SpeakerProgress{
				Area:     p.Area,
				Evidence: p.Evidence,
			})
		}
	}
	for _, f := range prog.SuggestedFocusAreas {
		if f.SpeakerID == id {
			rec.SuggestedFocusAreas = append(rec.SuggestedFocusAreas, model.SpeakerFocus{
				Area:      f.Area,
				Rationale: f.Rationale,
			})
		}
	}
	for _, x := range rel.ExternalRelationships {
		if x.SpeakerID == id {
			rec.ExternalRelationships = append(rec.ExternalRelationships, model.SpeakerRelationship{
				Relationship: x.Relationship,
				Impact:       x.Impact,
			})
		}
	}

	return rec
}

// decode turns an extraction result into its schema type. An Object
// result decodes directly; a Raw result gets one strict parse attempt.
// On error the zero value is returned alongside it so the caller can
// decide to substitute the default.
func decode[T any](res extraction.Result) (T, error) {
	var out T
	data := res.Object
	if data == nil {
		data = json.RawMessage(res.Raw)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func (e *Engine) substituteDefault(res extraction.Result, err error) {
	e.log.Warn().
		Str("template", res.Template).
		Err(err).
		Msg("substituting default record for unparseable result")
	text := res.Raw
	if res.Object != nil {
		text = string(res.Object)
	}
	e.diag.WriteFailedResponse(sideFilePrefix(res.Template), text)
}

func sideFilePrefix(template string) string {
	switch template {
	case prompt.GeneralTherapyExtraction:
		return "general_info_response"
	case prompt.RelationalDynamics:
		return "relational_info_response"
	case prompt.TherapeuticProgress:
		return "progress_info_response"
	default:
		return "unknown_info_response"
	}
}
