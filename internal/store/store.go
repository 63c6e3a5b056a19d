package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/sessionlab/therapynotes/internal/core/model"
)

var ErrNotFound = errors.New("record not found")

// Status reports how much of a record made it to durable storage. The
// three logical writes are not transactional, so a failure after the
// session row commits leaves a partially persisted record.
type Status string

const (
	StatusSaved   Status = "saved"
	StatusPartial Status = "partial"
	StatusFailed  Status = "failed"
)

// SessionRow is the sessions-table view of a persisted record, with the
// full serialized record carried as an opaque payload.
type SessionRow struct {
	SessionID              string          `json:"session_id"`
	SessionDate            string          `json:"session_date"`
	SessionSummary         string          `json:"session_summary"`
	GroupDynamics          string          `json:"group_dynamics"`
	FacilitatorAssessment  string          `json:"facilitator_assessment"`
	SessionProgressSummary string          `json:"session_progress_summary"`
	CreatedAt              string          `json:"created_at"`
	Record                 json.RawMessage `json:"record"`
}

// DynamicRow is one group-dynamics event, tagged with its source
// category (power_dynamics, alliances or effective_interventions).
type DynamicRow struct {
	ID        int64           `json:"id"`
	SessionID string          `json:"session_id"`
	Category  string          `json:"category"`
	Data      json.RawMessage `json:"data"`
}

// RecordStore persists normalized session records. Re-running a save
// with the same session id replaces the session and participant rows;
// group-dynamics rows accumulate.
type RecordStore interface {
	SaveRecord(ctx context.Context, rec model.SessionRecord) (Status, error)
	GetSession(ctx context.Context, sessionID string) (SessionRow, error)
	ListParticipants(ctx context.Context, sessionID string) ([]model.SpeakerRecord, error)
	ListDynamics(ctx context.Context, sessionID string) ([]DynamicRow, error)
	Close() error
}
