package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/sessionlab/therapynotes/internal/core/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS therapy_sessions (
    session_id TEXT PRIMARY KEY,
    session_date TEXT,
    session_summary TEXT,
    group_dynamics TEXT,
    facilitator_assessment TEXT,
    session_progress_summary TEXT,
    created_at TEXT,
    raw_data TEXT
);

CREATE TABLE IF NOT EXISTS therapy_participants (
    speaker_id TEXT,
    session_id TEXT,
    participant_data TEXT,
    PRIMARY KEY (speaker_id, session_id),
    FOREIGN KEY (session_id) REFERENCES therapy_sessions(session_id)
);

CREATE TABLE IF NOT EXISTS group_dynamics (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    session_id TEXT,
    dynamic_type TEXT,
    dynamic_data TEXT,
    FOREIGN KEY (session_id) REFERENCES therapy_sessions(session_id)
);`

// SQLiteStore persists session records across three tables. The writes
// are sequential and non-transactional: a failure after the session row
// is written surfaces as StatusPartial.
type SQLiteStore struct {
	db  *sql.DB
	log zerolog.Logger
}

func OpenSQLite(path string, log zerolog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database '%s': %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &SQLiteStore{db: db, log: log}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) SaveRecord(ctx context.Context, rec model.SessionRecord) (Status, error) {
	rawData, err := json.Marshal(rec)
	if err != nil {
		return StatusFailed, fmt.Errorf("failed to serialize record: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO therapy_sessions VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		rec.SessionID,
		rec.SessionDate,
		rec.SessionSummary,
		rec.GroupDynamics,
		rec.FacilitatorAssessment,
		rec.SessionProgressSummary,
		time.Now().UTC().Format(time.RFC3339),
		string(rawData),
	)
	if err != nil {
		return StatusFailed, fmt.Errorf("failed to save session row: %w", err)
	}

	for _, speaker := range rec.Speakers {
		data, err := json.Marshal(speaker)
		if err != nil {
			return StatusPartial, fmt.Errorf("failed to serialize participant %s: %w", speaker.SpeakerID, err)
		}
		_, err = s.db.ExecContext(ctx,
			"INSERT OR REPLACE INTO therapy_participants VALUES (?, ?, ?)",
			speaker.SpeakerID,
			rec.SessionID,
			string(data),
		)
		if err != nil {
			return StatusPartial, fmt.Errorf("failed to save participant %s: %w", speaker.SpeakerID, err)
		}
	}

	// Group-dynamics rows are insert-only; repeated saves of the same
	// session accumulate rows.
	dynamics := map[string][]any{}
	for _, d := range rec.PowerDynamics {
		dynamics["power_dynamics"] = append(dynamics["power_dynamics"], d)
	}
	for _, a := range rec.Alliances {
		dynamics["alliances"] = append(dynamics["alliances"], a)
	}
	for _, i := range rec.EffectiveInterventions {
		dynamics["effective_interventions"] = append(dynamics["effective_interventions"], i)
	}

	for _, category := range []string{"power_dynamics", "alliances", "effective_interventions"} {
		for _, item := range dynamics[category] {
			data, err := json.Marshal(item)
			if err != nil {
				return StatusPartial, fmt.Errorf("failed to serialize %s entry: %w", category, err)
			}
			_, err = s.db.ExecContext(ctx,
				"INSERT INTO group_dynamics (session_id, dynamic_type, dynamic_data) VALUES (?, ?, ?)",
				rec.SessionID,
				category,
				string(data),
			)
			if err != nil {
				return StatusPartial, fmt.Errorf("failed to save %s entry: %w", category, err)
			}
		}
	}

	s.log.Info().
		Str("session_id", rec.SessionID).
		Int("participants", len(rec.Speakers)).
		Msg("saved therapy record")
	return StatusSaved, nil
}

func (s *SQLiteStore) GetSession(ctx context.Context, sessionID string) (SessionRow, error) {
	var row SessionRow
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT session_id, session_date, session_summary, group_dynamics,
		        facilitator_assessment, session_progress_summary, created_at, raw_data
		 FROM therapy_sessions WHERE session_id = ?`,
		sessionID,
	).Scan(
		&row.SessionID,
		&row.SessionDate,
		&row.SessionSummary,
		&row.GroupDynamics,
		&row.FacilitatorAssessment,
		&row.SessionProgressSummary,
		&row.CreatedAt,
		&raw,
	)
	if err == sql.ErrNoRows {
		return SessionRow{}, ErrNotFound
	}
	if err != nil {
		return SessionRow{}, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}
	row.Record = json.RawMessage(raw)
	return row, nil
}

func (s *SQLiteStore) ListParticipants(ctx context.Context, sessionID string) ([]model.SpeakerRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT participant_data FROM therapy_participants WHERE session_id = ?",
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load participants for %s: %w", sessionID, err)
	}
	defer rows.Close()

	participants := []model.SpeakerRecord{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var rec model.SpeakerRecord
		if err := json.Unmarshal([]byte(data), &rec); err != nil {
			return nil, fmt.Errorf("corrupt participant payload in session %s: %w", sessionID, err)
		}
		participants = append(participants, rec)
	}
	return participants, rows.Err()
}

func (s *SQLiteStore) ListDynamics(ctx context.Context, sessionID string) ([]DynamicRow, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, session_id, dynamic_type, dynamic_data FROM group_dynamics WHERE session_id = ? ORDER BY id",
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load group dynamics for %s: %w", sessionID, err)
	}
	defer rows.Close()

	dynamics := []DynamicRow{}
	for rows.Next() {
		var row DynamicRow
		var data string
		if err := rows.Scan(&row.ID, &row.SessionID, &row.Category, &data); err != nil {
			return nil, err
		}
		row.Data = json.RawMessage(data)
		dynamics = append(dynamics, row)
	}
	return dynamics, rows.Err()
}
