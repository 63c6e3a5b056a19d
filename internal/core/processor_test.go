package core

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sessionlab/therapynotes/internal/core/extraction"
	"github.com/sessionlab/therapynotes/internal/core/merge"
	"github.com/sessionlab/therapynotes/internal/core/model"
	"github.com/sessionlab/therapynotes/internal/core/prompt"
	"github.com/sessionlab/therapynotes/internal/llm"
	"github.com/sessionlab/therapynotes/internal/sample"
	"github.com/sessionlab/therapynotes/internal/store"
)

type fakeStore struct {
	saved  []model.SessionRecord
	status store.Status
	err    error
}

func (f *fakeStore) SaveRecord(ctx context.Context, rec model.SessionRecord) (store.Status, error) {
	if f.err != nil {
		return f.status, f.err
	}
	f.saved = append(f.saved, rec)
	return store.StatusSaved, nil
}

func (f *fakeStore) GetSession(ctx context.Context, sessionID string) (store.SessionRow, error) {
	return store.SessionRow{}, store.ErrNotFound
}

func (f *fakeStore) ListParticipants(ctx context.Context, sessionID string) ([]model.SpeakerRecord, error) {
	return nil, nil
}

func (f *fakeStore) ListDynamics(ctx context.Context, sessionID string) ([]store.DynamicRow, error) {
	return nil, nil
}

func (f *fakeStore) Close() error { return nil }

type failingClient struct{ err error }

func (c *failingClient) Generate(ctx context.Context, req llm.Request) (string, error) {
	return "", c.err
}

func newTestProcessor(t *testing.T, client llm.Client, st store.RecordStore) *Processor {
	t.Helper()
	diag := extraction.NewDiagnostics(t.TempDir(), zerolog.Nop())
	ex := extraction.New(client, diag, extraction.DefaultOptions(), zerolog.Nop())
	merger := merge.New(diag, zerolog.Nop())
	return NewProcessor(ex, merger, st, prompt.DefaultSet(), zerolog.Nop())
}

func TestProcessEndToEndWithMockProvider(t *testing.T) {
	st := &fakeStore{}
	p := newTestProcessor(t, llm.NewMockClient(), st)

	result := p.Process(context.Background(), sample.GroupSession)

	require.True(t, result.Success, "error: %s", result.Error)
	assert.NotEmpty(t, result.SessionID)
	assert.Equal(t, store.StatusSaved, result.Persistence)
	require.NotNil(t, result.Data)
	require.Len(t, st.saved, 1)

	record := *result.Data
	assert.Equal(t, result.SessionID, record.SessionID)
	assert.NotEmpty(t, record.SessionDate)
	assert.Equal(t, "This session focused on emotional expression and coping strategies.", record.SessionSummary)
	assert.Len(t, record.SpeakerMapping, 5)

	// Universe: SPEAKER_00/01 from the general result plus 02/03/04
	// from the progress lists.
	ids := []string{}
	for _, s := range record.Speakers {
		ids = append(ids, s.SpeakerID)
	}
	sort.Strings(ids)
	assert.Equal(t, []string{"SPEAKER_00", "SPEAKER_01", "SPEAKER_02", "SPEAKER_03", "SPEAKER_04"}, ids)

	require.Len(t, record.EffectiveInterventions, 1)
	assert.Equal(t, "SPEAKER_01", record.EffectiveInterventions[0].IntervenerID)
}

func TestProcessTransportFailureAbortsRun(t *testing.T) {
	st := &fakeStore{}
	client := &failingClient{err: errors.New("API request failed: 500 - internal error")}
	p := newTestProcessor(t, client, st)

	result := p.Process(context.Background(), sample.AnxietySession)

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "500")
	assert.Nil(t, result.Data)
	assert.Empty(t, st.saved, "nothing may be persisted on an aborted run")
}

func TestProcessPersistenceFailureKeepsRecord(t *testing.T) {
	st := &fakeStore{status: store.StatusPartial, err: errors.New("disk full")}
	p := newTestProcessor(t, llm.NewMockClient(), st)

	result := p.Process(context.Background(), sample.AnxietySession)

	assert.False(t, result.Success)
	assert.Equal(t, store.StatusPartial, result.Persistence)
	assert.Contains(t, result.Error, "disk full")
	require.NotNil(t, result.Data, "computed record must survive a persistence failure")
	assert.NotEmpty(t, result.Data.Speakers)
}

func TestProcessWithoutStoreSkipsPersistence(t *testing.T) {
	p := newTestProcessor(t, llm.NewMockClient(), nil)

	result := p.Process(context.Background(), sample.AnxietySession)

	require.True(t, result.Success)
	assert.Empty(t, result.Persistence)
	require.NotNil(t, result.Data)
}
