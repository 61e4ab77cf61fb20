package history

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/postarr/internal/outcome"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(Schema)
	require.NoError(t, err)
	return NewStore(db)
}

func TestStore_RunLifecycle(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)

	run, err := s.StartRun(ctx, "records.json", "plex")
	require.NoError(t, err)
	assert.Len(t, run.ID, 36)

	summary := outcome.NewSummary()
	for _, o := range []outcome.Outcome{
		{Status: outcome.Delivered, Message: "Heat (1995) | Poster updated in Movies", Library: "Movies", Title: "Heat"},
		{Status: outcome.NotFound, Message: "Nope (2001) | Movie not available on Plex", Title: "Nope"},
	} {
		summary.Record()
		summary.Add(o)
		require.NoError(t, s.AddOutcome(ctx, run.ID, o))
	}
	require.NoError(t, s.FinishRun(ctx, run.ID, summary))

	runs, err := s.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, run.ID, runs[0].ID)
	assert.Equal(t, "records.json", runs[0].Source)
	assert.Equal(t, 2, runs[0].Processed)
	assert.Equal(t, 1, runs[0].Updated)
	require.NotNil(t, runs[0].FinishedAt)

	entries, err := s.Outcomes(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, outcome.Delivered, entries[0].Status)
	assert.Equal(t, "Movies", entries[0].Library)
	assert.Equal(t, outcome.NotFound, entries[1].Status)
}

func TestStore_ListRunsNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)

	first, err := s.StartRun(ctx, "a.json", "plex")
	require.NoError(t, err)
	second, err := s.StartRun(ctx, "b.json", "filesystem")
	require.NoError(t, err)

	runs, err := s.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, second.ID, runs[0].ID)
	assert.Equal(t, first.ID, runs[1].ID)
	assert.Nil(t, runs[0].FinishedAt)

	runs, err = s.ListRuns(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestStore_Errors(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)

	err := s.FinishRun(ctx, "missing", outcome.NewSummary())
	assert.ErrorIs(t, err, ErrNotFound)

	err = s.AddOutcome(ctx, "missing", outcome.Outcome{Status: outcome.Failed, Message: "x"})
	assert.ErrorIs(t, err, ErrConstraint)

	run, err := s.StartRun(ctx, "a.json", "plex")
	require.NoError(t, err)
	err = s.AddOutcome(ctx, run.ID, outcome.Outcome{Status: "bogus", Message: "x"})
	assert.ErrorIs(t, err, ErrConstraint)
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.db")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	_, err = s.StartRun(context.Background(), "-", "plex")
	require.NoError(t, err)
	assert.FileExists(t, path)
}
