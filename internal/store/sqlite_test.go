package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/sar-cli/internal/model"
)

func newTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, s.Migrate(context.Background()))
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStore_RunLifecycle(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	run, err := s.CreateRun(ctx, "case-001", "Rapid Movement of Funds")
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, model.RunStatusRunning, run.Status)

	summary := &model.RunSummary{
		Origin:          "template",
		Sections:        5,
		Sentences:       24,
		ChecklistPassed: 8,
		ChecklistTotal:  8,
		DurationMS:      130,
	}
	require.NoError(t, s.CompleteRun(ctx, run.ID, summary))

	got, err := s.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusComplete, got.Status)
	assert.Equal(t, "case-001", got.CaseID)
	require.NotNil(t, got.Summary)
	assert.Equal(t, 5, got.Summary.Sections)
	assert.Equal(t, 24, got.Summary.Sentences)
}

func TestSQLiteStore_FailRun(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	run, err := s.CreateRun(ctx, "case-002", "Structuring")
	require.NoError(t, err)

	require.NoError(t, s.FailRun(ctx, run.ID, "producer unavailable"))

	got, err := s.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusFailed, got.Status)
	assert.Equal(t, "producer unavailable", got.Error)
	assert.Nil(t, got.Summary)
}

func TestSQLiteStore_NotFound(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	_, err := s.GetRun(ctx, "missing")
	assert.Error(t, err)

	assert.Error(t, s.CompleteRun(ctx, "missing", &model.RunSummary{}))
	assert.Error(t, s.FailRun(ctx, "missing", "x"))
}

func TestSQLiteStore_ListRuns(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	a, err := s.CreateRun(ctx, "case-a", "Structuring")
	require.NoError(t, err)
	_, err = s.CreateRun(ctx, "case-b", "Layering")
	require.NoError(t, err)
	require.NoError(t, s.CompleteRun(ctx, a.ID, &model.RunSummary{Origin: "claude"}))

	all, err := s.ListRuns(ctx, RunFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	complete, err := s.ListRuns(ctx, RunFilter{Status: model.RunStatusComplete})
	require.NoError(t, err)
	require.Len(t, complete, 1)
	assert.Equal(t, "case-a", complete[0].CaseID)

	byCase, err := s.ListRuns(ctx, RunFilter{CaseID: "case-b"})
	require.NoError(t, err)
	require.Len(t, byCase, 1)
	assert.Equal(t, model.RunStatusRunning, byCase[0].Status)

	limited, err := s.ListRuns(ctx, RunFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
