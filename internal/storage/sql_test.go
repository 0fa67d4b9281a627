package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xaenox/campus-chatbot/internal/models"
)

func newSQLiteTestStorage(t *testing.T) *SQLStorage {
	t.Helper()
	path := filepath.Join(t.TempDir(), "campus.db")
	s, err := NewSQLiteStorage(path, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.Reset(context.Background()))
	return s
}

func TestSQLiteSearchFAQs(t *testing.T) {
	s := newSQLiteTestStorage(t)

	matches, err := s.SearchFAQs(context.Background(), []string{"apply", "admission"}, 3)
	require.NoError(t, err)
	require.NotEmpty(t, matches)

	assert.Equal(t, "Admissions", matches[0].FAQ.Category)
	assert.Greater(t, matches[0].Score, 0)
	for i := 1; i < len(matches); i++ {
		assert.LessOrEqual(t, matches[i].Score, matches[i-1].Score)
	}
}

func TestSQLiteSearchFAQsEmptyTokens(t *testing.T) {
	s := newSQLiteTestStorage(t)

	matches, err := s.SearchFAQs(context.Background(), nil, 3)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestSQLiteSearchTable(t *testing.T) {
	s := newSQLiteTestStorage(t)

	records, err := s.SearchTable(context.Background(), models.TableSchedules, []string{"COMPUTER"}, 3)
	require.NoError(t, err)
	require.Len(t, records, 1)

	sched, ok := records[0].(models.ClassSchedule)
	require.True(t, ok)
	assert.Equal(t, "Computer Science", sched.Department)
	assert.Contains(t, sched.Details, "10:00-11:30")
}

func TestSQLiteSearchTableNoMatch(t *testing.T) {
	s := newSQLiteTestStorage(t)

	records, err := s.SearchTable(context.Background(), models.TableDining, []string{"zzzzz"}, 3)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSQLiteResetIsRepeatable(t *testing.T) {
	s := newSQLiteTestStorage(t)
	require.NoError(t, s.Reset(context.Background()))

	matches, err := s.SearchFAQs(context.Background(), []string{"admission"}, 10)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, int64(1), matches[0].FAQ.ID)
}
