package retrieval

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xaenox/campus-chatbot/internal/models"
)

func TestBuildTableQuery(t *testing.T) {
	q, ok := BuildTableQuery(DialectPostgres, models.TableSchedules, []string{"schedule", "room"}, 3)
	require.True(t, ok)

	// 2 tokens x 3 columns bound, plus the limit.
	assert.Len(t, q.Args, 7)
	assert.Equal(t, 3, q.Args[6])
	assert.Contains(t, q.SQL, "FROM schedules")
	assert.Contains(t, q.SQL, "department ILIKE '%' || $1 || '%'")
	assert.Contains(t, q.SQL, "ORDER BY id ASC LIMIT $7")
	assert.Equal(t, 5, strings.Count(q.SQL, " OR "))
}

func TestBuildTableQuerySQLitePlaceholders(t *testing.T) {
	q, ok := BuildTableQuery(DialectSQLite, models.TableDining, []string{"menu"}, 3)
	require.True(t, ok)

	assert.NotContains(t, q.SQL, "$1")
	assert.NotContains(t, q.SQL, "ILIKE")
	assert.Equal(t, 4, strings.Count(q.SQL, "?"))
}

// Tokens must only ever travel as bound arguments.
func TestBuildTableQueryNeverInlinesTokens(t *testing.T) {
	tok := "x' OR '1'='1"
	q, ok := BuildTableQuery(DialectPostgres, models.TableFacilities, []string{tok}, 3)
	require.True(t, ok)

	assert.NotContains(t, q.SQL, tok)
	assert.Contains(t, q.Args, any(tok))
}

func TestBuildTableQueryEmptyTokens(t *testing.T) {
	_, ok := BuildTableQuery(DialectPostgres, models.TableSchedules, nil, 3)
	assert.False(t, ok)
}

func TestBuildFAQQuery(t *testing.T) {
	q, ok := BuildFAQQuery(DialectPostgres, []string{"admission", "apply"}, 3)
	require.True(t, ok)

	// 2 tokens x 2 fields in the score expression, the same again in the
	// WHERE clause, plus the limit.
	assert.Len(t, q.Args, 9)
	assert.Equal(t, "admission", q.Args[0])
	assert.Equal(t, 3, q.Args[8])
	assert.Contains(t, q.SQL, "AS score FROM faqs WHERE ")
	assert.Contains(t, q.SQL, "ORDER BY score DESC, id ASC LIMIT $9")
	assert.Equal(t, 4, strings.Count(q.SQL, "CASE WHEN"))
}

func TestBuildFAQQueryEmptyTokens(t *testing.T) {
	_, ok := BuildFAQQuery(DialectSQLite, nil, 3)
	assert.False(t, ok)
}
