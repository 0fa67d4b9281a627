package storage

import (
	"context"

	"github.com/xaenox/campus-chatbot/internal/models"
)

// Storage is the read-mostly view of the campus dataset. Searches are
// request-scoped and never mutate anything; Reset is the one write path and
// must not run concurrently with read traffic.
type Storage interface {
	// SearchFAQs returns FAQs where at least one token is a case-insensitive
	// substring of the question or answer, scored by hit count and ordered
	// by score descending then id ascending. Empty tokens yield no matches.
	SearchFAQs(ctx context.Context, tokens []string, limit int) ([]models.FAQMatch, error)

	// SearchTable returns rows of the given specialized table where any
	// token is a case-insensitive substring of any searchable column,
	// ordered by id ascending. Empty tokens yield no matches.
	SearchTable(ctx context.Context, table models.Table, tokens []string, limit int) ([]models.Record, error)

	// Reset drops and recreates the five relations and loads the sample
	// dataset. Administrative; callers serialize it against read traffic.
	Reset(ctx context.Context) error

	Ping(ctx context.Context) error
	Close() error
}
