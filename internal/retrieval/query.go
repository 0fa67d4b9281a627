package retrieval

import (
	"fmt"
	"strings"

	"github.com/xaenox/campus-chatbot/internal/models"
)

// Dialect selects placeholder style and case-insensitive match operator for
// the SQL backends.
type Dialect int

const (
	DialectPostgres Dialect = iota
	DialectSQLite
)

func (d Dialect) placeholder(n int) string {
	if d == DialectPostgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

func (d Dialect) like() string {
	if d == DialectPostgres {
		return "ILIKE"
	}
	// SQLite LIKE is already case-insensitive for ASCII.
	return "LIKE"
}

// Query is a SQL statement with its bound arguments. Tokens are only ever
// passed as arguments, never spliced into the statement text.
type Query struct {
	SQL  string
	Args []any
}

// queryBuilder accumulates SQL text and one bound argument per placeholder.
type queryBuilder struct {
	dialect Dialect
	sql     strings.Builder
	args    []any
}

func (b *queryBuilder) write(s string) {
	b.sql.WriteString(s)
}

// bind appends v as an argument and writes its placeholder.
func (b *queryBuilder) bind(v any) {
	b.args = append(b.args, v)
	b.sql.WriteString(b.dialect.placeholder(len(b.args)))
}

// substring writes "col LIKE '%' || ? || '%'" with tok bound.
func (b *queryBuilder) substring(col, tok string) {
	b.write(col)
	b.write(" ")
	b.write(b.dialect.like())
	b.write(" '%' || ")
	b.bind(tok)
	b.write(" || '%'")
}

// BuildTableQuery builds the OR-substring lookup for one specialized table:
// a row qualifies when any token is a substring of any searchable column.
// Returns false when there is nothing to match on.
func BuildTableQuery(d Dialect, table models.Table, tokens []string, limit int) (Query, bool) {
	cols := table.SearchColumns()
	if len(tokens) == 0 || len(cols) == 0 {
		return Query{}, false
	}

	b := &queryBuilder{dialect: d}
	b.write("SELECT id, ")
	b.write(strings.Join(cols, ", "))
	b.write(" FROM ")
	b.write(string(table))
	b.write(" WHERE ")
	for i, tok := range tokens {
		for j, col := range cols {
			if i > 0 || j > 0 {
				b.write(" OR ")
			}
			b.substring(col, tok)
		}
	}
	b.write(" ORDER BY id ASC LIMIT ")
	b.bind(limit)

	return Query{SQL: b.sql.String(), Args: b.args}, true
}

// BuildFAQQuery builds the scored FAQ lookup: score counts (token, field)
// substring hits across question and answer, rows are ordered by score
// descending then id ascending. Zero-score rows cannot appear because the
// WHERE clause requires at least one hit, but callers still re-check the
// scanned score.
func BuildFAQQuery(d Dialect, tokens []string, limit int) (Query, bool) {
	if len(tokens) == 0 {
		return Query{}, false
	}

	b := &queryBuilder{dialect: d}
	b.write("SELECT id, category, question, answer, ")
	for i, tok := range tokens {
		if i > 0 {
			b.write(" + ")
		}
		for j, col := range []string{"question", "answer"} {
			if j > 0 {
				b.write(" + ")
			}
			b.write("(CASE WHEN ")
			b.substring(col, tok)
			b.write(" THEN 1 ELSE 0 END)")
		}
	}
	b.write(" AS score FROM faqs WHERE ")
	for i, tok := range tokens {
		for j, col := range []string{"question", "answer"} {
			if i > 0 || j > 0 {
				b.write(" OR ")
			}
			b.substring(col, tok)
		}
	}
	b.write(" ORDER BY score DESC, id ASC LIMIT ")
	b.bind(limit)

	return Query{SQL: b.sql.String(), Args: b.args}, true
}
