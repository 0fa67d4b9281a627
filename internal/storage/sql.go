package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/xaenox/campus-chatbot/internal/models"
	"github.com/xaenox/campus-chatbot/internal/retrieval"
)

//go:embed schema_postgres.sql schema_sqlite.sql
var schemas embed.FS

type DatabaseConfig struct {
	Driver   string // "postgres", "sqlite" or "memory"
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Path     string // sqlite database file
}

// SQLStorage implements Storage on top of database/sql, shared by the
// PostgreSQL and SQLite backends. The pooled *sql.DB is owned here and
// closed at shutdown; per-request scoping is the pool's job.
type SQLStorage struct {
	db      *sql.DB
	dialect retrieval.Dialect
	schema  string
	logger  *zap.Logger
}

func NewPostgresStorage(config DatabaseConfig, logger *zap.Logger) (*SQLStorage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.DBName, config.SSLMode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	return newSQLStorage(db, retrieval.DialectPostgres, "schema_postgres.sql", logger)
}

func NewSQLiteStorage(path string, logger *zap.Logger) (*SQLStorage, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	return newSQLStorage(db, retrieval.DialectSQLite, "schema_sqlite.sql", logger)
}

func newSQLStorage(db *sql.DB, dialect retrieval.Dialect, schema string, logger *zap.Logger) (*SQLStorage, error) {
	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	s := &SQLStorage{db: db, dialect: dialect, schema: schema, logger: logger}

	if err := s.initializeSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error initializing database schema: %w", err)
	}

	return s, nil
}

func (s *SQLStorage) initializeSchema() error {
	schemaSQL, err := schemas.ReadFile(s.schema)
	if err != nil {
		return fmt.Errorf("error reading schema file: %w", err)
	}

	if _, err := s.db.Exec(string(schemaSQL)); err != nil {
		return fmt.Errorf("error executing schema: %w", err)
	}

	return nil
}

func (s *SQLStorage) SearchFAQs(ctx context.Context, tokens []string, limit int) ([]models.FAQMatch, error) {
	q, ok := retrieval.BuildFAQQuery(s.dialect, tokens, limit)
	if !ok {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, fmt.Errorf("error querying faqs: %w", err)
	}
	defer rows.Close()

	var matches []models.FAQMatch
	for rows.Next() {
		var m models.FAQMatch
		if err := rows.Scan(&m.FAQ.ID, &m.FAQ.Category, &m.FAQ.Question, &m.FAQ.Answer, &m.Score); err != nil {
			return nil, fmt.Errorf("error scanning faq: %w", err)
		}
		// The WHERE clause already requires a hit, but a zero score must
		// never reach callers.
		if m.Score > 0 {
			matches = append(matches, m)
		}
	}

	return matches, rows.Err()
}

func (s *SQLStorage) SearchTable(ctx context.Context, table models.Table, tokens []string, limit int) ([]models.Record, error) {
	q, ok := retrieval.BuildTableQuery(s.dialect, table, tokens, limit)
	if !ok {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, fmt.Errorf("error querying %s: %w", table, err)
	}
	defer rows.Close()

	var records []models.Record
	for rows.Next() {
		record, err := scanRecord(table, rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning %s row: %w", table, err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

func scanRecord(table models.Table, rows *sql.Rows) (models.Record, error) {
	switch table {
	case models.TableSchedules:
		var r models.ClassSchedule
		err := rows.Scan(&r.ID, &r.Department, &r.Course, &r.Details)
		return r, err
	case models.TableDining:
		var r models.DiningVenue
		err := rows.Scan(&r.ID, &r.Name, &r.Menu, &r.Notes)
		return r, err
	case models.TableLibrary:
		var r models.LibrarySection
		err := rows.Scan(&r.ID, &r.Section, &r.Services, &r.Notes)
		return r, err
	case models.TableFacilities:
		var r models.Facility
		err := rows.Scan(&r.ID, &r.Name, &r.Description, &r.Location)
		return r, err
	default:
		return nil, fmt.Errorf("unknown table %q", table)
	}
}

func (s *SQLStorage) Reset(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting reset transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"faqs", "schedules", "dining", "facilities", "library"} {
		if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
			return fmt.Errorf("error dropping %s: %w", table, err)
		}
	}

	schemaSQL, err := schemas.ReadFile(s.schema)
	if err != nil {
		return fmt.Errorf("error reading schema file: %w", err)
	}
	if _, err := tx.ExecContext(ctx, string(schemaSQL)); err != nil {
		return fmt.Errorf("error recreating schema: %w", err)
	}

	if err := s.seed(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing reset: %w", err)
	}

	s.logger.Info("Reset campus dataset",
		zap.Int("faqs", len(seedFAQs)),
		zap.Int("schedules", len(seedSchedules)),
		zap.Int("dining", len(seedDining)),
		zap.Int("facilities", len(seedFacilities)),
		zap.Int("library", len(seedLibrary)))
	return nil
}

func (s *SQLStorage) seed(ctx context.Context, tx *sql.Tx) error {
	for _, f := range seedFAQs {
		if err := s.insert(ctx, tx, "faqs", []string{"category", "question", "answer"},
			f.Category, f.Question, f.Answer); err != nil {
			return err
		}
	}
	for _, r := range seedSchedules {
		if err := s.insert(ctx, tx, "schedules", []string{"department", "course", "details"},
			r.Department, r.Course, r.Details); err != nil {
			return err
		}
	}
	for _, d := range seedDining {
		if err := s.insert(ctx, tx, "dining", []string{"name", "menu", "notes"},
			d.Name, d.Menu, d.Notes); err != nil {
			return err
		}
	}
	for _, f := range seedFacilities {
		if err := s.insert(ctx, tx, "facilities", []string{"name", "description", "location"},
			f.Name, f.Description, f.Location); err != nil {
			return err
		}
	}
	for _, l := range seedLibrary {
		if err := s.insert(ctx, tx, "library", []string{"section", "services", "notes"},
			l.Section, l.Services, l.Notes); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLStorage) insert(ctx context.Context, tx *sql.Tx, table string, cols []string, args ...any) error {
	placeholders := make([]string, len(cols))
	for i := range cols {
		if s.dialect == retrieval.DialectPostgres {
			placeholders[i] = fmt.Sprintf("$%d", i+1)
		} else {
			placeholders[i] = "?"
		}
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(cols, ", "), strings.Join(placeholders, ", "))

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("error seeding %s: %w", table, err)
	}
	return nil
}

func (s *SQLStorage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLStorage) Close() error {
	return s.db.Close()
}
