package lexicon

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// SQLiteSource serves rules from a SQLite table. Suitable for deployments
// where translations are maintained in a database rather than flat files.
//
// The table has one column per Rule field:
//
//	CREATE TABLE IF NOT EXISTS translations (
//	    id          INTEGER PRIMARY KEY AUTOINCREMENT,
//	    key         TEXT NOT NULL,
//	    language    TEXT NOT NULL,
//	    context     TEXT NOT NULL DEFAULT '',
//	    priority    INTEGER NOT NULL DEFAULT 0,
//	    expression  TEXT NOT NULL DEFAULT '',
//	    translation TEXT NOT NULL
//	)
type SQLiteSource struct {
	db    *sql.DB
	table string
}

// SQLiteConfig configures the SQLite rule repository.
type SQLiteConfig struct {
	// Path is the database file path, or ":memory:" for an in-memory store.
	Path string

	// Table is the translations table name. Default: "translations".
	Table string

	// BusyTimeout is how long to wait for locks before failing.
	// Default: 5 seconds.
	BusyTimeout time.Duration
}

// NewSQLiteSource opens the database, creates the schema when missing, and
// returns the repository.
func NewSQLiteSource(cfg SQLiteConfig) (*SQLiteSource, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("sqlite path cannot be empty")
	}
	if cfg.Table == "" {
		cfg.Table = "translations"
	}
	if cfg.BusyTimeout == 0 {
		cfg.BusyTimeout = 5 * time.Second
	}

	dsn := fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(%d)&_pragma=synchronous(NORMAL)",
		cfg.Path, cfg.BusyTimeout.Milliseconds())

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	s := &SQLiteSource{db: db, table: cfg.Table}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

func (s *SQLiteSource) initSchema() error {
	schema := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			key         TEXT NOT NULL,
			language    TEXT NOT NULL,
			context     TEXT NOT NULL DEFAULT '',
			priority    INTEGER NOT NULL DEFAULT 0,
			expression  TEXT NOT NULL DEFAULT '',
			translation TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_%s_lookup ON %s (key, context, language);
	`, s.table, s.table, s.table)

	_, err := s.db.Exec(schema)
	return err
}

// Rules implements Repository.
func (s *SQLiteSource) Rules(ctx context.Context, q Query) ([]Rule, error) {
	if len(q.Languages) == 0 {
		return nil, nil
	}

	placeholders := strings.Repeat("?,", len(q.Languages))
	placeholders = placeholders[:len(placeholders)-1]

	query := fmt.Sprintf(
		`SELECT key, language, context, priority, expression, translation
		 FROM %s
		 WHERE key = ? AND context = ? AND language IN (%s)
		 ORDER BY id`,
		s.table, placeholders,
	)

	args := make([]any, 0, 2+len(q.Languages))
	args = append(args, q.Key, q.Context)
	for _, lang := range q.Languages {
		args = append(args, lang)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query translations: %w", err)
	}
	defer rows.Close()

	var rules []Rule
	for rows.Next() {
		var r Rule
		if err := rows.Scan(&r.Key, &r.Language, &r.Context, &r.Priority, &r.Expression, &r.Translation); err != nil {
			return nil, fmt.Errorf("failed to scan translation row: %w", err)
		}
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("invalid translation row: %w", err)
		}
		rules = append(rules, r)
	}
	return rules, rows.Err()
}

// Insert stores rules in the table. Used by import tooling and tests.
func (s *SQLiteSource) Insert(ctx context.Context, rules ...Rule) error {
	stmt := fmt.Sprintf(
		`INSERT INTO %s (key, language, context, priority, expression, translation)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		s.table,
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	for _, r := range rules {
		if err := r.Validate(); err != nil {
			tx.Rollback()
			return err
		}
		if _, err := tx.ExecContext(ctx, stmt, r.Key, r.Language, r.Context, r.Priority, r.Expression, r.Translation); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert translation: %w", err)
		}
	}
	return tx.Commit()
}

// Close releases the database handle.
func (s *SQLiteSource) Close() error {
	return s.db.Close()
}
