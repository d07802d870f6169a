// Package sqlite implements store.Store on SQLite via modernc.org/sqlite.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	sqlite "modernc.org/sqlite"
	sqlitelib "modernc.org/sqlite/lib"

	"github.com/daybook/daybook/internal/model"
	"github.com/daybook/daybook/internal/store"
)

// Open opens (or creates) a SQLite database at path with WAL journal mode
// and foreign keys enforced.
func Open(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// New opens the database at path, ensures the schema exists and returns the
// store. Schema initialization is lazy and idempotent: first use of a fresh
// file creates the three empty tables.
func New(path string) (store.Store, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	return NewWithDB(db)
}

// NewWithDB wires the store over an existing connection (used by the factory
// and by tests).
func NewWithDB(db *sql.DB) (store.Store, error) {
	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &sqliteStore{db: db}, nil
}

func ensureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS diary (
            uuid TEXT PRIMARY KEY,
            owner_key TEXT NOT NULL UNIQUE,
            name TEXT NOT NULL
        );`,
		`CREATE TABLE IF NOT EXISTS entry (
            uuid TEXT PRIMARY KEY,
            diary_uuid TEXT NOT NULL REFERENCES diary(uuid),
            timestamp TEXT NOT NULL,
            text TEXT NOT NULL
        );`,
		`CREATE INDEX IF NOT EXISTS entry_diary_idx ON entry(diary_uuid, timestamp);`,
		`CREATE TABLE IF NOT EXISTS metric (
            entry_uuid TEXT NOT NULL REFERENCES entry(uuid),
            name TEXT NOT NULL,
            value REAL NOT NULL
        );`,
		`CREATE INDEX IF NOT EXISTS metric_entry_idx ON metric(entry_uuid);`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

type sqliteStore struct {
	db *sql.DB
}

func (s *sqliteStore) Close() error { return s.db.Close() }

func (s *sqliteStore) CreateDiary(ctx context.Context, d *model.Diary, ownerKey string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO diary (uuid, owner_key, name) VALUES (?,?,?)`,
		d.ID, ownerKey, d.Name); err != nil {
		return fmt.Errorf("create diary: %w", mapErr(err))
	}
	for _, e := range d.Entries {
		if err := insertEntry(ctx, tx, d.ID, e); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *sqliteStore) CreateEntry(ctx context.Context, diaryID string, e model.Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := insertEntry(ctx, tx, diaryID, e); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *sqliteStore) UpdateDiary(ctx context.Context, d *model.Diary) error {
	latest, ok := d.Latest()
	if !ok {
		return fmt.Errorf("update diary: no entries: %w", model.ErrInvalidInput)
	}
	return s.CreateEntry(ctx, d.ID, latest)
}

func (s *sqliteStore) LoadDiary(ctx context.Context, ownerKey string) (*model.Diary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT uuid, name FROM diary WHERE owner_key = ?`, ownerKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var found []*model.Diary
	for rows.Next() {
		var d model.Diary
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, err
		}
		found = append(found, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	switch {
	case len(found) == 0:
		return nil, fmt.Errorf("diary for owner %q: %w", ownerKey, model.ErrNotFound)
	case len(found) > 1:
		// unreachable under the UNIQUE constraint, checked defensively
		return nil, fmt.Errorf("owner %q has %d diaries: %w", ownerKey, len(found), model.ErrIntegrity)
	}
	d := found[0]

	d.Entries, err = loadEntries(ctx, s.db, d.ID)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (s *sqliteStore) DropAll(ctx context.Context) error {
	for _, table := range []string{"metric", "entry", "diary"} {
		if _, err := s.db.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("drop %s: %w", table, err)
		}
	}
	return nil
}

func insertEntry(ctx context.Context, tx *sql.Tx, diaryID string, e model.Entry) error {
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO entry (uuid, diary_uuid, timestamp, text) VALUES (?,?,?,?)`,
		e.ID, diaryID, e.Timestamp, e.Text); err != nil {
		return fmt.Errorf("create entry: %w", mapErr(err))
	}
	for name, value := range e.Metrics {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO metric (entry_uuid, name, value) VALUES (?,?,?)`,
			e.ID, name, value); err != nil {
			return fmt.Errorf("create metric: %w", mapErr(err))
		}
	}
	return nil
}

// loadEntries reconstructs the ordered entry list for a diary, grouping
// metric rows under their parent entry. The LEFT JOIN keeps entries with no
// metric rows; they come back with an empty map.
func loadEntries(ctx context.Context, db *sql.DB, diaryID string) ([]model.Entry, error) {
	rows, err := db.QueryContext(ctx, `
        SELECT entry.uuid, entry.timestamp, entry.text, metric.name, metric.value
        FROM entry LEFT JOIN metric ON entry.uuid = metric.entry_uuid
        WHERE entry.diary_uuid = ?
        ORDER BY entry.timestamp, entry.uuid`, diaryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]model.Entry, 0)
	index := make(map[string]int)
	for rows.Next() {
		var (
			id, timestamp, text string
			name                sql.NullString
			value               sql.NullFloat64
		)
		if err := rows.Scan(&id, &timestamp, &text, &name, &value); err != nil {
			return nil, err
		}
		i, ok := index[id]
		if !ok {
			entries = append(entries, model.Entry{ID: id, Timestamp: timestamp, Text: text, Metrics: map[string]float64{}})
			i = len(entries) - 1
			index[id] = i
		}
		if name.Valid {
			entries[i].Metrics[name.String] = value.Float64
		}
	}
	return entries, rows.Err()
}

// mapErr translates driver constraint failures into the model's sentinels.
func mapErr(err error) error {
	var se *sqlite.Error
	if errors.As(err, &se) {
		switch {
		case se.Code() == sqlitelib.SQLITE_CONSTRAINT_FOREIGNKEY:
			return model.ErrMissingParent
		case se.Code()&0xff == sqlitelib.SQLITE_CONSTRAINT:
			return model.ErrDuplicate
		}
	}
	return err
}
