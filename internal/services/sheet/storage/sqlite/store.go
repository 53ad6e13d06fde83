// Package sqlite provides the SQLite-backed sheet store.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/louisbranch/hunter-sheet/internal/platform/id"
	"github.com/louisbranch/hunter-sheet/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/domain/activity"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/domain/character"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/domain/nen"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/storage"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/storage/sqlite/migrations"
)

// Store persists sheets and activity logs in SQLite. Characters are stored
// as a JSON payload next to the columns the list view needs.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens the store at path and applies embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)&_pragma=foreign_keys(ON)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return errors.New("storage is not configured")
	}
	return nil
}

// CreateCharacter inserts c, failing with storage.ErrAlreadyExists when the
// id is taken.
func (s *Store) CreateCharacter(ctx context.Context, c character.Character) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}
	payload, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode character: %w", err)
	}
	now := toMillis(s.now())
	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO characters (id, name, nickname, nen_type, hunter_level, payload, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Nickname, string(c.NenType), c.HunterLevel, string(payload), now, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("create character: %w", err)
	}
	return nil
}

// PutCharacter inserts or replaces c.
func (s *Store) PutCharacter(ctx context.Context, c character.Character) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	return putCharacter(ctx, s.sqlDB, c, s.now())
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func putCharacter(ctx context.Context, db execer, c character.Character, now time.Time) error {
	if err := c.Validate(); err != nil {
		return err
	}
	payload, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode character: %w", err)
	}
	ts := toMillis(now)
	_, err = db.ExecContext(ctx,
		`INSERT INTO characters (id, name, nickname, nen_type, hunter_level, payload, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name = excluded.name,
		   nickname = excluded.nickname,
		   nen_type = excluded.nen_type,
		   hunter_level = excluded.hunter_level,
		   payload = excluded.payload,
		   updated_at = excluded.updated_at`,
		c.ID, c.Name, c.Nickname, string(c.NenType), c.HunterLevel, string(payload), ts, ts,
	)
	if err != nil {
		return fmt.Errorf("put character: %w", err)
	}
	return nil
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// GetCharacter returns the sheet with id.
func (s *Store) GetCharacter(ctx context.Context, id string) (character.Character, error) {
	if err := s.ready(ctx); err != nil {
		return character.Character{}, err
	}
	return getCharacter(ctx, s.sqlDB, id)
}

func getCharacter(ctx context.Context, db queryRower, id string) (character.Character, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return character.Character{}, character.ErrIDRequired
	}
	var payload string
	err := db.QueryRowContext(ctx, `SELECT payload FROM characters WHERE id = ?`, id).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return character.Character{}, storage.ErrNotFound
		}
		return character.Character{}, fmt.Errorf("get character: %w", err)
	}
	var c character.Character
	if err := json.Unmarshal([]byte(payload), &c); err != nil {
		return character.Character{}, fmt.Errorf("decode character %s: %w", id, err)
	}
	return c, nil
}

// UpdateCharacter runs a read-modify-write of one sheet in a transaction.
func (s *Store) UpdateCharacter(ctx context.Context, id string, fn func(*character.Character) error) (character.Character, error) {
	if err := s.ready(ctx); err != nil {
		return character.Character{}, err
	}
	if fn == nil {
		return character.Character{}, errors.New("update function is required")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return character.Character{}, fmt.Errorf("begin update: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	c, err := getCharacter(ctx, tx, id)
	if err != nil {
		return character.Character{}, err
	}
	if err := fn(&c); err != nil {
		return character.Character{}, err
	}
	if c.ID != strings.TrimSpace(id) {
		return character.Character{}, errors.New("update must not change the character id")
	}
	if err := putCharacter(ctx, tx, c, s.now()); err != nil {
		return character.Character{}, err
	}
	if err := tx.Commit(); err != nil {
		return character.Character{}, fmt.Errorf("commit update: %w", err)
	}
	return c, nil
}

// ListCharacters returns one page of summaries ordered by id. The page
// token is the last id of the previous page.
func (s *Store) ListCharacters(ctx context.Context, pageSize int, pageToken string) (storage.CharacterPage, error) {
	if err := s.ready(ctx); err != nil {
		return storage.CharacterPage{}, err
	}
	if pageSize <= 0 {
		return storage.CharacterPage{}, errors.New("page size must be greater than zero")
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, name, nickname, nen_type, hunter_level, updated_at
		   FROM characters
		  WHERE id > ?
		  ORDER BY id ASC
		  LIMIT ?`,
		strings.TrimSpace(pageToken), pageSize+1,
	)
	if err != nil {
		return storage.CharacterPage{}, fmt.Errorf("list characters: %w", err)
	}
	defer rows.Close()

	page := storage.CharacterPage{Characters: make([]storage.CharacterSummary, 0, pageSize)}
	for rows.Next() {
		var summary storage.CharacterSummary
		var nenType string
		var updatedAt int64
		if err := rows.Scan(&summary.ID, &summary.Name, &summary.Nickname, &nenType, &summary.HunterLevel, &updatedAt); err != nil {
			return storage.CharacterPage{}, fmt.Errorf("list characters: %w", err)
		}
		summary.NenType = nen.Type(nenType)
		summary.UpdatedAt = fromMillis(updatedAt)
		page.Characters = append(page.Characters, summary)
	}
	if err := rows.Err(); err != nil {
		return storage.CharacterPage{}, fmt.Errorf("list characters: %w", err)
	}
	if len(page.Characters) > pageSize {
		page.Characters = page.Characters[:pageSize]
		page.NextPageToken = page.Characters[pageSize-1].ID
	}
	return page, nil
}

// AppendLogEntry stores entry, assigning an id and timestamp when missing.
func (s *Store) AppendLogEntry(ctx context.Context, entry activity.Entry) (activity.Entry, error) {
	if err := s.ready(ctx); err != nil {
		return activity.Entry{}, err
	}
	if strings.TrimSpace(entry.CharacterID) == "" {
		return activity.Entry{}, character.ErrIDRequired
	}
	if entry.ID == "" {
		newID, err := id.NewID()
		if err != nil {
			return activity.Entry{}, err
		}
		entry.ID = newID
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.now()
	}
	entry.CreatedAt = fromMillis(toMillis(entry.CreatedAt))

	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO log_entries (id, character_id, kind, code, subject, amount, detail, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.CharacterID, string(entry.Kind), entry.Code, entry.Subject, entry.Amount, entry.Detail, toMillis(entry.CreatedAt),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return activity.Entry{}, storage.ErrNotFound
		}
		if isUniqueViolation(err) {
			return activity.Entry{}, storage.ErrAlreadyExists
		}
		return activity.Entry{}, fmt.Errorf("append log entry: %w", err)
	}
	return entry, nil
}

// ListLogEntries returns up to limit entries for characterID, newest first.
func (s *Store) ListLogEntries(ctx context.Context, characterID string, limit int) ([]activity.Entry, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, errors.New("limit must be greater than zero")
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, character_id, kind, code, subject, amount, detail, created_at
		   FROM log_entries
		  WHERE character_id = ?
		  ORDER BY seq DESC
		  LIMIT ?`,
		strings.TrimSpace(characterID), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list log entries: %w", err)
	}
	defer rows.Close()

	var entries []activity.Entry
	for rows.Next() {
		var entry activity.Entry
		var kind string
		var createdAt int64
		if err := rows.Scan(&entry.ID, &entry.CharacterID, &kind, &entry.Code, &entry.Subject, &entry.Amount, &entry.Detail, &createdAt); err != nil {
			return nil, fmt.Errorf("list log entries: %w", err)
		}
		entry.Kind = activity.Kind(kind)
		entry.CreatedAt = fromMillis(createdAt)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list log entries: %w", err)
	}
	return entries, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

func isForeignKeyViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint failed")
}

var _ storage.Store = (*Store)(nil)
