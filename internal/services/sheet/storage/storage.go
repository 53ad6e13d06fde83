// Package storage defines persistence contracts for character sheets and
// their activity logs.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/louisbranch/hunter-sheet/internal/services/sheet/domain/activity"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/domain/character"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/domain/nen"
)

var (
	// ErrNotFound indicates a requested record is missing.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates a character id is already taken.
	ErrAlreadyExists = errors.New("record already exists")
)

// CharacterSummary is the list view of one sheet.
type CharacterSummary struct {
	ID          string
	Name        string
	Nickname    string
	NenType     nen.Type
	HunterLevel int
	UpdatedAt   time.Time
}

// CharacterPage is one page of summaries ordered by id.
type CharacterPage struct {
	Characters    []CharacterSummary
	NextPageToken string
}

// CharacterStore persists whole character sheets.
type CharacterStore interface {
	CreateCharacter(ctx context.Context, c character.Character) error
	PutCharacter(ctx context.Context, c character.Character) error
	GetCharacter(ctx context.Context, id string) (character.Character, error)
	// UpdateCharacter loads id, applies fn and saves the result atomically.
	// When fn returns an error nothing is written.
	UpdateCharacter(ctx context.Context, id string, fn func(*character.Character) error) (character.Character, error)
	ListCharacters(ctx context.Context, pageSize int, pageToken string) (CharacterPage, error)
}

// LogStore persists activity log entries.
type LogStore interface {
	AppendLogEntry(ctx context.Context, entry activity.Entry) (activity.Entry, error)
	// ListLogEntries returns up to limit entries, newest first.
	ListLogEntries(ctx context.Context, characterID string, limit int) ([]activity.Entry, error)
}

// Store is the full persistence surface used by the sheet service.
type Store interface {
	CharacterStore
	LogStore
}
