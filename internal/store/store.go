// Package store defines the persistence capabilities for diaries.
//
// Store is the normalized, identifier-keyed representation supporting
// incremental appends; implementations live under internal/store/<driver>/
// (postgres, sqlite). DiaryStore is the narrower facade the journal service
// and CLI program against, with a snapshot-file variant alongside the
// normalized one, selected by configuration.
package store

import (
	"context"

	"github.com/daybook/daybook/internal/model"
)

// Store persists diaries, entries and metrics in three related tables keyed
// by identifier, so appending an entry never rewrites prior entries.
type Store interface {
	// CreateDiary inserts the diary row plus all of its entries and their
	// metric rows in one transaction. Fails with model.ErrDuplicate when the
	// owner key or any identifier already exists; an owner key maps to at
	// most one diary.
	CreateDiary(ctx context.Context, d *model.Diary, ownerKey string) error

	// CreateEntry inserts a single entry and its metric rows under an
	// existing diary. Fails with model.ErrDuplicate on an entry identifier
	// collision and model.ErrMissingParent when the diary does not exist.
	CreateEntry(ctx context.Context, diaryID string, e model.Entry) error

	// UpdateDiary persists only the most recently appended entry of d.
	// Callers must not append more than one entry between persists, or the
	// earlier ones are silently absent from the store; use CreateEntry per
	// entry when batching.
	UpdateDiary(ctx context.Context, d *model.Diary) error

	// LoadDiary reconstructs the diary for ownerKey, entries ordered by
	// timestamp ascending, each with its metric rows grouped under it (an
	// entry without metrics still appears, with an empty map). Fails with
	// model.ErrNotFound on no match and model.ErrIntegrity if the owner key
	// unexpectedly maps to several diaries.
	LoadDiary(ctx context.Context, ownerKey string) (*model.Diary, error)

	// DropAll clears all three tables, leaving the schema intact. Idempotent.
	DropAll(ctx context.Context) error

	// Close releases the underlying connections.
	Close() error
}

// DiaryStore is the capability consumers use to read and persist one owner's
// diary, independent of representation.
type DiaryStore interface {
	// Load returns the diary for ownerKey, model.ErrNotFound if absent.
	Load(ctx context.Context, ownerKey string) (*model.Diary, error)

	// Create persists a diary that does not exist yet in durable state.
	Create(ctx context.Context, d *model.Diary, ownerKey string) error

	// Append persists the most recently added entry of d.
	Append(ctx context.Context, d *model.Diary) error
}
