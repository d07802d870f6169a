// Package journal orchestrates diary mutation over a DiaryStore: every
// append is persisted immediately, so durable state never trails the
// in-memory diary by more than the operation in flight.
package journal

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/daybook/daybook/internal/model"
	"github.com/daybook/daybook/internal/store"
)

// Service wraps a DiaryStore with the single-writer append workflow.
type Service struct {
	store   store.DiaryStore
	factory model.Factory
	log     zerolog.Logger
}

// New builds a Service over ds. The entry factory defaults to the system
// clock and random identifiers.
func New(ds store.DiaryStore, log zerolog.Logger) *Service {
	return &Service{store: ds, factory: model.DefaultFactory, log: log}
}

// WithFactory overrides the entry factory (deterministic tests).
func (s *Service) WithFactory(f model.Factory) *Service {
	s.factory = f
	return s
}

// Open loads the owner's diary, or returns a fresh empty one named after
// the owner when none is stored yet.
func (s *Service) Open(ctx context.Context, ownerKey string) (*model.Diary, error) {
	d, err := s.store.Load(ctx, ownerKey)
	if errors.Is(err, model.ErrNotFound) {
		s.log.Debug().Str("owner", ownerKey).Msg("no stored diary, starting empty")
		return model.NewDiary(ownerKey), nil
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Append adds one entry built from text to the owner's diary and persists
// it before returning. A first append creates the diary in the store; later
// appends persist just the new entry.
func (s *Service) Append(ctx context.Context, ownerKey, text string) (*model.Diary, error) {
	d, err := s.store.Load(ctx, ownerKey)
	switch {
	case errors.Is(err, model.ErrNotFound):
		d = model.NewDiary(ownerKey)
		d.AddWith(s.factory, text)
		if err := s.store.Create(ctx, d, ownerKey); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		d.AddWith(s.factory, text)
		if err := s.store.Append(ctx, d); err != nil {
			return nil, err
		}
	}
	s.log.Info().Str("owner", ownerKey).Int("entries", len(d.Entries)).Msg("entry appended")
	return d, nil
}
