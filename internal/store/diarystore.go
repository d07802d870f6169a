package store

import (
	"context"

	"github.com/daybook/daybook/internal/model"
	"github.com/daybook/daybook/internal/snapshot"
)

// NewNormalized adapts a normalized Store to the DiaryStore capability.
func NewNormalized(s Store) DiaryStore { return &normalized{s: s} }

type normalized struct{ s Store }

func (n *normalized) Load(ctx context.Context, ownerKey string) (*model.Diary, error) {
	return n.s.LoadDiary(ctx, ownerKey)
}

func (n *normalized) Create(ctx context.Context, d *model.Diary, ownerKey string) error {
	return n.s.CreateDiary(ctx, d, ownerKey)
}

func (n *normalized) Append(ctx context.Context, d *model.Diary) error {
	return n.s.UpdateDiary(ctx, d)
}

// NewSnapshot returns a DiaryStore backed by a single snapshot artifact.
// The owner key is not part of the artifact; one path holds one diary.
func NewSnapshot(path string) DiaryStore { return &snapshotStore{path: path} }

type snapshotStore struct{ path string }

func (s *snapshotStore) Load(_ context.Context, _ string) (*model.Diary, error) {
	return snapshot.Load(s.path)
}

func (s *snapshotStore) Create(_ context.Context, d *model.Diary, _ string) error {
	return snapshot.Save(s.path, d)
}

// Append rewrites the whole artifact; the snapshot format has no
// incremental path.
func (s *snapshotStore) Append(_ context.Context, d *model.Diary) error {
	return snapshot.Save(s.path, d)
}
