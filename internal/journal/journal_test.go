package journal

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybook/daybook/internal/model"
)

// --- Fakes ---

type fakeStore struct {
	diaries map[string]*model.Diary
	appends int
	creates int
}

func newFakeStore() *fakeStore {
	return &fakeStore{diaries: map[string]*model.Diary{}}
}

func (f *fakeStore) Load(_ context.Context, ownerKey string) (*model.Diary, error) {
	d, ok := f.diaries[ownerKey]
	if !ok {
		return nil, model.ErrNotFound
	}
	cp := *d
	cp.Entries = append([]model.Entry(nil), d.Entries...)
	return &cp, nil
}

func (f *fakeStore) Create(_ context.Context, d *model.Diary, ownerKey string) error {
	if _, ok := f.diaries[ownerKey]; ok {
		return model.ErrDuplicate
	}
	f.creates++
	f.diaries[ownerKey] = d
	return nil
}

func (f *fakeStore) Append(_ context.Context, d *model.Diary) error {
	f.appends++
	for key, stored := range f.diaries {
		if stored.ID == d.ID {
			f.diaries[key] = d
			return nil
		}
	}
	return model.ErrMissingParent
}

func testFactory() model.Factory {
	n := 0
	base := time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)
	return model.Factory{
		Now: func() time.Time {
			n++
			return base.Add(time.Duration(n) * time.Minute)
		},
		NewID: func() string { return fmt.Sprintf("id-%d", n) },
	}
}

func TestAppendCreatesDiaryOnFirstEntry(t *testing.T) {
	fs := newFakeStore()
	svc := New(fs, zerolog.Nop()).WithFactory(testFactory())

	d, err := svc.Append(context.Background(), "username", "hello #mood 5")
	require.NoError(t, err)

	assert.Equal(t, 1, fs.creates)
	assert.Equal(t, 0, fs.appends)
	require.Len(t, d.Entries, 1)
	assert.Equal(t, map[string]float64{"mood": 5}, d.Entries[0].Metrics)
}

func TestAppendPersistsEveryEntry(t *testing.T) {
	fs := newFakeStore()
	svc := New(fs, zerolog.Nop()).WithFactory(testFactory())
	ctx := context.Background()

	_, err := svc.Append(ctx, "username", "first")
	require.NoError(t, err)
	_, err = svc.Append(ctx, "username", "second")
	require.NoError(t, err)
	d, err := svc.Append(ctx, "username", "third")
	require.NoError(t, err)

	assert.Equal(t, 1, fs.creates)
	assert.Equal(t, 2, fs.appends, "each append after the first persists immediately")
	assert.Len(t, d.Entries, 3)

	stored, err := fs.Load(ctx, "username")
	require.NoError(t, err)
	assert.True(t, d.Equal(stored), "durable state matches the in-memory diary")
}

func TestOpenReturnsEmptyDiaryWhenUnstored(t *testing.T) {
	svc := New(newFakeStore(), zerolog.Nop())

	d, err := svc.Open(context.Background(), "username")
	require.NoError(t, err)
	assert.Equal(t, "username", d.Name)
	assert.Empty(t, d.Entries)
}

func TestOpenLoadsStoredDiary(t *testing.T) {
	fs := newFakeStore()
	svc := New(fs, zerolog.Nop()).WithFactory(testFactory())
	ctx := context.Background()

	_, err := svc.Append(ctx, "username", "hello")
	require.NoError(t, err)

	d, err := svc.Open(ctx, "username")
	require.NoError(t, err)
	require.Len(t, d.Entries, 1)
	assert.Equal(t, "hello", d.Entries[0].Text)
}
