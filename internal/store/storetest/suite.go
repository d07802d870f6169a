// Package storetest holds a conformance suite every store.Store driver must
// pass. Drivers call Run from their own tests with a clean, isolated store.
package storetest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybook/daybook/internal/model"
	"github.com/daybook/daybook/internal/store"
)

func sampleDiary() *model.Diary {
	return &model.Diary{
		ID:   uuid.NewString(),
		Name: "name",
		Entries: []model.Entry{
			{ID: uuid.NewString(), Timestamp: "2001-01-01", Text: "entry1", Metrics: map[string]float64{}},
			{ID: uuid.NewString(), Timestamp: "2001-01-02", Text: "entry2", Metrics: map[string]float64{"metric": 0, "tag": 2}},
			{ID: uuid.NewString(), Timestamp: "2001-01-03", Text: "entry3", Metrics: map[string]float64{"metric": 2, "mood": 1}},
		},
	}
}

// Run exercises the full Store contract against the implementation returned
// by makeStore. Each subtest gets a fresh store.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()

	t.Run("CreateLoadRoundTrip", func(t *testing.T) {
		s := makeStore(t)
		ctx := context.Background()
		d := sampleDiary()

		require.NoError(t, s.CreateDiary(ctx, d, "username"))
		got, err := s.LoadDiary(ctx, "username")
		require.NoError(t, err)
		assert.True(t, d.Equal(got), "load_diary(create_diary(d)) should equal d")
		// the entry without metric rows still appears, via the outer join
		assert.Equal(t, map[string]float64{}, got.Entries[0].Metrics)
	})

	t.Run("LoadOrdersByTimestamp", func(t *testing.T) {
		s := makeStore(t)
		ctx := context.Background()
		d := &model.Diary{ID: uuid.NewString(), Name: "name", Entries: []model.Entry{
			{ID: uuid.NewString(), Timestamp: "2001-01-03", Text: "third", Metrics: map[string]float64{}},
			{ID: uuid.NewString(), Timestamp: "2001-01-01", Text: "first", Metrics: map[string]float64{"mood": 1}},
			{ID: uuid.NewString(), Timestamp: "2001-01-02", Text: "second", Metrics: map[string]float64{}},
		}}

		require.NoError(t, s.CreateDiary(ctx, d, "username"))
		got, err := s.LoadDiary(ctx, "username")
		require.NoError(t, err)
		require.Len(t, got.Entries, 3)
		assert.Equal(t, "first", got.Entries[0].Text)
		assert.Equal(t, "second", got.Entries[1].Text)
		assert.Equal(t, "third", got.Entries[2].Text)
	})

	t.Run("CreateEntryAppends", func(t *testing.T) {
		s := makeStore(t)
		ctx := context.Background()
		d := sampleDiary()
		require.NoError(t, s.CreateDiary(ctx, d, "username"))

		extra := model.Entry{ID: uuid.NewString(), Timestamp: "2001-01-04", Text: "entry4", Metrics: map[string]float64{"metric": 5, "goal": 10}}
		require.NoError(t, s.CreateEntry(ctx, d.ID, extra))

		got, err := s.LoadDiary(ctx, "username")
		require.NoError(t, err)
		require.Len(t, got.Entries, 4)
		assert.True(t, extra.Equal(got.Entries[3]))
	})

	t.Run("UpdateDiaryPersistsLatest", func(t *testing.T) {
		s := makeStore(t)
		ctx := context.Background()
		d := sampleDiary()
		require.NoError(t, s.CreateDiary(ctx, d, "username"))

		d.Entries = append(d.Entries, model.Entry{ID: uuid.NewString(), Timestamp: "2001-01-04", Text: "entry4 #mood 5", Metrics: map[string]float64{"mood": 5}})
		require.NoError(t, s.UpdateDiary(ctx, d))

		got, err := s.LoadDiary(ctx, "username")
		require.NoError(t, err)
		require.Len(t, got.Entries, 4)
		assert.Equal(t, "entry4 #mood 5", got.Entries[3].Text)
	})

	t.Run("Uniqueness", func(t *testing.T) {
		s := makeStore(t)
		ctx := context.Background()
		d := sampleDiary()
		require.NoError(t, s.CreateDiary(ctx, d, "username"))

		assert.ErrorIs(t, s.CreateDiary(ctx, d, "username"), model.ErrDuplicate)

		other := &model.Diary{ID: uuid.NewString(), Name: "name2", Entries: nil}
		assert.ErrorIs(t, s.CreateDiary(ctx, other, "username"), model.ErrDuplicate,
			"one diary per owner key")

		assert.ErrorIs(t, s.CreateEntry(ctx, d.ID, d.Entries[0]), model.ErrDuplicate,
			"entry identifiers are unique")
	})

	t.Run("UniquenessFailureInsertsNothing", func(t *testing.T) {
		s := makeStore(t)
		ctx := context.Background()
		d := sampleDiary()
		require.NoError(t, s.CreateDiary(ctx, d, "username"))

		// same entry identifiers under a fresh owner: whole create must roll back
		dup := &model.Diary{ID: uuid.NewString(), Name: "other", Entries: d.Entries}
		require.ErrorIs(t, s.CreateDiary(ctx, dup, "other-user"), model.ErrDuplicate)

		_, err := s.LoadDiary(ctx, "other-user")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("CreateEntryUnknownDiary", func(t *testing.T) {
		s := makeStore(t)
		ctx := context.Background()
		e := model.Entry{ID: uuid.NewString(), Timestamp: "2001-01-01", Text: "orphan", Metrics: map[string]float64{}}
		assert.ErrorIs(t, s.CreateEntry(ctx, uuid.NewString(), e), model.ErrMissingParent)
	})

	t.Run("LoadUnknownOwner", func(t *testing.T) {
		s := makeStore(t)
		_, err := s.LoadDiary(context.Background(), "nobody")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("DropAllIdempotent", func(t *testing.T) {
		s := makeStore(t)
		ctx := context.Background()
		require.NoError(t, s.CreateDiary(ctx, sampleDiary(), "username"))

		require.NoError(t, s.DropAll(ctx))
		require.NoError(t, s.DropAll(ctx), "dropping twice leaves the same empty state")

		_, err := s.LoadDiary(ctx, "username")
		assert.ErrorIs(t, err, model.ErrNotFound)

		// schema stays intact: the store keeps working
		assert.NoError(t, s.CreateDiary(ctx, sampleDiary(), "username"))
	})
}
