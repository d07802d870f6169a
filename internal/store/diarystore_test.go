package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybook/daybook/internal/model"
	"github.com/daybook/daybook/internal/store"
)

func TestSnapshotDiaryStore(t *testing.T) {
	ctx := context.Background()
	ds := store.NewSnapshot(filepath.Join(t.TempDir(), "test.diary"))

	_, err := ds.Load(ctx, "username")
	assert.ErrorIs(t, err, model.ErrNotFound)

	d := &model.Diary{Name: "name"}
	d.Add("hello #mood 5")
	require.NoError(t, ds.Create(ctx, d, "username"))

	got, err := ds.Load(ctx, "username")
	require.NoError(t, err)
	assert.True(t, d.Equal(got))

	// snapshot Append rewrites the whole artifact
	d.Add("goodbye")
	require.NoError(t, ds.Append(ctx, d))
	got, err = ds.Load(ctx, "username")
	require.NoError(t, err)
	require.Len(t, got.Entries, 2)
	assert.Equal(t, "goodbye", got.Entries[1].Text)
}
