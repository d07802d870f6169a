package factory

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/daybook/daybook/internal/config"
	"github.com/daybook/daybook/internal/model"
)

func TestNewDiaryStore_Sqlite(t *testing.T) {
	cfg := &config.Config{
		StoreBackend: "sqlite",
		SQLitePath:   filepath.Join(t.TempDir(), "daybook.db"),
	}
	ds, release, err := NewDiaryStore(cfg)
	if err != nil {
		t.Fatalf("build sqlite backend: %v", err)
	}
	defer func() { _ = release() }()

	d := &model.Diary{ID: "d1", Name: "name"}
	if err := ds.Create(context.Background(), d, "username"); err != nil {
		t.Fatalf("create through facade: %v", err)
	}
	if _, err := ds.Load(context.Background(), "username"); err != nil {
		t.Fatalf("load through facade: %v", err)
	}
}

func TestNewDiaryStore_Snapshot(t *testing.T) {
	cfg := &config.Config{
		StoreBackend: "snapshot",
		SnapshotPath: filepath.Join(t.TempDir(), "test.diary"),
	}
	ds, release, err := NewDiaryStore(cfg)
	if err != nil {
		t.Fatalf("build snapshot backend: %v", err)
	}
	defer func() { _ = release() }()

	if err := ds.Create(context.Background(), &model.Diary{Name: "name"}, "username"); err != nil {
		t.Fatalf("create through facade: %v", err)
	}
}

func TestNewDiaryStore_UnknownBackend(t *testing.T) {
	if _, _, err := NewDiaryStore(&config.Config{StoreBackend: "mongodb"}); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}
