package factory

import (
	"fmt"

	"github.com/daybook/daybook/internal/config"
	"github.com/daybook/daybook/internal/store"
	"github.com/daybook/daybook/internal/store/postgres"
	"github.com/daybook/daybook/internal/store/sqlite"
)

// NewDiaryStore selects the persistence backend from cfg.StoreBackend and
// returns the capability plus a release func for the underlying resources.
func NewDiaryStore(cfg *config.Config) (store.DiaryStore, func() error, error) {
	switch cfg.StoreBackend {
	case "snapshot":
		return store.NewSnapshot(cfg.SnapshotPath), func() error { return nil }, nil
	case "sqlite":
		s, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return store.NewNormalized(s), s.Close, nil
	case "postgres":
		s, err := postgres.New(cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		return store.NewNormalized(s), s.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown STORE_BACKEND: %s", cfg.StoreBackend)
	}
}
