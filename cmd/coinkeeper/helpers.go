package main

import (
	"github.com/akerkez/coinkeeper/internal/common"
	"github.com/akerkez/coinkeeper/internal/config"
	"github.com/akerkez/coinkeeper/internal/storage"
)

// initStore opens the SQLite-backed store at the configured path.
func initStore() (*storage.Store, config.Config, error) {
	cfg := config.Load()

	backend, err := storage.NewSQLiteBackend(cfg.StoragePath)
	if err != nil {
		return nil, cfg, common.NewUserError("could not open the data store at "+cfg.StoragePath, err)
	}
	return storage.NewStore(backend), cfg, nil
}
