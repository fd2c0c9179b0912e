package main

import (
	"github.com/AlonBenyatov/dungeonloop/internal/config"
	"github.com/AlonBenyatov/dungeonloop/internal/logging"
	"github.com/AlonBenyatov/dungeonloop/internal/storage"
)

func loadConfigOrExit(path string) *config.LoadedConfig {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logging.Fatal("Failed to load configuration", err, logging.Fields{"path": path})
	}
	logging.Info("Configuration loaded", logging.Fields{
		"path":    path,
		"species": len(cfg.Species),
	})
	return cfg
}

func createRepositoryOrExit(dbPath string) storage.Repository {
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to open database", err, logging.Fields{"path": dbPath})
	}
	return storage.NewSQLiteRepository(db)
}
