// Command import loads vocabulary from an .xlsx workbook into the
// database. Usage: import <file.xlsx>
package main

import (
	"context"
	"os"

	"github.com/tijeane/quran-learning/internal/config"
	"github.com/tijeane/quran-learning/internal/db"
	"github.com/tijeane/quran-learning/internal/importer"
	"github.com/tijeane/quran-learning/internal/logger"
	"github.com/tijeane/quran-learning/internal/repository/sqlite"
)

func main() {
	cfg := config.Load()

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	if len(os.Args) != 2 {
		log.Error("usage: import <file.xlsx>")
		os.Exit(2)
	}
	path := os.Args[1]

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer database.Close()

	imp := importer.New(sqlite.NewWordRepository(database.DB))
	summary, err := imp.ImportFile(context.Background(), path)
	if err != nil {
		log.Error("import failed: %v", err)
		os.Exit(1)
	}

	log.Info("imported %d words, skipped %d", summary.Imported, summary.Skipped)
}
