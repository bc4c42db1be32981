package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"resume-scorer/internal/catalog"
	"resume-scorer/internal/extract"
	"resume-scorer/internal/scoring"
	"resume-scorer/internal/shared/storage/db"
	"resume-scorer/internal/shared/telemetry"
)

// loadTable reads the skill catalog from Postgres when a URL is configured and
// falls back to the built-in table otherwise.
func loadTable(ctx context.Context) scoring.Table {
	url := strings.TrimSpace(dbURL)
	if url == "" {
		url = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}
	if url == "" {
		return scoring.DefaultTable()
	}
	sqlDB, err := db.Connect(ctx, url, db.OptionsFromEnv(db.DefaultCLIOptions()))
	if err != nil {
		telemetry.Warn("catalog.connect_failed", map[string]any{"error": err.Error()})
		return scoring.DefaultTable()
	}
	defer sqlDB.Close()
	return catalog.LoadOrDefault(ctx, catalog.Open(sqlDB))
}

// readText extracts the text of a file on disk.
func readText(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	text, err := extract.ExtractTextFromBytes(ctx, data, "", filepath.Base(path))
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return text, nil
}
