package catalog

import (
	"context"
	"database/sql"

	"resume-scorer/internal/scoring"
	"resume-scorer/internal/shared/telemetry"
)

// Open picks the Postgres repo when db is set and the built-in table otherwise.
func Open(db *sql.DB) Repo {
	if db == nil {
		return NewMemoryRepo(nil)
	}
	return &PGRepo{DB: db}
}

// LoadOrDefault loads the table from repo and falls back to the built-in table
// when the repo fails or is empty.
func LoadOrDefault(ctx context.Context, repo Repo) scoring.Table {
	table, err := repo.Load(ctx)
	if err != nil {
		telemetry.Warn("catalog.load_failed", map[string]any{"error": err.Error()})
		return scoring.DefaultTable()
	}
	telemetry.Info("catalog.loaded", map[string]any{"categories": len(table), "skills": table.Len()})
	return table
}
