package health

import (
	"context"
	"database/sql"
	"time"

	"resume-scorer/internal/scoring"
)

const pingTimeout = 2 * time.Second

// Service reports liveness together with the catalog and database state.
type Service struct {
	db    *sql.DB
	table scoring.Table
}

// NewService constructs a health service. db may be nil when no database is
// configured.
func NewService(db *sql.DB, table scoring.Table) *Service {
	return &Service{db: db, table: table}
}

// Status returns the health payload and whether the service is healthy. A
// configured database that does not answer a ping is unhealthy.
func (s *Service) Status(ctx context.Context) (map[string]any, bool) {
	out := map[string]any{
		"ok":       true,
		"skills":   s.table.Len(),
		"database": "disabled",
	}
	if s.db == nil {
		return out, true
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := s.db.PingContext(ctx); err != nil {
		out["ok"] = false
		out["database"] = "down"
		return out, false
	}
	out["database"] = "up"
	return out, true
}
