package catalog

import (
	"context"

	"resume-scorer/internal/scoring"
)

// Repo loads the skill keyword table.
type Repo interface {
	Load(ctx context.Context) (scoring.Table, error)
}
