package catalog

import (
	"context"

	"resume-scorer/internal/scoring"
)

// MemoryRepo serves a fixed table, the built-in one by default.
type MemoryRepo struct {
	table scoring.Table
}

// NewMemoryRepo returns a repo over table, or over scoring.DefaultTable when table is empty.
func NewMemoryRepo(table scoring.Table) *MemoryRepo {
	if table.Len() == 0 {
		table = scoring.DefaultTable()
	}
	return &MemoryRepo{table: table}
}

// Load returns a copy of the table.
func (r *MemoryRepo) Load(ctx context.Context) (scoring.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return cloneTable(r.table), nil
}

func cloneTable(t scoring.Table) scoring.Table {
	out := make(scoring.Table, 0, len(t))
	for _, c := range t {
		out = append(out, scoring.Category{Name: c.Name, Skills: append([]string(nil), c.Skills...)})
	}
	return out
}
