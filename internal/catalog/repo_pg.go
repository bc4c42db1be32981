package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"resume-scorer/internal/scoring"
)

// PGRepo reads the skill_keywords table.
type PGRepo struct {
	DB *sql.DB
}

const loadQuery = `SELECT category, skill
FROM skill_keywords
ORDER BY category_position, position, skill`

// Load groups rows by category, keeping the stored order.
func (r *PGRepo) Load(ctx context.Context) (scoring.Table, error) {
	rows, err := r.DB.QueryContext(ctx, loadQuery)
	if err != nil {
		return nil, fmt.Errorf("query skill_keywords: %w", err)
	}
	defer rows.Close()

	var table scoring.Table
	index := map[string]int{}
	for rows.Next() {
		var category, skill string
		if err := rows.Scan(&category, &skill); err != nil {
			return nil, fmt.Errorf("scan skill_keywords: %w", err)
		}
		category = strings.TrimSpace(category)
		skill = strings.TrimSpace(skill)
		if category == "" || skill == "" {
			continue
		}
		i, ok := index[category]
		if !ok {
			i = len(table)
			index[category] = i
			table = append(table, scoring.Category{Name: category})
		}
		table[i].Skills = append(table[i].Skills, skill)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate skill_keywords: %w", err)
	}
	if table.Len() == 0 {
		return nil, ErrEmptyCatalog
	}
	return table, nil
}
