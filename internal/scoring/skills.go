package scoring

import (
	"strings"
)

// Category is one row group of the skill keyword table.
type Category struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// Table maps categories to their canonical skills. Order is significant: the
// detector emits matches in table order.
type Table []Category

// Len returns the number of skills across all categories.
func (t Table) Len() int {
	n := 0
	for _, c := range t {
		n += len(c.Skills)
	}
	return n
}

// DefaultTable returns the built-in skill keyword table.
func DefaultTable() Table {
	return Table{
		{Name: CategoryProgramming, Skills: []string{"Python", "Java", "JavaScript", "TypeScript", "C++", "C#", "Go", "Rust", "Ruby", "PHP", "Swift", "Kotlin", "Scala"}},
		{Name: CategoryWebDevelopment, Skills: []string{"HTML", "CSS", "React", "Angular", "Vue", "Django", "Flask", "Node", "Express", "Spring", "GraphQL", "REST"}},
		{Name: CategoryCloud, Skills: []string{"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform", "Lambda", "Serverless"}},
		{Name: CategoryDatabases, Skills: []string{"SQL", "MySQL", "PostgreSQL", "MongoDB", "Redis", "Oracle", "SQLite", "Cassandra", "DynamoDB"}},
		{Name: CategoryTools, Skills: []string{"Git", "Linux", "Jenkins", "Jira", "Ansible", "CI/CD", "Webpack", "Grafana"}},
		{Name: CategoryDataScience, Skills: []string{"Machine Learning", "Pandas", "NumPy", "TensorFlow", "PyTorch", "Scikit-learn", "Tableau", "Spark", "Statistics"}},
	}
}

// Detector finds canonical skills in resume text.
//
// Matching is case-insensitive substring matching, so short names over-match
// ("Go" is found inside "Google").
type Detector struct {
	table      Table
	recognizer EntityRecognizer
}

// NewDetector constructs a Detector. recognizer may be nil.
func NewDetector(table Table, recognizer EntityRecognizer) *Detector {
	return &Detector{table: table, recognizer: recognizer}
}

// Table returns the keyword table the detector scans with.
func (d *Detector) Table() Table {
	return d.table
}

// Detect returns every table skill present in text, in table order, followed by
// recognizer candidates tagged CategoryDetected.
func (d *Detector) Detect(text string) []SkillMatch {
	lower := strings.ToLower(text)
	matches := make([]SkillMatch, 0, 16)
	for _, category := range d.table {
		for _, skill := range category.Skills {
			needle := strings.ToLower(strings.TrimSpace(skill))
			if needle == "" {
				continue
			}
			if n := strings.Count(lower, needle); n > 0 {
				matches = append(matches, SkillMatch{Skill: skill, Category: category.Name, Frequency: n})
			}
		}
	}
	return append(matches, d.detectEntities(text)...)
}

func (d *Detector) detectEntities(text string) []SkillMatch {
	if d.recognizer == nil {
		return nil
	}
	terms, err := d.recognizer.Recognize(text)
	if err != nil {
		return nil
	}
	seen := make(map[string]bool, len(terms))
	out := make([]SkillMatch, 0, len(terms))
	for _, term := range terms {
		term = strings.TrimSpace(term)
		key := strings.ToLower(term)
		if term == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, SkillMatch{Skill: term, Category: CategoryDetected, Frequency: 1})
	}
	return out
}
