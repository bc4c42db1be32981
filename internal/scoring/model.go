package scoring

import "strings"

// Skill categories used by the built-in keyword table.
const (
	CategoryProgramming    = "Programming"
	CategoryWebDevelopment = "Web Development"
	CategoryCloud          = "Cloud"
	CategoryDatabases      = "Databases"
	CategoryTools          = "Tools"
	CategoryDataScience    = "Data Science"
	// CategoryDetected marks matches produced by an EntityRecognizer.
	CategoryDetected = "Detected"
)

// SkillMatch is a single detected skill.
type SkillMatch struct {
	Skill     string `json:"skill"`
	Category  string `json:"category"`
	Frequency int    `json:"frequency"`
}

// ScoreSet holds the bounded 0-100 sub-scores of one analysis.
// Overall is derived from the active metrics and is never measured on its own.
type ScoreSet struct {
	Overall      float64 `json:"overall"`
	Skills       float64 `json:"skills"`
	Completeness float64 `json:"completeness"`
	Readability  float64 `json:"readability"`
	ATS          float64 `json:"ats"`
	ActionVerbs  float64 `json:"actionVerbs"`
}

// Metric names a single ScoreSet field.
type Metric struct {
	Name  string
	Value float64
}

// Active lists the metrics that feed Overall, in a fixed order.
func (s ScoreSet) Active() []Metric {
	return []Metric{
		{Name: "skills", Value: s.Skills},
		{Name: "completeness", Value: s.Completeness},
		{Name: "readability", Value: s.Readability},
		{Name: "ats", Value: s.ATS},
		{Name: "actionVerbs", Value: s.ActionVerbs},
	}
}

// WithOverall returns a copy with every metric clamped and Overall recomputed
// as the arithmetic mean of Active.
func (s ScoreSet) WithOverall() ScoreSet {
	s.Skills = clamp(s.Skills)
	s.Completeness = clamp(s.Completeness)
	s.Readability = clamp(s.Readability)
	s.ATS = clamp(s.ATS)
	s.ActionVerbs = clamp(s.ActionVerbs)

	active := s.Active()
	var sum float64
	for _, m := range active {
		sum += m.Value
	}
	s.Overall = clamp(sum / float64(len(active)))
	return s
}

// JobMatchResult is the outcome of comparing a resume to a job description.
type JobMatchResult struct {
	MatchScore      float64  `json:"matchScore"`
	MissingKeywords []string `json:"missingKeywords"`
	Strategy        Strategy `json:"strategy"`
}

// Analysis is the output of Scorer.Analyze.
type Analysis struct {
	Skills    []SkillMatch `json:"skills"`
	Scores    ScoreSet     `json:"scores"`
	WordCount int          `json:"wordCount"`
}

// DistinctSkills de-duplicates matches by case-folded skill name, keeping the
// first occurrence.
func DistinctSkills(skills []SkillMatch) []SkillMatch {
	seen := make(map[string]bool, len(skills))
	out := make([]SkillMatch, 0, len(skills))
	for _, s := range skills {
		key := strings.ToLower(strings.TrimSpace(s.Skill))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}

func clamp(v float64) float64 {
	switch {
	case v != v: // NaN
		return 0
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}
