package recommendations

import "resume-scorer/internal/scoring"

// Recommendation represents a deterministic suggestion derived from analysis results.
type Recommendation struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Severity string `json:"severity"`
	Title    string `json:"title"`
	Action   string `json:"action"`
	Order    int    `json:"order"`
}

// Input is the data a rule may look at.
type Input struct {
	Scores scoring.ScoreSet
	Skills []scoring.SkillMatch
	// WordCount is zero when unknown; rules fall back to Scores.Readability.
	WordCount       int
	MissingSections []string
	// Match is nil when no job description was supplied.
	Match *scoring.JobMatchResult
}

// Insight is a summary computed from the analysis numbers. It is not model output.
type Insight struct {
	Source         string   `json:"source"`
	Strongest      string   `json:"strongest"`
	StrongestScore float64  `json:"strongestScore"`
	Weakest        string   `json:"weakest"`
	WeakestScore   float64  `json:"weakestScore"`
	TopCategory    string   `json:"topCategory,omitempty"`
	MatchCoverage  *float64 `json:"matchCoverage,omitempty"`
	Lines          []string `json:"lines"`
}
