package scoring

import (
	"strings"
)

// Scorer runs the resume scoring pipeline: skill detection, sub-score
// calculation and, on demand, job-description matching. A Scorer holds only
// read-only tables and is safe for concurrent use.
type Scorer struct {
	preset   Preset
	detector *Detector
	calc     *Calculator
	matcher  *Matcher
}

// Option configures a Scorer.
type Option func(*scorerOptions)

type scorerOptions struct {
	recognizer EntityRecognizer
}

// WithRecognizer enables the optional entity recognition pass.
func WithRecognizer(r EntityRecognizer) Option {
	return func(o *scorerOptions) {
		o.recognizer = r
	}
}

// New constructs a Scorer. An empty table falls back to DefaultTable.
func New(preset Preset, table Table, opts ...Option) (*Scorer, error) {
	if err := preset.Validate(); err != nil {
		return nil, err
	}
	if table.Len() == 0 {
		table = DefaultTable()
	}
	var o scorerOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &Scorer{
		preset:   preset,
		detector: NewDetector(table, o.recognizer),
		calc:     NewCalculator(preset),
		matcher:  NewMatcher(preset),
	}, nil
}

// Preset returns the scorer's preset.
func (s *Scorer) Preset() Preset {
	return s.preset
}

// Table returns the skill table in use.
func (s *Scorer) Table() Table {
	return s.detector.Table()
}

// Analyze detects skills and scores text. For text without words it returns
// the zero Analysis together with ErrEmptyInput.
func (s *Scorer) Analyze(text string) (Analysis, error) {
	if strings.TrimSpace(text) == "" {
		return Analysis{Skills: []SkillMatch{}}, ErrEmptyInput
	}
	skills := s.detector.Detect(text)
	return Analysis{
		Skills:    skills,
		Scores:    s.calc.Calculate(text, skills),
		WordCount: WordCount(text),
	}, nil
}

// MatchJob compares resumeText with jobText using the preset's strategy.
func (s *Scorer) MatchJob(resumeText, jobText string) JobMatchResult {
	return s.matcher.Match(resumeText, jobText)
}

// MatchJobWith compares resumeText with jobText using an explicit strategy.
func (s *Scorer) MatchJobWith(strategy Strategy, resumeText, jobText string) JobMatchResult {
	return s.matcher.WithStrategy(strategy).Match(resumeText, jobText)
}
