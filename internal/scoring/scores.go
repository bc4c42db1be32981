package scoring

import (
	"strings"
)

var (
	// sectionKeywords are checked for presence anywhere in the text, not per line.
	sectionKeywords = []string{"experience", "education", "skills", "project", "contact"}

	// atsDenylist holds layout terms that usually mean the document will not
	// survive an applicant tracking system parser.
	atsDenylist = []string{"table", "header", "image", "column"}

	actionVerbs = []string{
		"developed", "created", "built", "implemented", "managed",
		"improved", "increased", "reduced", "led", "designed",
	}
)

// Calculator derives the sub-scores of a ScoreSet.
//
// Action verbs use the presence policy: each verb counts once no matter how
// often it appears.
type Calculator struct {
	preset Preset
}

// NewCalculator constructs a Calculator for the preset.
func NewCalculator(preset Preset) *Calculator {
	return &Calculator{preset: preset}
}

// Calculate scores text. Text without any words yields the zero ScoreSet.
func (c *Calculator) Calculate(text string, skills []SkillMatch) ScoreSet {
	words := WordCount(text)
	if words == 0 {
		return ScoreSet{}
	}
	lower := strings.ToLower(text)
	return ScoreSet{
		Skills:       c.SkillsScore(skills),
		Completeness: c.CompletenessScore(lower),
		Readability:  c.ReadabilityScore(words),
		ATS:          c.ATSScore(lower, words),
		ActionVerbs:  c.ActionVerbScore(lower),
	}.WithOverall()
}

// SkillsScore is min(distinct skills × weight, 100).
func (c *Calculator) SkillsScore(skills []SkillMatch) float64 {
	return clamp(float64(len(DistinctSkills(skills))) * c.preset.SkillWeight)
}

// CompletenessScore is the percentage of section keywords present in lower.
func (c *Calculator) CompletenessScore(lower string) float64 {
	present := 0
	for _, kw := range sectionKeywords {
		if strings.Contains(lower, kw) {
			present++
		}
	}
	return clamp(float64(present) * 100 / float64(len(sectionKeywords)))
}

// ReadabilityScore maps a word count onto the preset's length staircase.
func (c *Calculator) ReadabilityScore(words int) float64 {
	if words <= 0 {
		return 0
	}
	bands := c.preset.Length
	switch {
	case words < bands.LowWords:
		return clamp(bands.Low)
	case words <= bands.HighWords:
		return clamp(bands.Mid)
	default:
		return clamp(bands.High)
	}
}

// ATSScore starts from the base score, subtracts a penalty per denylisted
// term and adds a bonus for long enough documents.
func (c *Calculator) ATSScore(lower string, words int) float64 {
	rules := c.preset.ATS
	score := rules.Base - float64(len(FoundLayoutTerms(lower)))*rules.Penalty
	if words > rules.BonusWords {
		score += rules.Bonus
	}
	return clamp(score)
}

// ActionVerbScore is min(verbs present × weight, 100).
func (c *Calculator) ActionVerbScore(lower string) float64 {
	return clamp(float64(len(FoundActionVerbs(lower))) * c.preset.ActionVerbWeight)
}

// FoundActionVerbs returns the action verbs present in lower, in list order.
func FoundActionVerbs(lower string) []string {
	var out []string
	for _, verb := range actionVerbs {
		if strings.Contains(lower, verb) {
			out = append(out, verb)
		}
	}
	return out
}

// FoundLayoutTerms returns the ATS denylist terms present in lower.
func FoundLayoutTerms(lower string) []string {
	var out []string
	for _, term := range atsDenylist {
		if strings.Contains(lower, term) {
			out = append(out, term)
		}
	}
	return out
}

// Sections returns the section keywords checked by CompletenessScore.
func Sections() []string {
	return append([]string(nil), sectionKeywords...)
}

// MissingSections returns the section keywords absent from text.
func MissingSections(text string) []string {
	lower := strings.ToLower(text)
	var out []string
	for _, kw := range sectionKeywords {
		if !strings.Contains(lower, kw) {
			out = append(out, kw)
		}
	}
	return out
}

// WordCount counts whitespace-separated words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
