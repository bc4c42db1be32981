package analyses

import (
	"fmt"
	"strings"

	"resume-scorer/internal/scoring"
)

const maxExplainItems = 10

// ScoreComponent explains one sub-score: what raised it and what held it back.
type ScoreComponent struct {
	Key         string   `json:"key"`
	Label       string   `json:"label"`
	Score       float64  `json:"score"`
	Weight      float64  `json:"weight"`
	Explanation string   `json:"explanation"`
	Helped      []string `json:"helped"`
	Dragged     []string `json:"dragged"`
}

var componentLabels = map[string]string{
	"skills":       "Skills",
	"completeness": "Section Completeness",
	"readability":  "Length & Readability",
	"ats":          "ATS Compatibility",
	"actionVerbs":  "Action Verbs",
}

// explain builds one component per active metric. Weights are equal and sum
// to 100 because Overall is the plain mean.
func explain(text string, analysis scoring.Analysis, preset scoring.Preset) []ScoreComponent {
	lower := strings.ToLower(text)
	active := analysis.Scores.Active()
	weight := 100 / float64(len(active))

	out := make([]ScoreComponent, 0, len(active))
	for _, m := range active {
		c := ScoreComponent{
			Key:     m.Name,
			Label:   componentLabels[m.Name],
			Score:   m.Value,
			Weight:  weight,
			Helped:  []string{},
			Dragged: []string{},
		}
		switch m.Name {
		case "skills":
			distinct := scoring.DistinctSkills(analysis.Skills)
			c.Explanation = fmt.Sprintf("%d distinct skills at %.0f points each", len(distinct), preset.SkillWeight)
			for _, s := range distinct {
				c.Helped = append(c.Helped, s.Skill)
			}
			if len(distinct) == 0 {
				c.Dragged = append(c.Dragged, "no known skills detected")
			}
		case "completeness":
			missing := scoring.MissingSections(text)
			sections := scoring.Sections()
			c.Explanation = fmt.Sprintf("%d of %d standard sections found", len(sections)-len(missing), len(sections))
			for _, section := range sections {
				if strings.Contains(lower, section) {
					c.Helped = append(c.Helped, section)
				}
			}
			c.Dragged = append(c.Dragged, missing...)
		case "readability":
			bands := preset.Length
			words := analysis.WordCount
			label := fmt.Sprintf("%d words", words)
			switch {
			case words < bands.LowWords:
				c.Explanation = fmt.Sprintf("under %d words", bands.LowWords)
				c.Dragged = append(c.Dragged, label)
			case words <= bands.HighWords:
				c.Explanation = fmt.Sprintf("between %d and %d words", bands.LowWords, bands.HighWords)
				c.Dragged = append(c.Dragged, label)
			default:
				c.Explanation = fmt.Sprintf("over %d words", bands.HighWords)
				c.Helped = append(c.Helped, label)
			}
		case "ats":
			rules := preset.ATS
			terms := scoring.FoundLayoutTerms(lower)
			c.Explanation = fmt.Sprintf("base %.0f, minus %.0f per layout term", rules.Base, rules.Penalty)
			if analysis.WordCount > rules.BonusWords {
				c.Helped = append(c.Helped, fmt.Sprintf("over %d words", rules.BonusWords))
			}
			for _, term := range terms {
				c.Dragged = append(c.Dragged, fmt.Sprintf("mentions %q", term))
			}
		case "actionVerbs":
			verbs := scoring.FoundActionVerbs(lower)
			c.Explanation = fmt.Sprintf("%d action verbs at %.0f points each", len(verbs), preset.ActionVerbWeight)
			c.Helped = append(c.Helped, verbs...)
			if len(verbs) == 0 {
				c.Dragged = append(c.Dragged, "no action verbs")
			}
		}
		c.Helped = limit(c.Helped, maxExplainItems)
		c.Dragged = limit(c.Dragged, maxExplainItems)
		out = append(out, c)
	}
	return out
}

func limit(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
