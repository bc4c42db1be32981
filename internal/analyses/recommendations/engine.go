package recommendations

import (
	"strings"

	"resume-scorer/internal/scoring"
)

const maxRecommendations = 7

// Generate evaluates the rule table against input. The result is never empty:
// when no rule fires it holds the single LOOKS_GOOD entry.
func Generate(input Input) []Recommendation {
	candidates := make([]Recommendation, 0, len(rules))
	for _, r := range rules {
		if !r.when(input) {
			continue
		}
		title, action := r.build(input)
		candidates = append(candidates, Recommendation{
			ID:       r.id,
			Category: r.category,
			Severity: r.severity,
			Title:    title,
			Action:   action,
		})
	}

	out := dedupe(candidates)
	if len(out) == 0 {
		out = []Recommendation{looksGood}
	}
	if len(out) > maxRecommendations {
		out = out[:maxRecommendations]
	}
	for i := range out {
		out[i].Order = i + 1
	}
	return out
}

// Recommend returns the recommendation messages for scores and skills.
func Recommend(scores scoring.ScoreSet, skills []scoring.SkillMatch) []string {
	return Messages(Generate(Input{Scores: scores, Skills: skills}))
}

// Messages flattens recommendations into display strings.
func Messages(recs []Recommendation) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		msg := strings.TrimSpace(r.Title)
		if action := strings.TrimSpace(r.Action); action != "" {
			if !strings.HasSuffix(msg, "!") && !strings.HasSuffix(msg, ".") {
				msg += "."
			}
			msg += " " + action
		}
		out = append(out, msg)
	}
	return out
}

// dedupe keeps the first recommendation per ID.
func dedupe(items []Recommendation) []Recommendation {
	seen := make(map[string]bool, len(items))
	out := make([]Recommendation, 0, len(items))
	for _, item := range items {
		id := strings.TrimSpace(item.ID)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, item)
	}
	return out
}
