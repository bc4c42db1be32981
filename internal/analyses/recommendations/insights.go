package recommendations

import (
	"fmt"

	"resume-scorer/internal/scoring"
)

// InsightSource labels every Insight so clients never present it as generated text.
const InsightSource = "computed"

// Insights summarizes an analysis from its own numbers: the strongest and
// weakest metric, the category with the most detected skills, and job match
// coverage when a match is present.
func Insights(input Input) Insight {
	active := input.Scores.Active()
	strongest, weakest := active[0], active[0]
	for _, m := range active[1:] {
		if m.Value > strongest.Value {
			strongest = m
		}
		if m.Value < weakest.Value {
			weakest = m
		}
	}

	out := Insight{
		Source:         InsightSource,
		Strongest:      strongest.Name,
		StrongestScore: strongest.Value,
		Weakest:        weakest.Name,
		WeakestScore:   weakest.Value,
		TopCategory:    topCategory(input.Skills),
	}
	out.Lines = append(out.Lines,
		fmt.Sprintf("Overall score %.1f/100.", input.Scores.Overall),
		fmt.Sprintf("Strongest area: %s (%.0f). Weakest area: %s (%.0f).", strongest.Name, strongest.Value, weakest.Name, weakest.Value),
	)
	if out.TopCategory != "" {
		out.Lines = append(out.Lines, fmt.Sprintf("Most skills detected in %s.", out.TopCategory))
	}
	if input.Match != nil {
		coverage := input.Match.MatchScore
		out.MatchCoverage = &coverage
		out.Lines = append(out.Lines, fmt.Sprintf("Job description coverage %.1f%% (%s).", coverage, input.Match.Strategy))
	}
	return out
}

// topCategory returns the category with the most distinct skills. Ties go to
// the category seen first.
func topCategory(skills []scoring.SkillMatch) string {
	counts := map[string]int{}
	var order []string
	for _, s := range scoring.DistinctSkills(skills) {
		if _, ok := counts[s.Category]; !ok {
			order = append(order, s.Category)
		}
		counts[s.Category]++
	}
	best := ""
	for _, c := range order {
		if best == "" || counts[c] > counts[best] {
			best = c
		}
	}
	return best
}
