package recommendations

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-scorer/internal/scoring"
)

func highScores() scoring.ScoreSet {
	return scoring.ScoreSet{Skills: 80, Completeness: 100, Readability: 90, ATS: 90, ActionVerbs: 60}.WithOverall()
}

func someSkills() []scoring.SkillMatch {
	return []scoring.SkillMatch{
		{Skill: "Python", Category: scoring.CategoryProgramming, Frequency: 2},
		{Skill: "SQL", Category: scoring.CategoryProgramming, Frequency: 1},
		{Skill: "AWS", Category: scoring.CategoryCloud, Frequency: 1},
	}
}

func TestGenerateDeterminism(t *testing.T) {
	input := Input{Scores: scoring.ScoreSet{Skills: 16, Completeness: 40, Readability: 30, ATS: 50}, Skills: someSkills(), WordCount: 120}

	first := Generate(input)
	second := Generate(input)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected deterministic recommendations ordering")
	}
}

func TestGenerateFallbackWhenAllScoresHigh(t *testing.T) {
	recs := Generate(Input{Scores: highScores(), Skills: someSkills(), WordCount: 500})
	require.Len(t, recs, 1)
	assert.Equal(t, idLooksGood, recs[0].ID)
	assert.Equal(t, 1, recs[0].Order)

	msgs := Recommend(highScores(), someSkills())
	assert.Equal(t, []string{"Your resume looks good! Keep it updated with your latest achievements."}, msgs)
}

func TestGenerateShortResumeEmittedOnce(t *testing.T) {
	// both the word count rule and the readability rule fire
	recs := Generate(Input{Scores: scoring.ScoreSet{Skills: 80, Completeness: 100, Readability: 30, ATS: 90, ActionVerbs: 60}, Skills: someSkills(), WordCount: 150})

	count := 0
	for _, r := range recs {
		if r.ID == idShort {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, []string{idShort, idDetail}, ids(recs))
}

func TestGenerateNoSkillsWinsOverLowSkills(t *testing.T) {
	recs := Generate(Input{Scores: scoring.ScoreSet{Skills: 0, Completeness: 100, Readability: 90, ATS: 90, ActionVerbs: 60}})
	require.NotEmpty(t, recs)
	assert.Equal(t, idSkills, recs[0].ID)
	assert.Equal(t, "No technical skills found", recs[0].Title)
	assert.Equal(t, "critical", recs[0].Severity)
}

func TestGenerateNoDuplicateMessages(t *testing.T) {
	msgs := Recommend(scoring.ScoreSet{}, nil)
	seen := map[string]bool{}
	for _, m := range msgs {
		assert.False(t, seen[m], "duplicate %q", m)
		seen[m] = true
	}
	assert.LessOrEqual(t, len(msgs), maxRecommendations)
}

func TestGenerateOrderIsSequential(t *testing.T) {
	recs := Generate(Input{Scores: scoring.ScoreSet{}, WordCount: 10, MissingSections: []string{"education"}})
	for i, rec := range recs {
		if rec.Order != i+1 {
			t.Fatalf("expected order %d, got %d", i+1, rec.Order)
		}
	}
}

func TestGenerateMissingSectionsAction(t *testing.T) {
	scores := highScores()
	scores.Completeness = 60
	recs := Generate(Input{Scores: scores, Skills: someSkills(), MissingSections: []string{"education", "project"}})
	require.Len(t, recs, 1)
	assert.Equal(t, idSections, recs[0].ID)
	assert.Equal(t, "Add headings for: education, project.", recs[0].Action)
}

func TestGenerateJobKeywords(t *testing.T) {
	match := &scoring.JobMatchResult{
		MatchScore:      40,
		MissingKeywords: []string{"k01", "k02", "k03", "k04", "k05", "k06", "k07", "k08", "k09", "k10"},
		Strategy:        scoring.StrategyOverlap,
	}
	recs := Generate(Input{Scores: highScores(), Skills: someSkills(), Match: match})
	assert.Equal(t, []string{idJobKeywords, idJobAlignment}, ids(recs))
	assert.Equal(t, "Add these keywords: k01, k02, k03, k04, k05, k06, k07, k08", recs[0].Action)
	assert.Equal(t, "Job match is 40%", recs[1].Title)
}

func TestGenerateDedupe(t *testing.T) {
	out := dedupe([]Recommendation{{ID: "A", Title: "first"}, {ID: "A", Title: "second"}, {ID: " "}, {ID: "B"}})
	assert.Equal(t, []string{"A", "B"}, ids(out))
	assert.Equal(t, "first", out[0].Title)
}

func ids(recs []Recommendation) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.ID)
	}
	return out
}
