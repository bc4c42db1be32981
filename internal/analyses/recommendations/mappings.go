package recommendations

import (
	"fmt"
	"strings"

	"resume-scorer/internal/scoring"
)

const (
	idSkills       = "SKILLS_ADD_MORE"
	idDetail       = "EXPERIENCE_ADD_DETAIL"
	idShort        = "LENGTH_TOO_SHORT"
	idSections     = "STRUCTURE_MISSING_SECTIONS"
	idATS          = "ATS_LAYOUT"
	idVerbs        = "EXPERIENCE_ACTION_VERBS"
	idJobKeywords  = "ATS_MISSING_JD_KEYWORDS"
	idJobAlignment = "ATS_LOW_JOB_MATCH"
	idLooksGood    = "LOOKS_GOOD"
)

const (
	skillThreshold        = 60
	detailThreshold       = 70
	shortReadability      = 60
	shortWordCount        = 200
	atsThreshold          = 60
	actionVerbThreshold   = 50
	jobMatchThreshold     = 50
	jobKeywordsInMessage  = 8
	completenessThreshold = 100
)

// rule is one row of the table. Rules sharing an ID describe the same issue,
// only the first one that fires is kept.
type rule struct {
	id       string
	category string
	severity string
	when     func(Input) bool
	build    func(Input) (title, action string)
}

func static(title, action string) func(Input) (string, string) {
	return func(Input) (string, string) { return title, action }
}

// rules is evaluated top to bottom; the order is the output order.
var rules = []rule{
	{
		id: idSkills, category: "SKILLS", severity: "critical",
		when:  func(in Input) bool { return len(scoring.DistinctSkills(in.Skills)) == 0 },
		build: static("No technical skills found", "Add skills like Python, Java, SQL, etc."),
	},
	{
		id: idSkills, category: "SKILLS", severity: "warning",
		when:  func(in Input) bool { return in.Scores.Skills < skillThreshold },
		build: static("Add more technical skills to your resume", "List the languages, frameworks and tools you have used in a Skills section."),
	},
	{
		id: idShort, category: "STRUCTURE", severity: "warning",
		when: func(in Input) bool { return in.WordCount > 0 && in.WordCount < shortWordCount },
		build: static("Your resume seems short. Consider adding more content",
			"Expand each role with the problem, what you did and the outcome."),
	},
	{
		id: idShort, category: "STRUCTURE", severity: "warning",
		when: func(in Input) bool { return in.Scores.Readability < shortReadability },
		build: static("Your resume seems short. Consider adding more content",
			"Expand each role with the problem, what you did and the outcome."),
	},
	{
		id: idDetail, category: "EXPERIENCE", severity: "info",
		when:  func(in Input) bool { return in.Scores.Readability < detailThreshold },
		build: static("Add more details about your experience and projects", "Describe scope, team size and measurable results for each entry."),
	},
	{
		id: idSections, category: "STRUCTURE", severity: "warning",
		when: func(in Input) bool { return in.Scores.Completeness < completenessThreshold },
		build: func(in Input) (string, string) {
			if len(in.MissingSections) == 0 {
				return "Add the standard resume sections", "Use clear headings for experience, education, skills, projects and contact details."
			}
			return "Add the missing sections", "Add headings for: " + strings.Join(in.MissingSections, ", ") + "."
		},
	},
	{
		id: idATS, category: "FORMATTING", severity: "warning",
		when:  func(in Input) bool { return in.Scores.ATS < atsThreshold },
		build: static("Simplify the layout for applicant tracking systems", "Avoid tables, headers, images and multi-column layouts."),
	},
	{
		id: idVerbs, category: "EXPERIENCE", severity: "info",
		when:  func(in Input) bool { return in.Scores.ActionVerbs < actionVerbThreshold },
		build: static("Start bullet points with action verbs", "Use verbs such as developed, led, improved or reduced."),
	},
	{
		id: idJobKeywords, category: "ATS", severity: "warning",
		when: func(in Input) bool { return in.Match != nil && len(in.Match.MissingKeywords) > 0 },
		build: func(in Input) (string, string) {
			kw := in.Match.MissingKeywords
			if len(kw) > jobKeywordsInMessage {
				kw = kw[:jobKeywordsInMessage]
			}
			return "Add missing job keywords", "Add these keywords: " + strings.Join(kw, ", ")
		},
	},
	{
		id: idJobAlignment, category: "ATS", severity: "warning",
		when: func(in Input) bool { return in.Match != nil && in.Match.MatchScore < jobMatchThreshold },
		build: func(in Input) (string, string) {
			return fmt.Sprintf("Job match is %.0f%%", in.Match.MatchScore),
				"Mirror the wording of the job description in your summary and experience bullets."
		},
	},
}

var looksGood = Recommendation{
	ID:       idLooksGood,
	Category: "OVERALL",
	Severity: "info",
	Title:    "Your resume looks good!",
	Action:   "Keep it updated with your latest achievements.",
}
