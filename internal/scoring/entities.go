package scoring

import (
	"regexp"
	"sort"
	"strings"
)

// EntityRecognizer is an optional capability that proposes technology or
// product names the keyword table does not know about.
type EntityRecognizer interface {
	Recognize(text string) ([]string, error)
}

var (
	acronymRe   = regexp.MustCompile(`\b[A-Z][A-Z0-9]{1,5}\b`)
	camelCaseRe = regexp.MustCompile(`\b[A-Z][a-z]+(?:[A-Z][a-z0-9]*)+\b`)
	dottedRe    = regexp.MustCompile(`\b[A-Za-z][A-Za-z0-9]*\.(?:js|io|net|ai)\b`)
)

// headings that tend to be written in capitals and are not technologies.
var recognizerIgnore = map[string]bool{
	"CV": true, "PHONE": true, "EMAIL": true, "SKILLS": true, "WORK": true,
	"USA": true, "UK": true, "BS": true, "BA": true, "MS": true, "MBA": true,
	"PHD": true, "GPA": true, "CEO": true, "CTO": true, "VP": true, "HR": true,
	"JAN": true, "FEB": true, "MAR": true, "APR": true, "JUN": true, "JUL": true,
	"AUG": true, "SEP": true, "OCT": true, "NOV": true, "DEC": true,
}

// TermRecognizer is a pattern-based EntityRecognizer. It picks acronyms,
// CamelCase product names and dotted names such as "Next.js" from the
// original-case text.
type TermRecognizer struct {
	// Limit caps the number of returned terms. Zero means 25.
	Limit int
}

// Recognize returns candidate terms in order of first appearance.
func (r TermRecognizer) Recognize(text string) ([]string, error) {
	limit := r.Limit
	if limit <= 0 {
		limit = 25
	}

	type hit struct {
		pos  int
		term string
	}
	var hits []hit
	for _, re := range []*regexp.Regexp{acronymRe, camelCaseRe, dottedRe} {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			hits = append(hits, hit{pos: loc[0], term: text[loc[0]:loc[1]]})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	seen := make(map[string]bool)
	out := make([]string, 0, limit)
	for _, h := range hits {
		if recognizerIgnore[strings.ToUpper(h.term)] {
			continue
		}
		key := strings.ToLower(h.term)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, h.term)
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}
