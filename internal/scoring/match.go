package scoring

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

var (
	// wordRe matches maximal runs of Unicode word characters.
	wordRe = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]+`)
	// keywordRe accepts a whole word of at least 4 ASCII letters.
	keywordRe = regexp.MustCompile(`^[a-z]{4,}$`)
)

// Matcher compares resume text with a job description.
type Matcher struct {
	strategy        Strategy
	removeStopWords bool
	missingCap      int
}

// NewMatcher constructs a Matcher from the preset's matching options.
func NewMatcher(preset Preset) *Matcher {
	return &Matcher{
		strategy:        preset.Strategy,
		removeStopWords: preset.RemoveStopWords,
		missingCap:      preset.MissingKeywordCap,
	}
}

// WithStrategy returns a copy of m using strategy.
func (m *Matcher) WithStrategy(strategy Strategy) *Matcher {
	cp := *m
	cp.strategy = strategy
	return &cp
}

// Match scores how well resumeText covers jobText.
//
// The missing keywords always come from the keyword set difference, sorted
// and capped; the strategy only decides the numeric score. A blank job
// description short-circuits to a zero result, and texts equal after case
// and whitespace folding score 100.
func (m *Matcher) Match(resumeText, jobText string) JobMatchResult {
	if strings.TrimSpace(jobText) == "" {
		return JobMatchResult{MatchScore: 0, MissingKeywords: []string{}, Strategy: m.strategy}
	}

	resumeKW := m.Keywords(resumeText)
	jobKW := m.Keywords(jobText)

	var score float64
	switch {
	case sameText(resumeText, jobText):
		score = 100
	case m.strategy == StrategyTFIDF:
		score = m.cosine(resumeText, jobText)
	default:
		score = overlap(resumeKW, jobKW)
	}

	return JobMatchResult{
		MatchScore:      clamp(score),
		MissingKeywords: missingKeywords(resumeKW, jobKW, m.missingCap),
		Strategy:        m.strategy,
	}
}

// Keywords tokenizes text into the lower-cased keyword set used for overlap
// and missing-keyword computation.
func (m *Matcher) Keywords(text string) map[string]bool {
	kw := make(map[string]bool)
	for _, tok := range wordRe.FindAllString(strings.ToLower(text), -1) {
		if !keywordRe.MatchString(tok) {
			continue
		}
		if m.removeStopWords && stopWords[tok] {
			continue
		}
		kw[tok] = true
	}
	return kw
}

// sameText compares case-folded texts with whitespace collapsed.
func sameText(a, b string) bool {
	return strings.Join(strings.Fields(strings.ToLower(a)), " ") ==
		strings.Join(strings.Fields(strings.ToLower(b)), " ")
}

func overlap(resumeKW, jobKW map[string]bool) float64 {
	if len(jobKW) == 0 {
		return 0
	}
	common := 0
	for kw := range jobKW {
		if resumeKW[kw] {
			common++
		}
	}
	return float64(common) / float64(len(jobKW)) * 100
}

func missingKeywords(resumeKW, jobKW map[string]bool, limit int) []string {
	missing := make([]string, 0, len(jobKW))
	for kw := range jobKW {
		if !resumeKW[kw] {
			missing = append(missing, kw)
		}
	}
	sort.Strings(missing)
	if limit > 0 && len(missing) > limit {
		missing = missing[:limit]
	}
	return missing
}

// cosine returns the TF-IDF cosine similarity of the two documents scaled to
// 0-100. IDF is smoothed over the two-document corpus and vectors are
// L2-normalized.
func (m *Matcher) cosine(a, b string) float64 {
	ta := termCounts(a)
	tb := termCounts(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	const docs = 2.0
	idf := func(term string) float64 {
		df := 0.0
		if ta[term] > 0 {
			df++
		}
		if tb[term] > 0 {
			df++
		}
		return math.Log((1+docs)/(1+df)) + 1
	}

	va := make(map[string]float64, len(ta))
	vb := make(map[string]float64, len(tb))
	for term, n := range ta {
		va[term] = float64(n) * idf(term)
	}
	for term, n := range tb {
		vb[term] = float64(n) * idf(term)
	}

	var dot float64
	for term, wa := range va {
		dot += wa * vb[term]
	}
	na, nb := norm(va), norm(vb)
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (na * nb) * 100
}

func termCounts(text string) map[string]int {
	counts := make(map[string]int)
	for _, tok := range wordRe.FindAllString(strings.ToLower(text), -1) {
		if utf8.RuneCountInString(tok) < 2 || stopWords[tok] {
			continue
		}
		counts[tok]++
	}
	return counts
}

func norm(v map[string]float64) float64 {
	var sum float64
	for _, w := range v {
		sum += w * w
	}
	return math.Sqrt(sum)
}
