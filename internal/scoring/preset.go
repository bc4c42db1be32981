package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Strategy selects the job-description similarity algorithm.
type Strategy string

const (
	// StrategyOverlap scores |resume ∩ job| / |job| over word tokens.
	StrategyOverlap Strategy = "overlap"
	// StrategyTFIDF scores the cosine similarity of TF-IDF vectors.
	StrategyTFIDF Strategy = "tfidf"
)

// DefaultPresetName is used when no preset is requested.
const DefaultPresetName = "default"

// LengthBands is the word-count staircase behind the readability score.
// Counts below LowWords score Low, counts above HighWords score High, and
// everything in between scores Mid.
type LengthBands struct {
	LowWords  int     `json:"lowWords" validate:"gt=0"`
	HighWords int     `json:"highWords" validate:"gtfield=LowWords"`
	Low       float64 `json:"low" validate:"gte=0,lte=100"`
	Mid       float64 `json:"mid" validate:"gte=0,lte=100"`
	High      float64 `json:"high" validate:"gte=0,lte=100"`
}

// ATSRules configures the format-compatibility score.
type ATSRules struct {
	Base       float64 `json:"base" validate:"gte=0,lte=100"`
	Penalty    float64 `json:"penalty" validate:"gte=0,lte=100"`
	Bonus      float64 `json:"bonus" validate:"gte=0,lte=100"`
	BonusWords int     `json:"bonusWords" validate:"gte=0"`
}

// Preset is a named bundle of scoring weights. The source app shipped several
// near-identical variants; each one is a preset here.
type Preset struct {
	Name              string      `json:"name" validate:"required"`
	SkillWeight       float64     `json:"skillWeight" validate:"gt=0,lte=100"`
	ActionVerbWeight  float64     `json:"actionVerbWeight" validate:"gt=0,lte=100"`
	Length            LengthBands `json:"length"`
	ATS               ATSRules    `json:"ats"`
	Strategy          Strategy    `json:"strategy" validate:"oneof=overlap tfidf"`
	RemoveStopWords   bool        `json:"removeStopWords"`
	MissingKeywordCap int         `json:"missingKeywordCap" validate:"gte=1,lte=100"`
}

var presetValidator = validator.New()

// Validate checks the preset's weights and bands.
func (p Preset) Validate() error {
	if err := presetValidator.Struct(p); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidPreset, p.Name, err)
	}
	return nil
}

var presets = map[string]Preset{
	"default": {
		Name:              "default",
		SkillWeight:       8,
		ActionVerbWeight:  10,
		Length:            LengthBands{LowWords: 200, HighWords: 400, Low: 30, Mid: 60, High: 90},
		ATS:               ATSRules{Base: 70, Penalty: 10, Bonus: 20, BonusWords: 300},
		Strategy:          StrategyOverlap,
		RemoveStopWords:   true,
		MissingKeywordCap: 15,
	},
	"lenient": {
		Name:              "lenient",
		SkillWeight:       10,
		ActionVerbWeight:  10,
		Length:            LengthBands{LowWords: 200, HighWords: 400, Low: 40, Mid: 70, High: 90},
		ATS:               ATSRules{Base: 70, Penalty: 10, Bonus: 20, BonusWords: 300},
		Strategy:          StrategyOverlap,
		RemoveStopWords:   true,
		MissingKeywordCap: 15,
	},
	"strict": {
		Name:              "strict",
		SkillWeight:       5,
		ActionVerbWeight:  10,
		Length:            LengthBands{LowWords: 200, HighWords: 400, Low: 30, Mid: 60, High: 90},
		ATS:               ATSRules{Base: 60, Penalty: 15, Bonus: 20, BonusWords: 300},
		Strategy:          StrategyTFIDF,
		RemoveStopWords:   true,
		MissingKeywordCap: 15,
	},
}

// LookupPreset returns the named preset. An empty name selects the default.
func LookupPreset(name string) (Preset, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = DefaultPresetName
	}
	p, ok := presets[key]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}
	return p, nil
}

// DefaultPreset returns the default preset.
func DefaultPreset() Preset {
	return presets[DefaultPresetName]
}

// Presets lists the registered presets sorted by name.
func Presets() []Preset {
	out := make([]Preset, 0, len(presets))
	for _, p := range presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ParseStrategy maps a user-supplied name to a Strategy.
func ParseStrategy(raw string) (Strategy, bool) {
	switch Strategy(strings.ToLower(strings.TrimSpace(raw))) {
	case StrategyOverlap:
		return StrategyOverlap, true
	case StrategyTFIDF, "tf-idf", "cosine":
		return StrategyTFIDF, true
	default:
		return "", false
	}
}
