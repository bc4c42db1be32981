package profile

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks field limits.
func Validate(p Profile) error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	return nil
}

// Score rates profile completeness from 0 to 100.
func Score(p Profile) int {
	score := 0
	if strings.TrimSpace(p.Headline) != "" {
		score += 15
	}
	if len(strings.TrimSpace(p.Summary)) > 50 {
		score += 20
	}
	if len(p.Experience) > 0 {
		score += 25
	}
	if len(p.Education) > 0 {
		score += 20
	}
	if len(p.Skills) > 5 {
		score += 20
	}
	return min(score, 100)
}

// Tips lists improvements in a fixed order.
func Tips(p Profile) []string {
	tips := []string{}
	if len(strings.TrimSpace(p.Summary)) < 100 {
		tips = append(tips, "Add a detailed professional summary")
	}
	if len(p.Skills) < 10 {
		tips = append(tips, "Add more skills to your profile")
	}
	if len(p.Experience) < 2 {
		tips = append(tips, "Complete your experience section")
	}
	return tips
}

// Evaluate validates p and returns its score and tips.
func Evaluate(p Profile) (Result, error) {
	if err := Validate(p); err != nil {
		return Result{}, err
	}
	return Result{Score: Score(p), Tips: Tips(p)}, nil
}
