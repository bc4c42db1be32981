package profile

// Position is one experience entry.
type Position struct {
	Title   string `json:"title" validate:"max=200"`
	Company string `json:"company" validate:"max=200"`
}

// School is one education entry.
type School struct {
	Name   string `json:"name" validate:"max=200"`
	Degree string `json:"degree" validate:"max=200"`
}

// Profile is the subset of a professional profile that is scored.
type Profile struct {
	Headline   string     `json:"headline" validate:"max=300"`
	Summary    string     `json:"summary" validate:"max=5000"`
	Experience []Position `json:"experience" validate:"max=100,dive"`
	Education  []School   `json:"education" validate:"max=50,dive"`
	Skills     []string   `json:"skills" validate:"max=200,dive,max=100"`
}

// Result is a profile score with tips.
type Result struct {
	Score int      `json:"score"`
	Tips  []string `json:"tips"`
}
