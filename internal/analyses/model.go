package analyses

import (
	"resume-scorer/internal/analyses/recommendations"
	"resume-scorer/internal/scoring"
)

// AnalyzeRequest is the JSON body of POST /analyses.
type AnalyzeRequest struct {
	ResumeText     string `json:"resumeText" binding:"max=200000"`
	SampleID       string `json:"sampleId" binding:"omitempty,max=128"`
	JobDescription string `json:"jobDescription" binding:"max=100000"`
	JobSampleID    string `json:"jobSampleId" binding:"omitempty,max=128"`
	Preset         string `json:"preset" binding:"omitempty,max=32"`
}

// MatchRequest is the JSON body of POST /match.
type MatchRequest struct {
	ResumeText     string `json:"resumeText" binding:"max=200000"`
	JobDescription string `json:"jobDescription" binding:"max=100000"`
	Strategy       string `json:"strategy" binding:"omitempty,max=16"`
	Preset         string `json:"preset" binding:"omitempty,max=32"`
}

// RecommendRequest is the JSON body of POST /recommendations.
type RecommendRequest struct {
	Scores scoring.ScoreSet     `json:"scores"`
	Skills []scoring.SkillMatch `json:"skills"`
}

// Document is an uploaded file.
type Document struct {
	Data     []byte
	MimeType string
	FileName string
}

// Source records where the analyzed resume came from.
type Source struct {
	Kind     string `json:"kind"`
	SampleID string `json:"sampleId,omitempty"`
	FileName string `json:"fileName,omitempty"`
	Format   string `json:"format,omitempty"`
}

// Source kinds.
const (
	SourceText   = "text"
	SourceSample = "sample"
	SourceUpload = "upload"
)

// Result is a complete analysis. Nothing in it is persisted; ID only
// correlates the response with log lines.
type Result struct {
	ID              string                           `json:"id"`
	Preset          string                           `json:"preset"`
	Empty           bool                             `json:"empty"`
	Reason          string                           `json:"reason,omitempty"`
	Message         string                           `json:"message,omitempty"`
	Source          Source                           `json:"source"`
	Fingerprint     string                           `json:"fingerprint,omitempty"`
	WordCount       int                              `json:"wordCount"`
	Skills          []scoring.SkillMatch             `json:"skills"`
	Scores          scoring.ScoreSet                 `json:"scores"`
	MissingSections []string                         `json:"missingSections"`
	Match           *scoring.JobMatchResult          `json:"match,omitempty"`
	Recommendations []recommendations.Recommendation `json:"recommendations"`
	Messages        []string                         `json:"messages"`
	Insight         *recommendations.Insight         `json:"insight,omitempty"`
	Explanation     []ScoreComponent                 `json:"explanation"`
}

// PresetView is the public shape of a preset.
type PresetView struct {
	scoring.Preset
	Default bool `json:"default"`
}
