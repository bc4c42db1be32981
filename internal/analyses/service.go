package analyses

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-scorer/internal/analyses/recommendations"
	"resume-scorer/internal/extract"
	"resume-scorer/internal/samples"
	"resume-scorer/internal/scoring"
	"resume-scorer/internal/shared/metrics"
	"resume-scorer/internal/shared/telemetry"
	"resume-scorer/internal/shared/util"
)

const (
	messageEmpty       = "No text was found in the resume, so nothing was scored."
	messageUnsupported = "This file type is not supported, so nothing was scored."
)

// Options configures a Service.
type Options struct {
	// DefaultPreset is used when a request names none. Empty means "default".
	DefaultPreset string
	// Recognizer enables the optional entity pass on every scorer.
	Recognizer scoring.EntityRecognizer
	// Samples resolves sampleId and jobSampleId. Nil disables samples.
	Samples *samples.Service
}

// Service runs analyses. It holds one Scorer per preset and no per-request
// state, so it is safe for concurrent use.
type Service struct {
	scorers       map[string]*scoring.Scorer
	defaultPreset string
	table         scoring.Table
	samples       *samples.Service
}

// NewService builds a scorer for every registered preset over table.
func NewService(table scoring.Table, opts Options) (*Service, error) {
	def, err := scoring.LookupPreset(opts.DefaultPreset)
	if err != nil {
		return nil, err
	}
	var scorerOpts []scoring.Option
	if opts.Recognizer != nil {
		scorerOpts = append(scorerOpts, scoring.WithRecognizer(opts.Recognizer))
	}

	scorers := make(map[string]*scoring.Scorer)
	for _, p := range scoring.Presets() {
		sc, err := scoring.New(p, table, scorerOpts...)
		if err != nil {
			return nil, fmt.Errorf("preset %s: %w", p.Name, err)
		}
		scorers[p.Name] = sc
	}
	return &Service{
		scorers:       scorers,
		defaultPreset: def.Name,
		table:         scorers[def.Name].Table(),
		samples:       opts.Samples,
	}, nil
}

func (s *Service) scorer(name string) (*scoring.Scorer, error) {
	if strings.TrimSpace(name) == "" {
		name = s.defaultPreset
	}
	p, err := scoring.LookupPreset(name)
	if err != nil {
		return nil, err
	}
	return s.scorers[p.Name], nil
}

// Analyze scores inline text or a stored sample, optionally against a job
// description given inline or as a sample. Blank text is not an error: it
// yields an empty Result.
func (s *Service) Analyze(ctx context.Context, req AnalyzeRequest) (Result, error) {
	sc, err := s.scorer(req.Preset)
	if err != nil {
		return Result{}, err
	}

	source := Source{Kind: SourceText}
	text := req.ResumeText
	switch {
	case req.SampleID != "" && strings.TrimSpace(req.ResumeText) != "":
		return Result{}, fmt.Errorf("%w: resumeText and sampleId", ErrAmbiguousInput)
	case req.SampleID != "":
		source = Source{Kind: SourceSample, SampleID: req.SampleID}
		text, err = s.sampleText(ctx, samples.KindResume, req.SampleID)
		if errors.Is(err, extract.ErrUnsupportedFormat) {
			return s.unsupported(sc, source, err), nil
		}
		if err != nil {
			return Result{}, err
		}
	}

	job, err := s.jobText(ctx, req.JobDescription, req.JobSampleID)
	if err != nil {
		return Result{}, err
	}
	return s.run(sc, text, job, source), nil
}

func (s *Service) unsupported(sc *scoring.Scorer, source Source, err error) Result {
	telemetry.Warn("analysis.unsupported_format", map[string]any{
		"source":    source.Kind,
		"sample_id": source.SampleID,
		"file_name": source.FileName,
		"format":    source.Format,
		"error":     err.Error(),
	})
	metrics.IncAnalysisStarted()
	metrics.IncAnalysisEmpty()
	return emptyResult(uuid.NewString(), sc.Preset().Name, source, ReasonUnsupportedFormat, messageUnsupported)
}

// AnalyzeDocument extracts text from an uploaded file and scores it. An
// unsupported format is scored as empty input; decode and extraction
// failures are returned as errors.
func (s *Service) AnalyzeDocument(ctx context.Context, doc Document, jobDescription, preset string) (Result, error) {
	sc, err := s.scorer(preset)
	if err != nil {
		return Result{}, err
	}
	source := Source{
		Kind:     SourceUpload,
		FileName: doc.FileName,
		Format:   extract.DetectFormat(doc.MimeType, doc.FileName, doc.Data),
	}

	text, err := extract.ExtractTextFromBytes(ctx, doc.Data, doc.MimeType, doc.FileName)
	switch {
	case err != nil && ctx.Err() != nil:
		return Result{}, ctx.Err()
	case errors.Is(err, extract.ErrUnsupportedFormat):
		return s.unsupported(sc, source, err), nil
	case err != nil:
		metrics.IncAnalysisStarted()
		metrics.IncExtractionFailure()
		metrics.IncAnalysisFailed()
		telemetry.Warn("analysis.extraction_failed", map[string]any{
			"file_name": doc.FileName,
			"format":    source.Format,
			"error":     err.Error(),
		})
		return Result{}, err
	}
	return s.run(sc, text, jobDescription, source), nil
}

func (s *Service) run(sc *scoring.Scorer, text, job string, source Source) Result {
	start := time.Now()
	metrics.IncAnalysisStarted()
	id := uuid.NewString()
	preset := sc.Preset()

	analysis, err := sc.Analyze(text)
	if errors.Is(err, scoring.ErrEmptyInput) {
		metrics.IncAnalysisEmpty()
		telemetry.Info("analysis.empty", map[string]any{"analysis_id": id, "preset": preset.Name})
		return emptyResult(id, preset.Name, source, ReasonEmptyInput, messageEmpty)
	}

	var match *scoring.JobMatchResult
	if strings.TrimSpace(job) != "" {
		m := sc.MatchJob(text, job)
		match = &m
		metrics.IncMatchComputed()
	}

	input := recommendations.Input{
		Scores:          analysis.Scores,
		Skills:          analysis.Skills,
		WordCount:       analysis.WordCount,
		MissingSections: scoring.MissingSections(text),
		Match:           match,
	}
	recs := recommendations.Generate(input)
	insight := recommendations.Insights(input)

	missing := input.MissingSections
	if missing == nil {
		missing = []string{}
	}
	res := Result{
		ID:              id,
		Preset:          preset.Name,
		Source:          source,
		Fingerprint:     util.Fingerprint(text),
		WordCount:       analysis.WordCount,
		Skills:          analysis.Skills,
		Scores:          analysis.Scores,
		MissingSections: missing,
		Match:           match,
		Recommendations: recs,
		Messages:        recommendations.Messages(recs),
		Insight:         &insight,
		Explanation:     explain(text, analysis, preset),
	}

	elapsed := float64(time.Since(start).Microseconds()) / 1000
	metrics.IncAnalysisCompleted(preset.Name)
	metrics.ObserveAnalysisDurationMs(elapsed)

	fields := map[string]any{
		"analysis_id": id,
		"preset":      preset.Name,
		"source":      source.Kind,
		"word_count":  analysis.WordCount,
		"skills":      len(scoring.DistinctSkills(analysis.Skills)),
		"overall":     analysis.Scores.Overall,
		"duration_ms": elapsed,
	}
	if match != nil {
		fields["match_score"] = match.MatchScore
	}
	telemetry.Info("analysis.complete", fields)
	return res
}

// Match compares resume text with a job description. An empty strategy uses
// the preset's.
func (s *Service) Match(req MatchRequest) (scoring.JobMatchResult, error) {
	sc, err := s.scorer(req.Preset)
	if err != nil {
		return scoring.JobMatchResult{}, err
	}
	var result scoring.JobMatchResult
	if strings.TrimSpace(req.Strategy) == "" {
		result = sc.MatchJob(req.ResumeText, req.JobDescription)
	} else {
		strategy, ok := scoring.ParseStrategy(req.Strategy)
		if !ok {
			return scoring.JobMatchResult{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, req.Strategy)
		}
		result = sc.MatchJobWith(strategy, req.ResumeText, req.JobDescription)
	}
	metrics.IncMatchComputed()
	return result, nil
}

// Recommend returns the recommendation messages for precomputed scores.
func (s *Service) Recommend(req RecommendRequest) []string {
	return recommendations.Recommend(req.Scores, req.Skills)
}

// Skills returns the skill table the scorers use.
func (s *Service) Skills() scoring.Table {
	return s.table
}

// Presets lists the registered presets and flags the default.
func (s *Service) Presets() []PresetView {
	all := scoring.Presets()
	out := make([]PresetView, 0, len(all))
	for _, p := range all {
		out = append(out, PresetView{Preset: p, Default: p.Name == s.defaultPreset})
	}
	return out
}

func (s *Service) jobText(ctx context.Context, inline, sampleID string) (string, error) {
	if sampleID == "" {
		return inline, nil
	}
	if strings.TrimSpace(inline) != "" {
		return "", fmt.Errorf("%w: jobDescription and jobSampleId", ErrAmbiguousInput)
	}
	text, err := s.sampleText(ctx, samples.KindJob, sampleID)
	if errors.Is(err, extract.ErrUnsupportedFormat) {
		// an unreadable job sample is matched as an empty description
		telemetry.Warn("analysis.job_sample_unsupported", map[string]any{"sample_id": sampleID})
		return "", nil
	}
	return text, err
}

func (s *Service) sampleText(ctx context.Context, kind samples.Kind, id string) (string, error) {
	if s.samples == nil {
		return "", fmt.Errorf("%w: %s %s", samples.ErrNotFound, kind, id)
	}
	return s.samples.Text(ctx, kind, id)
}

func emptyResult(id, preset string, source Source, reason, message string) Result {
	return Result{
		ID:              id,
		Preset:          preset,
		Empty:           true,
		Reason:          reason,
		Message:         message,
		Source:          source,
		Skills:          []scoring.SkillMatch{},
		MissingSections: []string{},
		Recommendations: []recommendations.Recommendation{},
		Messages:        []string{},
		Explanation:     []ScoreComponent{},
	}
}
