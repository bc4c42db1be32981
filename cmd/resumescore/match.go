package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"resume-scorer/internal/analyses"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Compare a resume with a job description",
	RunE:  runMatch,
}

var (
	matchResumeFile string
	matchJobFile    string
	matchStrategy   string
	matchPreset     string
)

func init() {
	matchCmd.Flags().StringVarP(&matchResumeFile, "resume", "r", "", "Path to the resume")
	matchCmd.Flags().StringVarP(&matchJobFile, "job", "j", "", "Path to the job description")
	matchCmd.Flags().StringVarP(&matchStrategy, "strategy", "s", "", "Similarity strategy: overlap or tfidf (default from preset)")
	matchCmd.Flags().StringVarP(&matchPreset, "preset", "p", "", "Scoring preset")
	_ = matchCmd.MarkFlagRequired("resume")
	_ = matchCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	resume, err := readText(ctx, matchResumeFile)
	if err != nil {
		return err
	}
	job, err := readText(ctx, matchJobFile)
	if err != nil {
		return err
	}

	svc, err := analyses.NewService(nil, analyses.Options{})
	if err != nil {
		return err
	}
	result, err := svc.Match(analyses.MatchRequest{
		ResumeText:     resume,
		JobDescription: job,
		Strategy:       matchStrategy,
		Preset:         matchPreset,
	})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}
