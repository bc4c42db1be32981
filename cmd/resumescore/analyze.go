package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"resume-scorer/internal/analyses"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a resume file (PDF, DOCX, text, Markdown or HTML)",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

var (
	analyzeJobFile string
	analyzePreset  string
	analyzeJSON    bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeJobFile, "job", "j", "", "Path to a job description to match against")
	analyzeCmd.Flags().StringVarP(&analyzePreset, "preset", "p", "", "Scoring preset (default, lenient, strict)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the full result as JSON")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	var job string
	if analyzeJobFile != "" {
		job, err = readText(ctx, analyzeJobFile)
		if err != nil {
			return err
		}
	}

	svc, err := analyses.NewService(loadTable(ctx), analyses.Options{})
	if err != nil {
		return err
	}
	result, err := svc.AnalyzeDocument(ctx, analyses.Document{Data: data, FileName: filepath.Base(path)}, job, analyzePreset)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if analyzeJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	printResult(out, result)
	return nil
}

func printResult(w io.Writer, r analyses.Result) {
	if r.Empty {
		fmt.Fprintf(w, "%s (%s)\n", r.Message, r.Reason)
		return
	}
	s := r.Scores
	fmt.Fprintf(w, "Preset:        %s\n", r.Preset)
	fmt.Fprintf(w, "Words:         %d\n", r.WordCount)
	fmt.Fprintf(w, "Overall:       %.1f\n", s.Overall)
	fmt.Fprintf(w, "  Skills:        %.1f\n", s.Skills)
	fmt.Fprintf(w, "  Completeness:  %.1f\n", s.Completeness)
	fmt.Fprintf(w, "  Readability:   %.1f\n", s.Readability)
	fmt.Fprintf(w, "  ATS:           %.1f\n", s.ATS)
	fmt.Fprintf(w, "  Action verbs:  %.1f\n", s.ActionVerbs)

	names := make([]string, 0, len(r.Skills))
	for _, sk := range r.Skills {
		names = append(names, sk.Skill)
	}
	fmt.Fprintf(w, "Skills:        %s\n", strings.Join(names, ", "))

	if r.Match != nil {
		fmt.Fprintf(w, "Job match:     %.1f (%s)\n", r.Match.MatchScore, r.Match.Strategy)
		if len(r.Match.MissingKeywords) > 0 {
			fmt.Fprintf(w, "Missing:       %s\n", strings.Join(r.Match.MissingKeywords, ", "))
		}
	}

	fmt.Fprintln(w, "Recommendations:")
	for _, msg := range r.Messages {
		fmt.Fprintf(w, "  - %s\n", msg)
	}
}
