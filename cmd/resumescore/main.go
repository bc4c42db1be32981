// Command resumescore scores resumes from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"resume-scorer/internal/shared/telemetry"
)

var rootCmd = &cobra.Command{
	Use:           "resumescore",
	Short:         "Score resumes and match them to job descriptions",
	Long:          "resumescore detects skills, computes sub-scores and recommendations for a resume, and compares it with a job description.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	dbURL    string
	logLevel string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&dbURL, "db-url", "", "Postgres URL for the skill catalog (overrides DATABASE_URL)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level written to stderr")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		telemetry.InitWithWriter(telemetry.Config{Level: logLevel, Format: "pretty"}, cmd.ErrOrStderr())
	}
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
