package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List the skill catalog by category",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		for _, c := range loadTable(cmd.Context()) {
			fmt.Fprintf(out, "%s: %s\n", c.Name, strings.Join(c.Skills, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(skillsCmd)
}
