// Package main provides the entry point for the insights CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/insights/cmd/insights/commands"
	"github.com/Sumatoshi-tech/insights/pkg/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "insights",
		Short: "Insights - code quality metrics for Go projects",
		Long: `Insights analyzes a source tree and reports per-metric values,
percentages, and individual check findings, driven by a preset-based
configuration.

Commands:
  analyze   Analyze a source tree and render the report
  init      Write a starter .insights.yml`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewAnalyzeCommand())
	rootCmd.AddCommand(commands.NewInitCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
