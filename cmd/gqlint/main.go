package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "gqlint",
		Short: "GraphQL query linter and analyzer",
		Long: `Gqlint is a static analyzer for GraphQL operation documents.

It checks queries, mutations, and subscriptions for security issues,
performance problems, best practice violations, and style
inconsistencies before they ever reach a server.`,
		Version: version,
	}

	rootCmd.AddCommand(
		lintCmd(),
		rulesCmd(),
		explainCmd(),
		initCmd(),
	)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file path (default .gqlint.yaml)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Only output errors")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show additional context")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
