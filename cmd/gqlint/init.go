package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate default config file",
		Long:  "Generate a default .gqlint.yaml configuration file in the current directory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile := ".gqlint.yaml"

			if _, err := os.Stat(configFile); err == nil {
				return fmt.Errorf("%s already exists", configFile)
			}

			config := `# Gqlint configuration file
# See https://github.com/gqlex/gqlint for documentation

# Base preset: default, strict, relaxed, performance, security
preset: default

# Minimum severity to report: error, warning, info
severity: warning

# Threshold overrides
settings:
  max_depth: 7
  max_fields: 50
  max_line_length: 100
  # allow_introspection: true

# Per-rule configuration
rules:
  # Security rules
  SEC001:
    enabled: true
  SEC002:
    enabled: true
    # severity: error

  # Performance rules
  PERF001:
    enabled: true

  # Best practice rules
  BP004:
    enabled: true

  # Style rules
  STY004:
    enabled: true

# Ignore patterns (doublestar glob syntax)
ignore_paths:
  - "testdata/**"
  - "**/*.generated.graphql"
`

			if err := os.WriteFile(configFile, []byte(config), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", configFile, err)
			}

			fmt.Printf("Created %s\n", configFile)
			return nil
		},
	}

	return cmd
}
