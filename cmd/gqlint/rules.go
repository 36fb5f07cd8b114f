package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gqlex/gqlint/internal/analyzer"
	"github.com/gqlex/gqlint/internal/rules"
)

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List all available rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listRules(buildRegistry())
		},
	}
	return cmd
}

func explainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain <rule>",
		Short: "Show detailed explanation of a rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rule, ok := buildRegistry().Get(strings.ToUpper(args[0]))
			if !ok {
				return fmt.Errorf("rule %q not found", args[0])
			}
			return explainRule(rule)
		},
	}
	return cmd
}

// buildRegistry indexes every registered rule family
func buildRegistry() *rules.Registry {
	reg := rules.NewRegistry()
	for _, r := range allRules() {
		reg.Register(r)
	}
	return reg
}

func listRules(reg *rules.Registry) error {
	fmt.Println("Available rules:")
	fmt.Println()

	categoryOrder := []analyzer.Category{
		analyzer.CategorySecurity,
		analyzer.CategoryPerformance,
		analyzer.CategoryBestPractice,
		analyzer.CategoryStyle,
	}

	for _, cat := range categoryOrder {
		catRules := reg.ByCategory(cat)
		if len(catRules) == 0 {
			continue
		}

		fmt.Printf("## %s\n", string(cat))
		for _, r := range catRules {
			fmt.Printf("  %s  %-28s  %s\n", r.ID(), r.Name(), r.Severity())
		}
		fmt.Println()
	}

	fmt.Printf("Total: %d rules\n", reg.Count())
	fmt.Println()
	fmt.Println("Use 'gqlint explain <rule>' for detailed information about a specific rule.")

	return nil
}

func explainRule(r rules.Rule) error {
	fmt.Fprintf(os.Stdout, "Rule: %s (%s)\n", r.ID(), r.Name())
	fmt.Fprintf(os.Stdout, "Category: %s\n", r.Category())
	fmt.Fprintf(os.Stdout, "Severity: %s\n", r.Severity())
	fmt.Println()
	fmt.Println("Description:")
	fmt.Printf("  %s\n", r.Description())
	fmt.Println()
	return nil
}
