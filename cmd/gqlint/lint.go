package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/gqlex/gqlint/internal/analyzer"
	"github.com/gqlex/gqlint/internal/cache"
	"github.com/gqlex/gqlint/internal/config"
	"github.com/gqlex/gqlint/internal/parallel"
	"github.com/gqlex/gqlint/internal/reporter"
	"github.com/gqlex/gqlint/internal/rules/bestpractice"
	"github.com/gqlex/gqlint/internal/rules/performance"
	"github.com/gqlex/gqlint/internal/rules/security"
	"github.com/gqlex/gqlint/internal/rules/style"
)

func lintCmd() *cobra.Command {
	var (
		output   string
		preset   string
		severity string
		ignore   []string
		only     []string
		workers  int
	)

	cmd := &cobra.Command{
		Use:   "lint <file|glob>...",
		Short: "Lint GraphQL documents and report issues",
		Long: "Lint GraphQL operation documents for security, performance, best practice, " +
			"and style issues. Arguments may be files or doublestar globs like 'queries/**/*.graphql'.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, preset)
			if err != nil {
				return err
			}

			files, err := expandArgs(args, cfg.IgnorePaths())
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no files matched")
			}

			opts := []analyzer.Option{
				analyzer.WithRules(allRules()...),
				analyzer.WithConfig(cfg),
			}
			quiet, _ := cmd.Flags().GetBool("quiet")
			if severity != "" {
				opts = append(opts, analyzer.WithMinSeverity(analyzer.ParseSeverity(severity)))
			} else if quiet {
				opts = append(opts, analyzer.WithMinSeverity(analyzer.SeverityError))
			}
			if len(only) > 0 {
				opts = append(opts, analyzer.WithEnabled(only...))
			}
			if len(ignore) > 0 {
				opts = append(opts, analyzer.WithDisabled(ignore...))
			}
			linter := analyzer.New(opts...)

			format, err := reporter.ParseFormat(output)
			if err != nil {
				return err
			}
			noColor, _ := cmd.Flags().GetBool("no-color")
			verbose, _ := cmd.Flags().GetBool("verbose")
			rep := reporter.New(format, os.Stdout,
				reporter.WithColors(!noColor),
				reporter.WithVerbose(verbose))

			parsed := cache.NewCachedParser(cache.NewDocumentCache())

			var mu sync.Mutex
			sources := make(map[string]string, len(files))

			proc := parallel.New(parallel.WithWorkers(workers))
			results := proc.Process(context.Background(), files, func(ctx context.Context, filename string) (*analyzer.Result, error) {
				content, err := os.ReadFile(filename)
				if err != nil {
					return nil, fmt.Errorf("failed to read %s: %w", filename, err)
				}
				source := string(content)
				mu.Lock()
				sources[filename] = source
				mu.Unlock()
				doc, parseErrors := parsed.Parse(filename, source)
				return linter.LintParsed(doc, parseErrors, filename, source), nil
			})

			hasErrors := false
			for _, fr := range results {
				if fr.Err != nil {
					fmt.Fprintln(os.Stderr, fr.Err)
					hasErrors = true
					continue
				}
				if err := rep.Report(fr.Result, sources[fr.Filename]); err != nil {
					return fmt.Errorf("failed to report: %w", err)
				}
				if fr.Result.HasErrors() {
					hasErrors = true
				}
			}

			if hasErrors {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "terminal", "Output format: terminal|json|sarif|markdown|github")
	cmd.Flags().StringVar(&preset, "preset", "", "Configuration preset: default|strict|relaxed|performance|security")
	cmd.Flags().StringVar(&severity, "severity", "", "Minimum severity to report: error|warning|info")
	cmd.Flags().StringSliceVar(&ignore, "ignore", nil, "Rules to skip (e.g., --ignore SEC001,PERF004)")
	cmd.Flags().StringSliceVar(&only, "only", nil, "Only run these rules")
	cmd.Flags().IntVar(&workers, "workers", 0, "Number of concurrent workers (default GOMAXPROCS)")

	return cmd
}

// loadConfig layers the explicit config file over the chosen preset.
// With no file and no preset the defaults apply
func loadConfig(cmd *cobra.Command, preset string) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		if _, err := os.Stat(".gqlint.yaml"); err == nil {
			path = ".gqlint.yaml"
		}
	}
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
		return cfg, nil
	}

	if preset != "" {
		cfg, ok := config.Preset(preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset %q", preset)
		}
		return cfg, nil
	}

	return config.Default(), nil
}

// expandArgs resolves file arguments and globs, dropping anything that
// matches an ignore pattern from the configuration
func expandArgs(args []string, ignorePaths []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	add := func(path string) {
		if seen[path] || ignored(path, ignorePaths) {
			return
		}
		seen[path] = true
		files = append(files, path)
	}

	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[{") {
			add(arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %w", arg, err)
		}
		for _, m := range matches {
			add(m)
		}
	}

	return files, nil
}

func ignored(path string, patterns []string) bool {
	for _, pat := range patterns {
		if ok, _ := doublestar.PathMatch(pat, path); ok {
			return true
		}
	}
	return false
}

func allRules() []analyzer.Rule {
	var rules []analyzer.Rule
	for _, r := range security.All() {
		rules = append(rules, r)
	}
	for _, r := range performance.All() {
		rules = append(rules, r)
	}
	for _, r := range bestpractice.All() {
		rules = append(rules, r)
	}
	for _, r := range style.All() {
		rules = append(rules, r)
	}
	return rules
}
