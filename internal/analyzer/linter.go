package analyzer

import (
	"strings"

	"github.com/gqlex/gqlint/internal/config"
	"github.com/gqlex/gqlint/internal/parser"
)

// Rule is the interface that linting rules must implement.
// This is duplicated here to avoid circular imports with the rules
// packages. Rules must be stateless: Check keeps all mutable state in
// locals so one instance is safe across concurrent runs
type Rule interface {
	ID() string
	Name() string
	Description() string
	Category() Category
	Severity() Severity
	Check(doc *parser.Document, ctx *Context) []Diagnostic
}

// Linter runs an ordered set of rules against one document per call.
// A single Linter may serve concurrent calls over different documents;
// nothing is written to shared state during a run
type Linter struct {
	rules       []Rule
	cfg         *config.Config
	enabled     map[string]bool
	disabled    map[string]bool
	minSeverity Severity
}

// Option is a function that configures a Linter
type Option func(*Linter)

// New creates a new Linter with the given options
func New(opts ...Option) *Linter {
	l := &Linter{
		cfg:         config.Default(),
		enabled:     make(map[string]bool),
		disabled:    make(map[string]bool),
		minSeverity: SeverityInfo,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// WithRules appends rules in order
func WithRules(rules ...Rule) Option {
	return func(l *Linter) {
		l.rules = append(l.rules, rules...)
	}
}

// WithConfig sets the configuration snapshot
func WithConfig(cfg *config.Config) Option {
	return func(l *Linter) {
		if cfg != nil {
			l.cfg = cfg
		}
	}
}

// WithEnabled restricts the run to the given rule ids
func WithEnabled(ids ...string) Option {
	return func(l *Linter) {
		for _, id := range ids {
			l.enabled[id] = true
		}
	}
}

// WithDisabled excludes the given rule ids
func WithDisabled(ids ...string) Option {
	return func(l *Linter) {
		for _, id := range ids {
			l.disabled[id] = true
		}
	}
}

// WithMinSeverity drops diagnostics below the given severity
func WithMinSeverity(s Severity) Option {
	return func(l *Linter) {
		l.minSeverity = s
	}
}

// Config returns the linter's configuration
func (l *Linter) Config() *config.Config {
	return l.cfg
}

// Add appends one rule to the run order
func (l *Linter) Add(rule Rule) {
	if rule != nil {
		l.rules = append(l.rules, rule)
	}
}

// AddAll appends rules preserving their order
func (l *Linter) AddAll(rules ...Rule) {
	for _, r := range rules {
		l.Add(r)
	}
}

// Remove removes a rule by instance
func (l *Linter) Remove(rule Rule) bool {
	for i, r := range l.rules {
		if r == rule {
			l.rules = append(l.rules[:i], l.rules[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveID removes all rules with the given id
func (l *Linter) RemoveID(id string) bool {
	removed := false
	kept := l.rules[:0]
	for _, r := range l.rules {
		if r.ID() == id {
			removed = true
			continue
		}
		kept = append(kept, r)
	}
	l.rules = kept
	return removed
}

// Clear removes every registered rule
func (l *Linter) Clear() {
	l.rules = nil
}

// Has reports whether a rule with the given id is registered
func (l *Linter) Has(id string) bool {
	return l.Rule(id) != nil
}

// Rule returns the first registered rule with the given id, or nil
func (l *Linter) Rule(id string) Rule {
	for _, r := range l.rules {
		if r.ID() == id {
			return r
		}
	}
	return nil
}

// Rules returns the registered rules in run order
func (l *Linter) Rules() []Rule {
	out := make([]Rule, len(l.rules))
	copy(out, l.rules)
	return out
}

// RulesInCategory returns the registered rules of one category, in run order
func (l *Linter) RulesInCategory(category Category) []Rule {
	var out []Rule
	for _, r := range l.rules {
		if r.Category() == category {
			out = append(out, r)
		}
	}
	return out
}

// Clone returns a linter sharing this one's configuration but with an
// empty rule set
func (l *Linter) Clone() *Linter {
	return &Linter{
		cfg:         l.cfg,
		enabled:     copyBoolMap(l.enabled),
		disabled:    copyBoolMap(l.disabled),
		minSeverity: l.minSeverity,
	}
}

// DeepClone returns a linter with a copied configuration and the same
// rule list. Rules are stateless, so instances are shared
func (l *Linter) DeepClone() *Linter {
	out := &Linter{
		cfg:         l.cfg.Clone(),
		rules:       make([]Rule, len(l.rules)),
		enabled:     copyBoolMap(l.enabled),
		disabled:    copyBoolMap(l.disabled),
		minSeverity: l.minSeverity,
	}
	copy(out.rules, l.rules)
	return out
}

func copyBoolMap(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// LintSource parses and lints source text. A blank input or a parse
// failure is reported as a single error diagnostic; nothing escapes to
// the caller as a Go error or panic
func (l *Linter) LintSource(source, filename string) *Result {
	if strings.TrimSpace(source) == "" {
		return l.LintParsed(nil, nil, filename, source)
	}
	doc, parseErrors := parser.Parse(source)
	return l.LintParsed(doc, parseErrors, filename, source)
}

// LintParsed lints an already parsed document, for callers that parse
// through a cache. Blank sources and parse failures each collapse to a
// single error diagnostic
func (l *Linter) LintParsed(doc *parser.Document, parseErrors []parser.ParseError, filename, source string) *Result {
	if strings.TrimSpace(source) == "" {
		result := NewResult(filename)
		result.Add(NewDiagnostic(RuleEmptyQuery, "").
			WithSeverity(SeverityError).
			WithMessage("query is empty").
			Build())
		return result
	}

	if len(parseErrors) > 0 {
		result := NewResult(filename)
		first := parseErrors[0]
		result.Add(NewDiagnostic(RuleParseError, "").
			WithSeverity(SeverityError).
			WithMessagef("failed to parse query: %s", first.Message).
			WithPos(first.Pos).
			Build())
		return result
	}

	return l.Lint(doc, filename, source)
}

// Lint runs every enabled rule against the document in registration
// order and returns one Result. A nil document yields an empty Result.
// A panic inside a rule is converted into a single warning diagnostic
// naming the rule and never stops the remaining rules
func (l *Linter) Lint(doc *parser.Document, filename, source string) *Result {
	result := NewResult(filename)
	if doc == nil {
		return result
	}

	ctx := NewContext(doc, l.cfg, filename, source)

	for _, rule := range l.rules {
		if !l.shouldRun(rule) {
			continue
		}
		for _, d := range l.runRule(rule, doc, ctx) {
			if override, ok := l.cfg.RuleSeverity(rule.ID()); ok {
				d.Severity = ParseSeverity(override)
			}
			if d.Severity < l.minSeverity {
				continue
			}
			result.Add(d)
		}
	}

	return result
}

// runRule executes one rule inside panic isolation
func (l *Linter) runRule(rule Rule, doc *parser.Document, ctx *Context) (diags []Diagnostic) {
	defer func() {
		if r := recover(); r != nil {
			diags = []Diagnostic{
				NewDiagnostic(RuleRulePanic, rule.Category()).
					WithSeverity(SeverityWarning).
					WithMessagef("rule %s failed: %v", rule.ID(), r).
					Build(),
			}
		}
	}()
	return rule.Check(doc, ctx)
}

// shouldRun checks enablement: explicit disable wins, then the
// restricted enable set, then the configuration override
func (l *Linter) shouldRun(rule Rule) bool {
	id := rule.ID()
	if l.disabled[id] {
		return false
	}
	if len(l.enabled) > 0 && !l.enabled[id] {
		return false
	}
	return l.cfg.RuleEnabled(id)
}
