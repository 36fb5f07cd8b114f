package rules

import (
	"slices"
	"strings"
	"sync"

	"github.com/gqlex/gqlint/internal/analyzer"
)

// Registry holds a set of rules keyed by id. The zero value is not
// usable; construct with NewRegistry
type Registry struct {
	mu    sync.RWMutex
	rules map[string]Rule
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]Rule)}
}

// Register adds a rule, replacing any previous rule with the same id
func (r *Registry) Register(rule Rule) {
	r.mu.Lock()
	r.rules[rule.ID()] = rule
	r.mu.Unlock()
}

// Get returns a rule by id
func (r *Registry) Get(id string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.rules[id]
	return rule, ok
}

// All returns the registered rules sorted by id
func (r *Registry) All() []Rule {
	return r.sorted(nil)
}

// ByCategory returns the rules in one category, sorted by id
func (r *Registry) ByCategory(category analyzer.Category) []Rule {
	return r.sorted(func(rule Rule) bool {
		return rule.Category() == category
	})
}

func (r *Registry) sorted(keep func(Rule) bool) []Rule {
	r.mu.RLock()
	out := make([]Rule, 0, len(r.rules))
	for _, rule := range r.rules {
		if keep == nil || keep(rule) {
			out = append(out, rule)
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b Rule) int {
		return strings.Compare(a.ID(), b.ID())
	})
	if len(out) == 0 {
		return nil
	}
	return out
}

// IDs returns all rule ids, sorted
func (r *Registry) IDs() []string {
	r.mu.RLock()
	ids := make([]string, 0, len(r.rules))
	for id := range r.rules {
		ids = append(ids, id)
	}
	r.mu.RUnlock()

	slices.Sort(ids)
	return ids
}

// Count returns the number of registered rules
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rules)
}
