// Package config holds the linter configuration: typed settings with
// defaults, per-rule enable/severity overrides and named presets.
// Configurations are plain values constructed by factories; there is no
// shared mutable default
package config

// RuleOverride carries the per-rule configuration
type RuleOverride struct {
	// Enabled overrides the rule's default enablement when non-nil
	Enabled *bool `yaml:"enabled"`
	// Severity overrides the rule's default severity when non-empty.
	// Stored as a name ("error", "warning", "info"); the analyzer
	// parses it so this package stays free of analyzer imports
	Severity string `yaml:"severity"`
}

// Config is a settings store with typed accessors plus per-rule overrides
type Config struct {
	settings    map[string]interface{}
	rules       map[string]RuleOverride
	ignorePaths []string
}

// New creates an empty configuration
func New() *Config {
	return &Config{
		settings: make(map[string]interface{}),
		rules:    make(map[string]RuleOverride),
	}
}

// Set stores a setting value
func (c *Config) Set(key string, value interface{}) {
	c.settings[key] = value
}

// SetRule stores a per-rule override
func (c *Config) SetRule(id string, override RuleOverride) {
	c.rules[id] = override
}

// EnableRule sets a rule's enabled override
func (c *Config) EnableRule(id string, enabled bool) {
	o := c.rules[id]
	o.Enabled = &enabled
	c.rules[id] = o
}

// Int returns an integer setting, or def if missing or mistyped
func (c *Config) Int(key string, def int) int {
	switch v := c.settings[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return def
	}
}

// Bool returns a boolean setting, or def if missing or mistyped
func (c *Config) Bool(key string, def bool) bool {
	if v, ok := c.settings[key].(bool); ok {
		return v
	}
	return def
}

// String returns a string setting, or def if missing or mistyped
func (c *Config) String(key string, def string) string {
	if v, ok := c.settings[key].(string); ok {
		return v
	}
	return def
}

// Strings returns a string-list setting, or def if missing or mistyped.
// YAML decoding may produce []interface{}; both shapes are accepted
func (c *Config) Strings(key string, def []string) []string {
	switch v := c.settings[key].(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return def
	}
}

// Has reports whether a setting is present
func (c *Config) Has(key string) bool {
	_, ok := c.settings[key]
	return ok
}

// RuleEnabled reports whether a rule should run. Rules default to
// enabled unless overridden
func (c *Config) RuleEnabled(id string) bool {
	if o, ok := c.rules[id]; ok && o.Enabled != nil {
		return *o.Enabled
	}
	return true
}

// RuleSeverity returns the severity override name for a rule, if any
func (c *Config) RuleSeverity(id string) (string, bool) {
	if o, ok := c.rules[id]; ok && o.Severity != "" {
		return o.Severity, true
	}
	return "", false
}

// RuleIDs returns the ids with an explicit override
func (c *Config) RuleIDs() []string {
	ids := make([]string, 0, len(c.rules))
	for id := range c.rules {
		ids = append(ids, id)
	}
	return ids
}

// IgnorePaths returns the glob patterns of paths to skip
func (c *Config) IgnorePaths() []string {
	return c.ignorePaths
}

// SetIgnorePaths replaces the ignore patterns
func (c *Config) SetIgnorePaths(patterns []string) {
	c.ignorePaths = patterns
}

// Clone returns an independent copy of the configuration
func (c *Config) Clone() *Config {
	out := New()
	for k, v := range c.settings {
		out.settings[k] = v
	}
	for id, o := range c.rules {
		if o.Enabled != nil {
			enabled := *o.Enabled
			o.Enabled = &enabled
		}
		out.rules[id] = o
	}
	out.ignorePaths = append([]string(nil), c.ignorePaths...)
	return out
}
