package config

// Setting keys understood by the bundled rules
const (
	KeyMinSeverity          = "severity"
	KeyMaxLineLength        = "max_line_length"
	KeyMaxDepth             = "max_depth"
	KeyMaxFields            = "max_fields"
	KeyMaxArguments         = "max_arguments"
	KeyMaxArgumentsPerField = "max_arguments_per_field"
	KeyMaxFragments         = "max_fragments"
	KeyMaxSelectionSet      = "max_selection_set"
	KeyMaxSecurityDepth     = "max_security_depth"
	KeyMaxComplexity        = "max_complexity"
	KeyMaxFragmentFields    = "max_fragment_fields"
	KeyMaxFragmentSpreads   = "max_fragment_spreads"
	KeyOverfetchThreshold   = "overfetch_field_threshold"
	KeyAllowIntrospection   = "allow_introspection"
	KeySensitiveFieldTerms  = "sensitive_field_terms"
	KeyAccessControlTerms   = "access_control_terms"
	KeyForbiddenDirectives  = "forbidden_directives"
)

// defaultSensitiveTerms is the vocabulary SEC002 matches field and
// argument names against (case-insensitive substring). Deliberately
// broad; override via sensitive_field_terms
var defaultSensitiveTerms = []string{
	"password", "passwd", "ssn", "socialsecurity",
	"creditcard", "credit_card", "cardnumber", "cvv",
	"apikey", "api_key", "token", "secret", "privatekey", "private_key",
	"bankaccount", "routingnumber", "iban",
	"dateofbirth", "dob", "taxid", "passport", "driverlicense",
	"salary", "income", "medicalrecord",
}

// defaultAccessControlTerms feeds the SEC006 advisory review heuristic
var defaultAccessControlTerms = []string{
	"admin", "administrator", "internal", "privileged",
	"superuser", "root", "sudo", "impersonate", "bypass",
}

// Default returns the baseline configuration used when no preset or
// file is given
func Default() *Config {
	c := New()
	c.Set(KeyMinSeverity, "info")
	c.Set(KeyMaxLineLength, 100)
	c.Set(KeyMaxDepth, 7)
	c.Set(KeyMaxFields, 50)
	c.Set(KeyMaxArguments, 30)
	c.Set(KeyMaxArgumentsPerField, 5)
	c.Set(KeyMaxFragments, 10)
	c.Set(KeyMaxSelectionSet, 20)
	c.Set(KeyMaxSecurityDepth, 3)
	c.Set(KeyMaxComplexity, 100)
	c.Set(KeyMaxFragmentFields, 15)
	c.Set(KeyMaxFragmentSpreads, 5)
	c.Set(KeyOverfetchThreshold, 10)
	c.Set(KeyAllowIntrospection, false)
	c.Set(KeySensitiveFieldTerms, defaultSensitiveTerms)
	c.Set(KeyAccessControlTerms, defaultAccessControlTerms)
	c.Set(KeyForbiddenDirectives, []string{})
	return c
}

// Strict tightens every ceiling. Intended for CI gates
func Strict() *Config {
	c := Default()
	c.Set(KeyMaxLineLength, 80)
	c.Set(KeyMaxDepth, 5)
	c.Set(KeyMaxFields, 30)
	c.Set(KeyMaxArguments, 15)
	c.Set(KeyMaxArgumentsPerField, 3)
	c.Set(KeyMaxFragments, 5)
	c.Set(KeyMaxSelectionSet, 10)
	c.Set(KeyMaxSecurityDepth, 3)
	c.Set(KeyMaxComplexity, 50)
	c.Set(KeyMaxFragmentFields, 10)
	c.Set(KeyMaxFragmentSpreads, 3)
	c.Set(KeyOverfetchThreshold, 8)
	return c
}

// Relaxed loosens the ceilings and silences the purely cosmetic rules.
// Intended for exploratory or generated queries
func Relaxed() *Config {
	c := Default()
	c.Set(KeyMinSeverity, "warning")
	c.Set(KeyMaxLineLength, 160)
	c.Set(KeyMaxDepth, 12)
	c.Set(KeyMaxFields, 150)
	c.Set(KeyMaxArguments, 60)
	c.Set(KeyMaxArgumentsPerField, 10)
	c.Set(KeyMaxFragments, 25)
	c.Set(KeyMaxSelectionSet, 50)
	c.Set(KeyMaxSecurityDepth, 6)
	c.Set(KeyMaxComplexity, 400)
	c.Set(KeyMaxFragmentFields, 40)
	c.Set(KeyMaxFragmentSpreads, 12)
	c.Set(KeyOverfetchThreshold, 25)
	c.EnableRule("STY003", false)
	c.EnableRule("STY004", false)
	c.EnableRule("STY005", false)
	c.EnableRule("BP008", false)
	return c
}

// Performance focuses on query cost: tight depth/breadth ceilings,
// style checks off
func Performance() *Config {
	c := Default()
	c.Set(KeyMaxDepth, 5)
	c.Set(KeyMaxFields, 40)
	c.Set(KeyMaxSelectionSet, 15)
	c.Set(KeyMaxComplexity, 80)
	c.Set(KeyOverfetchThreshold, 8)
	c.EnableRule("STY001", false)
	c.EnableRule("STY002", false)
	c.EnableRule("STY003", false)
	c.EnableRule("STY004", false)
	c.EnableRule("STY005", false)
	return c
}

// Security escalates the security family and tightens its ceilings;
// style checks off
func Security() *Config {
	c := Default()
	c.Set(KeyMaxSecurityDepth, 2)
	c.Set(KeyMaxComplexity, 60)
	c.Set(KeyAllowIntrospection, false)
	c.SetRule("SEC002", RuleOverride{Severity: "error"})
	c.SetRule("SEC006", RuleOverride{Severity: "error"})
	c.EnableRule("STY001", false)
	c.EnableRule("STY002", false)
	c.EnableRule("STY003", false)
	c.EnableRule("STY004", false)
	c.EnableRule("STY005", false)
	return c
}

// Preset returns the named preset, or Default and false when unknown
func Preset(name string) (*Config, bool) {
	switch name {
	case "", "default":
		return Default(), true
	case "strict":
		return Strict(), true
	case "relaxed":
		return Relaxed(), true
	case "performance":
		return Performance(), true
	case "security":
		return Security(), true
	default:
		return Default(), false
	}
}
