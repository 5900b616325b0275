package naming

import (
	"fmt"
	"regexp"
)

// OverrideSpec is an uncompiled override rule as it appears in configuration.
type OverrideSpec struct {
	Pattern     string `toml:"pattern" json:"pattern"`
	Replacement string `toml:"replacement" json:"replacement"`
}

// OverrideRule rewrites every match of Pattern with Replacement, which may
// refer to capture groups as ${1}.
type OverrideRule struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// Overrides is an ordered rule table. Every rule runs against the output of
// the rule before it.
type Overrides []OverrideRule

// CompileOverrides compiles specs in order. The error names the first rule
// that failed.
func CompileOverrides(specs []OverrideSpec) (Overrides, error) {
	rules := make(Overrides, 0, len(specs))
	for i, spec := range specs {
		re, err := regexp.Compile(spec.Pattern)
		if err != nil {
			return nil, fmt.Errorf("naming: compile override %d %q: %w: %w", i, spec.Pattern, ErrInvalidPattern, err)
		}
		rules = append(rules, OverrideRule{Pattern: re, Replacement: spec.Replacement})
	}
	return rules, nil
}

// Apply runs every rule over s. When no rule matches, s itself is returned
// with changed set to false and nothing is allocated.
func (o Overrides) Apply(s string) (out string, changed bool) {
	out = s
	for _, rule := range o {
		if !rule.Pattern.MatchString(out) {
			continue
		}
		replaced := rule.Pattern.ReplaceAllString(out, rule.Replacement)
		if replaced != out {
			out = replaced
			changed = true
		}
	}
	return out, changed
}
