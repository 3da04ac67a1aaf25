package masking

import (
	"fmt"
	"regexp"

	"github.com/codeready-toolchain/mailguard/pkg/config"
)

// compiledRule is one entry of the registry: a named, pre-compiled regex with
// its fixed classification label.
type compiledRule struct {
	name  string
	re    *regexp.Regexp
	label Classification
}

// PatternRegistry holds the detection rules, compiled once, in evaluation
// order. Read-only after construction; safe for concurrent use.
type PatternRegistry struct {
	rules []compiledRule
}

// NewPatternRegistry compiles the given rule table. Any rule that fails to
// compile aborts construction: the service must never run with a partially
// broken rule table.
func NewPatternRegistry(rules []config.RuleConfig) (*PatternRegistry, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for _, rc := range rules {
		pattern := rc.Pattern
		if !rc.CaseSensitive {
			pattern = "(?i)" + pattern
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, config.NewValidationError("rule", rc.Name, "pattern",
				fmt.Errorf("%w: %v", config.ErrInvalidRulePattern, err))
		}
		compiled = append(compiled, compiledRule{
			name:  rc.Name,
			re:    re,
			label: Classification(rc.Label),
		})
	}
	return &PatternRegistry{rules: compiled}, nil
}

// Len returns the number of compiled rules.
func (r *PatternRegistry) Len() int {
	return len(r.rules)
}
