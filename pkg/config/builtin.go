package config

// RuleConfig describes one masking rule: a named regular expression that
// tags every match with a fixed classification label.
type RuleConfig struct {
	Name          string
	Pattern       string
	Label         string
	CaseSensitive bool
	Description   string
}

// builtinRules is the built-in detection rule table.
//
// Order is part of the precedence contract: candidates from earlier rules win
// conflicts against candidates from later rules, so reordering entries changes
// redaction output. The supplementary international phone formats are listed
// after all named rules and stay case-sensitive.
var builtinRules = []RuleConfig{
	{
		Name:        "full_name",
		Pattern:     `\b(?:Mr|Mrs|Ms|Dr|Prof)\. [A-Z][a-z]+(?: [A-Z][a-z]+)?\b`,
		Label:       "full_name",
		Description: "Honorific followed by a capitalized name (fallback for the recognizer)",
	},
	{
		Name:        "email",
		Pattern:     `\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`,
		Label:       "email",
		Description: "Email address (local@domain)",
	},
	{
		Name:        "phone_number",
		Pattern:     `(?:\+\d{1,3}[- ]?)?\(?\d{3}\)?[- ]?\d{3}[- ]?\d{4}\b`,
		Label:       "phone_number",
		Description: "Domestic phone number, optional country prefix",
	},
	{
		Name:        "dob",
		Pattern:     `\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`,
		Label:       "dob",
		Description: "Numeric date with / or - separators",
	},
	{
		Name:        "aadhar_num",
		Pattern:     `\b\d{4}[ -]?\d{4}[ -]?\d{4}\b`,
		Label:       "aadhar_num",
		Description: "Aadhar number: three groups of 4 digits",
	},
	{
		Name:        "credit_debit_no",
		Pattern:     `\b(?:\d{4}[ -]?){4}\b`,
		Label:       "credit_debit_no",
		Description: "Card number: four groups of 4 digits",
	},
	{
		Name:        "cvv_no",
		Pattern:     `\bCVV:? \d{3,4}\b|\bCVV \d{3,4}\b|\b\d{3,4} CVV\b`,
		Label:       "cvv_no",
		Description: "3-4 digit code next to a CVV token",
	},
	{
		Name:        "expiry_no",
		Pattern:     `\b(?:0[1-9]|1[0-2])[/-]\d{2,4}\b|\bExp:? \d{2}[/-]\d{2,4}\b`,
		Label:       "expiry_no",
		Description: "Card expiry month/year, optional Exp prefix",
	},
	{
		Name:          "phone_number_intl",
		Pattern:       `\+\d{1,3}[-\s]?\d{1,3}[-\s]?\d{3,4}[-\s]?\d{3,4}\b`,
		Label:         "phone_number",
		CaseSensitive: true,
		Description:   "International phone format",
	},
	{
		Name:          "phone_number_asia",
		Pattern:       `\+\d{1,3}[-\s]?\d{2}[-\s]?\d{4}[-\s]?\d{4}\b`,
		Label:         "phone_number",
		CaseSensitive: true,
		Description:   "Asian phone format",
	},
	{
		Name:          "phone_number_eu",
		Pattern:       `\+\d{1,3}[-\s]?\d{2}[-\s]?\d{3,4}[-\s]?\d{4}\b`,
		Label:         "phone_number",
		CaseSensitive: true,
		Description:   "European phone format",
	},
}

// BuiltinRules returns the built-in rule table in evaluation order.
// Returns a copy so callers cannot mutate the shared table.
func BuiltinRules() []RuleConfig {
	rules := make([]RuleConfig, len(builtinRules))
	copy(rules, builtinRules)
	return rules
}
