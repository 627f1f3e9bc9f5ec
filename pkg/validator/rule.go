package validator

// Rule is a deferred check on one field.
type Rule struct {
	Field   string
	Message string
	Check   func() bool
}

func newRule(field, message string, check func() bool) Rule {
	return Rule{Field: field, Message: message, Check: check}
}

// Failure is the error reported when the check fails.
func (r Rule) Failure() ValidationError {
	return ValidationError{Field: r.Field, Message: r.Message}
}

// WithMessage replaces the reported message.
func (r Rule) WithMessage(msg string) Rule {
	r.Message = msg
	return r
}

// Apply runs every rule and returns ValidationErrors for the failing ones.
func Apply(rules ...Rule) error {
	var verrs ValidationErrors
	for _, r := range rules {
		if !r.Check() {
			verrs.Add(r.Failure())
		}
	}
	if verrs.IsEmpty() {
		return nil
	}
	return verrs
}

// Optional lets a blank value through and runs rule on anything else.
func Optional(value string, rule Rule) Rule {
	check := rule.Check
	rule.Check = func() bool {
		return Trim(value) == "" || check()
	}
	return rule
}
