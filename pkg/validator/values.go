package validator

// NotZero fails when value is the zero value of T.
func NotZero[T comparable](field string, value T) Rule {
	return newRule(field, "field is required", func() bool {
		var zero T
		return value != zero
	})
}

// Accepted fails unless a checkbox-like flag is set.
func Accepted(field string, value bool) Rule {
	return newRule(field, "must be accepted", func() bool { return value })
}
