package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf16"
)

// jsSpace is the set browsers treat as whitespace in \s and String.trim.
const jsSpace = `\t\n\v\f\r \x{a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}`

var (
	// local@domain.tld, nothing more.
	emailShape = regexp.MustCompile(`^[^@` + jsSpace + `]+@[^@` + jsSpace + `]+\.[^@` + jsSpace + `]+$`)
	// "+54 11 1234-5678", "(011) 4321-0000".
	phoneShape = regexp.MustCompile(`^[0-9+\-()` + jsSpace + `]{6,20}$`)
)

// Required fails on blank values.
func Required(field, value string) Rule {
	return newRule(field, "field is required", func() bool {
		return Trim(value) != ""
	})
}

// MinLen counts UTF-16 code units, so characters outside the BMP count twice.
func MinLen(field, value string, min int) Rule {
	return newRule(field, fmt.Sprintf("must be at least %d characters long", min), func() bool {
		return Length(value) >= min
	})
}

func MaxLen(field, value string, max int) Rule {
	return newRule(field, fmt.Sprintf("must be at most %d characters long", max), func() bool {
		return Length(value) <= max
	})
}

// MinLenTrimmed ignores leading and trailing whitespace.
func MinLenTrimmed(field, value string, min int) Rule {
	return MinLen(field, Trim(value), min)
}

// Email checks the trimmed value has the shape of an address. Nothing is
// resolved.
func Email(field, value string) Rule {
	return Matches(field, Trim(value), emailShape, "email").
		WithMessage("must be a valid email address")
}

// Phone accepts 6 to 20 digits, spaces, dashes, parentheses and plus signs.
func Phone(field, value string) Rule {
	return Matches(field, Trim(value), phoneShape, "phone").
		WithMessage("must be a valid phone number")
}

// Matches fails on blank values and on values re does not match.
func Matches(field, value string, re *regexp.Regexp, description string) Rule {
	return newRule(field, "must match "+description+" pattern", func() bool {
		return Trim(value) != "" && re.MatchString(value)
	})
}

// Length returns the length of s as a browser reports it.
func Length(s string) int {
	n := 0
	for _, r := range s {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}

// Trim strips the whitespace String.prototype.trim strips. Unlike
// strings.TrimSpace it removes U+FEFF and keeps U+0085.
func Trim(s string) string {
	return strings.TrimFunc(s, isSpace)
}

func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		0xa0, 0x1680, 0x2028, 0x2029, 0x202f, 0x205f, 0x3000, 0xfeff:
		return true
	}
	return r >= 0x2000 && r <= 0x200a
}
