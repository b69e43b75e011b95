// Package validate holds the declarative input rules evaluated before any
// persistence call. Rules are small composable predicates over optional
// string values; each operation in this package combines them into a
// single boolean verdict. Resolvers pick the user-facing message based on
// which operation failed, not which field.
package validate

import (
	"net/url"
	"regexp"
)

var (
	numericOnly = regexp.MustCompile(`^[0-9]+$`)
	emailShape  = regexp.MustCompile(`[a-zA-Z0-9]+@+[a-zA-Z]`)
)

// Rule checks one constraint against an optional string value. A nil
// value means the field was not supplied at all.
type Rule func(value *string) bool

// Check reports whether the value satisfies every rule.
func Check(value *string, rules ...Rule) bool {
	for _, rule := range rules {
		if !rule(value) {
			return false
		}
	}
	return true
}

// Required fails for absent or empty values. Every other rule in this
// package treats an absent value as valid, so optional fields are
// expressed simply by leaving Required out.
func Required() Rule {
	return func(v *string) bool { return v != nil && *v != "" }
}

// MinLen requires at least n characters when the value is present.
func MinLen(n int) Rule {
	return func(v *string) bool { return v == nil || len(*v) >= n }
}

// Matches requires the value to match the pattern when present.
func Matches(re *regexp.Regexp) Rule {
	return func(v *string) bool { return v == nil || re.MatchString(*v) }
}

// NumericOnly requires a value made up entirely of digits when present.
func NumericOnly() Rule { return Matches(numericOnly) }

// EmailShaped requires a loosely email-shaped value when present. The
// pattern is deliberately permissive; it is a shape check, not full
// address validation.
func EmailShaped() Rule { return Matches(emailShape) }

// URL requires a well-formed absolute URL when the value is present.
func URL() Rule {
	return func(v *string) bool {
		if v == nil {
			return true
		}
		u, err := url.ParseRequestURI(*v)
		return err == nil && u.Scheme != "" && u.Host != ""
	}
}

// OneOf requires the value to be one of the allowed strings when present.
func OneOf(allowed ...string) Rule {
	return func(v *string) bool {
		if v == nil {
			return true
		}
		for _, a := range allowed {
			if *v == a {
				return true
			}
		}
		return false
	}
}

// PositiveID reports whether a numeric identifier was supplied and is
// strictly positive.
func PositiveID(id *int32) bool { return id != nil && *id > 0 }
