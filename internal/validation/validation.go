// Package validation provides the pure input checks used by the account
// and ledger services. Every function is total: bad input yields false,
// never a panic or an error.
package validation

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var loginPattern = regexp.MustCompile(`^[a-zA-Z0-9_]{4,20}$`)

// NonEmpty reports whether s contains at least one non-whitespace rune.
func NonEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// LengthAtMost reports whether s is non-empty and at most maxLen runes long.
func LengthAtMost(s string, maxLen int) bool {
	return NonEmpty(s) && len([]rune(s)) <= maxLen
}

// Numeric reports whether s parses as a decimal number.
func Numeric(s string) bool {
	if !NonEmpty(s) {
		return false
	}
	_, err := decimal.NewFromString(strings.TrimSpace(s))
	return err == nil
}

// PositiveNumber reports whether s parses as a decimal number greater
// than zero.
func PositiveNumber(s string) bool {
	if !NonEmpty(s) {
		return false
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	return err == nil && d.IsPositive()
}

// InRange reports whether n lies within [min, max] inclusive.
func InRange(n, min, max decimal.Decimal) bool {
	return n.GreaterThanOrEqual(min) && n.LessThanOrEqual(max)
}

// ValidLogin reports whether s is an acceptable username: letters, digits
// and underscores, 4 to 20 characters.
func ValidLogin(s string) bool {
	return NonEmpty(s) && loginPattern.MatchString(s)
}

// ValidPassword reports whether s is an acceptable password: non-blank
// and at least 6 characters.
func ValidPassword(s string) bool {
	return NonEmpty(s) && len(s) >= 6
}

// ValidDate reports whether s parses under the given time layout.
func ValidDate(s, layout string) bool {
	if !NonEmpty(s) {
		return false
	}
	_, err := time.Parse(layout, s)
	return err == nil
}

// UniqueAgainst reports whether name is absent from existing (exact match).
func UniqueAgainst(name string, existing []string) bool {
	for _, e := range existing {
		if e == name {
			return false
		}
	}
	return true
}
