// Package token extracts order tokens from free-form annotation text.
//
// The lexical shape of a token is not hard-coded: it is described by a
// Pattern (prefix letter + fixed digit width) and compiled once into a
// Matcher. Swapping the order-number format means constructing a different
// Pattern; no other component changes.
package token

import (
	"fmt"
	"regexp"
)

// Pattern describes the lexical shape of an order token: a literal prefix
// immediately followed by a fixed-width run of decimal digits, bounded by
// word boundaries on both sides.
type Pattern struct {
	// Prefix is the literal that opens the token (e.g. "A").
	Prefix string

	// Digits is the exact number of decimal digits after the prefix.
	Digits int
}

// DefaultPattern matches order names like "A273302".
var DefaultPattern = Pattern{Prefix: "A", Digits: 6}

// String renders the pattern in prefix+width form, e.g. "A\d{6}".
func (p Pattern) String() string {
	return fmt.Sprintf(`%s\d{%d}`, p.Prefix, p.Digits)
}

// Matcher is a compiled Pattern. It is stateless and safe for concurrent
// use.
type Matcher struct {
	pattern Pattern
	re      *regexp.Regexp
}

// New compiles a Pattern into a Matcher. It rejects patterns with an empty
// prefix or a non-positive digit width.
func New(p Pattern) (*Matcher, error) {
	if p.Prefix == "" {
		return nil, fmt.Errorf("token pattern: prefix must not be empty")
	}
	if p.Digits <= 0 {
		return nil, fmt.Errorf("token pattern: digit width must be positive, got %d", p.Digits)
	}
	re, err := regexp.Compile(`\b` + regexp.QuoteMeta(p.Prefix) + fmt.Sprintf(`\d{%d}\b`, p.Digits))
	if err != nil {
		return nil, fmt.Errorf("token pattern: compile %q: %w", p, err)
	}
	return &Matcher{pattern: p, re: re}, nil
}

// MustNew is New but panics on an invalid pattern. Intended for
// package-level defaults and tests.
func MustNew(p Pattern) *Matcher {
	m, err := New(p)
	if err != nil {
		panic(err)
	}
	return m
}

// Pattern returns the pattern this matcher was compiled from.
func (m *Matcher) Pattern() Pattern {
	return m.pattern
}

// Extract returns the first order token in body, in reading order. The
// second return is false when body contains no token. Extract is a pure
// function of body: identical input always yields an identical result.
func (m *Matcher) Extract(body string) (string, bool) {
	tok := m.re.FindString(body)
	if tok == "" {
		return "", false
	}
	return tok, true
}
