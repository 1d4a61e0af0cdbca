package grammar

import (
	"fmt"
	"regexp"
	"strings"
)

// Terminal is a leaf of a production: either a literal string, matched by
// exact equality against a token, or a pattern, matched by a full-match
// regex test against a token. Terminals have no identity beyond their
// value — two Terminals built from the same literal or the same pattern
// source compare equal.
type Terminal struct {
	literal   string
	pattern   *regexp.Regexp
	source    string // pattern body, unanchored — used by the default tokenizer
	isPattern bool
}

// rhsElem marks Terminal as a valid right-hand-side element.
func (Terminal) rhsElem() {}

// Lit returns a string terminal matching tok by exact equality.
func Lit(tok string) Terminal {
	return Terminal{literal: tok}
}

// Pattern returns a regex terminal. flags may contain any of "gimy"; only
// "i" (case-insensitive) and "m" (multiline) affect Go's regexp engine, the
// others are accepted for surface compatibility and otherwise ignored.
func Pattern(body, flags string) (Terminal, error) {
	var inline string
	for _, f := range flags {
		switch f {
		case 'i':
			inline += "i"
		case 'm':
			inline += "m"
		case 'g', 'y':
			// no per-match equivalent in Go's regexp; full-match semantics
			// already make these moot for our single-token matches.
		default:
			return Terminal{}, fmt.Errorf("unsupported regex flag %q", string(f))
		}
	}
	src := body
	if inline != "" {
		src = "(?" + inline + ")" + src
	}
	re, err := regexp.Compile("^(?:" + src + ")$")
	if err != nil {
		return Terminal{}, fmt.Errorf("compile pattern /%s/%s: %w", body, flags, err)
	}
	return Terminal{pattern: re, source: src, isPattern: true}, nil
}

// IsPattern reports whether the terminal is a regex pattern rather than a
// literal string.
func (t Terminal) IsPattern() bool {
	return t.isPattern
}

// Source returns the terminal's defining text: the unanchored regex body
// for a pattern terminal, or the literal text for a string terminal.
func (t Terminal) Source() string {
	if t.isPattern {
		return t.source
	}
	return t.literal
}

// Matches reports whether tok is matched by this terminal: exact equality
// for a literal, full-match regex test for a pattern.
func (t Terminal) Matches(tok string) bool {
	if t.isPattern {
		return t.pattern.MatchString(tok)
	}
	return t.literal == tok
}

// Equal reports whether two terminals were built from the same value —
// literal terminals compare by string, pattern terminals by source regex.
func (t Terminal) Equal(o Terminal) bool {
	if t.isPattern != o.isPattern {
		return false
	}
	if t.isPattern {
		return t.pattern.String() == o.pattern.String()
	}
	return t.literal == o.literal
}

func (t Terminal) String() string {
	if t.isPattern {
		return "/" + strings.Trim(t.pattern.String(), "^(?:)$") + "/"
	}
	return "'" + t.literal + "'"
}
