// Package lex turns a raw sentence into the token sequence a grammar's
// recognizer consumes.
package lex

import (
	"regexp"
	"sort"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/outspan/cfglang/grammar"
)

// tracer traces with key 'cfglang.lex'.
func tracer() tracing.Trace {
	return tracing.Select("cfglang.lex")
}

// Tokenizer splits a sentence into tokens for a given grammar. The
// recognizer's only contract with a Tokenizer is that it returns strings;
// any function of this shape may be substituted for Default.
type Tokenizer func(sentence string, g *grammar.Grammar) ([]string, error)

// Default splits sentence on every terminal appearing in g: it collects
// every terminal (string or pattern) from every rule, escapes the string
// terminals as regex literals, joins all of them into one alternation
// delimiter pattern with a capturing group, splits the input on that
// delimiter while keeping the delimiters, trims each piece and drops
// empties.
//
// Overlapping terminals are resolved by Go's regexp leftmost-match
// semantics; alternatives are ordered longest-source-first so that a
// terminal is never shadowed by a shorter prefix of itself (e.g. "+="
// swallowed by "+").
func Default(sentence string, g *grammar.Grammar) ([]string, error) {
	delim, err := delimiterPattern(g)
	if err != nil {
		return nil, err
	}
	if delim == nil {
		// no terminals at all: nothing to split on.
		s := strings.TrimSpace(sentence)
		if s == "" {
			return nil, nil
		}
		return []string{s}, nil
	}

	var tokens []string
	last := 0
	for _, m := range delim.FindAllStringIndex(sentence, -1) {
		if m[0] > last {
			tokens = append(tokens, sentence[last:m[0]])
		}
		tokens = append(tokens, sentence[m[0]:m[1]])
		last = m[1]
	}
	if last < len(sentence) {
		tokens = append(tokens, sentence[last:])
	}

	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		out = append(out, tok)
	}
	tracer().Debugf("tokenized %q into %v", sentence, out)
	return out, nil
}

func delimiterPattern(g *grammar.Grammar) (*regexp.Regexp, error) {
	var seen []grammar.Terminal
	var sources []string
	for _, r := range g.Rules() {
		for i := 0; i < r.Len(); i++ {
			term, ok := r.At(i).(grammar.Terminal)
			if !ok {
				continue
			}
			if containsTerminal(seen, term) {
				continue
			}
			seen = append(seen, term)
			if term.IsPattern() {
				sources = append(sources, term.Source())
			} else {
				sources = append(sources, regexp.QuoteMeta(term.Source()))
			}
		}
	}
	if len(sources) == 0 {
		return nil, nil
	}
	sort.Slice(sources, func(i, j int) bool { return len(sources[i]) > len(sources[j]) })
	pattern := "(" + strings.Join(sources, "|") + ")"
	return regexp.Compile(pattern)
}

// containsTerminal reports whether terms already holds a terminal equal to
// t, by value rather than by the regex source string a caller happens to
// have derived from it.
func containsTerminal(terms []grammar.Terminal, t grammar.Terminal) bool {
	for _, o := range terms {
		if o.Equal(t) {
			return true
		}
	}
	return false
}
