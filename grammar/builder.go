package grammar

import (
	"regexp"
	"strings"

	"github.com/outspan/cfglang/cfgerr"
)

// patternToken matches "/body/flags".
var patternToken = regexp.MustCompile(`^/(.*)/([gimy]*)$`)

// quotedToken matches either 'body' or "body".
var quotedToken = regexp.MustCompile(`^(?:'(.*)'|"(.*)")$`)

// buildRule parses a declarative rule of the form "LHS -> S1 S2 ... Sk" and
// returns the constructed Rule. Symbols referenced by name are looked up in
// the grammar's symbol table, or created and registered on first use.
//
// Sides are split on "->" exactly once; either side empty is a syntax
// error. Tokens on the rhs are whitespace separated. A token matching
// /^\/(.*)\/([gimy]*)$/ becomes a regex terminal; a token matching
// /^'(.*)'$/ or /^"(.*)"$/ becomes a string terminal; any other token is
// resolved as a non-terminal symbol.
func (g *Grammar) buildRule(text string) (*Rule, error) {
	parts := strings.SplitN(text, "->", 2)
	if len(parts) != 2 {
		return nil, cfgerr.Newf(cfgerr.ErrInvalidGrammarText, "missing '->' separator in %q", text)
	}
	lhsName := strings.TrimSpace(parts[0])
	rhsText := strings.TrimSpace(parts[1])
	if lhsName == "" {
		return nil, cfgerr.Newf(cfgerr.ErrInvalidGrammarText, "empty lhs in %q", text)
	}
	if rhsText == "" {
		return nil, cfgerr.Newf(cfgerr.ErrInvalidGrammarText, "empty rhs in %q", text)
	}

	lhs := g.symbol(lhsName)

	tokens := strings.Fields(rhsText)
	rhs := make([]RHSElem, 0, len(tokens))
	for _, tok := range tokens {
		elem, err := g.rhsElemFromToken(tok)
		if err != nil {
			return nil, err
		}
		rhs = append(rhs, elem)
	}
	return NewRule(lhs, rhs, nil)
}

func (g *Grammar) rhsElemFromToken(tok string) (RHSElem, error) {
	if m := patternToken.FindStringSubmatch(tok); m != nil {
		return Pattern(m[1], m[2])
	}
	if m := quotedToken.FindStringSubmatch(tok); m != nil {
		if strings.HasPrefix(tok, "'") {
			return Lit(m[1]), nil
		}
		return Lit(m[2]), nil
	}
	return g.symbol(tok), nil
}

// symbol looks up tok in the grammar's symbol table, creating and
// registering a fresh Symbol on first use.
func (g *Grammar) symbol(name string) *Symbol {
	if g.symtab == nil {
		g.symtab = make(map[string]*Symbol)
	}
	if s, ok := g.symtab[name]; ok {
		return s
	}
	s := NewSymbol(name)
	g.symtab[name] = s
	return s
}
