// Package grammar defines the CFG data model: symbols, terminals, rules,
// the grammar container, and a declarative textual rule-builder.
package grammar

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/outspan/cfglang/cfgerr"
)

// tracer traces with key 'cfglang.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("cfglang.grammar")
}

// Grammar is an ordered sequence of rules. Rule order is observable: the
// recognizer seeds state 0 with rules in grammar order, and the extractor
// prefers earlier-added rules when resolving ambiguity.
type Grammar struct {
	rules  []*Rule
	symtab map[string]*Symbol // used by the textual rule-builder only
}

// NewGrammar returns a Grammar seeded with the given rules, in order.
func NewGrammar(initial ...*Rule) *Grammar {
	g := &Grammar{symtab: make(map[string]*Symbol)}
	for _, r := range initial {
		g.addParsedRule(r)
	}
	return g
}

// Rules returns the grammar's rules in insertion order. The returned slice
// must not be mutated by the caller.
func (g *Grammar) Rules() []*Rule {
	return g.rules
}

// Rule returns the rule at serial position i.
func (g *Grammar) Rule(i int) *Rule {
	return g.rules[i]
}

// Len returns the number of rules in the grammar.
func (g *Grammar) Len() int {
	return len(g.rules)
}

// AddRule adds a rule to the grammar, either already constructed (*Rule) or
// as declarative text ("LHS -> S1 S2 ... Sk", see buildRule). It returns the
// constructed rule.
func (g *Grammar) AddRule(ruleOrText interface{}) (*Rule, error) {
	switch v := ruleOrText.(type) {
	case *Rule:
		g.addParsedRule(v)
		return v, nil
	case string:
		r, err := g.buildRule(v)
		if err != nil {
			return nil, err
		}
		g.addParsedRule(r)
		return r, nil
	default:
		return nil, cfgerr.Newf(cfgerr.ErrInvalidRule, "unsupported rule value of type %T", ruleOrText)
	}
}

func (g *Grammar) addParsedRule(r *Rule) {
	r.Serial = len(g.rules)
	g.rules = append(g.rules, r)
	tracer().Debugf("added rule [%d] %s", r.Serial, r)
}

// Symbols returns a name->Symbol mapping built by scanning every rule's lhs
// and every symbol-valued rhs element. It fails with
// cfgerr.ErrDuplicateSymbolName if two distinct symbol identities share the
// same name.
func (g *Grammar) Symbols() (map[string]*Symbol, error) {
	out := make(map[string]*Symbol)
	record := func(s *Symbol) error {
		if s.Name() == "" {
			return nil
		}
		if existing, ok := out[s.Name()]; ok && existing != s {
			return cfgerr.Newf(cfgerr.ErrDuplicateSymbolName,
				"two distinct symbols share name %q", s.Name())
		}
		out[s.Name()] = s
		return nil
	}
	for _, r := range g.rules {
		if err := record(r.LHS); err != nil {
			return nil, err
		}
		for _, e := range r.RHS {
			if sym, ok := e.(*Symbol); ok {
				if err := record(sym); err != nil {
					return nil, err
				}
			}
		}
	}
	return out, nil
}

// Dump writes every rule in the grammar to the tracer at Info level.
func (g *Grammar) Dump() {
	tracer().Infof("grammar: %d rule(s)", len(g.rules))
	for _, r := range g.rules {
		tracer().Infof("  [%d] %s", r.Serial, r)
	}
}
