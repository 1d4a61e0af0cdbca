package earley

import (
	"github.com/outspan/cfglang/cfgerr"
	"github.com/outspan/cfglang/grammar"
)

// Recognize builds a chart S[0..n] for tokens against g, applying Predict,
// Scan and Complete until every state stabilizes. It never fails on a
// malformed or unrecognized input — an empty or incorrect chart is a valid
// (if useless) result; failure is reported later, by the tree extractor.
//
// maxItems caps the number of items any single chart state may hold before
// Recognize gives up with cfgerr.ErrGrammarTooExplosive; 0 means unbounded.
func Recognize(tokens []string, g *grammar.Grammar, maxItems int) (Chart, error) {
	n := len(tokens)
	chart := newChart(n)

	for _, r := range g.Rules() {
		chart[0].add(Item{Rule: r, Dot: 0, Origin: 0})
	}

	for i := 0; i <= n; i++ {
		S := chart[i]
		S.forEachGrowing(func(it Item) {
			switch next := it.NextElem().(type) {
			case nil:
				complete(chart, i, it)
			case *grammar.Symbol:
				predict(chart, g, i, next)
			case grammar.Terminal:
				scan(chart, tokens, i, n, it, next)
			}
		})
		if maxItems > 0 && S.size() > maxItems {
			return nil, cfgerr.Newf(cfgerr.ErrGrammarTooExplosive,
				"chart state %d grew past %d items", i, maxItems)
		}
		dumpState(chart, i)
	}
	return chart, nil
}

// predict implements the Predictor inference rule: for every item
// (r, d, o) in S[i] with r.RHS[d] == A, add (r', 0, i) to S[i] for every
// rule r' of the grammar with lhs A. Duplicate suppression is by rule
// identity alone, which is safe here because every item predict adds has
// dot=0 and origin=i — the full (rule, dot, origin) triple collapses to
// rule identity.
func predict(chart Chart, g *grammar.Grammar, i int, A *grammar.Symbol) {
	for _, r := range g.Rules() {
		if r.LHS == A {
			if chart[i].add(Item{Rule: r, Dot: 0, Origin: i}) {
				tracer().Debugf("predict @%d: %s", i, r)
			}
		}
	}
}

// scan implements the Scanner inference rule: if r.RHS[d] is a terminal
// matching tokens[i], add (r, d+1, o) to S[i+1].
func scan(chart Chart, tokens []string, i, n int, it Item, term grammar.Terminal) {
	if i >= n || !term.Matches(tokens[i]) {
		return
	}
	if chart[i+1].add(it.Advance()) {
		tracer().Debugf("scan @%d: %s matched %q", i, it, tokens[i])
	}
}

// complete implements the Completer inference rule: for a complete item
// (r, |r.RHS|, o) with lhs A, find every item (r'', d'', o'') in S[o] whose
// r''.RHS[d''] == A and add (r'', d''+1, o'') to S[i].
func complete(chart Chart, i int, it Item) {
	A := it.Rule.LHS
	o := it.Origin
	for _, cand := range chart[o].items() {
		if sym, ok := cand.NextElem().(*grammar.Symbol); ok && sym == A {
			if chart[i].add(cand.Advance()) {
				tracer().Debugf("complete @%d: %s via %s", i, cand, it)
			}
		}
	}
}
