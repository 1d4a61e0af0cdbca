package earley

import (
	"fmt"

	"github.com/cnf/structhash"

	"github.com/outspan/cfglang"
	"github.com/outspan/cfglang/cfgerr"
	"github.com/outspan/cfglang/grammar"
)

// Tree is a parse tree node: Rule names the production that produced it,
// Span gives the half-open range of token positions it covers, and each
// element of Children is either a literal token string (for a terminal
// position in Rule's rhs) or a *Tree (for a non-terminal position).
type Tree struct {
	Rule     *grammar.Rule
	Span     cfglang.Span
	Children []interface{}
}

// Extract runs a depth-first reconstruction of a single parse tree against
// a transformed chart (see Transform), selecting and building the tree for
// tokens. This is the classic Earley parse-tree-extraction walk (see
// Grune & Jacobs, "Parsing Techniques", ch. 7, or Aycock & Horspool's
// "Practical Earley Parsing" for a treatment of the ambiguity this walk
// must resolve).
func Extract(transformed Chart, tokens []string) (*Tree, error) {
	n := len(tokens)
	roots := transformed[0].items()
	if len(roots) == 0 {
		return nil, cfgerr.New(cfgerr.ErrNoParse, offendingTokenMessage(tokens, 0))
	}
	best := roots[0]
	for _, it := range roots[1:] {
		if it.Origin > best.Origin {
			best = it
		}
	}
	if best.Origin != n {
		return nil, cfgerr.New(cfgerr.ErrNoParse, offendingTokenMessage(tokens, best.Origin))
	}

	ex := &extractor{chart: transformed, tokens: tokens, memo: make(map[string]helperResult)}
	children, ok := ex.expand(best, 0)
	if !ok {
		return nil, cfgerr.New(cfgerr.ErrNoParse, offendingTokenMessage(tokens, 0))
	}
	return &Tree{Rule: best.Rule, Span: cfglang.Span{0, uint64(n)}, Children: children}, nil
}

func offendingTokenMessage(tokens []string, k int) string {
	if k >= len(tokens) {
		return fmt.Sprintf("no parse: unexpected end of input after token %d", k)
	}
	return fmt.Sprintf("no parse: stuck at token %d (%q)", k, tokens[k])
}

// extractor holds the transformed chart and token stream for the duration
// of one tree reconstruction. memo caches helper results by (item, start,
// depth): the same sub-match is frequently re-asked for across diverging
// candidate branches when a grammar is ambiguous, and recomputing it from
// scratch each time turns DFS extraction exponential.
type extractor struct {
	chart  Chart
	tokens []string
	memo   map[string]helperResult
}

type helperResult struct {
	children []interface{}
	ok       bool
}

// expand builds item's own children, matching item.Rule.RHS against tokens
// starting at start and ending at item.Origin (the item's end position
// after Transform's re-indexing).
func (ex *extractor) expand(item Item, start int) ([]interface{}, bool) {
	return ex.helper(item, start, 0)
}

// helper walks item.Rule.RHS left to right (depth) in lockstep with the
// token stream (start), matching terminals directly and recursing into
// candidate completions for non-terminals. The base case requires both to
// have been consumed exactly together.
func (ex *extractor) helper(item Item, start, depth int) ([]interface{}, bool) {
	key := helperKey(item, start, depth)
	if r, ok := ex.memo[key]; ok {
		return r.children, r.ok
	}
	children, ok := ex.helperUncached(item, start, depth)
	ex.memo[key] = helperResult{children: children, ok: ok}
	return children, ok
}

func helperKey(item Item, start, depth int) string {
	h, err := structhash.Hash(struct {
		item  Item
		start int
		depth int
	}{item: item, start: start, depth: depth}, 1)
	if err != nil { // structhash only fails on unhashable types; Item is plain data
		panic(err)
	}
	return h
}

func (ex *extractor) helperUncached(item Item, start, depth int) ([]interface{}, bool) {
	if depth == item.Rule.Len() {
		if start == item.Origin {
			return nil, true
		}
		return nil, false
	}

	switch elem := item.Rule.At(depth).(type) {
	case grammar.Terminal:
		if start >= len(ex.tokens) || !elem.Matches(ex.tokens[start]) {
			return nil, false
		}
		rest, ok := ex.helper(item, start+1, depth+1)
		if !ok {
			return nil, false
		}
		return prepend(ex.tokens[start], rest), true

	case *grammar.Symbol:
		type candidateResult struct {
			children []interface{}
		}
		var results []candidateResult
		for _, cand := range ex.chart.State(start) {
			if cand.Rule.LHS != elem {
				continue
			}
			rest, ok := ex.helper(item, cand.Origin, depth+1)
			if !ok {
				continue
			}
			subChildren, ok := ex.expand(cand, start)
			if !ok {
				continue
			}
			subtree := &Tree{Rule: cand.Rule, Span: cfglang.Span{uint64(start), uint64(cand.Origin)}, Children: subChildren}
			results = append(results, candidateResult{children: prepend(subtree, rest)})
		}
		if len(results) == 0 {
			return nil, false
		}
		if len(results) > 1 {
			first := serialize(results[0].children)
			for _, r := range results[1:] {
				if serialize(r.children) != first {
					tracer().Warnf("ambiguous parse at position %d for %s: %d distinct derivations, picking first",
						start, elem, len(results))
					break
				}
			}
		}
		return results[0].children, true
	}
	return nil, false
}

func prepend(head interface{}, tail []interface{}) []interface{} {
	out := make([]interface{}, 0, len(tail)+1)
	out = append(out, head)
	return append(out, tail...)
}

// serialize renders children into a comparable string, used only to detect
// whether two successful derivations actually differ before logging an
// ambiguity diagnostic.
func serialize(children []interface{}) string {
	s := "["
	for _, c := range children {
		switch v := c.(type) {
		case string:
			s += fmt.Sprintf("%q,", v)
		case *Tree:
			s += fmt.Sprintf("(%s %s),", v.Rule, serialize(v.Children))
		}
	}
	return s + "]"
}
