// Package earley implements the Earley recognizer, the chart transformer,
// and the depth-first parse-tree extractor.
package earley

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"

	"github.com/outspan/cfglang/grammar"
)

// tracer traces with key 'cfglang.earley'.
func tracer() tracing.Trace {
	return tracing.Select("cfglang.earley")
}

// Item is an Earley item (rule, dot, origin): a prefix of rule.RHS of
// length dot has been matched starting at chart state origin. Two items
// are duplicates when all three fields are pairwise equal; Rule equality
// is by identity (pointer), so Item is a plain comparable Go value and can
// be used directly as a set element or map key.
type Item struct {
	Rule   *grammar.Rule
	Dot    int
	Origin int
}

// Complete reports whether the item's dot has reached the end of its
// rule's right-hand side.
func (it Item) Complete() bool {
	return it.Dot >= it.Rule.Len()
}

// NextElem returns the rhs element immediately after the dot, or nil if
// the item is complete.
func (it Item) NextElem() grammar.RHSElem {
	if it.Complete() {
		return nil
	}
	return it.Rule.At(it.Dot)
}

// Advance returns a copy of the item with its dot moved one position to
// the right.
func (it Item) Advance() Item {
	return Item{Rule: it.Rule, Dot: it.Dot + 1, Origin: it.Origin}
}

func (it Item) String() string {
	var s string
	for i := 0; i < it.Rule.Len(); i++ {
		if i == it.Dot {
			s += "•"
		}
		s += fmt.Sprintf("%v ", it.Rule.At(i))
	}
	if it.Complete() {
		s += "•"
	}
	return fmt.Sprintf("[%s -> %s, %d]", it.Rule.LHS, s, it.Origin)
}
