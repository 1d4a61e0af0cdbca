package earley

import (
	"github.com/emirpasic/gods/sets/linkedhashset"
)

// itemSet is an insertion-ordered set of Items, backed by
// emirpasic/gods' linkedhashset. Insertion order matters: it is what makes
// ambiguity resolution in the tree extractor deterministic — the extractor
// always prefers the first successful candidate it enumerates, and that
// enumeration order is this set's insertion order.
type itemSet struct {
	set *linkedhashset.Set
}

func newItemSet() *itemSet {
	return &itemSet{set: linkedhashset.New()}
}

// add appends it unless an equal item is already present. It reports
// whether the item was newly added.
func (s *itemSet) add(it Item) bool {
	if s.set.Contains(it) {
		return false
	}
	s.set.Add(it)
	return true
}

// items returns the set's elements in insertion order.
func (s *itemSet) items() []Item {
	vals := s.set.Values()
	out := make([]Item, len(vals))
	for i, v := range vals {
		out[i] = v.(Item)
	}
	return out
}

func (s *itemSet) size() int {
	return s.set.Size()
}

// forEachGrowing visits every item in s, re-reading the set's length each
// iteration so that items appended by visit (during recognition, Predict
// and Complete append to the very state being iterated) are visited before
// the loop finishes — the per-state work-queue behaviour Earley's
// algorithm requires.
func (s *itemSet) forEachGrowing(visit func(Item)) {
	i := 0
	for {
		items := s.items()
		if i >= len(items) {
			return
		}
		visit(items[i])
		i++
	}
}

// Chart is a chart of Earley item sets, indexed by input position. After
// Recognize runs, state k contains items that advanced into (or were
// predicted at) position k. After Transform runs, state k contains
// complete items whose Origin field has been rewritten to the position at
// which the item finished.
type Chart []*itemSet

func newChart(n int) Chart {
	c := make(Chart, n+1)
	for i := range c {
		c[i] = newItemSet()
	}
	return c
}

// State returns the item set at chart position i.
func (c Chart) State(i int) []Item {
	return c[i].items()
}

// Len returns the number of states in the chart (n+1 for n tokens).
func (c Chart) Len() int {
	return len(c)
}
