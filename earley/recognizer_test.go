package earley

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/outspan/cfglang/grammar"
)

func arithmeticGrammar(t *testing.T) *grammar.Grammar {
	t.Helper()
	g := grammar.NewGrammar()
	rules := []string{
		`Sum -> Sum '+' Product`,
		`Sum -> Product`,
		`Product -> Product '*' Factor`,
		`Product -> Factor`,
		`Factor -> '(' Sum ')'`,
		`Factor -> /\d+/`,
	}
	for _, r := range rules {
		if _, err := g.AddRule(r); err != nil {
			t.Fatalf("building rule %q: %v", r, err)
		}
	}
	return g
}

func TestRecognizeAcceptsSimpleProduct(t *testing.T) {
	g := arithmeticGrammar(t)
	tokens := []string{"2", "*", "3"}
	chart, err := Recognize(tokens, g, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, it := range chart.State(len(tokens)) {
		if it.Complete() && it.Origin == 0 && it.Rule.LHS.Name() == "Sum" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a completed Sum item spanning the whole input in the final state")
	}
}

func TestRecognizeChartInvariants(t *testing.T) {
	gtrace.SyntaxTracer = gotestingadapter.New()
	gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelDebug)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	g := arithmeticGrammar(t)
	tokens := []string{"23", "+", "(", "32", "*", "46", ")"}
	chart, err := Recognize(tokens, g, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i <= len(tokens); i++ {
		for _, it := range chart.State(i) {
			if it.Origin < 0 || it.Origin > i {
				t.Errorf("state %d: item %s has origin out of [0,%d]", i, it, i)
			}
			if it.Dot < 0 || it.Dot > it.Rule.Len() {
				t.Errorf("state %d: item %s has dot out of range", i, it)
			}
		}
	}
}

func TestRecognizeLeftRecursionTerminates(t *testing.T) {
	g := grammar.NewGrammar()
	if _, err := g.AddRule(`Factor -> Factor Factor`); err != nil {
		t.Fatalf("building rule: %v", err)
	}
	if _, err := g.AddRule(`Factor -> Factor '+'`); err != nil {
		t.Fatalf("building rule: %v", err)
	}
	if _, err := g.AddRule(`Factor -> /\d+/`); err != nil {
		t.Fatalf("building rule: %v", err)
	}
	tokens := []string{"1", "+", "2"}
	chart, err := Recognize(tokens, g, 1000)
	if err != nil {
		t.Fatalf("unexpected error (left recursion should terminate): %v", err)
	}
	if chart.Len() != len(tokens)+1 {
		t.Errorf("chart length = %d, want %d", chart.Len(), len(tokens)+1)
	}
}

func TestRecognizeRespectsMaxItems(t *testing.T) {
	g := arithmeticGrammar(t)
	tokens := []string{"1"}
	if _, err := Recognize(tokens, g, 1); err == nil {
		t.Fatalf("expected grammar-too-explosive error with a 1-item cap")
	}
}
