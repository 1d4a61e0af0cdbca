package earley

import (
	"errors"
	"testing"

	"github.com/outspan/cfglang/cfgerr"
)

func yield(tr *Tree) []string {
	var out []string
	for _, c := range tr.Children {
		switch v := c.(type) {
		case string:
			out = append(out, v)
		case *Tree:
			out = append(out, yield(v)...)
		}
	}
	return out
}

func TestExtractBuildsMatchingYield(t *testing.T) {
	g := arithmeticGrammar(t)
	tokens := []string{"23", "+", "(", "32", "*", "46", ")"}
	chart, err := Recognize(tokens, g, 0)
	if err != nil {
		t.Fatalf("recognize: %v", err)
	}
	tr, err := Extract(Transform(chart), tokens)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	got := yield(tr)
	if len(got) != len(tokens) {
		t.Fatalf("yield = %v, want %v", got, tokens)
	}
	for i := range tokens {
		if got[i] != tokens[i] {
			t.Errorf("yield[%d] = %q, want %q", i, got[i], tokens[i])
		}
	}
	if tr.Rule.LHS.Name() != "Sum" {
		t.Errorf("root rule lhs = %q, want Sum", tr.Rule.LHS.Name())
	}
}

func TestExtractDeterministic(t *testing.T) {
	g := arithmeticGrammar(t)
	tokens := []string{"2", "*", "3"}
	chart, err := Recognize(tokens, g, 0)
	if err != nil {
		t.Fatalf("recognize: %v", err)
	}
	transformed := Transform(chart)
	tr1, err := Extract(transformed, tokens)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	tr2, err := Extract(transformed, tokens)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if serialize([]interface{}{tr1}) != serialize([]interface{}{tr2}) {
		t.Errorf("extraction is not deterministic across repeated calls")
	}
}

func TestExtractNoParseOnJunkPrefix(t *testing.T) {
	g := arithmeticGrammar(t)
	tokens := []string{"*", "2", "*", "3"}
	chart, err := Recognize(tokens, g, 0)
	if err != nil {
		t.Fatalf("recognize: %v", err)
	}
	_, err = Extract(Transform(chart), tokens)
	if err == nil {
		t.Fatalf("expected no-parse error")
	}
	if !errors.Is(err, cfgerr.ErrNoParse) {
		t.Errorf("error = %v, want wrapping ErrNoParse", err)
	}
}

func TestExtractNoParseOnTrailingJunk(t *testing.T) {
	g := arithmeticGrammar(t)
	tokens := []string{"2", "*", "3", "*"}
	chart, err := Recognize(tokens, g, 0)
	if err != nil {
		t.Fatalf("recognize: %v", err)
	}
	_, err = Extract(Transform(chart), tokens)
	if err == nil {
		t.Fatalf("expected no-parse error naming the stuck position")
	}
	if !errors.Is(err, cfgerr.ErrNoParse) {
		t.Errorf("error = %v, want wrapping ErrNoParse", err)
	}
}

func TestExtractLogsAmbiguityButStillReturnsATree(t *testing.T) {
	g := arithmeticGrammar(t)
	// A second Sum production makes "1 + 2 * 3 + 4" derivable two ways.
	if _, err := g.AddRule(`Sum -> Product '+' Sum`); err != nil {
		t.Fatalf("building rule: %v", err)
	}
	tokens := []string{"1", "+", "2", "*", "3", "+", "4"}
	chart, err := Recognize(tokens, g, 0)
	if err != nil {
		t.Fatalf("recognize: %v", err)
	}
	tr, err := Extract(Transform(chart), tokens)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(yield(tr)) != len(tokens) {
		t.Errorf("expected a full-width tree despite ambiguity")
	}
}
