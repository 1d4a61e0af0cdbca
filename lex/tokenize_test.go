package lex

import (
	"reflect"
	"testing"

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

func TestDefaultTokenize(t *testing.T) {
	g := arithmeticGrammar(t)
	got, err := Default("23 + (32 * 46)", g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"23", "+", "(", "32", "*", "46", ")"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDefaultTokenizeDropsEmptyAndTrims(t *testing.T) {
	g := arithmeticGrammar(t)
	got, err := Default("  2*3   ", g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"2", "*", "3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLexmachineTokenize(t *testing.T) {
	g := arithmeticGrammar(t)
	tok, err := NewLexmachine(g)
	if err != nil {
		t.Fatalf("unexpected error building lexmachine tokenizer: %v", err)
	}
	got, err := tok("1 + 2 * 3", g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"1", "+", "2", "*", "3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
