package grammar

import (
	"reflect"
	"strings"

	"github.com/outspan/cfglang/cfgerr"
)

// RHSElem is a right-hand-side element of a Rule: either a *Symbol
// (non-terminal) or a Terminal.
type RHSElem interface {
	rhsElem()
}

// Valuator is a user-supplied callback, invoked externally (never by the
// core recognizer/extractor) on a tree node's child values, in rhs order.
type Valuator func(values []interface{}) (interface{}, error)

// Rule is a single CFG production lhs -> rhs. lhs is always a Symbol; rhs
// must be non-empty.
type Rule struct {
	// Serial is the rule's position within the grammar it was added to,
	// assigned by Grammar.AddRule. It labels rules in Grammar.Dump and in
	// traces; the extractor does not read it.
	Serial int

	LHS      *Symbol
	RHS      []RHSElem
	valuator Valuator
}

// NewRule validates rhs and returns a Rule exposing lhs, indexed rhs access
// and an optional valuator. It fails with cfgerr.ErrInvalidRule if rhs is
// empty.
func NewRule(lhs *Symbol, rhs []RHSElem, valuator Valuator) (*Rule, error) {
	if len(rhs) == 0 {
		return nil, cfgerr.New(cfgerr.ErrInvalidRule, "rule rhs must be non-empty")
	}
	cp := make([]RHSElem, len(rhs))
	copy(cp, rhs)
	return &Rule{LHS: lhs, RHS: cp, valuator: valuator}, nil
}

// Len returns the number of elements in the rule's right-hand side.
func (r *Rule) Len() int {
	return len(r.RHS)
}

// At returns the rhs element at position i.
func (r *Rule) At(i int) RHSElem {
	return r.RHS[i]
}

// Evaluate forwards values positionally to the rule's valuator and returns
// its result. If the rule has no valuator, Evaluate returns (nil, nil) — a
// null sentinel, not an error. Evaluate fails with cfgerr.ErrEvaluateInput
// if values is not a positional (slice) sequence.
func (r *Rule) Evaluate(values interface{}) (interface{}, error) {
	if r.valuator == nil {
		return nil, nil
	}
	v := reflect.ValueOf(values)
	if values != nil && v.Kind() != reflect.Slice {
		return nil, cfgerr.New(cfgerr.ErrEvaluateInput, "values is not a slice")
	}
	var seq []interface{}
	if values != nil {
		seq = make([]interface{}, v.Len())
		for i := range seq {
			seq[i] = v.Index(i).Interface()
		}
	}
	return r.valuator(seq)
}

func (r *Rule) String() string {
	var sb strings.Builder
	sb.WriteString(r.LHS.String())
	sb.WriteString(" ->")
	for _, e := range r.RHS {
		sb.WriteByte(' ')
		switch v := e.(type) {
		case *Symbol:
			sb.WriteString(v.String())
		case Terminal:
			sb.WriteString(v.String())
		}
	}
	return sb.String()
}
