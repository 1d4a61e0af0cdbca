package cfgerr

import (
	"errors"
	"testing"
)

func TestNewIsDetectableWithErrorsIs(t *testing.T) {
	err := New(ErrNoParse, "stuck at token 3")
	if !errors.Is(err, ErrNoParse) {
		t.Fatalf("errors.Is(err, ErrNoParse) = false, want true")
	}
	if errors.Is(err, ErrInvalidRule) {
		t.Fatalf("errors.Is(err, ErrInvalidRule) = true, want false")
	}
}

func TestNewfFormatsMessage(t *testing.T) {
	err := Newf(ErrGrammarTooExplosive, "state %d exceeded %d items", 4, 100)
	want := "state 4 exceeded 100 items: grammar too explosive"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestErrorWithoutMessageFallsBackToCause(t *testing.T) {
	err := New(ErrDuplicateSymbolName, "")
	if err.Error() != ErrDuplicateSymbolName.Error() {
		t.Errorf("Error() = %q, want %q", err.Error(), ErrDuplicateSymbolName.Error())
	}
}

func TestUnwrapReturnsCause(t *testing.T) {
	err := New(ErrEvaluateInput, "values must be a slice")
	if !errors.Is(errors.Unwrap(err), ErrEvaluateInput) && errors.Unwrap(err) != ErrEvaluateInput {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), ErrEvaluateInput)
	}
}
