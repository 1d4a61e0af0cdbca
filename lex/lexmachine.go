package lex

import (
	"fmt"
	"strings"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/outspan/cfglang/grammar"
)

// NewLexmachine builds a Tokenizer backed by a lexmachine DFA lexer,
// compiled once from g's terminals: string terminals are registered as
// escaped literal matches, pattern terminals are registered using their
// regex source directly. Runs of whitespace are skipped. This is an
// alternative to Default for grammars whose terminals are better served by
// a real lexer than by a single alternation regex — keywords, nested
// comments, or terminals whose source text would otherwise collide.
//
// The grammar passed to the returned Tokenizer at call time is ignored; the
// lexer is fixed to the grammar given here.
func NewLexmachine(g *grammar.Grammar) (Tokenizer, error) {
	lexer := lexmachine.NewLexer()
	lexer.Add([]byte(`( |\t|\n|\r)+`), skipMatch)

	var seen []grammar.Terminal
	for _, r := range g.Rules() {
		for i := 0; i < r.Len(); i++ {
			term, ok := r.At(i).(grammar.Terminal)
			if !ok {
				continue
			}
			if containsTerminal(seen, term) {
				continue
			}
			seen = append(seen, term)
			pattern := term.Source()
			if !term.IsPattern() {
				pattern = escapeLiteral(pattern)
			}
			lexer.Add([]byte(pattern), tokenMatch)
		}
	}
	if err := lexer.Compile(); err != nil {
		return nil, fmt.Errorf("compile lexmachine DFA: %w", err)
	}

	return func(sentence string, _ *grammar.Grammar) ([]string, error) {
		sc, err := lexer.Scanner([]byte(sentence))
		if err != nil {
			return nil, fmt.Errorf("create lexmachine scanner: %w", err)
		}
		var out []string
		for {
			tok, err, eof := sc.Next()
			if err != nil {
				if ui, ok := err.(*machines.UnconsumedInput); ok {
					tracer().Errorf("lexmachine: unconsumed input at %d", ui.FailTC)
					sc.TC = ui.FailTC
					continue
				}
				return nil, err
			}
			if eof {
				break
			}
			lt := tok.(*lexmachine.Token)
			out = append(out, string(lt.Lexeme))
		}
		return out, nil
	}, nil
}

func skipMatch(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func tokenMatch(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	return s.Token(0, string(m.Bytes), m), nil
}

// escapeLiteral backslash-escapes every rune of lit so it is matched
// literally by lexmachine's regex engine.
func escapeLiteral(lit string) string {
	var b strings.Builder
	for _, r := range lit {
		b.WriteByte('\\')
		b.WriteRune(r)
	}
	return b.String()
}
