package earley

import (
	"github.com/npillmayer/schuko/gconf"

	"github.com/outspan/cfglang/grammar"
	"github.com/outspan/cfglang/lex"
)

// maxChartItemsKey is the gconf configuration key for the optional cap on
// chart-state size, guarding against a pathological grammar blowing up the
// chart unboundedly. 0 (the gconf default for an unset int key) means
// unbounded.
const maxChartItemsKey = "max-chart-items"

// Parse composes tokenize -> recognize -> transform -> extract into the
// single entry point callers use. tokenizer defaults to lex.Default when
// omitted.
func Parse(sentence string, g *grammar.Grammar, tokenizer ...lex.Tokenizer) (*Tree, error) {
	tok := lex.Default
	if len(tokenizer) > 0 && tokenizer[0] != nil {
		tok = tokenizer[0]
	}
	tokens, err := tok(sentence, g)
	if err != nil {
		return nil, err
	}
	tracer().Infof("parsing %d tokens: %v", len(tokens), tokens)

	maxItems := gconf.GetInt(maxChartItemsKey)
	chart, err := Recognize(tokens, g, maxItems)
	if err != nil {
		return nil, err
	}
	transformed := Transform(chart)
	return Extract(transformed, tokens)
}
