// Command cfgrepl is an interactive shell: enter a sentence, see its parse
// tree rendered, and (when the loaded grammar carries valuators) its folded
// value. Enter :grammar to dump the loaded rules. Quit with <ctrl>D.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/outspan/cfglang/earley"
	"github.com/outspan/cfglang/examples/arithmetic"
	"github.com/outspan/cfglang/grammar"
)

func tracer() tracing.Trace {
	return tracing.Select("cfglang.cfgrepl")
}

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	grammarFile := flag.String("grammar", "", "Load a grammar from a file of \"LHS -> rhs\" lines (default: built-in arithmetic grammar)")
	flag.Parse()
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))

	g, fold, err := loadGrammar(*grammarFile)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	pterm.Info.Println("Welcome to cfgrepl")
	tracer().Infof("Quit with <ctrl>D, or enter :grammar to dump the loaded rules")

	repl, err := readline.New("cfg> ")
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	defer repl.Close()

	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF or ctrl-C
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if line == ":grammar" {
			g.Dump()
			continue
		}
		evalLine(line, g, fold)
	}
	pterm.Info.Println("Good bye!")
}

func evalLine(line string, g *grammar.Grammar, fold func(*earley.Tree) (interface{}, error)) {
	tr, err := earley.Parse(line, g)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	root := pterm.NewTreeFromLeveledList(leveledTree(tr, pterm.LeveledList{}, 0))
	pterm.DefaultTree.WithRoot(root).Render()
	if fold == nil {
		return
	}
	value, err := fold(tr)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	pterm.Info.Printfln("= %v", value)
}

// leveledTree flattens a parse tree into pterm's leveled-list shape, one
// entry per node or leaf token.
func leveledTree(tr *earley.Tree, ll pterm.LeveledList, level int) pterm.LeveledList {
	ll = append(ll, pterm.LeveledListItem{Level: level, Text: tr.Rule.LHS.String()})
	for _, c := range tr.Children {
		switch v := c.(type) {
		case string:
			ll = append(ll, pterm.LeveledListItem{Level: level + 1, Text: v})
		case *earley.Tree:
			ll = leveledTree(v, ll, level+1)
		}
	}
	return ll
}

// loadGrammar returns the built-in arithmetic grammar (with its folding
// evaluator) when path is empty, otherwise a grammar built from textual
// rules read from path — one "LHS -> rhs" per non-empty, non-'#' line.
func loadGrammar(path string) (*grammar.Grammar, func(*earley.Tree) (interface{}, error), error) {
	if path == "" {
		g, err := arithmetic.Grammar()
		if err != nil {
			return nil, nil, err
		}
		return g, arithmetic.Fold, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening grammar file: %w", err)
	}
	defer f.Close()

	g := grammar.NewGrammar()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, err := g.AddRule(line); err != nil {
			return nil, nil, fmt.Errorf("rule %q: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading grammar file: %w", err)
	}
	return g, nil, nil
}

func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
