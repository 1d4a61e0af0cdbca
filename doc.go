/*
Package cfglang is an Earley parser toolbox for ambiguous, left-recursive,
and otherwise table-parser-hostile context-free grammars.

It focuses on recognition and parse-tree extraction rather than speed:
given a grammar and a sentence it decides membership in the language and
returns a single deterministic derivation tree. Package structure is as
follows:

■ grammar: symbols, terminals, rules and the grammar container, including a
declarative textual rule-builder.

■ lex: tokenizers that turn a raw sentence into a token sequence for a given
grammar.

■ earley: the chart-based recognizer, the chart transformer, and the
depth-first tree extractor.

■ cfgerr: the error kinds surfaced by the packages above.

■ examples: grammars used as external collaborators — arithmetic expressions
and a toy English subset.

The base package contains the Span type, which package earley uses to
record the token range of each parse tree node.

License

Governed by a 3-Clause BSD license. This module does not ship a license
file.
*/
package cfglang
