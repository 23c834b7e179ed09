// Package lrforge is a toolkit for building bottom-up LR parsers from a
// context-free grammar: FIRST/FOLLOW computation, SLR(1)/LALR(1)/canonical
// LR(1) automaton and table construction, and a deterministic stack-driven
// executor to run the resulting table against a token stream.
//
// A typical caller declares a Grammar over its own terminal/nonterminal
// symbol type (anything comparable with a String method), builds a Table
// with one of table.BuildSLR1, table.BuildLALR1, or table.BuildCLR1, checks
// Table.Conflicts() for anything the chosen construction could not resolve,
// and then drives an exec.Executor over its token stream.
//
// See the grammar, item, automaton, table, and exec packages for the
// individual stages, and fixtures for a handful of grammars usable for
// experimentation.
package lrforge
