/*
Lrforge builds an LR parse table for one of the bundled example grammars and
runs it against a line of space-separated tokens.

Usage:

	lrforge [flags]

The flags are:

	-g, --grammar NAME
		Which bundled grammar to use: dragonbook, serokell, uni-oth-lr1,
		wikipedia, puncs, or scanner. Defaults to dragonbook.

	-f, --flavor NAME
		Which table construction to use: slr1, lalr1, or clr1. Defaults to
		clr1.

	-i, --input TOKENS
		Space-separated tokens to parse. If omitted, tokens are read from a
		single line of stdin.

	-t, --table
		Print the constructed ACTION/GOTO table before parsing.

On a successful parse, the resulting parse tree is printed to stdout. On
failure, the parse error is printed to stderr and the program exits
nonzero.
*/
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/mondegreen/lrforge/exec"
	"github.com/mondegreen/lrforge/fixtures"
	"github.com/mondegreen/lrforge/grammar"
	"github.com/mondegreen/lrforge/table"
	"github.com/mondegreen/lrforge/types"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitBadUsage indicates an unrecognized grammar or flavor name.
	ExitBadUsage

	// ExitBuildError indicates the grammar failed to validate or build.
	ExitBuildError

	// ExitParseError indicates the given tokens were rejected by the
	// constructed table.
	ExitParseError
)

var (
	returnCode  = ExitSuccess
	flagGrammar = pflag.StringP("grammar", "g", "dragonbook", "bundled grammar to use")
	flagFlavor  = pflag.StringP("flavor", "f", "clr1", "table construction: slr1, lalr1, or clr1")
	flagInput   = pflag.StringP("input", "i", "", "space-separated tokens to parse")
	flagTable   = pflag.BoolP("table", "t", false, "print the constructed table before parsing")
)

func main() {
	defer func() {
		os.Exit(returnCode)
	}()
	pflag.Parse()

	g, ok := grammarByName(*flagGrammar)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown grammar %q\n", *flagGrammar)
		returnCode = ExitBadUsage
		return
	}

	switch *flagFlavor {
	case "slr1", "lalr1", "clr1":
	default:
		fmt.Fprintf(os.Stderr, "unknown flavor %q\n", *flagFlavor)
		returnCode = ExitBadUsage
		return
	}

	t, err := buildTable(*flagFlavor, g)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		returnCode = ExitBuildError
		return
	}

	if *flagTable {
		fmt.Println(t.String())
	}
	if conflicts := t.Conflicts(); len(conflicts) > 0 {
		fmt.Fprintf(os.Stderr, "note: %d conflict(s) recorded in the table\n", len(conflicts))
	}

	tokens := strings.Fields(*flagInput)
	if len(tokens) == 0 {
		tokens = readLine()
	}

	tree, err := exec.New(t).Parse(tokenStream(tokens))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		returnCode = ExitParseError
		return
	}
	fmt.Println(tree.String())
}

func readLine() []string {
	scanner := bufio.NewScanner(os.Stdin)
	if scanner.Scan() {
		return strings.Fields(scanner.Text())
	}
	return nil
}

func grammarByName(name string) (*grammar.Grammar[string], bool) {
	switch name {
	case "dragonbook":
		return fixtures.DragonBook(), true
	case "serokell":
		return fixtures.Serokell(), true
	case "uni-oth-lr1":
		return fixtures.UCalgaryUniOthLR1(), true
	case "wikipedia":
		return fixtures.Wikipedia(), true
	case "puncs":
		return fixtures.Puncs(), true
	case "scanner":
		return fixtures.Scanner(), true
	default:
		return nil, false
	}
}

func buildTable(flavor string, g *grammar.Grammar[string]) (*table.Table[string], error) {
	switch flavor {
	case "slr1":
		return table.BuildSLR1(g)
	case "lalr1":
		return table.BuildLALR1(g)
	case "clr1":
		return table.BuildCLR1(g)
	default:
		return nil, fmt.Errorf("unknown flavor %q", flavor)
	}
}

// stringToken is the minimal types.Token implementation for tokens that
// carry no source position, used by this CLI's plain-text input.
type stringToken string

func (s stringToken) Lexeme() string { return string(s) }
func (s stringToken) Line() int      { return 1 }
func (s stringToken) LinePos() int   { return 0 }

// simpleStream adapts a fixed token slice to exec.TokenStream.
type simpleStream struct {
	toks []string
	pos  int
}

func tokenStream(toks []string) *simpleStream { return &simpleStream{toks: toks} }

func (s *simpleStream) HasNext() bool { return s.pos < len(s.toks) }

func (s *simpleStream) Peek() (string, types.Token) {
	return s.toks[s.pos], stringToken(s.toks[s.pos])
}

func (s *simpleStream) Next() (string, types.Token) {
	sym, tok := s.Peek()
	s.pos++
	return sym, tok
}
