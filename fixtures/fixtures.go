// Package fixtures supplies a handful of named, hand-checkable grammars
// (most drawn from the Dragon Book, Wikipedia's LR-parsing article, and
// a University of Calgary course handout) along with token sequences
// that are known to parse or known to expose SLR(1)/LALR(1) conflicts that
// CLR(1) resolves. They exist for differential testing across the three
// table flavors, not as part of the core algorithm.
package fixtures

import "github.com/mondegreen/lrforge/grammar"

func prod(syms ...string) grammar.Production[string] { return grammar.Production[string](syms) }

// DragonBook returns the classic S' -> S, S -> C C, C -> c C | d grammar
// (Aho/Sethi/Ullman, the running LALR(1) example).
func DragonBook() *grammar.Grammar[string] {
	g := grammar.New[string]("S'", "$")
	g.AddTerminal("c")
	g.AddTerminal("d")
	g.AddRule("S'", prod("S"))
	g.AddRule("S", prod("C", "C"))
	g.AddRule("C", prod("c", "C"), prod("d"))
	return g
}

// DragonBookInputs are token sequences of "c"/"d" that DragonBook() accepts.
var DragonBookInputs = [][]string{
	{"d", "d"},
	{"d", "c", "d"},
	{"c", "d", "d"},
	{"c", "c", "d", "d"},
	{"d", "c", "c", "d"},
	{"c", "d", "c", "d"},
	{"c", "c", "c", "d", "d"},
	{"d", "c", "c", "c", "d"},
	{"c", "c", "c", "c", "d", "d"},
	{"d", "c", "c", "c", "c", "d"},
}

// Serokell returns the classic expression grammar used in Serokell's LR
// parsing writeups: Start -> Add, Add -> Add + Factor | Factor,
// Factor -> Factor * Term | Term, Term -> ( Add ) | int | ident.
func Serokell() *grammar.Grammar[string] {
	g := grammar.New[string]("Start'", "$")
	for _, t := range []string{"+", "*", "(", ")", "int", "ident"} {
		g.AddTerminal(t)
	}
	g.AddRule("Start'", prod("Start"))
	g.AddRule("Start", prod("Add"))
	g.AddRule("Add", prod("Add", "+", "Factor"), prod("Factor"))
	g.AddRule("Factor", prod("Factor", "*", "Term"), prod("Term"))
	g.AddRule("Term", prod("(", "Add", ")"), prod("int"), prod("ident"))
	return g
}

// SerokellInputs are token sequences that Serokell() accepts, including a
// deeply right-nested parenthesization.
var SerokellInputs = [][]string{
	{"int"},
	{"ident"},
	{"int", "+", "int"},
	{"int", "*", "int"},
	{"int", "+", "int", "*", "int"},
	{"(", "int", ")"},
	{"(", "int", "+", "int", ")"},
	{"(", "int", "+", "int", ")", "*", "int"},
	{"ident", "*", "(", "ident", "+", "int", ")"},
	deepNest(22),
}

func deepNest(n int) []string {
	out := make([]string, 0, 2*n+1)
	for i := 0; i < n; i++ {
		out = append(out, "(")
	}
	out = append(out, "int")
	for i := 0; i < n; i++ {
		out = append(out, ")")
	}
	return out
}

// UCalgaryUniOthLR1 returns the University of Calgary "uni-oth-lr1" handout
// grammar, a standard textbook example of a grammar that needs full
// canonical LR(1): it is neither SLR(1) nor LALR(1).
//
//	S  -> E
//	E  -> d D | D | F
//	F  -> e C | C
//	D  -> d e B b | e A c
//	C  -> e d B c | d A b
//	B  -> a
//	A  -> a
func UCalgaryUniOthLR1() *grammar.Grammar[string] {
	g := grammar.New[string]("S'", "$")
	for _, t := range []string{"d", "e", "a", "b", "c"} {
		g.AddTerminal(t)
	}
	g.AddRule("S'", prod("S"))
	g.AddRule("S", prod("E"))
	g.AddRule("E", prod("d", "D"), prod("D"), prod("F"))
	g.AddRule("F", prod("e", "C"), prod("C"))
	g.AddRule("D", prod("d", "e", "B", "b"), prod("e", "A", "c"))
	g.AddRule("C", prod("e", "d", "B", "c"), prod("d", "A", "b"))
	g.AddRule("B", prod("a"))
	g.AddRule("A", prod("a"))
	return g
}

// UCalgaryUniOthLR1Inputs are token sequences that UCalgaryUniOthLR1()
// accepts under CLR(1).
var UCalgaryUniOthLR1Inputs = [][]string{
	{"d", "d", "e", "a", "b"},
	{"d", "e", "a", "c"},
	{"e", "e", "d", "a", "c"},
	{"e", "d", "a", "b"},
	{"d", "e", "a", "c"},
	{"e", "a", "c"},
	{"d", "a", "b"},
	{"e", "d", "a", "c"},
}

// NonLALRUCalgaryUniOthLR1Inputs are inputs that a CLR(1) table accepts but
// an LALR(1) table built on the same grammar rejects, because merging
// core-equal states by lookahead union introduces a spurious reduce/reduce
// conflict on these prefixes.
var NonLALRUCalgaryUniOthLR1Inputs = [][]string{
	{"d", "e", "a", "c"},
	{"d", "e", "a", "b"},
	{"e", "d", "a", "b"},
	{"e", "d", "a", "c"},
}

// NonSLRUCalgaryUniOthLR1Inputs is the SLR(1)-table analogue of
// NonLALRUCalgaryUniOthLR1Inputs: the same four prefixes, which also defeat
// the coarser FOLLOW-based SLR(1) construction.
var NonSLRUCalgaryUniOthLR1Inputs = NonLALRUCalgaryUniOthLR1Inputs

// Wikipedia returns the grammar used on Wikipedia's "LR parser" article:
// S -> E, E -> E * B | E + B | B, B -> 0 | 1.
func Wikipedia() *grammar.Grammar[string] {
	g := grammar.New[string]("S'", "$")
	for _, t := range []string{"0", "1", "*", "+"} {
		g.AddTerminal(t)
	}
	g.AddRule("S'", prod("S"))
	g.AddRule("S", prod("E"))
	g.AddRule("E", prod("E", "*", "B"), prod("E", "+", "B"), prod("B"))
	g.AddRule("B", prod("0"), prod("1"))
	return g
}

// WikipediaInputs are token sequences that Wikipedia() accepts.
var WikipediaInputs = [][]string{
	{"0"},
	{"1"},
	{"0", "+", "1"},
	{"1", "*", "0"},
	{"0", "+", "1", "*", "0"},
	{"1", "*", "1", "+", "0"},
	{"0", "+", "0", "+", "1"},
	{"1", "*", "1", "*", "1"},
	{"0", "+", "1", "+", "0", "+", "1"},
	{"1", "*", "0", "+", "1", "*", "0"},
}

// Puncs returns a small balanced-bracket grammar with three bracket kinds,
// each either empty or wrapping a nested Start: S' -> S, S -> () | (S) |
// [] | [S] | {} | {S}.
func Puncs() *grammar.Grammar[string] {
	g := grammar.New[string]("S'", "$")
	for _, t := range []string{"(", ")", "[", "]", "{", "}"} {
		g.AddTerminal(t)
	}
	g.AddRule("S'", prod("S"))
	g.AddRule("S",
		prod("(", ")"), prod("(", "S", ")"),
		prod("[", "]"), prod("[", "S", "]"),
		prod("{", "}"), prod("{", "S", "}"),
	)
	return g
}

// PuncsInputs are token sequences that Puncs() accepts, nesting and
// alternating bracket kinds.
var PuncsInputs = [][]string{
	{"(", ")"},
	{"[", "]"},
	{"{", "}"},
	{"(", "(", ")", ")"},
	{"[", "(", ")", "]"},
	{"{", "[", "]", "}"},
	{"(", "[", "{", "}", "]", ")"},
	{"{", "{", "{", "}", "}", "}"},
	{"[", "(", "{", "}", ")", "]"},
	{"(", "(", "(", "(", ")", ")", ")", ")"},
}

// Scanner returns a tiny lexical-structure grammar over single-character
// alphanumeric tokens plus a space marker: a phrase is space-separated
// words and numbers, a word is one or more letters, a number is one or
// more digits.
//
//	S      -> Phrase
//	Phrase -> Item Space Phrase | Item
//	Item   -> Word | Num
//	Word   -> Alpha Word | Alpha
//	Num    -> Digit Num | Digit
//	Alpha  -> a | b | ... | z
//	Digit  -> 0 | ... | 9
//	Space  -> _
func Scanner() *grammar.Grammar[string] {
	g := grammar.New[string]("S'", "$")
	letters := "abcdefghijklmnopqrstuvwxyz"
	for _, r := range letters {
		g.AddTerminal(string(r))
	}
	for _, r := range "0123456789" {
		g.AddTerminal(string(r))
	}
	g.AddTerminal("_")

	g.AddRule("S'", prod("S"))
	g.AddRule("S", prod("Phrase"))
	g.AddRule("Phrase", prod("Item", "Space", "Phrase"), prod("Item"))
	g.AddRule("Item", prod("Word"), prod("Num"))
	g.AddRule("Word", prod("Alpha", "Word"), prod("Alpha"))
	g.AddRule("Num", prod("Digit", "Num"), prod("Digit"))

	alphaProds := make([]grammar.Production[string], len(letters))
	for i, r := range letters {
		alphaProds[i] = prod(string(r))
	}
	g.AddRule("Alpha", alphaProds...)

	digitProds := make([]grammar.Production[string], 10)
	for i := 0; i < 10; i++ {
		digitProds[i] = prod(string(rune('0' + i)))
	}
	g.AddRule("Digit", digitProds...)

	g.AddRule("Space", prod("_"))
	return g
}

// ScannerInputs are token sequences that Scanner() accepts: runs of
// single-character words and numbers separated by "_".
var ScannerInputs = [][]string{
	{"h", "i"},
	{"4", "2"},
	{"h", "i", "_", "4", "2"},
	{"g", "o", "_", "1"},
	{
		"t", "h", "e", "_", "q", "u", "i", "c", "k", "_",
		"b", "r", "o", "w", "n", "_", "f", "o", "x", "_",
		"j", "u", "m", "p", "s", "_", "1", "2",
	},
}
