// Package types carries the small ambient vocabulary shared between a
// token source (an external collaborator per the scope notes) and the
// executor: a Token's source-position metadata and the parser-flavor enum
// used in diagnostics.
package types

// Token is a lexeme read from source text, combined with whatever
// positional metadata a caller wants surfaced in error reporting. The
// executor treats tokens as opaque payloads riding alongside the grammar
// symbol that drives parsing; it never inspects a Token's fields itself.
type Token interface {
	// Lexeme returns the text that was recognized, as it appears in the
	// source.
	Lexeme() string

	// Line returns the 1-indexed source line the token appears on.
	Line() int

	// LinePos returns the 1-indexed character offset within that line.
	LinePos() int
}

// ParserType names the three table-construction flavors. table.Table
// records its own flavor as a table.ParserKind, not as a ParserType.
type ParserType string

const (
	ParserSLR1  ParserType = "SLR(1)"
	ParserLALR1 ParserType = "LALR(1)"
	ParserCLR1  ParserType = "CLR(1)"
)

func (pt ParserType) String() string {
	return string(pt)
}
