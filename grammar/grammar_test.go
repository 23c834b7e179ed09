package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mondegreen/lrforge/grammar"
)

func dragonBookGrammar() *grammar.Grammar[string] {
	g := grammar.New[string]("S'", "$")
	g.AddTerminal("c")
	g.AddTerminal("d")
	g.AddRule("S'", grammar.Production[string]{"S"})
	g.AddRule("S", grammar.Production[string]{"C", "C"})
	g.AddRule("C", grammar.Production[string]{"c", "C"}, grammar.Production[string]{"d"})
	return g
}

func Test_Validate_ok(t *testing.T) {
	g := dragonBookGrammar()
	assert.NoError(t, g.Validate())
}

func Test_Validate_startNeedsExactlyOneProduction(t *testing.T) {
	g := grammar.New[string]("S", "$")
	g.AddTerminal("a")
	g.AddRule("S", grammar.Production[string]{"a"}, grammar.Production[string]{})

	err := g.Validate()
	assert.Error(t, err)
	var mge *grammar.MalformedGrammarError
	assert.ErrorAs(t, err, &mge)
}

func Test_Validate_rejectsTerminalNonterminalOverlap(t *testing.T) {
	g := grammar.New[string]("S'", "$")
	g.AddTerminal("S")
	g.AddRule("S'", grammar.Production[string]{"S"})
	g.AddRule("S", grammar.Production[string]{})

	assert.Error(t, g.Validate())
}

func Test_Validate_rejectsUndeclaredSymbol(t *testing.T) {
	g := grammar.New[string]("S'", "$")
	g.AddRule("S'", grammar.Production[string]{"S"})
	g.AddRule("S", grammar.Production[string]{"missing"})

	assert.Error(t, g.Validate())
}

func Test_Symbols_canonicalOrder(t *testing.T) {
	g := dragonBookGrammar()
	assert.Equal(t, []string{"$", "C", "S", "S'", "c", "d"}, g.Symbols())
}

func Test_Terminals_cachedAcrossCalls(t *testing.T) {
	g := dragonBookGrammar()
	first := g.Terminals()
	second := g.Terminals()
	assert.Equal(t, first, second)
}

func Test_IsTerminal(t *testing.T) {
	g := dragonBookGrammar()
	assert.True(t, g.IsTerminal("c"))
	assert.True(t, g.IsTerminal("$"))
	assert.False(t, g.IsTerminal("S"))
}
