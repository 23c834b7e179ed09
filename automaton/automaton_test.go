package automaton_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mondegreen/lrforge/automaton"
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

func Test_BuildCLR1_dragonBookStateCount(t *testing.T) {
	g := dragonBookGrammar()
	dfa := automaton.BuildCLR1(g)
	// Purple Dragon figure 4.42 has 10 canonical LR(1) states for this
	// grammar: the 7 LR(0) cores, three of which (C -> c . C, C -> d . and
	// C -> c C .) appear twice, once with lookahead {c, d} and once with {$}.
	assert.Equal(t, 10, len(dfa.States))
}

func Test_BuildCLR1_isDeterministicAcrossRuns(t *testing.T) {
	g := dragonBookGrammar()
	first := automaton.BuildCLR1(g)
	second := automaton.BuildCLR1(g)
	assert.Equal(t, len(first.States), len(second.States))
	for i := range first.States {
		assert.True(t, first.States[i].Equal(second.States[i]), "state %d should be identical across builds", i)
	}
}

func Test_BuildLR0_hasFewerOrEqualStatesThanCLR1(t *testing.T) {
	g := dragonBookGrammar()
	lr0 := automaton.BuildLR0(g)
	clr1 := automaton.BuildCLR1(g)
	assert.LessOrEqual(t, len(lr0.States), len(clr1.States))
}

func Test_BuildLALR1_hasSameStateCountAsLR0(t *testing.T) {
	g := dragonBookGrammar()
	lr0 := automaton.BuildLR0(g)
	lalr1, err := automaton.BuildLALR1(g)
	assert.NoError(t, err)
	assert.Equal(t, len(lr0.States), len(lalr1.States), "LALR(1) quotients LR(1) states down to the LR(0) core count")
}

func Test_Goto_emptyWhenSymbolNotPresent(t *testing.T) {
	g := dragonBookGrammar()
	dfa := automaton.BuildLR0(g)
	kernel := automaton.Goto(dfa.States[0], "nonexistent")
	assert.True(t, kernel.Empty())
}

func Test_Trans_isWithinBounds(t *testing.T) {
	g := dragonBookGrammar()
	dfa := automaton.BuildCLR1(g)
	for i, edges := range dfa.Trans {
		for sym, target := range edges {
			assert.GreaterOrEqual(t, target, 0, "state %d on %s", i, sym)
			assert.Less(t, target, len(dfa.States), "state %d on %s", i, sym)
		}
	}
}
