package automaton

import (
	"github.com/mondegreen/lrforge/grammar"
	"github.com/mondegreen/lrforge/item"
)

// BuildCLR1 constructs the canonical LR(1) viable-prefix automaton:
// closure({basis item, lookahead {EOF}}) is state 0, and the worklist
// processes states in discovery order per the data model's ordering
// guarantee. Two distinct states never share the same core with identical
// lookaheads (the canonical-LR1 invariant).
func BuildCLR1[S grammar.Symbol](g *grammar.Grammar[S]) *DFA[S] {
	basis := item.Item[S]{
		Rule: g.Start(),
		Prod: g.StartProduction(),
		Dot:  0,
		Look: map[S]bool{g.EOF(): true},
	}
	start := ClosureLR1(g, item.NewItemSet(basis))
	return worklist(g, start, func(k *item.ItemSet[S]) *item.ItemSet[S] {
		return ClosureLR1(g, k)
	})
}
