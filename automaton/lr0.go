package automaton

import (
	"github.com/mondegreen/lrforge/grammar"
	"github.com/mondegreen/lrforge/item"
)

// BuildLR0 constructs the LR(0) viable-prefix automaton used as the basis
// for SLR(1): items carry no lookahead, so state identity is purely a
// function of the core (rule, production, dot).
func BuildLR0[S grammar.Symbol](g *grammar.Grammar[S]) *DFA[S] {
	basis := item.Item[S]{Rule: g.Start(), Prod: g.StartProduction(), Dot: 0}
	start := ClosureLR0(g, item.NewItemSet(basis))
	return worklist(g, start, func(k *item.ItemSet[S]) *item.ItemSet[S] {
		return ClosureLR0(g, k)
	})
}
