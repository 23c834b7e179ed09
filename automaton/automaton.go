// Package automaton constructs the viable-prefix automaton (the
// characteristic finite-state machine of LR item sets) for a grammar, in
// its canonical LR(1), LR(0), and LALR(1) forms.
package automaton

import (
	"github.com/mondegreen/lrforge/grammar"
	"github.com/mondegreen/lrforge/item"
)

// DFA is the deterministic automaton over item sets: States[i] is the item
// set for state i, and Trans[i][sym] is the target state reached by
// GOTO(States[i], sym), when defined.
type DFA[S grammar.Symbol] struct {
	States []*item.ItemSet[S]
	Trans  []map[S]int
}

// Goto advances the dot of every item in state whose symbol-after-dot is
// sym, producing the (un-closed) kernel of the target state. Returns an
// empty set if no item in state has sym after its dot.
func Goto[S grammar.Symbol](state *item.ItemSet[S], sym S) *item.ItemSet[S] {
	kernel := item.NewItemSet[S]()
	for _, it := range state.Items() {
		if s, ok := it.SymbolAfterDot(); ok && s == sym {
			kernel.Add(it.Advance())
		}
	}
	return kernel
}

// worklist runs the standard breadth-first state-discovery loop shared by
// the LR(1) and LR(0) builders: starting from a seed (already-closed)
// state, repeatedly compute GOTO+closure for every grammar symbol,
// assigning new states in first-discovery order and recording transitions.
func worklist[S grammar.Symbol](g *grammar.Grammar[S], start *item.ItemSet[S], closure func(*item.ItemSet[S]) *item.ItemSet[S]) *DFA[S] {
	dfa := &DFA[S]{}
	kernelIdx := map[string]int{}

	addState := func(s *item.ItemSet[S]) int {
		k := s.Key()
		if idx, ok := kernelIdx[k]; ok {
			return idx
		}
		idx := len(dfa.States)
		dfa.States = append(dfa.States, s)
		dfa.Trans = append(dfa.Trans, map[S]int{})
		kernelIdx[k] = idx
		return idx
	}

	addState(start)
	for i := 0; i < len(dfa.States); i++ {
		state := dfa.States[i]
		for _, sym := range g.Symbols() {
			kernel := Goto(state, sym)
			if kernel.Empty() {
				continue
			}
			closed := closure(kernel)
			target := addState(closed)
			dfa.Trans[i][sym] = target
		}
	}
	return dfa
}
