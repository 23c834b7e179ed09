package automaton

import (
	"fmt"

	"github.com/mondegreen/lrforge/grammar"
	"github.com/mondegreen/lrforge/item"
)

// BuildLALR1 constructs the LALR(1) automaton by building the full
// canonical LR(1) automaton and then quotienting its states by core: every
// group of LR(1) states sharing the same core (items with lookaheads
// stripped) collapses into a single state whose items carry the union of
// lookaheads of all body-equal items across the group (the same merge rule
// §4.5 describes for the eager variant). This is the post-hoc alternative
// named in the design notes' open question; it is equivalent to eager
// merging because GOTO on a grammar is a structural function of the
// underlying productions, so states that already share a core always
// transition, symbol for symbol, to states that themselves share a core.
//
// Merging can still introduce new shift/reduce or reduce/reduce conflicts
// relative to the canonical automaton; those are recorded later by the
// table builder, not rejected here. ErrInconsistentMerge below guards
// against the (structurally unexpected) case of a merge collapsing two
// states whose outgoing edges disagree on their own target's core.
func BuildLALR1[S grammar.Symbol](g *grammar.Grammar[S]) (*DFA[S], error) {
	clr := BuildCLR1(g)

	groupOf := map[string][]int{}
	groupOrder := make([]string, 0)
	coreKeyOf := make([]string, len(clr.States))
	for i, st := range clr.States {
		c := st.Core().Key()
		coreKeyOf[i] = c
		if _, seen := groupOf[c]; !seen {
			groupOrder = append(groupOrder, c)
		}
		groupOf[c] = append(groupOf[c], i)
	}

	newIndexOf := make([]int, len(clr.States))
	mergedStates := make([]*item.ItemSet[S], 0, len(groupOrder))
	for newIdx, core := range groupOrder {
		merged := item.NewItemSet[S]()
		for _, oldIdx := range groupOf[core] {
			for _, it := range clr.States[oldIdx].Items() {
				merged.Add(it)
			}
			newIndexOf[oldIdx] = newIdx
		}
		mergedStates = append(mergedStates, merged)
	}

	trans := make([]map[S]int, len(mergedStates))
	for i := range trans {
		trans[i] = map[S]int{}
	}
	for oldIdx, edges := range clr.Trans {
		ni := newIndexOf[oldIdx]
		for sym, oldTarget := range edges {
			nt := newIndexOf[oldTarget]
			if existing, ok := trans[ni][sym]; ok && existing != nt {
				return nil, &ErrInconsistentMerge[S]{State: ni, Symbol: sym, A: existing, B: nt}
			}
			trans[ni][sym] = nt
		}
	}

	return &DFA[S]{States: mergedStates, Trans: trans}, nil
}

// ErrInconsistentMerge reports that quotienting LR(1) states by core
// produced two different targets for the same (state, symbol) transition.
// This would indicate a bug in core computation rather than a property of
// any LALR(1)-violating grammar, since LALR merges never change automaton
// topology, only action-table conflicts.
type ErrInconsistentMerge[S grammar.Symbol] struct {
	State  int
	Symbol S
	A, B   int
}

func (e *ErrInconsistentMerge[S]) Error() string {
	return fmt.Sprintf("lalr merge produced inconsistent transition for state %d on %s: %d vs %d", e.State, e.Symbol.String(), e.A, e.B)
}
