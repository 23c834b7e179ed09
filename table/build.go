package table

import (
	"github.com/mondegreen/lrforge/automaton"
	"github.com/mondegreen/lrforge/grammar"
	"github.com/mondegreen/lrforge/item"
)

// BuildCLR1 computes FIRST/FOLLOW, the canonical LR(1) automaton, and the
// action/goto table for g. Conflicts are recorded, not rejected; callers
// audit Table.Conflicts() before executing.
func BuildCLR1[S grammar.Symbol](g *grammar.Grammar[S]) (*Table[S], error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	dfa := automaton.BuildCLR1(g)
	actions := buildActions(g, dfa, func(it item.Item[S]) []S {
		return setKeys(it.Look)
	})
	return &Table[S]{Flavor: KindCLR1, Grammar: g, DFA: dfa, Actions: actions}, nil
}

// BuildLALR1 computes the LALR(1) automaton (canonical LR(1) states
// quotiented by core, per automaton.BuildLALR1) and its action/goto table.
func BuildLALR1[S grammar.Symbol](g *grammar.Grammar[S]) (*Table[S], error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	dfa, err := automaton.BuildLALR1(g)
	if err != nil {
		return nil, err
	}
	actions := buildActions(g, dfa, func(it item.Item[S]) []S {
		return setKeys(it.Look)
	})
	return &Table[S]{Flavor: KindLALR1, Grammar: g, DFA: dfa, Actions: actions}, nil
}

// BuildSLR1 computes the LR(0) automaton and an action/goto table whose
// reduction lookaheads come from FOLLOW(rule) rather than item-local
// lookahead.
func BuildSLR1[S grammar.Symbol](g *grammar.Grammar[S]) (*Table[S], error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	dfa := automaton.BuildLR0(g)
	actions := buildActions(g, dfa, func(it item.Item[S]) []S {
		return g.Follow(it.Rule)
	})
	return &Table[S]{Flavor: KindSLR1, Grammar: g, DFA: dfa, Actions: actions}, nil
}

// buildActions implements §4.7: for each state and item, shift/goto
// entries come from the item's symbol-after-dot and the automaton's
// transition; finished items install a reduce (or accept, for the
// augmented start rule under EOF) for every lookahead the lookaheads
// function supplies. Colliding installations become a Conflict rather than
// an error.
func buildActions[S grammar.Symbol](g *grammar.Grammar[S], dfa *automaton.DFA[S], lookaheads func(item.Item[S]) []S) []map[S]Action[S] {
	actions := make([]map[S]Action[S], len(dfa.States))
	for i, state := range dfa.States {
		m := map[S]Action[S]{}
		install := func(sym S, act Action[S]) {
			if existing, ok := m[sym]; ok {
				if !existing.Equal(act) {
					m[sym] = Conflict(existing, act)
				}
				return
			}
			m[sym] = act
		}

		for _, it := range state.Items() {
			if sym, ok := it.SymbolAfterDot(); ok {
				target, hasTarget := dfa.Trans[i][sym]
				if !hasTarget {
					continue
				}
				if g.IsTerminal(sym) {
					install(sym, Shift[S](target))
				} else {
					install(sym, Goto[S](target))
				}
				continue
			}
			for _, t := range lookaheads(it) {
				if it.Rule == g.Start() && t == g.EOF() {
					install(t, Accept[S]())
				} else {
					install(t, Reduce(it.Rule, it.Prod))
				}
			}
		}
		actions[i] = m
	}
	return actions
}

func setKeys[S grammar.Symbol](set map[S]bool) []S {
	out := make([]S, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	return out
}
