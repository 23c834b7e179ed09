package automaton

import (
	"github.com/mondegreen/lrforge/grammar"
	"github.com/mondegreen/lrforge/item"
)

// ClosureLR1 computes the closure of an LR(1) item set per the component
// design: for every item A -> alpha . B beta with lookahead L where B is a
// nonterminal, the propagated lookahead is FIRST(first symbol of beta) if
// beta is non-empty and that symbol is a nonterminal, {that terminal} if
// beta starts with a terminal, or L itself if beta is empty. Every
// production of B is added under that lookahead. Repeats to a fixed point.
func ClosureLR1[S grammar.Symbol](g *grammar.Grammar[S], seed *item.ItemSet[S]) *item.ItemSet[S] {
	result := item.NewItemSet[S](seed.Items()...)
	for changed := true; changed; {
		changed = false
		for _, it := range result.Items() {
			sym, ok := it.SymbolAfterDot()
			if !ok || g.IsTerminal(sym) {
				continue
			}
			look := propagatedLookahead(g, it)
			rule := g.Rule(sym)
			if rule == nil {
				continue
			}
			for _, prod := range rule.Productions {
				newItem := item.Item[S]{Rule: sym, Prod: prod, Dot: 0, Look: look}
				if result.Add(newItem) {
					changed = true
				}
			}
		}
	}
	return result
}

func propagatedLookahead[S grammar.Symbol](g *grammar.Grammar[S], it item.Item[S]) map[S]bool {
	beta := it.Prod[it.Dot+1:]
	if len(beta) == 0 {
		return it.Look
	}
	b0 := beta[0]
	look := map[S]bool{}
	if g.IsTerminal(b0) {
		look[b0] = true
	} else {
		for _, t := range g.First(b0) {
			look[t] = true
		}
	}
	return look
}

// ClosureLR0 computes the LR(0) closure used by the SLR builder: identical
// expansion rule but with no lookahead propagation at all (every added item
// carries an empty lookahead set).
func ClosureLR0[S grammar.Symbol](g *grammar.Grammar[S], seed *item.ItemSet[S]) *item.ItemSet[S] {
	result := item.NewItemSet[S](seed.Items()...)
	for changed := true; changed; {
		changed = false
		for _, it := range result.Items() {
			sym, ok := it.SymbolAfterDot()
			if !ok || g.IsTerminal(sym) {
				continue
			}
			rule := g.Rule(sym)
			if rule == nil {
				continue
			}
			for _, prod := range rule.Productions {
				newItem := item.Item[S]{Rule: sym, Prod: prod, Dot: 0}
				if result.Add(newItem) {
					changed = true
				}
			}
		}
	}
	return result
}
