// Package item implements LR items (dotted productions with an optional
// lookahead set) and canonically ordered sets of them, shared by the
// automaton and table packages.
package item

import (
	"sort"
	"strings"

	"github.com/mondegreen/lrforge/grammar"
)

// Item is a dotted production: rule name, the production it walks, the dot
// position, and (for LR(1)/LALR(1) construction) a lookahead set. LR(0)/SLR
// items simply carry an empty Look.
type Item[S grammar.Symbol] struct {
	Rule S
	Prod grammar.Production[S]
	Dot  int
	Look map[S]bool
}

// SymbolAfterDot returns the symbol immediately following the dot, or the
// zero value and false if the item is finished.
func (i Item[S]) SymbolAfterDot() (S, bool) {
	if i.Dot >= len(i.Prod) {
		var zero S
		return zero, false
	}
	return i.Prod[i.Dot], true
}

// Finished reports whether the dot has reached the end of the production.
func (i Item[S]) Finished() bool {
	return i.Dot >= len(i.Prod)
}

// Advance returns a copy of the item with the dot moved one position to the
// right. The lookahead map is shared with i, not copied; ItemSet.Add copies
// it when the advanced item is inserted into a set.
func (i Item[S]) Advance() Item[S] {
	return Item[S]{Rule: i.Rule, Prod: i.Prod, Dot: i.Dot + 1, Look: i.Look}
}

// Core returns the item with its lookahead stripped, for LALR core
// comparison.
func (i Item[S]) Core() Item[S] {
	return Item[S]{Rule: i.Rule, Prod: i.Prod, Dot: i.Dot, Look: nil}
}

// BodyEqual reports whether i and o agree on rule, production, and dot
// position, ignoring lookahead. This is the LALR core-equivalence relation.
func (i Item[S]) BodyEqual(o Item[S]) bool {
	return i.Rule == o.Rule && i.Dot == o.Dot && i.Prod.Equal(o.Prod)
}

// bodyKey is the canonical string key for body-equality (rule, production,
// dot), used for deterministic ordering and map lookups.
func (i Item[S]) bodyKey() string {
	var sb strings.Builder
	sb.WriteString(i.Rule.String())
	sb.WriteString(" -> ")
	for idx, sym := range i.Prod {
		if idx == i.Dot {
			sb.WriteString(". ")
		}
		sb.WriteString(sym.String())
		sb.WriteByte(' ')
	}
	if i.Dot == len(i.Prod) {
		sb.WriteString(".")
	}
	return sb.String()
}

// Key is the canonical string key for the full item, including lookahead,
// used by LR(1) kernel/state deduplication.
func (i Item[S]) Key() string {
	var sb strings.Builder
	sb.WriteString(i.bodyKey())
	sb.WriteString(" , {")
	look := make([]string, 0, len(i.Look))
	for s := range i.Look {
		look = append(look, s.String())
	}
	sort.Strings(look)
	sb.WriteString(strings.Join(look, ","))
	sb.WriteString("}")
	return sb.String()
}

// String renders the item Dragon-book style: "A -> alpha . beta , {lookaheads}".
func (i Item[S]) String() string {
	s := i.bodyKey()
	if len(i.Look) > 0 {
		s += ", {"
		look := make([]string, 0, len(i.Look))
		for sym := range i.Look {
			look = append(look, sym.String())
		}
		sort.Strings(look)
		s += strings.Join(look, ",")
		s += "}"
	}
	return s
}
