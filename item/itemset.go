package item

import (
	"sort"
	"strings"

	"github.com/mondegreen/lrforge/grammar"
)

// ItemSet is a deterministically ordered set of items. Item order is by
// body key (rule, production, dot) so two ItemSets built from the same
// underlying items always canonicalize to the same Key regardless of
// insertion order.
type ItemSet[S grammar.Symbol] struct {
	byBody map[string]*Item[S] // bodyKey -> pointer to the stored item (lookahead mutated in place)
	order  []string            // bodyKeys in first-seen order; Items/Key sort a copy
}

// NewItemSet builds an ItemSet from zero or more seed items.
func NewItemSet[S grammar.Symbol](items ...Item[S]) *ItemSet[S] {
	s := &ItemSet[S]{byBody: map[string]*Item[S]{}}
	for _, it := range items {
		s.Add(it)
	}
	return s
}

// Add inserts an item, merging lookaheads into any existing body-equal item.
// Returns true if the set changed (a new item was added, or an existing
// item's lookahead grew).
func (s *ItemSet[S]) Add(it Item[S]) bool {
	key := it.bodyKey()
	existing, ok := s.byBody[key]
	if !ok {
		cp := it
		cp.Look = copyLook(it.Look)
		s.byBody[key] = &cp
		s.order = append(s.order, key)
		return true
	}
	changed := false
	for sym := range it.Look {
		if !existing.Look[sym] {
			if existing.Look == nil {
				existing.Look = map[S]bool{}
			}
			existing.Look[sym] = true
			changed = true
		}
	}
	return changed
}

func copyLook[S grammar.Symbol](look map[S]bool) map[S]bool {
	out := make(map[S]bool, len(look))
	for s := range look {
		out[s] = true
	}
	return out
}

// Items returns the set's items in canonical (body-key-sorted) order.
func (s *ItemSet[S]) Items() []Item[S] {
	keys := make([]string, len(s.order))
	copy(keys, s.order)
	sort.Strings(keys)
	out := make([]Item[S], 0, len(keys))
	for _, k := range keys {
		out = append(out, *s.byBody[k])
	}
	return out
}

// Len returns the number of items in the set.
func (s *ItemSet[S]) Len() int {
	return len(s.byBody)
}

// Empty reports whether the set has no items.
func (s *ItemSet[S]) Empty() bool {
	return len(s.byBody) == 0
}

// Core returns a new ItemSet with every item's lookahead stripped and
// body-equal duplicates merged, used as the LALR core-equality key.
func (s *ItemSet[S]) Core() *ItemSet[S] {
	core := NewItemSet[S]()
	for _, it := range s.Items() {
		core.Add(it.Core())
	}
	return core
}

// Key returns the canonical string key for the whole set (its items, each
// including lookahead, in canonical order), suitable as a map key for
// state/kernel deduplication.
func (s *ItemSet[S]) Key() string {
	items := s.Items()
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = it.Key()
	}
	return strings.Join(parts, " | ")
}

// Equal reports whether two item sets contain exactly the same items
// (including lookaheads).
func (s *ItemSet[S]) Equal(o *ItemSet[S]) bool {
	return s.Key() == o.Key()
}

// String renders the set as a brace-delimited list of items, Dragon-book
// style.
func (s *ItemSet[S]) String() string {
	items := s.Items()
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = it.String()
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}
