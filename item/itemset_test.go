package item_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mondegreen/lrforge/grammar"
	"github.com/mondegreen/lrforge/item"
)

func Test_ItemSet_Add_mergesLookaheadsOfBodyEqualItems(t *testing.T) {
	s := item.NewItemSet[string]()
	prod := grammar.Production[string]{"c", "C"}

	changed := s.Add(item.Item[string]{Rule: "C", Prod: prod, Dot: 1, Look: map[string]bool{"$": true}})
	assert.True(t, changed)
	assert.Equal(t, 1, s.Len())

	changed = s.Add(item.Item[string]{Rule: "C", Prod: prod, Dot: 1, Look: map[string]bool{"c": true}})
	assert.True(t, changed, "adding a new lookahead to an existing body should report a change")
	assert.Equal(t, 1, s.Len(), "body-equal items merge rather than duplicate")

	changed = s.Add(item.Item[string]{Rule: "C", Prod: prod, Dot: 1, Look: map[string]bool{"c": true}})
	assert.False(t, changed, "re-adding an already-present lookahead is a no-op")
}

func Test_ItemSet_Items_canonicalOrderIndependentOfInsertion(t *testing.T) {
	prodCC := grammar.Production[string]{"C", "C"}
	prodD := grammar.Production[string]{"d"}

	a := item.NewItemSet[string](
		item.Item[string]{Rule: "S", Prod: prodCC, Dot: 0},
		item.Item[string]{Rule: "C", Prod: prodD, Dot: 0},
	)
	b := item.NewItemSet[string](
		item.Item[string]{Rule: "C", Prod: prodD, Dot: 0},
		item.Item[string]{Rule: "S", Prod: prodCC, Dot: 0},
	)

	assert.Equal(t, a.Key(), b.Key())
	assert.Equal(t, a.Items(), b.Items())
}

func Test_ItemSet_Core_mergesAcrossLookaheads(t *testing.T) {
	prod := grammar.Production[string]{"c", "C"}
	s := item.NewItemSet[string](
		item.Item[string]{Rule: "C", Prod: prod, Dot: 1, Look: map[string]bool{"$": true}},
		item.Item[string]{Rule: "C", Prod: prod, Dot: 1, Look: map[string]bool{"c": true}},
	)
	core := s.Core()
	assert.Equal(t, 1, core.Len())
}

func Test_ItemSet_Equal(t *testing.T) {
	prod := grammar.Production[string]{"d"}
	a := item.NewItemSet[string](item.Item[string]{Rule: "C", Prod: prod, Dot: 0, Look: map[string]bool{"$": true}})
	b := item.NewItemSet[string](item.Item[string]{Rule: "C", Prod: prod, Dot: 0, Look: map[string]bool{"$": true}})
	c := item.NewItemSet[string](item.Item[string]{Rule: "C", Prod: prod, Dot: 0, Look: map[string]bool{"c": true}})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func Test_ItemSet_Empty(t *testing.T) {
	s := item.NewItemSet[string]()
	assert.True(t, s.Empty())
	s.Add(item.Item[string]{Rule: "S", Prod: grammar.Production[string]{"C"}, Dot: 0})
	assert.False(t, s.Empty())
}
