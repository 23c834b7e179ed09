package item_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mondegreen/lrforge/grammar"
	"github.com/mondegreen/lrforge/item"
)

func Test_Item_SymbolAfterDot(t *testing.T) {
	it := item.Item[string]{Rule: "S", Prod: grammar.Production[string]{"C", "C"}, Dot: 1}
	sym, ok := it.SymbolAfterDot()
	assert.True(t, ok)
	assert.Equal(t, "C", sym)
}

func Test_Item_Finished(t *testing.T) {
	it := item.Item[string]{Rule: "S", Prod: grammar.Production[string]{"C", "C"}, Dot: 2}
	assert.True(t, it.Finished())
	_, ok := it.SymbolAfterDot()
	assert.False(t, ok)
}

func Test_Item_Advance(t *testing.T) {
	look := map[string]bool{"$": true}
	it := item.Item[string]{Rule: "S", Prod: grammar.Production[string]{"C", "C"}, Dot: 0, Look: look}
	next := it.Advance()
	assert.Equal(t, 1, next.Dot)
	assert.Equal(t, look, next.Look)
	assert.Equal(t, 0, it.Dot) // original is untouched
}

func Test_Item_BodyEqual_ignoresLookahead(t *testing.T) {
	a := item.Item[string]{Rule: "C", Prod: grammar.Production[string]{"c", "C"}, Dot: 1, Look: map[string]bool{"$": true}}
	b := item.Item[string]{Rule: "C", Prod: grammar.Production[string]{"c", "C"}, Dot: 1, Look: map[string]bool{"c": true}}
	assert.True(t, a.BodyEqual(b))
}

func Test_Item_Core_stripsLookahead(t *testing.T) {
	a := item.Item[string]{Rule: "C", Prod: grammar.Production[string]{"c", "C"}, Dot: 1, Look: map[string]bool{"$": true}}
	assert.Nil(t, a.Core().Look)
}

func Test_Item_String(t *testing.T) {
	it := item.Item[string]{
		Rule: "C",
		Prod: grammar.Production[string]{"c", "C"},
		Dot:  1,
		Look: map[string]bool{"$": true},
	}
	assert.Equal(t, "C -> c . C , {$}", it.String())
}
