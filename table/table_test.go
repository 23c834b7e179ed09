package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mondegreen/lrforge/fixtures"
	"github.com/mondegreen/lrforge/grammar"
	"github.com/mondegreen/lrforge/table"
)

func Test_BuildCLR1_dragonBook_noConflicts(t *testing.T) {
	tb, err := table.BuildCLR1(fixtures.DragonBook())
	assert.NoError(t, err)
	assert.Empty(t, tb.Conflicts())
}

func Test_BuildCLR1_acceptsAllBundledGrammars(t *testing.T) {
	builders := map[string]func() *grammar.Grammar[string]{
		"dragonbook":  fixtures.DragonBook,
		"serokell":    fixtures.Serokell,
		"uni-oth-lr1": fixtures.UCalgaryUniOthLR1,
		"wikipedia":   fixtures.Wikipedia,
		"puncs":       fixtures.Puncs,
		"scanner":     fixtures.Scanner,
	}
	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			tb, err := table.BuildCLR1(build())
			assert.NoError(t, err)
			assert.NotNil(t, tb)
		})
	}
}

func Test_BuildCLR1_onNonLALRGrammarHasNoConflicts(t *testing.T) {
	tb, err := table.BuildCLR1(fixtures.UCalgaryUniOthLR1())
	assert.NoError(t, err)
	assert.Empty(t, tb.Conflicts(), "canonical LR(1) resolves this grammar with no conflicts")
}

func Test_BuildLALR1_onNonLALRGrammarHasConflicts(t *testing.T) {
	tb, err := table.BuildLALR1(fixtures.UCalgaryUniOthLR1())
	assert.NoError(t, err)
	assert.NotEmpty(t, tb.Conflicts(), "merging LR(1) states by core introduces a reduce/reduce conflict here")
}

func Test_BuildSLR1_onNonSLRGrammarHasConflicts(t *testing.T) {
	tb, err := table.BuildSLR1(fixtures.UCalgaryUniOthLR1())
	assert.NoError(t, err)
	assert.NotEmpty(t, tb.Conflicts(), "FOLLOW-based reduction lookahead is too coarse for this grammar")
}

func Test_BuildSLR1_dragonBook_noConflicts(t *testing.T) {
	tb, err := table.BuildSLR1(fixtures.DragonBook())
	assert.NoError(t, err)
	assert.Empty(t, tb.Conflicts())
}

func Test_BuildSLR1AndLALR1_noConflictsOnSLRLegalFixtures(t *testing.T) {
	// Wikipedia and Serokell are both SLR(1)-legal (left-recursive expression
	// grammars whose FOLLOW sets, correctly computed, disambiguate every
	// reduction); Puncs and Scanner are unambiguous outright. None of these
	// should show a conflict under either the coarser SLR(1) or the merged
	// LALR(1) construction.
	builders := map[string]func() *grammar.Grammar[string]{
		"wikipedia": fixtures.Wikipedia,
		"serokell":  fixtures.Serokell,
		"puncs":     fixtures.Puncs,
		"scanner":   fixtures.Scanner,
	}
	for name, build := range builders {
		t.Run(name+"/slr1", func(t *testing.T) {
			tb, err := table.BuildSLR1(build())
			assert.NoError(t, err)
			assert.Empty(t, tb.Conflicts())
		})
		t.Run(name+"/lalr1", func(t *testing.T) {
			tb, err := table.BuildLALR1(build())
			assert.NoError(t, err)
			assert.Empty(t, tb.Conflicts())
		})
	}
}

func Test_Conflicts_conflictFreeTableHasNoConflicts(t *testing.T) {
	tb, err := table.BuildCLR1(fixtures.Wikipedia())
	assert.NoError(t, err)
	assert.Empty(t, tb.Conflicts())
}

func Test_Table_String_rendersNonEmptyTable(t *testing.T) {
	tb, err := table.BuildCLR1(fixtures.DragonBook())
	assert.NoError(t, err)
	assert.NotEmpty(t, tb.String())
}

func Test_Table_Action_unknownStateReturnsFalse(t *testing.T) {
	tb, err := table.BuildCLR1(fixtures.DragonBook())
	assert.NoError(t, err)
	_, ok := tb.Action(9999, "c")
	assert.False(t, ok)
}
