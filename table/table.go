package table

import (
	"strconv"

	"github.com/dekarrin/rosed"
	"github.com/mondegreen/lrforge/automaton"
	"github.com/mondegreen/lrforge/grammar"
)

// ParserKind names which of the three LR table flavors was built.
type ParserKind string

const (
	KindSLR1  ParserKind = "SLR(1)"
	KindLALR1 ParserKind = "LALR(1)"
	KindCLR1  ParserKind = "CLR(1)"
)

// Table is the frozen result of construction: the automaton, the grammar it
// was built from, and a per-state symbol-to-Action map. Once built it is
// treated as immutable by the executor.
type Table[S grammar.Symbol] struct {
	Flavor  ParserKind
	Grammar *grammar.Grammar[S]
	DFA     *automaton.DFA[S]
	Actions []map[S]Action[S]
}

// Initial returns the start state index, always 0.
func (t *Table[S]) Initial() int { return 0 }

// Action returns the action for (state, sym), or false if none is defined.
func (t *Table[S]) Action(state int, sym S) (Action[S], bool) {
	if state < 0 || state >= len(t.Actions) {
		var zero Action[S]
		return zero, false
	}
	act, ok := t.Actions[state][sym]
	return act, ok
}

// ConflictEntry names one surfaced conflict: the state and symbol it
// occurred at, with the two (or more, once flattened) incompatible
// primitive actions.
type ConflictEntry[S grammar.Symbol] struct {
	State  int
	Symbol S
	Action Action[S]
}

// Conflicts returns every Conflict action recorded in the table, in state
// then canonical-symbol order.
func (t *Table[S]) Conflicts() []ConflictEntry[S] {
	var out []ConflictEntry[S]
	for state, row := range t.Actions {
		for _, sym := range t.Grammar.Symbols() {
			act, ok := row[sym]
			if !ok || act.Kind != KindConflict {
				continue
			}
			out = append(out, ConflictEntry[S]{State: state, Symbol: sym, Action: act})
		}
	}
	return out
}

// String renders the ACTION/GOTO table as an aligned text table, grouping
// terminal (ACTION) columns left of nonterminal (GOTO) columns.
func (t *Table[S]) String() string {
	terms := t.Grammar.Terminals()
	nonterms := t.Grammar.NonTerminals()

	headers := []string{"state", "|"}
	for _, term := range terms {
		headers = append(headers, "A:"+term.String())
	}
	headers = append(headers, "|")
	for _, nt := range nonterms {
		headers = append(headers, "G:"+nt.String())
	}

	data := [][]string{headers}
	for state := range t.DFA.States {
		row := []string{strconv.Itoa(state), "|"}
		for _, term := range terms {
			cell := ""
			if act, ok := t.Action(state, term); ok {
				cell = act.String()
			}
			row = append(row, cell)
		}
		row = append(row, "|")
		for _, nt := range nonterms {
			cell := ""
			if act, ok := t.Action(state, nt); ok && act.Kind == KindGoto {
				cell = strconv.Itoa(act.State)
			}
			row = append(row, cell)
		}
		data = append(data, row)
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}
