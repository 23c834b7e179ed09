// Package table builds ACTION/GOTO tables from a grammar's automaton and
// renders them, detecting and recording shift/reduce and reduce/reduce
// conflicts as a first-class, non-fatal part of the table rather than a
// construction error.
package table

import (
	"fmt"

	"github.com/mondegreen/lrforge/grammar"
)

// Kind tags the variant of an Action.
type Kind int

const (
	// KindShift pushes a terminal and transitions to State.
	KindShift Kind = iota
	// KindGoto transitions to State after a reduction exposes Rule.
	KindGoto
	// KindReduce pops len(Prod) stack elements and reduces to Rule.
	KindReduce
	// KindAccept accepts the augmented start rule under EOF.
	KindAccept
	// KindConflict records two incompatible actions as a binary tree.
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindShift:
		return "shift"
	case KindGoto:
		return "goto"
	case KindReduce:
		return "reduce"
	case KindAccept:
		return "accept"
	case KindConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// Action is a tagged variant over Shift/Goto/Reduce/Accept/Conflict, per the
// data model. Conflict is represented as a binary tree of the two
// incompatible actions rather than a flat list, preserving construction
// history; Flatten walks it out to primitive actions for display.
type Action[S grammar.Symbol] struct {
	Kind  Kind
	State int // Shift/Goto target
	Rule  S   // Reduce: the LHS being reduced to
	Prod  grammar.Production[S]
	A, B  *Action[S] // Conflict: the two incompatible actions
}

// Shift builds a Shift(state) action.
func Shift[S grammar.Symbol](state int) Action[S] {
	return Action[S]{Kind: KindShift, State: state}
}

// Goto builds a Goto(state) action.
func Goto[S grammar.Symbol](state int) Action[S] {
	return Action[S]{Kind: KindGoto, State: state}
}

// Reduce builds a Reduce(rule, production) action.
func Reduce[S grammar.Symbol](rule S, prod grammar.Production[S]) Action[S] {
	return Action[S]{Kind: KindReduce, Rule: rule, Prod: prod}
}

// Accept builds the Accept action.
func Accept[S grammar.Symbol]() Action[S] {
	return Action[S]{Kind: KindAccept}
}

// Conflict builds a Conflict(a, b) action wrapping two incompatible actions.
func Conflict[S grammar.Symbol](a, b Action[S]) Action[S] {
	return Action[S]{Kind: KindConflict, A: &a, B: &b}
}

// Equal reports whether two actions are the same primitive action. A
// Conflict action is never equal to any action, itself included, so
// installing into a cell that already holds a Conflict always nests it
// one level deeper.
func (a Action[S]) Equal(o Action[S]) bool {
	if a.Kind != o.Kind {
		return false
	}
	switch a.Kind {
	case KindShift, KindGoto:
		return a.State == o.State
	case KindReduce:
		return a.Rule == o.Rule && a.Prod.Equal(o.Prod)
	case KindAccept:
		return true
	default:
		return false
	}
}

// Flatten walks a (possibly nested) Conflict binary tree out into its
// primitive leaf actions, left to right.
func (a Action[S]) Flatten() []Action[S] {
	if a.Kind != KindConflict {
		return []Action[S]{a}
	}
	out := a.A.Flatten()
	out = append(out, a.B.Flatten()...)
	return out
}

// String renders the action for table display, e.g. "s3", "g5",
// "r A -> a b", "acc", or a flattened conflict listing.
func (a Action[S]) String() string {
	switch a.Kind {
	case KindShift:
		return fmt.Sprintf("s%d", a.State)
	case KindGoto:
		return fmt.Sprintf("g%d", a.State)
	case KindReduce:
		return fmt.Sprintf("r %s -> %s", a.Rule.String(), a.Prod.String())
	case KindAccept:
		return "acc"
	case KindConflict:
		parts := a.Flatten()
		s := "conflict("
		for i, p := range parts {
			if i > 0 {
				s += " / "
			}
			s += p.String()
		}
		return s + ")"
	default:
		return "?"
	}
}
