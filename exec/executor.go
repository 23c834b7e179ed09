// Package exec implements the deterministic stack-driven executor: it
// drives a built table against a token stream and yields a parse tree or a
// ParseError. It performs no I/O beyond reading the supplied stream and
// never backtracks.
package exec

import (
	"github.com/google/uuid"

	"github.com/mondegreen/lrforge/grammar"
	"github.com/mondegreen/lrforge/table"
	"github.com/mondegreen/lrforge/types"
)

// TokenStream is the finite iterable of terminal symbols the executor
// consumes, terminated implicitly by the grammar's EOF symbol (the
// executor treats HasNext() == false the same as a peeked EOF). Supplying
// tokenization is an external collaborator's job; the executor only ever
// calls these three methods.
type TokenStream[S grammar.Symbol] interface {
	// Next returns the next terminal symbol and its token metadata, and
	// advances the stream.
	Next() (S, types.Token)
	// Peek returns the next terminal symbol without advancing the stream.
	Peek() (S, types.Token)
	// HasNext reports whether the stream has any remaining symbols.
	HasNext() bool
}

// stackEl is one alternating element of the executor's stack: either a
// parse-tree node (an Item, in the data model's terms) or a state index.
type stackEl[S grammar.Symbol] struct {
	isState bool
	state   int
	node    *ParseTree[S]
}

// Observer is invoked once per executor step for instrumentation, given the
// run's trace ID, the zero-based step number, the peeked symbol, and the
// action about to be taken. The stack and the remaining input are not
// passed to it.
type Observer[S grammar.Symbol] func(traceID uuid.UUID, step int, peek S, action table.Action[S])

// Executor drives a built Table against a TokenStream.
type Executor[S grammar.Symbol] struct {
	Table *table.Table[S]
}

// New wraps a built table for execution.
func New[S grammar.Symbol](t *table.Table[S]) *Executor[S] {
	return &Executor[S]{Table: t}
}

// Parse runs the stack machine to completion, returning the sole parse
// tree remaining above the initial state marker on Accept, or a
// ParseError.
func (e *Executor[S]) Parse(stream TokenStream[S]) (*ParseTree[S], error) {
	return e.run(stream, nil)
}

// Validate runs Parse and reports only whether it succeeded.
func (e *Executor[S]) Validate(stream TokenStream[S]) bool {
	_, err := e.Parse(stream)
	return err == nil
}

// Trace behaves like Parse but invokes observer at every step, tagging the
// run with a fresh trace ID for correlating steps in instrumentation
// output. The trace ID plays no role in parsing itself and never affects
// determinism of the table or the result.
func (e *Executor[S]) Trace(stream TokenStream[S], observer Observer[S]) (*ParseTree[S], error) {
	traceID := uuid.New()
	step := 0
	wrapped := func(peek S, action table.Action[S]) {
		observer(traceID, step, peek, action)
		step++
	}
	return e.run(stream, wrapped)
}

func (e *Executor[S]) run(stream TokenStream[S], observe func(peek S, act table.Action[S])) (*ParseTree[S], error) {
	eof := e.Table.Grammar.EOF()
	stack := []stackEl[S]{{isState: true, state: e.Table.Initial()}}
	top := func() int { return stack[len(stack)-1].state }

	for {
		var peek S = eof
		if stream.HasNext() {
			peek, _ = stream.Peek()
		}

		act, ok := e.Table.Action(top(), peek)
		if !ok {
			return nil, &ParseError{Kind: UnexpectedSymbol, State: top(), Symbol: peek.String()}
		}
		if observe != nil {
			observe(peek, act)
		}

		switch act.Kind {
		case table.KindShift:
			sym, tok := stream.Next()
			node := &ParseTree[S]{Terminal: true, Symbol: sym, Token: tok}
			stack = append(stack, stackEl[S]{node: node}, stackEl[S]{isState: true, state: act.State})

		case table.KindReduce:
			tree, err := e.reduce(&stack, act)
			if err != nil {
				return nil, err
			}
			exposed := top()
			stack = append(stack, stackEl[S]{node: tree})
			gotoAct, ok := e.Table.Action(exposed, act.Rule)
			if !ok || gotoAct.Kind != table.KindGoto {
				return nil, &ParseError{Kind: MissingPreviousState}
			}
			stack = append(stack, stackEl[S]{isState: true, state: gotoAct.State})

		case table.KindAccept:
			if stream.HasNext() {
				return nil, &ParseError{Kind: TrailingInput}
			}
			return stack[1].node, nil

		case table.KindConflict:
			flat := act.Flatten()
			actions := make([]string, len(flat))
			for i, a := range flat {
				actions[i] = a.String()
			}
			return nil, &ParseError{Kind: AmbiguousTable, State: top(), Symbol: peek.String(), Actions: actions}
		}
	}
}

// reduce pops len(act.Prod) item/state pairs off the stack (in reverse
// pop order, per the data model), builds the Compound node, and returns
// it; the caller pushes it and looks up the consequent Goto.
func (e *Executor[S]) reduce(stackPtr *[]stackEl[S], act table.Action[S]) (*ParseTree[S], error) {
	stack := *stackPtr
	n := len(act.Prod)
	children := make([]*ParseTree[S], n)
	for i := n - 1; i >= 0; i-- {
		// pop the trailing state marker, then the item beneath it
		if len(stack) < 2 {
			return nil, &ParseError{Kind: MissingPreviousState}
		}
		stack = stack[:len(stack)-1] // state
		el := stack[len(stack)-1]
		stack = stack[:len(stack)-1] // item
		children[i] = el.node
	}
	if len(stack) == 0 {
		return nil, &ParseError{Kind: MissingPreviousState}
	}
	*stackPtr = stack
	return &ParseTree[S]{Terminal: false, Symbol: act.Rule, Children: children}, nil
}
