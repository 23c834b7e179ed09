package exec

import (
	"fmt"
	"strings"

	"github.com/mondegreen/lrforge/grammar"
	"github.com/mondegreen/lrforge/types"
)

// ParseTree is the tagged variant from the external-interfaces section: a
// Leaf carries a terminal's token, a Node carries a rule name and its
// left-to-right children.
type ParseTree[S grammar.Symbol] struct {
	Terminal bool
	Symbol   S
	Token    types.Token // only populated when Terminal is true
	Children []*ParseTree[S]
}

// String renders the tree for line-by-line structural comparison in tests;
// two trees are considered semantically identical if their String output
// matches.
func (t *ParseTree[S]) String() string {
	var sb strings.Builder
	t.write(&sb, "")
	return sb.String()
}

func (t *ParseTree[S]) write(sb *strings.Builder, indent string) {
	if t.Terminal {
		fmt.Fprintf(sb, "%s(TERM %s)", indent, t.Symbol.String())
		return
	}
	fmt.Fprintf(sb, "%s( %s )", indent, t.Symbol.String())
	for _, c := range t.Children {
		sb.WriteByte('\n')
		c.write(sb, indent+"  ")
	}
}
