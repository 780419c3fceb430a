// Package sexprtest holds shared test fixtures and assertion helpers
// for sexpedit and kicadsch.
package sexprtest

import (
	"fmt"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/kicadtools/sexpedit/sexpedit"
)

// DumpTree renders n and its descendants as an indented text tree
// using repr for each node's scalar fields, for use in test failure
// output and the "dump" CLI subcommand.
func DumpTree(n *sexpedit.Node) string {
	var b strings.Builder
	dumpNode(&b, n, 0)
	return b.String()
}

func dumpNode(b *strings.Builder, n *sexpedit.Node, depth int) {
	if n == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	if n.IsAtom() {
		fmt.Fprintf(b, "%s%s\n", indent, repr.String(n.Raw))
		return
	}
	fmt.Fprintf(b, "%shead=%s span=[%d,%d)\n", indent, repr.String(n.Head), n.Span.Start, n.Span.End)
	for _, c := range n.Children {
		dumpNode(b, c, depth+1)
	}
}
