package sexpedit

// IndentOfFirstChild returns the exact whitespace run (including any
// newline) immediately preceding parent's first child in source, for
// use when synthesizing a new sibling that should match existing
// indentation style. If parent has no children, it returns a single
// tab as a reasonable default.
func IndentOfFirstChild(source string, parent *Node) string {
	// Children[0] is always the list's own head atom (e.g. "symbol"),
	// never a sibling to indent against, the first real child, if
	// any, is Children[1].
	if parent == nil || parent.Kind != KindList || len(parent.Children) < 2 {
		return "\t"
	}
	end := parent.Children[1].Span.Start
	start := end
	floor := parent.Children[0].Span.End
	for start > floor {
		c := source[start-1]
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' {
			start--
			continue
		}
		break
	}
	return source[start:end]
}
