package sexpedit

import "strconv"

// Package-level query helpers. All queries are pure reads over an
// immutable tree: they never mutate Nodes and their results do not
// observe later edits, a Node handle returned here still points at
// its original span even after a Commit replaces it, so callers must
// re-query after each commit.

// ChildrenOfKind returns, in source order, the list children of
// parent whose head atom equals head.
func ChildrenOfKind(parent *Node, head string) []*Node {
	if parent == nil || parent.Kind != KindList {
		return nil
	}
	var out []*Node
	for _, c := range parent.Children {
		if c.Kind == KindList && c.Head == head {
			out = append(out, c)
		}
	}
	return out
}

// FindSymbol returns the first "symbol" child of root whose
// "Reference" property has value equal to reference.
func FindSymbol(root *Node, reference string) (*Node, bool) {
	for _, sym := range ChildrenOfKind(root, "symbol") {
		if prop, ok := GetProperty(sym, "Reference"); ok {
			if v := propertyValueAtom(prop); v != nil && v.Decoded == reference {
				return sym, true
			}
		}
	}
	return nil, false
}

// GetProperty returns the "property" list child of symbolNode whose
// name (the first atom after the "property" head) equals propName.
func GetProperty(symbolNode *Node, propName string) (*Node, bool) {
	for _, p := range ChildrenOfKind(symbolNode, "property") {
		if name := p.Child(1); name != nil && name.Kind == KindAtom && name.Decoded == propName {
			return p, true
		}
	}
	return nil, false
}

// propertyValueAtom returns the value atom (second positional child,
// after the property head and its name) of a "(property name value
// ...)" list.
func propertyValueAtom(property *Node) *Node {
	return property.Child(2)
}

// FindLabels returns all children of root whose head is one of kinds
// ("label", "global_label", "hierarchical_label", "netclass_flag"),
// optionally filtered to those whose first positional quoted-string
// child equals text.
func FindLabels(root *Node, kinds []string, text *string) []*Node {
	kindSet := make(map[string]struct{}, len(kinds))
	for _, k := range kinds {
		kindSet[k] = struct{}{}
	}
	var out []*Node
	if root == nil || root.Kind != KindList {
		return out
	}
	for _, c := range root.Children {
		if c.Kind != KindList {
			continue
		}
		if _, ok := kindSet[c.Head]; !ok {
			continue
		}
		if text != nil {
			nameAtom := labelNameAtom(c)
			if nameAtom == nil || nameAtom.Decoded != *text {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

// labelNameAtom returns the first positional child of a label-like
// list if it is a quoted-string atom, else nil.
func labelNameAtom(label *Node) *Node {
	n := label.Child(1)
	if n == nil || n.Kind != KindAtom || !n.Quoted {
		return nil
	}
	return n
}

// FindTitleBlock returns the first "title_block" child of root.
func FindTitleBlock(root *Node) (*Node, bool) {
	blocks := ChildrenOfKind(root, "title_block")
	if len(blocks) == 0 {
		return nil, false
	}
	return blocks[0], true
}

// FieldOf returns the first child list of listNode with the given
// head, for single-valued title-block fields like "title", "rev",
// "date", "company".
func FieldOf(listNode *Node, head string) (*Node, bool) {
	children := ChildrenOfKind(listNode, head)
	if len(children) == 0 {
		return nil, false
	}
	return children[0], true
}

// CommentField returns the title block's "comment" child indexed by
// its first positional integer child (e.g. "(comment 1 \"text\")").
func CommentField(titleBlock *Node, index int) (*Node, bool) {
	for _, c := range ChildrenOfKind(titleBlock, "comment") {
		idxAtom := c.Child(1)
		if idxAtom != nil && idxAtom.Kind == KindAtom && idxAtom.Decoded == strconv.Itoa(index) {
			return c, true
		}
	}
	return nil, false
}
