package kicadsch

import "github.com/kicadtools/sexpedit/sexpedit"

// netLabelKinds are the list heads whose first positional quoted
// string names a net.
var netLabelKinds = []string{"label", "global_label", "hierarchical_label"}

// RenameNet replaces the net name old with new wherever it appears as
// a label, global_label, or hierarchical_label, returning the number
// of occurrences renamed.
func RenameNet(doc *sexpedit.Document, root *sexpedit.Node, old, new string) (int, error) {
	matches := sexpedit.FindLabels(root, netLabelKinds, &old)
	for _, label := range matches {
		nameAtom := label.Child(1)
		if err := doc.ReplaceAtomValue(nameAtom, new); err != nil {
			return 0, err
		}
	}
	return len(matches), nil
}
