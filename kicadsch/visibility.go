package kicadsch

import "github.com/kicadtools/sexpedit/sexpedit"

// findEffects returns property's "effects" child, if any.
func findEffects(property *sexpedit.Node) *sexpedit.Node {
	cs := sexpedit.ChildrenOfKind(property, "effects")
	if len(cs) == 0 {
		return nil
	}
	return cs[0]
}

// findHide scans effects' direct children for either hide encoding.
// At most one of the two returns is non-nil in well-formed input.
func findHide(effects *sexpedit.Node) (bareAtom, hideList *sexpedit.Node) {
	for _, c := range effects.Children {
		if c.Kind == sexpedit.KindAtom && c.Decoded == "hide" {
			bareAtom = c
		}
		if c.Kind == sexpedit.KindList && c.Head == "hide" {
			hideList = c
		}
	}
	return
}

// isVisible reports a property's visibility per the hide encoding
// present in its effects list (absence of both encodings, or absence
// of effects entirely, means visible).
func isVisible(property *sexpedit.Node) bool {
	effects := findEffects(property)
	if effects == nil {
		return true
	}
	bare, hideList := findHide(effects)
	if bare != nil {
		return false
	}
	if hideList != nil {
		v := hideList.Child(1)
		return v != nil && v.Decoded == "no"
	}
	return true
}

func boolToken(hidden bool) string {
	if hidden {
		return "yes"
	}
	return "no"
}

// hideInlineToken is the bytes to splice into an existing effects
// list's interior (just before its closing paren) to mark it hidden,
// in the encoding the source file already uses.
func hideInlineToken(version Version) string {
	if version == Version6 {
		return "hide"
	}
	return "(hide yes)"
}

// synthesizeHiddenEffects is the full "(effects ...)" form to splice
// in when a property has no effects list at all and must become
// hidden.
func synthesizeHiddenEffects(version Version) string {
	if version == Version6 {
		return "(effects hide)"
	}
	return "(effects (hide yes))"
}

// setVisibility surgically edits property's hide token, inserting or
// removing it as needed, but never touches sibling effects children
// (font, justify, and so on).
func setVisibility(doc *sexpedit.Document, property *sexpedit.Node, visible bool, version Version) error {
	effects := findEffects(property)
	if effects == nil {
		if visible {
			return nil
		}
		return doc.InsertBeforeClose(property, " "+synthesizeHiddenEffects(version))
	}

	bare, hideList := findHide(effects)
	switch {
	case bare != nil:
		if visible {
			return doc.DeleteNode(bare)
		}
		return nil
	case hideList != nil:
		valueAtom := hideList.Child(1)
		wantHidden := !visible
		if valueAtom == nil {
			return doc.ReplaceList(hideList, "(hide "+boolToken(wantHidden)+")")
		}
		currentHidden := valueAtom.Decoded != "no"
		if currentHidden == wantHidden {
			return nil
		}
		return doc.ReplaceAtom(valueAtom, boolToken(wantHidden))
	default:
		if visible {
			return nil
		}
		return doc.InsertBeforeClose(effects, " "+hideInlineToken(version))
	}
}
