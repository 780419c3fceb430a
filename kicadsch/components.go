package kicadsch

import (
	"fmt"

	"github.com/kicadtools/sexpedit/sexpedit"
)

// ComponentSummary is the per-symbol row returned by ListComponents.
type ComponentSummary struct {
	Reference string
	Value     string
	Footprint string
}

// ListComponents enumerates root's symbol children and reports their
// Reference, Value, and Footprint properties (a missing property
// reports as an empty string rather than being omitted).
func ListComponents(root *sexpedit.Node) []ComponentSummary {
	symbols := sexpedit.ChildrenOfKind(root, "symbol")
	out := make([]ComponentSummary, 0, len(symbols))
	for _, sym := range symbols {
		out = append(out, ComponentSummary{
			Reference: propertyValue(sym, "Reference"),
			Value:     propertyValue(sym, "Value"),
			Footprint: propertyValue(sym, "Footprint"),
		})
	}
	return out
}

func propertyValue(symbol *sexpedit.Node, name string) string {
	p, ok := sexpedit.GetProperty(symbol, name)
	if !ok {
		return ""
	}
	v := p.Child(2)
	if v == nil {
		return ""
	}
	return v.Decoded
}

// PropertyInfo is one property row in a ComponentDetail.
type PropertyInfo struct {
	Name    string
	Value   string
	Visible bool
}

// ComponentDetail is the full result of GetComponent.
type ComponentDetail struct {
	Reference  string
	Properties []PropertyInfo
}

// GetComponent locates the symbol whose Reference property equals
// reference and reports every property it carries, in source order.
func GetComponent(root *sexpedit.Node, reference string) (ComponentDetail, error) {
	sym, ok := sexpedit.FindSymbol(root, reference)
	if !ok {
		return ComponentDetail{}, &sexpedit.NotFoundError{What: "symbol", Key: reference}
	}
	detail := ComponentDetail{Reference: reference}
	for _, p := range sexpedit.ChildrenOfKind(sym, "property") {
		nameAtom := p.Child(1)
		valueAtom := p.Child(2)
		if nameAtom == nil || valueAtom == nil {
			continue
		}
		detail.Properties = append(detail.Properties, PropertyInfo{
			Name:    nameAtom.Decoded,
			Value:   valueAtom.Decoded,
			Visible: isVisible(p),
		})
	}
	return detail, nil
}

// PropertyEdit describes one requested change to a symbol property.
// A scalar "set value" edit is Value non-nil with Visible nil and
// Remove false; Visible and Value may both be set in the same edit.
type PropertyEdit struct {
	Value   *string
	Visible *bool
	Remove  bool
}

// UpdateComponent applies edits to the symbol identified by
// reference, returning the number of properties affected. Each named
// edit is independent: removing a property, changing its value,
// toggling its visibility, or, if it doesn't yet exist, synthesizing
// it with a minimal value-only skeleton (no effects list).
func UpdateComponent(doc *sexpedit.Document, root *sexpedit.Node, reference string, edits map[string]PropertyEdit, version Version) (int, error) {
	sym, ok := sexpedit.FindSymbol(root, reference)
	if !ok {
		return 0, &sexpedit.NotFoundError{What: "symbol", Key: reference}
	}

	affected := 0
	for name, edit := range edits {
		prop, exists := sexpedit.GetProperty(sym, name)
		if !exists {
			if edit.Remove {
				continue
			}
			value := ""
			if edit.Value != nil {
				value = *edit.Value
			}
			indent := sexpedit.IndentOfFirstChild(doc.Source(), sym)
			skeleton := indent + fmt.Sprintf("(property %s %s)", sexpedit.EncodeString(name), sexpedit.EncodeString(value))
			if err := doc.InsertBeforeClose(sym, skeleton); err != nil {
				return affected, err
			}
			affected++
			continue
		}

		if edit.Remove {
			if err := doc.DeleteNode(prop); err != nil {
				return affected, err
			}
			affected++
			continue
		}
		touched := false
		if edit.Value != nil {
			valueAtom := prop.Child(2)
			if err := doc.ReplaceAtomValue(valueAtom, *edit.Value); err != nil {
				return affected, err
			}
			touched = true
		}
		if edit.Visible != nil {
			if err := setVisibility(doc, prop, *edit.Visible, version); err != nil {
				return affected, err
			}
			touched = true
		}
		if touched {
			affected++
		}
	}
	return affected, nil
}
