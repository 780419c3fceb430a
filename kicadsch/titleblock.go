package kicadsch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kicadtools/sexpedit/sexpedit"
)

// commentFieldPrefix is the field-name convention used by callers to
// address title_block's indexed "comment" entries: "comment1",
// "comment2", and so on.
const commentFieldPrefix = "comment"

// UpdateSchematicInfo updates or inserts title_block fields. Keys in
// fields are either a single-valued field name ("title", "rev",
// "date", "company") or "comment<N>" for an indexed comment. Returns
// the number of fields affected.
func UpdateSchematicInfo(doc *sexpedit.Document, root *sexpedit.Node, fields map[string]string) (int, error) {
	tb, ok := sexpedit.FindTitleBlock(root)
	if !ok {
		return 0, &sexpedit.NotFoundError{What: "title_block", Key: "title_block"}
	}

	count := 0
	for name, value := range fields {
		if strings.HasPrefix(name, commentFieldPrefix) {
			idx, err := strconv.Atoi(strings.TrimPrefix(name, commentFieldPrefix))
			if err != nil {
				return count, &sexpedit.InvalidEditError{Reason: "malformed comment field name " + name}
			}
			if err := updateComment(doc, tb, idx, value); err != nil {
				return count, err
			}
			count++
			continue
		}
		if err := updateSingleField(doc, tb, name, value); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func updateSingleField(doc *sexpedit.Document, titleBlock *sexpedit.Node, name, value string) error {
	field, ok := sexpedit.FieldOf(titleBlock, name)
	if ok {
		valueAtom := field.Child(1)
		return doc.ReplaceAtomValue(valueAtom, value)
	}
	indent := sexpedit.IndentOfFirstChild(doc.Source(), titleBlock)
	skeleton := indent + fmt.Sprintf("(%s %s)", name, sexpedit.EncodeString(value))
	return doc.InsertBeforeClose(titleBlock, skeleton)
}

func updateComment(doc *sexpedit.Document, titleBlock *sexpedit.Node, index int, value string) error {
	field, ok := sexpedit.CommentField(titleBlock, index)
	if ok {
		valueAtom := field.Child(2)
		return doc.ReplaceAtomValue(valueAtom, value)
	}
	indent := sexpedit.IndentOfFirstChild(doc.Source(), titleBlock)
	skeleton := indent + fmt.Sprintf("(comment %d %s)", index, sexpedit.EncodeString(value))
	return doc.InsertBeforeClose(titleBlock, skeleton)
}
