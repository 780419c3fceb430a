package sexpedit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaceAtom_Locality(t *testing.T) {
	src := `(symbol (property "Value" "10k" (at 0 0 0)))`
	doc, err := LoadBytes("x.kicad_sch", []byte(src))
	require.NoError(t, err)

	sym := doc.Root()
	prop, ok := GetProperty(sym, "Value")
	require.True(t, ok)
	valueAtom := prop.Child(2)
	require.Equal(t, `"10k"`, valueAtom.Raw)

	require.NoError(t, doc.ReplaceAtomValue(valueAtom, "4k7"))
	out, err := doc.CommitBytes()
	require.NoError(t, err)

	want := `(symbol (property "Value" "4k7" (at 0 0 0)))`
	assert.Equal(t, want, string(out))

	// Locality: bytes before the edited span and after it (adjusted
	// for the length delta) are untouched.
	a := valueAtom.Span.Start
	b := valueAtom.Span.End
	delta := len(`"4k7"`) - len(`"10k"`)
	assert.Equal(t, src[:a], string(out[:a]))
	assert.Equal(t, src[b:], string(out[b+delta:]))
}

func TestMirrorAndDnpPreserved(t *testing.T) {
	src := `(symbol (property "Value" "10k") (mirror x) (dnp yes))`
	doc, err := LoadBytes("x.kicad_sch", []byte(src))
	require.NoError(t, err)
	prop, _ := GetProperty(doc.Root(), "Value")
	require.NoError(t, doc.ReplaceAtomValue(prop.Child(2), "4k7"))
	out, err := doc.CommitBytes()
	require.NoError(t, err)
	assert.Contains(t, string(out), "(mirror x)")
	assert.Contains(t, string(out), "(dnp yes)")
}

func TestEnqueue_OverlapRejected(t *testing.T) {
	src := `(symbol (property "Value" "10k"))`
	doc, err := LoadBytes("x.kicad_sch", []byte(src))
	require.NoError(t, err)
	prop, _ := GetProperty(doc.Root(), "Value")
	valueAtom := prop.Child(2)

	require.NoError(t, doc.ReplaceAtomValue(valueAtom, "4k7"))
	err = doc.ReplaceList(prop, `(property "Value" "1k")`)
	require.Error(t, err)
	var oe *OverlappingEditError
	require.ErrorAs(t, err, &oe)

	// first edit still commits cleanly
	out, err := doc.CommitBytes()
	require.NoError(t, err)
	assert.Equal(t, `(symbol (property "Value" "4k7"))`, string(out))
}

func TestCommit_BackToFrontOrderingIndependentOfEnqueueOrder(t *testing.T) {
	src := "0123456789" + "A123456789" + "B123456789" + "C123456789" + "D123456789" + "E"
	// offsets: pick three small atoms to replace, far apart.
	mk := func(enqueueFirst []int) string {
		doc, err := LoadBytes("x", []byte(src))
		require.NoError(t, err)
		replacements := map[int]string{10: "[first]", 21: "[second]", 32: "[third]"}
		for _, off := range enqueueFirst {
			q := doc.queue
			require.NoError(t, q.enqueue(Edit{Span: Span{off, off + 1}, Replacement: []byte(replacements[off]), Kind: EditReplace}))
		}
		out := q0Apply(t, doc)
		return out
	}
	a := mk([]int{10, 21, 32})
	b := mk([]int{32, 10, 21})
	assert.Equal(t, a, b)
}

func q0Apply(t *testing.T, doc *Document) string {
	t.Helper()
	out, err := doc.CommitBytes()
	require.NoError(t, err)
	return string(out)
}

func TestDeleteNode_AbsorbsLeadingWhitespace(t *testing.T) {
	src := "(a\n\t(b 1)\n\t(c 2))"
	doc, err := LoadBytes("x", []byte(src))
	require.NoError(t, err)
	b := ChildrenOfKind(doc.Root(), "b")[0]
	require.NoError(t, doc.DeleteNode(b))
	out, err := doc.CommitBytes()
	require.NoError(t, err)
	// The leading indentation tab is absorbed (no stray
	// whitespace-only line survives), but the newlines bracketing the
	// deleted line are untouched, deletion only extends backward.
	assert.Equal(t, "(a\n\n\t(c 2))", string(out))
}

func TestInsertBeforeClose(t *testing.T) {
	src := "(symbol\n\t(property \"Reference\" \"R1\"))"
	doc, err := LoadBytes("x", []byte(src))
	require.NoError(t, err)
	sym := doc.Root()
	indent := IndentOfFirstChild(doc.Source(), sym)
	require.NoError(t, doc.InsertBeforeClose(sym, indent+`(property "Footprint" "")`))
	out, err := doc.CommitBytes()
	require.NoError(t, err)
	assert.Equal(t, "(symbol\n\t(property \"Reference\" \"R1\")\n\t(property \"Footprint\" \"\"))", string(out))
}

func TestCommittedDocumentRejectsFurtherEdits(t *testing.T) {
	doc, err := LoadBytes("x", []byte("(a 1)"))
	require.NoError(t, err)
	_, err = doc.CommitBytes()
	require.NoError(t, err)
	err = doc.ReplaceAtom(doc.Root().Child(0), "a")
	assert.ErrorIs(t, err, ErrDocumentCommitted)
}
