package kicadsch

import (
	"testing"

	"github.com/kicadtools/sexpedit/sexpedit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }
func boolptr(b bool) *bool    { return &b }

func TestListComponents(t *testing.T) {
	src := `(kicad_sch (version 20231120)
	(symbol (property "Reference" "R1") (property "Value" "10k") (property "Footprint" "R_0603"))
	(symbol (property "Reference" "R2") (property "Value" "1k")))`
	root, err := sexpedit.Parse(src)
	require.NoError(t, err)

	got := ListComponents(root)
	require.Len(t, got, 2)
	assert.Equal(t, ComponentSummary{Reference: "R1", Value: "10k", Footprint: "R_0603"}, got[0])
	assert.Equal(t, ComponentSummary{Reference: "R2", Value: "1k", Footprint: ""}, got[1])
}

func TestGetComponent_NotFound(t *testing.T) {
	root, err := sexpedit.Parse(`(kicad_sch (version 20231120))`)
	require.NoError(t, err)
	_, err = GetComponent(root, "R99")
	var nf *sexpedit.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestGetComponent_VisibilityVersion9(t *testing.T) {
	src := `(kicad_sch (version 20231120) (symbol
		(property "Reference" "R1" (effects (font (size 1.27 1.27)) (hide yes)))
		(property "Value" "10k" (effects (font (size 1.27 1.27)) (hide no)))
		(property "Footprint" "R_0603" (effects (font (size 1.27 1.27))))))`
	root, err := sexpedit.Parse(src)
	require.NoError(t, err)

	detail, err := GetComponent(root, "R1")
	require.NoError(t, err)
	require.Len(t, detail.Properties, 3)
	assert.False(t, detail.Properties[0].Visible, "Reference has (hide yes)")
	assert.True(t, detail.Properties[1].Visible, "Value has (hide no)")
	assert.True(t, detail.Properties[2].Visible, "Footprint has no hide token")
}

func TestGetComponent_VisibilityVersion6(t *testing.T) {
	src := `(kicad_sch (version 20211014) (symbol
		(property "Reference" "R1" (effects (font (size 1.27 1.27)) hide))
		(property "Value" "10k" (effects (font (size 1.27 1.27))))))`
	root, err := sexpedit.Parse(src)
	require.NoError(t, err)

	detail, err := GetComponent(root, "R1")
	require.NoError(t, err)
	assert.False(t, detail.Properties[0].Visible)
	assert.True(t, detail.Properties[1].Visible)
}

// UpdateComponent locates the target via FindSymbol, which searches
// root's own children for a "symbol"-headed list, so every fixture
// below wraps its symbol in an enclosing list, the way a real
// kicad_sch always does.

func TestUpdateComponent_ValueOnly_Locality(t *testing.T) {
	src := `(kicad_sch (symbol (property "Reference" "R1") (property "Value" "10k" (at 0 0 0))))`
	doc, err := sexpedit.LoadBytes("x.kicad_sch", []byte(src))
	require.NoError(t, err)
	root := doc.Root()

	n, err := UpdateComponent(doc, root, "R1", map[string]PropertyEdit{
		"Value": {Value: strptr("4k7")},
	}, Version9)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	out, err := doc.CommitBytes()
	require.NoError(t, err)
	want := `(kicad_sch (symbol (property "Reference" "R1") (property "Value" "4k7" (at 0 0 0))))`
	assert.Equal(t, want, string(out))
}

func TestUpdateComponent_PreservesMirrorAndDnp(t *testing.T) {
	src := `(kicad_sch (symbol (property "Reference" "R1") (property "Value" "10k") (mirror x) (dnp yes)))`
	doc, err := sexpedit.LoadBytes("x.kicad_sch", []byte(src))
	require.NoError(t, err)
	root := doc.Root()

	_, err = UpdateComponent(doc, root, "R1", map[string]PropertyEdit{
		"Value": {Value: strptr("4k7")},
	}, Version9)
	require.NoError(t, err)

	out, err := doc.CommitBytes()
	require.NoError(t, err)
	assert.Contains(t, string(out), "(mirror x)")
	assert.Contains(t, string(out), "(dnp yes)")
	assert.NotContains(t, string(out), "(dnp no)")
}

func TestUpdateComponent_RemoveProperty(t *testing.T) {
	src := "(kicad_sch (symbol\n\t(property \"Reference\" \"R1\")\n\t(property \"Footprint\" \"R_0603\")))"
	doc, err := sexpedit.LoadBytes("x.kicad_sch", []byte(src))
	require.NoError(t, err)
	root := doc.Root()

	n, err := UpdateComponent(doc, root, "R1", map[string]PropertyEdit{
		"Footprint": {Remove: true},
	}, Version9)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	out, err := doc.CommitBytes()
	require.NoError(t, err)
	// The tab indenting the removed line is absorbed; the newline
	// before it is not, so the closing parens that followed the
	// removed property now start their own line (see DeleteNode).
	assert.Equal(t, "(kicad_sch (symbol\n\t(property \"Reference\" \"R1\")\n))", string(out))
}

func TestUpdateComponent_SynthesizeNewProperty(t *testing.T) {
	src := "(kicad_sch (symbol\n\t(property \"Reference\" \"R1\")))"
	doc, err := sexpedit.LoadBytes("x.kicad_sch", []byte(src))
	require.NoError(t, err)
	root := doc.Root()

	n, err := UpdateComponent(doc, root, "R1", map[string]PropertyEdit{
		"Footprint": {Value: strptr("R_0603")},
	}, Version9)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	out, err := doc.CommitBytes()
	require.NoError(t, err)
	assert.Equal(t, "(kicad_sch (symbol\n\t(property \"Reference\" \"R1\")\n\t(property \"Footprint\" \"R_0603\")))", string(out))
}

func TestUpdateComponent_ToggleVisible_Version9_InsertHideList(t *testing.T) {
	src := `(kicad_sch (symbol (property "Reference" "R1" (effects (font (size 1.27 1.27))))))`
	doc, err := sexpedit.LoadBytes("x.kicad_sch", []byte(src))
	require.NoError(t, err)
	root := doc.Root()

	_, err = UpdateComponent(doc, root, "R1", map[string]PropertyEdit{
		"Reference": {Visible: boolptr(false)},
	}, Version9)
	require.NoError(t, err)

	out, err := doc.CommitBytes()
	require.NoError(t, err)
	assert.Equal(t, `(kicad_sch (symbol (property "Reference" "R1" (effects (font (size 1.27 1.27)) (hide yes)))))`, string(out))
}

func TestUpdateComponent_ToggleVisible_Version6_RemovesBareHide(t *testing.T) {
	src := `(kicad_sch (symbol (property "Reference" "R1" (effects (font (size 1.27 1.27)) hide))))`
	doc, err := sexpedit.LoadBytes("x.kicad_sch", []byte(src))
	require.NoError(t, err)
	root := doc.Root()

	_, err = UpdateComponent(doc, root, "R1", map[string]PropertyEdit{
		"Reference": {Visible: boolptr(true)},
	}, Version6)
	require.NoError(t, err)

	out, err := doc.CommitBytes()
	require.NoError(t, err)
	assert.Equal(t, `(kicad_sch (symbol (property "Reference" "R1" (effects (font (size 1.27 1.27))))))`, string(out))
}

func TestUpdateComponent_ToggleVisible_TogglesExistingHideValue(t *testing.T) {
	src := `(kicad_sch (symbol (property "Reference" "R1" (effects (hide yes)))))`
	doc, err := sexpedit.LoadBytes("x.kicad_sch", []byte(src))
	require.NoError(t, err)
	root := doc.Root()

	_, err = UpdateComponent(doc, root, "R1", map[string]PropertyEdit{
		"Reference": {Visible: boolptr(true)},
	}, Version9)
	require.NoError(t, err)

	out, err := doc.CommitBytes()
	require.NoError(t, err)
	assert.Equal(t, `(kicad_sch (symbol (property "Reference" "R1" (effects (hide no)))))`, string(out))
}

func TestUpdateComponent_NotFound(t *testing.T) {
	doc, err := sexpedit.LoadBytes("x", []byte(`(kicad_sch (symbol (property "Reference" "R1")))`))
	require.NoError(t, err)
	_, err = UpdateComponent(doc, doc.Root(), "R99", map[string]PropertyEdit{"Value": {Value: strptr("1k")}}, Version9)
	var nf *sexpedit.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestRenameNet_CountAndBothOccurrences(t *testing.T) {
	src := `(kicad_sch (version 20231120) (global_label "SPI_SCK" (at 0 0 0)) (label "SPI_SCK" (at 10 10 0)) (label "OTHER" (at 20 20 0)))`
	doc, err := sexpedit.LoadBytes("x.kicad_sch", []byte(src))
	require.NoError(t, err)
	root := doc.Root()

	n, err := RenameNet(doc, root, "SPI_SCK", "SPI1_SCK")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	out, err := doc.CommitBytes()
	require.NoError(t, err)
	want := `(kicad_sch (version 20231120) (global_label "SPI1_SCK" (at 0 0 0)) (label "SPI1_SCK" (at 10 10 0)) (label "OTHER" (at 20 20 0)))`
	assert.Equal(t, want, string(out))
}

func TestUpdateSchematicInfo_ReplaceAndInsertField(t *testing.T) {
	src := "(kicad_sch (title_block\n\t(title \"Old Title\")\n\t(rev \"A\")))"
	doc, err := sexpedit.LoadBytes("x.kicad_sch", []byte(src))
	require.NoError(t, err)
	root := doc.Root()

	n, err := UpdateSchematicInfo(doc, root, map[string]string{
		"title":   "New Title",
		"company": "Acme Corp",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	out, err := doc.CommitBytes()
	require.NoError(t, err)
	assert.Contains(t, string(out), `(title "New Title")`)
	assert.Contains(t, string(out), `(rev "A")`)
	assert.Contains(t, string(out), `(company "Acme Corp")`)
}

func TestUpdateSchematicInfo_CommentInsertAndReplace(t *testing.T) {
	src := "(kicad_sch (title_block\n\t(title \"T\")\n\t(comment 1 \"existing\")))"
	doc, err := sexpedit.LoadBytes("x.kicad_sch", []byte(src))
	require.NoError(t, err)
	root := doc.Root()

	n, err := UpdateSchematicInfo(doc, root, map[string]string{
		"comment1": "updated",
		"comment2": "new",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	out, err := doc.CommitBytes()
	require.NoError(t, err)
	assert.Contains(t, string(out), `(comment 1 "updated")`)
	assert.Contains(t, string(out), `(comment 2 "new")`)
	assert.NotContains(t, string(out), `"existing"`)
}

func TestUpdateSchematicInfo_TitleBlockNotFound(t *testing.T) {
	doc, err := sexpedit.LoadBytes("x", []byte(`(kicad_sch (version 1))`))
	require.NoError(t, err)
	_, err = UpdateSchematicInfo(doc, doc.Root(), map[string]string{"title": "x"})
	var nf *sexpedit.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestDetectVersion(t *testing.T) {
	r6, err := sexpedit.Parse(`(kicad_sch (version 20211014))`)
	require.NoError(t, err)
	assert.Equal(t, Version6, DetectVersion(r6))

	r9, err := sexpedit.Parse(`(kicad_sch (version 20231120))`)
	require.NoError(t, err)
	assert.Equal(t, Version9, DetectVersion(r9))

	rUnknown, err := sexpedit.Parse(`(kicad_sch (symbol))`)
	require.NoError(t, err)
	assert.Equal(t, VersionUnknown, DetectVersion(rUnknown))
}
