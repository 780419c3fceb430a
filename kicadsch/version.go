// Package kicadsch implements schematic-aware operations: listing and
// editing components, renaming net labels, updating the title block,
// built entirely on top of sexpedit's generic tokenizer, query layer,
// and edit queue. It never introduces its own parsing: every lookup
// goes through sexpedit.ChildrenOfKind/GetProperty/etc, and every
// mutation through sexpedit.Document's edit methods.
package kicadsch

import (
	"strconv"

	"github.com/kicadtools/sexpedit/sexpedit"
)

// Version distinguishes the two "hide" encodings schematics in the
// wild use for invisible properties.
type Version int

const (
	VersionUnknown Version = iota
	// Version6 schematics mark a property hidden with a bare "hide"
	// atom trailing the effects list: (effects (font ...) hide).
	Version6
	// Version9 schematics use an explicit yes/no form:
	// (effects (font ...) (hide yes)).
	Version9
)

// kiCad9Cutover is the file-format version value at and above which
// schematics switch from the bare-hide-atom encoding to the explicit
// (hide yes/no) form. This mirrors KiCad's own file-format version
// stamped in the root "version" form.
const kiCad9Cutover = 20231120

// DetectVersion inspects root's top-level "version" form and returns
// which hide encoding new synthesis should use. Callers updating an
// existing hide token never need this, they preserve whatever
// encoding is already present; it's only consulted when no hide token
// exists yet and one must be synthesized.
func DetectVersion(root *sexpedit.Node) Version {
	versions := sexpedit.ChildrenOfKind(root, "version")
	if len(versions) == 0 {
		return VersionUnknown
	}
	atom := versions[0].Child(1)
	if atom == nil {
		return VersionUnknown
	}
	n, err := strconv.Atoi(atom.Decoded)
	if err != nil {
		return VersionUnknown
	}
	if n < kiCad9Cutover {
		return Version6
	}
	return Version9
}
