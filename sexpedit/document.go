package sexpedit

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrDocumentCommitted is returned by every mutating Document method
// once Commit has consumed the edit queue. A document is single-use:
// further edits require reloading.
var ErrDocumentCommitted = errors.New("sexpedit: document already committed")

// Document is a loaded s-expression source buffer together with its
// parsed, read-only span tree and a bound edit queue. The source
// buffer is immutable between load and commit.
type Document struct {
	path      string
	source    string
	root      *Node
	queue     *editQueue
	committed bool
}

// Load reads path and parses it into a Document. Parse failures are
// fatal: no Document is returned alongside an error.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IoError{Op: "load", Path: path, Err: err}
	}
	return LoadBytes(path, data)
}

// LoadBytes parses source as if it had been read from path (path is
// recorded with the document but never read; Commit writes to, and
// places its temp file beside, the path it is given). It is the
// primary entry point for tests and for callers that already have the
// bytes in memory.
func LoadBytes(path string, source []byte) (*Document, error) {
	root, err := Parse(string(source))
	if err != nil {
		return nil, err
	}
	return &Document{
		path:   path,
		source: string(source),
		root:   root,
		queue:  newEditQueue(string(source)),
	}, nil
}

// MustLoad is like Load but panics on error, for test fixtures and
// quick scripts where a parse failure is a programmer error.
func MustLoad(path string) *Document {
	d, err := Load(path)
	if err != nil {
		panic("sexpedit: MustLoad: " + err.Error())
	}
	return d
}

// Root returns the document's top-level list node.
func (d *Document) Root() *Node { return d.root }

// Source returns the original, unmodified source buffer.
func (d *Document) Source() string { return d.source }

// ReplaceAtomValue replaces atom's span with the encoded form of
// newValue, choosing the string or symbol encoding based on whether
// atom was originally a quoted string.
func (d *Document) ReplaceAtomValue(atom *Node, newValue string) error {
	if atom == nil || atom.Kind != KindAtom {
		return &InvalidEditError{Reason: "replace_atom target is not an atom"}
	}
	var raw string
	if atom.Quoted {
		raw = EncodeString(newValue)
	} else {
		raw = EncodeSymbol(newValue)
	}
	return d.ReplaceAtom(atom, raw)
}

// ReplaceAtom replaces atom's exact span with newRaw, which the
// caller has already formatted. Use this directly for boolean/number
// atoms, where the caller picks EncodeBool/EncodeNumber.
func (d *Document) ReplaceAtom(atom *Node, newRaw string) error {
	if d.committed {
		return ErrDocumentCommitted
	}
	if atom == nil || atom.Kind != KindAtom {
		return &InvalidEditError{Reason: "replace_atom target is not an atom"}
	}
	return d.queue.enqueue(Edit{Span: atom.Span, Replacement: []byte(newRaw), Kind: EditReplace})
}

// ReplaceList replaces the full "(...)" span of listHandle with
// newBytes, which the caller has already formatted. Core does not
// reflow the replacement.
func (d *Document) ReplaceList(listHandle *Node, newBytes string) error {
	if d.committed {
		return ErrDocumentCommitted
	}
	if listHandle == nil || listHandle.Kind != KindList {
		return &InvalidEditError{Reason: "replace_list target is not a list"}
	}
	return d.queue.enqueue(Edit{Span: listHandle.Span, Replacement: []byte(newBytes), Kind: EditReplace})
}

// InsertBeforeClose queues bytes for insertion just before
// listHandle's closing paren. The caller is responsible for including
// leading newline/indent matching sibling style; see IndentOfFirstChild.
func (d *Document) InsertBeforeClose(listHandle *Node, bytes string) error {
	if d.committed {
		return ErrDocumentCommitted
	}
	if listHandle == nil || listHandle.Kind != KindList {
		return &InvalidEditError{Reason: "insert_before_close target is not a list"}
	}
	at := listHandle.Span.End - 1
	return d.queue.enqueue(Edit{Span: Span{at, at}, Replacement: []byte(bytes), Kind: EditInsert})
}

// DeleteNode queues deletion of handle's span, extended backward to
// absorb leading spaces, tabs and carriage returns so no
// whitespace-only remnant is left. It stops at the nearer of the
// previous non-whitespace byte or a newline; the newline itself is
// kept, so deleting a node that sits alone on its line leaves that
// line empty.
func (d *Document) DeleteNode(handle *Node) error {
	if d.committed {
		return ErrDocumentCommitted
	}
	if handle == nil {
		return &InvalidEditError{Reason: "delete_node target is nil"}
	}
	start := handle.Span.Start
	for start > 0 {
		c := d.source[start-1]
		if c == '\n' {
			break
		}
		if c != ' ' && c != '\t' && c != '\r' {
			break
		}
		start--
	}
	return d.queue.enqueue(Edit{Span: Span{start, handle.Span.End}, Kind: EditDelete})
}

// CommitBytes resolves the queued edits against the original source
// and returns the resulting bytes without writing anything, marking
// the document committed. Its only error is ErrDocumentCommitted on a
// document that was already committed; OverlappingEdit is always
// caught earlier, at enqueue time.
func (d *Document) CommitBytes() ([]byte, error) {
	if d.committed {
		return nil, ErrDocumentCommitted
	}
	out := d.queue.apply()
	d.committed = true
	return out, nil
}

// Commit resolves the queued edits and writes the result to path
// atomically: write a sibling temp file, fsync it, then rename over
// path. If any step after the temp write fails, the temp file is
// removed and path is left untouched.
func (d *Document) Commit(path string) error {
	out, err := d.CommitBytes()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	tmpPath := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return &IoError{Op: "commit:create-temp", Path: tmpPath, Err: err}
	}
	if _, err := f.Write(out); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return &IoError{Op: "commit:write-temp", Path: tmpPath, Err: err}
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return &IoError{Op: "commit:fsync-temp", Path: tmpPath, Err: err}
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return &IoError{Op: "commit:close-temp", Path: tmpPath, Err: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return &IoError{Op: "commit:rename", Path: path, Err: err}
	}
	return nil
}
