package sexpedit

import "sort"

// EditKind tags how a queued edit applies to the source buffer.
type EditKind int

const (
	EditReplace EditKind = iota
	EditInsert
	EditDelete
)

// Edit is a pending change against the document's original byte
// offsets. Insertions have Span.Start == Span.End.
type Edit struct {
	Span        Span
	Replacement []byte
	Kind        EditKind
	seq         int // enqueue order, used to order same-offset inserts
}

// editQueue accumulates pending edits against a fixed source buffer,
// rejecting overlaps at enqueue time.
type editQueue struct {
	source string
	edits  []Edit
	nextSeq int
}

func newEditQueue(source string) *editQueue {
	return &editQueue{source: source}
}

func spansOverlap(a, b Span) bool {
	return a.Start < b.End && b.Start < a.End
}

// enqueue adds an edit after checking it against every pending edit.
// On conflict it returns *OverlappingEditError and leaves the queue
// unchanged.
func (q *editQueue) enqueue(e Edit) error {
	for _, existing := range q.edits {
		if spansOverlap(e.Span, existing.Span) {
			return &OverlappingEditError{New: e.Span, Existing: existing.Span}
		}
	}
	e.seq = q.nextSeq
	q.nextSeq++
	q.edits = append(q.edits, e)
	return nil
}

// apply produces the post-edit bytes by splicing replacements into
// the source from the highest offset down, so earlier (lower-offset)
// spans remain valid as the splice proceeds.
// Edits at the same offset (same-offset zero-width inserts) are
// applied in enqueue order.
func (q *editQueue) apply() []byte {
	ordered := make([]Edit, len(q.edits))
	copy(ordered, q.edits)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Span.Start != ordered[j].Span.Start {
			return ordered[i].Span.Start > ordered[j].Span.Start
		}
		// same start: apply in reverse enqueue order so that, once
		// spliced back-to-front, the net effect reads in enqueue
		// order at that offset.
		return ordered[i].seq > ordered[j].seq
	})
	out := []byte(q.source)
	for _, e := range ordered {
		head := out[:e.Span.Start]
		tail := out[e.Span.End:]
		spliced := make([]byte, 0, len(head)+len(e.Replacement)+len(tail))
		spliced = append(spliced, head...)
		spliced = append(spliced, e.Replacement...)
		spliced = append(spliced, tail...)
		out = spliced
	}
	return out
}
