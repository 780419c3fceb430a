package sexprtest

// DiffRange returns the smallest [start, end) ranges over a and b
// such that every byte outside those ranges is identical between the
// two buffers: a and b agree on a[:start] == b[:start] and
// a[aEnd:] == b[bEnd:]. It's used to assert locality (an edit changed
// only the bytes it claimed to) without hand-computing offsets in
// every test.
func DiffRange(a, b []byte) (aStart, aEnd, bStart, bEnd int) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	start := 0
	for start < n && a[start] == b[start] {
		start++
	}

	aTail, bTail := len(a), len(b)
	for aTail > start && bTail > start && a[aTail-1] == b[bTail-1] {
		aTail--
		bTail--
	}
	return start, aTail, start, bTail
}
