package maskedit

// History is a linear sequence of stroke buffer snapshots plus a cursor.
// The entry at index 0 is always the buffer's initial, fully empty state.
// Branching is not supported: pushing after an undo discards every entry
// beyond the cursor.
type History struct {
	entries []*Pixmap
	index   int
	limit   int // snapshots kept beyond the initial entry; 0 = unbounded
}

// newHistory creates a history whose initial entry is a snapshot of base.
func newHistory(base *Pixmap, limit int) *History {
	return &History{
		entries: []*Pixmap{base.Clone()},
		limit:   limit,
	}
}

// Index returns the cursor position. 0 means the initial empty state.
func (h *History) Index() int {
	return h.index
}

// Len returns the number of stored snapshots.
func (h *History) Len() int {
	return len(h.entries)
}

// Current returns the snapshot at the cursor.
func (h *History) Current() *Pixmap {
	return h.entries[h.index]
}

// Push commits a snapshot of buf as the newest entry, discarding any
// redo-able entries beyond the cursor first.
func (h *History) Push(buf *Pixmap) {
	h.entries = append(h.entries[:h.index+1], buf.Clone())
	h.index++

	// Evict the oldest non-initial snapshot so index 0 stays the empty
	// state even when a depth cap is set.
	if h.limit > 0 && len(h.entries) > h.limit+1 {
		h.entries = append(h.entries[:1], h.entries[2:]...)
		h.index--
	}
}

// Undo moves the cursor back one entry and returns the snapshot to restore.
// Returns nil when the cursor is already at the initial state.
func (h *History) Undo() *Pixmap {
	if h.index == 0 {
		return nil
	}
	h.index--
	return h.entries[h.index]
}

// Redo moves the cursor forward one entry and returns the snapshot to
// restore. Returns nil when the cursor is at the newest entry.
func (h *History) Redo() *Pixmap {
	if h.index >= len(h.entries)-1 {
		return nil
	}
	h.index++
	return h.entries[h.index]
}

// Reset truncates the history back to the single initial entry and returns
// that snapshot.
func (h *History) Reset() *Pixmap {
	h.entries = h.entries[:1]
	h.index = 0
	return h.entries[0]
}
