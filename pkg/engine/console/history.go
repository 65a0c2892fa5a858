package console

// HistoryLimit caps the command history ring.
const HistoryLimit = 100

// restPos marks a cursor with no recall in progress.
const restPos = -1

// History is the submitted-command ring, most recent first, navigated by a
// wrapping cursor.
type History struct {
	limit   int
	entries []string

	// Index of the recalled entry, or restPos.
	pos int
}

// NewHistory returns a history capped at limit entries.
func NewHistory(limit int) *History {
	return &History{limit: limit, pos: restPos}
}

// Push prepends a submitted command, evicting the oldest past the cap.
func (h *History) Push(s string) {
	h.entries = append([]string{s}, h.entries...)
	if len(h.entries) > h.limit {
		h.entries = h.entries[:h.limit]
	}
}

// Len returns the entry count.
func (h *History) Len() int { return len(h.entries) }

// ResetCursor rewinds recall to the most recent entry.
func (h *History) ResetCursor() { h.pos = restPos }

// Up recalls the next-older entry, entering at the newest from the resting
// cursor and wrapping from the oldest back to the newest. Returns false
// when history is empty.
func (h *History) Up() (string, bool) {
	n := len(h.entries)
	if n == 0 {
		return "", false
	}
	h.pos = (h.pos + 1) % n
	return h.entries[h.pos], true
}

// Down recalls the next-newer entry. From the resting cursor it wraps to
// the oldest entry instead of indexing negatively. Returns false when
// history is empty.
func (h *History) Down() (string, bool) {
	n := len(h.entries)
	if n == 0 {
		return "", false
	}
	if h.pos == restPos {
		h.pos = n - 1
	} else {
		h.pos = ((h.pos-1)%n + n) % n
	}
	return h.entries[h.pos], true
}
