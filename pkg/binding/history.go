package binding

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one committed binding snapshot, recorded per successful match
// attempt. The ID correlates the entry with the attempt's log lines.
type Entry struct {
	ID       uuid.UUID
	At       time.Time
	Bindings Bindings
}

// Lookup returns the value bound to name in this entry.
func (e Entry) Lookup(name string) (any, bool) {
	v, ok := e.Bindings[name]
	return v, ok
}

// History is the append-only ordered log of committed binding snapshots.
// Only the most recent entry is normally consulted.
type History struct {
	entries []Entry
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{}
}

// Append records a new snapshot and returns its entry.
func (h *History) Append(bindings Bindings) Entry {
	entry := Entry{
		ID:       uuid.New(),
		At:       time.Now(),
		Bindings: bindings,
	}
	h.entries = append(h.entries, entry)
	return entry
}

// Latest returns the most recent entry.
func (h *History) Latest() (Entry, bool) {
	if len(h.entries) == 0 {
		return Entry{}, false
	}
	return h.entries[len(h.entries)-1], true
}

// At returns the i-th entry in append order.
func (h *History) At(i int) Entry {
	return h.entries[i]
}

// Len returns the number of recorded entries.
func (h *History) Len() int {
	return len(h.entries)
}
