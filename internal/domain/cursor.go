package domain

// NoEventSynced is the Event value of a cursor before the first event for an
// account has been observed.
const NoEventSynced int64 = -1

// Cursor marks how far an account has been synced from primary storage.
// Snapshot is the last snapshot that yielded events, Event the highest
// sequence id seen. Both are non-decreasing across runs.
type Cursor struct {
	Snapshot int64
	Event    int64
}

// NewCursor returns the cursor of a never-synced account.
func NewCursor() Cursor {
	return Cursor{Snapshot: 0, Event: NoEventSynced}
}

// Behind reports whether c is lexicographically behind other.
func (c Cursor) Behind(other Cursor) bool {
	if c.Snapshot != other.Snapshot {
		return c.Snapshot < other.Snapshot
	}
	return c.Event < other.Event
}
