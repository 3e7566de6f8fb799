package domain

// EventKindPostedTransfer marks events that affect an account balance.
const EventKindPostedTransfer = "1"

// Event is one append-only record inside an account snapshot. SequenceID is
// strictly increasing per account and is the authoritative ordering key;
// directory listing order carries no meaning.
type Event struct {
	Snapshot      int64
	Kind          string
	Amount        string
	TransactionID string
	SequenceID    int64
}

// Posted reports whether the event is a posted transfer.
func (e Event) Posted() bool {
	return e.Kind == EventKindPostedTransfer
}
