package usecase

import (
	"context"
	"sort"

	"github.com/iho/dwh/internal/domain"
)

// ScanResult is the outcome of one cursor-driven scan: the unseen events in
// ascending sequence order and the cursor to persist once they are applied.
type ScanResult struct {
	Events     []domain.Event
	NextCursor domain.Cursor
}

// Scanner determines which events of an account are unseen since the last
// run. Rescanning with an unchanged cursor yields an empty result.
type Scanner struct {
	primary PrimaryStore
}

// NewScanner creates a Scanner over the given primary store.
func NewScanner(primary PrimaryStore) *Scanner {
	return &Scanner{primary: primary}
}

// Scan lists snapshots at or after the cursor and collects events with a
// sequence id above the cursor's watermark. Sequence ids are monotonic across
// the whole account, so the watermark applies uniformly to every snapshot.
// The derived cursor advances to the last snapshot that yielded events and
// the highest sequence id seen; with no new events it is returned unchanged.
func (s *Scanner) Scan(ctx context.Context, tenant, account string, cursor domain.Cursor) (*ScanResult, error) {
	snapshots, err := s.primary.ListSnapshots(ctx, tenant, account, cursor.Snapshot)
	if err != nil {
		return nil, err
	}

	next := cursor
	var events []domain.Event

	for _, snapshot := range snapshots {
		batch, err := s.primary.ListEvents(ctx, tenant, account, snapshot, cursor.Event)
		if err != nil {
			return nil, err
		}
		for _, event := range batch {
			events = append(events, event)
			if event.SequenceID > next.Event {
				next.Event = event.SequenceID
			}
			if snapshot > next.Snapshot {
				next.Snapshot = snapshot
			}
		}
	}

	if len(events) == 0 {
		return &ScanResult{NextCursor: cursor}, nil
	}

	sort.Slice(events, func(i, j int) bool { return events[i].SequenceID < events[j].SequenceID })
	return &ScanResult{Events: events, NextCursor: next}, nil
}
