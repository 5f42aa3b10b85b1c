package capgains

import (
	"fmt"
	"iter"
	"sort"
)

// Journal holds a chronologically sorted list of normalized trade events.
//
// Exchange exports are not guaranteed chronological (combined multi-year
// exports in particular), and FIFO matching is only correct when buys are
// replayed before the sells that consume them.
type Journal struct {
	events []Event // sorted by execution time
}

// NewJournal validates the given events and returns a Journal with them
// sorted by ascending execution time. The sort is stable: events sharing a
// timestamp keep their input order.
func NewJournal(events []Event) (*Journal, error) {
	for _, e := range events {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("invalid event: %w", err)
		}
	}
	journal := &Journal{events: make([]Event, len(events))}
	copy(journal.events, events)
	sort.SliceStable(journal.events, func(i, j int) bool {
		return journal.events[i].Time.Before(journal.events[j].Time)
	})
	return journal, nil
}

// Len returns the number of events in the journal.
func (j *Journal) Len() int { return len(j.events) }

// Events returns an iterator over the events in chronological order.
func (j *Journal) Events() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for _, e := range j.events {
			if !yield(e) {
				return
			}
		}
	}
}
