package compensation

import (
	"sort"
	"time"
)

// ResolveAt returns the compensation snapshot in force on targetDate, as a
// pure function of the ledger contents plus the baseline:
//
//  1. the newest event with effectiveDate <= targetDate wins;
//  2. with only future events on file, the earliest event's prior structure
//     is the pre-ledger state and answers queries from before the ledger
//     began;
//  3. with no events at all, the baseline stands.
func ResolveAt(baseline Baseline, events []Event, targetDate time.Time) Snapshot {
	if len(events) == 0 {
		return baseline.Snapshot
	}

	sorted := sortedByEffectiveDate(events)

	var latest *Event
	for i := range sorted {
		if sorted[i].EffectiveDate.After(targetDate) {
			break
		}
		latest = &sorted[i]
	}
	if latest != nil {
		return latest.NewStructure
	}

	return sorted[0].PriorStructure
}

// ResolveBefore returns the snapshot in force strictly before date: the
// newest event with effectiveDate < date, or the baseline when no such event
// exists. Used to capture an event's prior structure at creation time.
func ResolveBefore(baseline Baseline, events []Event, date time.Time) Snapshot {
	sorted := sortedByEffectiveDate(events)

	var latest *Event
	for i := range sorted {
		if !sorted[i].EffectiveDate.Before(date) {
			break
		}
		latest = &sorted[i]
	}
	if latest != nil {
		return latest.NewStructure
	}

	return baseline.Snapshot
}

// Latest returns the event with the greatest effective date, or nil.
func Latest(events []Event) *Event {
	if len(events) == 0 {
		return nil
	}
	sorted := sortedByEffectiveDate(events)
	return &sorted[len(sorted)-1]
}

func sortedByEffectiveDate(events []Event) []Event {
	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].EffectiveDate.Before(sorted[j].EffectiveDate)
	})
	return sorted
}
