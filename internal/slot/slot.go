// Package slot computes fixed-length free slots within a working day.
package slot

import (
	"math"
	"time"

	"github.com/javiermolinar/freeslot/internal/clock"
)

// Window is the working day, as offsets from midnight.
type Window struct {
	Start time.Duration
	End   time.Duration
}

// BusyPeriod is an already scheduled consultation.
type BusyPeriod struct {
	Start    time.Duration
	Duration int // minutes
}

// End returns the exclusive end of the period. Negative durations give an
// empty period; durations past the largest representable offset saturate.
func (b BusyPeriod) End() time.Duration {
	if b.Duration <= 0 {
		return b.Start
	}
	if b.Duration > clock.Minutes(time.Duration(math.MaxInt64)-max(b.Start, 0)) {
		return time.Duration(math.MaxInt64)
	}
	return b.Start + time.Duration(b.Duration)*time.Minute
}

// FreeSlot is a candidate interval that clears every busy period.
type FreeSlot struct {
	Start time.Duration
	End   time.Duration
}

// Minutes returns the slot length in minutes.
func (s FreeSlot) Minutes() int {
	return clock.Minutes(s.End - s.Start)
}

// String returns the slot as "HH:MM-HH:MM".
func (s FreeSlot) String() string {
	return clock.Format(s.Start) + "-" + clock.Format(s.End)
}

// AvailablePeriods returns the free slots of slotLengthMinutes within
// [dayStart, dayEnd], given busy periods as parallel arrays.
// A nil slice is treated as absent; pass an empty slice for an empty day.
func AvailablePeriods(startTimes []time.Duration, durations []int, dayStart, dayEnd time.Duration, slotLengthMinutes int) ([]FreeSlot, error) {
	if startTimes == nil {
		return nil, invalidArgument("startTimes is required")
	}
	if durations == nil {
		return nil, invalidArgument("durations is required")
	}
	if len(startTimes) != len(durations) {
		return nil, invalidArgument("array length mismatch")
	}

	busy := make([]BusyPeriod, len(startTimes))
	for i := range startTimes {
		busy[i] = BusyPeriod{Start: startTimes[i], Duration: durations[i]}
	}
	return Calculate(Window{Start: dayStart, End: dayEnd}, busy, slotLengthMinutes)
}

// Calculate scans the window in steps of slotLengthMinutes and returns every
// step position whose slot does not intersect a busy period.
//
// Busy periods are trusted to be non-overlapping; they are neither sorted
// nor merged. A zero slot length yields no slots.
func Calculate(w Window, busy []BusyPeriod, slotLengthMinutes int) ([]FreeSlot, error) {
	if slotLengthMinutes < 0 {
		return nil, invalidArgument("consultation time must be non-negative")
	}
	if w.Start >= w.End {
		return nil, outOfRange("day start must precede day end")
	}
	for _, b := range busy {
		if b.Start < w.Start || b.Start >= w.End {
			return nil, outOfRange("consultation outside working hours")
		}
	}

	slots := make([]FreeSlot, 0)
	if slotLengthMinutes == 0 || slotLengthMinutes > clock.Minutes(w.End-w.Start) {
		return slots, nil
	}

	step := time.Duration(slotLengthMinutes) * time.Minute
	for t := w.Start; w.End-t >= step; t += step {
		if !overlapsAny(t, t+step, busy) {
			slots = append(slots, FreeSlot{Start: t, End: t + step})
		}
	}
	return slots, nil
}

// FreeMinutes returns the total length of slots in minutes.
func FreeMinutes(slots []FreeSlot) int {
	total := 0
	for _, s := range slots {
		total += s.Minutes()
	}
	return total
}

func overlapsAny(start, end time.Duration, busy []BusyPeriod) bool {
	for _, b := range busy {
		// [start,end) overlaps [b.Start,b.End) iff start < b.End && b.Start < end.
		if start < b.End() && b.Start < end {
			return true
		}
	}
	return false
}
