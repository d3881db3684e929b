package slot

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"
)

const (
	nineAM = 9 * time.Hour
	fivePM = 17 * time.Hour
)

func TestAvailablePeriods_Validation(t *testing.T) {
	tests := []struct {
		name       string
		startTimes []time.Duration
		durations  []int
		dayStart   time.Duration
		dayEnd     time.Duration
		slot       int
		wantKind   error
		wantMsg    string
	}{
		{
			name:       "nil start times",
			startTimes: nil,
			durations:  []int{30, 45},
			dayStart:   nineAM, dayEnd: fivePM, slot: 60,
			wantKind: ErrInvalidArgument,
			wantMsg:  "startTimes is required",
		},
		{
			name:       "nil durations",
			startTimes: []time.Duration{9 * time.Hour, 10 * time.Hour},
			durations:  nil,
			dayStart:   nineAM, dayEnd: fivePM, slot: 60,
			wantKind: ErrInvalidArgument,
			wantMsg:  "durations is required",
		},
		{
			name:       "both nil reports start times first",
			startTimes: nil,
			durations:  nil,
			dayStart:   nineAM, dayEnd: fivePM, slot: 60,
			wantKind: ErrInvalidArgument,
			wantMsg:  "startTimes is required",
		},
		{
			name:       "length mismatch",
			startTimes: []time.Duration{9 * time.Hour, 10 * time.Hour},
			durations:  []int{30},
			dayStart:   nineAM, dayEnd: fivePM, slot: 60,
			wantKind: ErrInvalidArgument,
			wantMsg:  "array length mismatch",
		},
		{
			name:       "negative slot length",
			startTimes: []time.Duration{9 * time.Hour, 10 * time.Hour},
			durations:  []int{30, 45},
			dayStart:   nineAM, dayEnd: fivePM, slot: -30,
			wantKind: ErrInvalidArgument,
			wantMsg:  "consultation time must be non-negative",
		},
		{
			name:       "end before start",
			startTimes: []time.Duration{15 * time.Hour},
			durations:  []int{30},
			dayStart:   fivePM, dayEnd: nineAM, slot: 60,
			wantKind: ErrOutOfRange,
			wantMsg:  "day start must precede day end",
		},
		{
			name:       "empty window",
			startTimes: []time.Duration{},
			durations:  []int{},
			dayStart:   nineAM, dayEnd: nineAM, slot: 60,
			wantKind: ErrOutOfRange,
			wantMsg:  "day start must precede day end",
		},
		{
			name:       "consultation before working hours",
			startTimes: []time.Duration{2 * time.Hour},
			durations:  []int{30},
			dayStart:   nineAM, dayEnd: fivePM, slot: 60,
			wantKind: ErrOutOfRange,
			wantMsg:  "consultation outside working hours",
		},
		{
			name:       "consultation at day end",
			startTimes: []time.Duration{fivePM},
			durations:  []int{30},
			dayStart:   nineAM, dayEnd: fivePM, slot: 60,
			wantKind: ErrOutOfRange,
			wantMsg:  "consultation outside working hours",
		},
		{
			name:       "negative slot wins over inverted window",
			startTimes: []time.Duration{},
			durations:  []int{},
			dayStart:   fivePM, dayEnd: nineAM, slot: -1,
			wantKind: ErrInvalidArgument,
			wantMsg:  "consultation time must be non-negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AvailablePeriods(tt.startTimes, tt.durations, tt.dayStart, tt.dayEnd, tt.slot)
			if err == nil {
				t.Fatalf("expected error, got %d slots", len(got))
			}
			if got != nil {
				t.Errorf("expected no partial result, got %v", got)
			}
			if !errors.Is(err, tt.wantKind) {
				t.Errorf("expected kind %v, got %v", tt.wantKind, err)
			}
			var slotErr *Error
			if !errors.As(err, &slotErr) {
				t.Fatalf("expected *Error, got %T", err)
			}
			if slotErr.Msg != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, slotErr.Msg)
			}
		})
	}
}

func TestAvailablePeriods_Counts(t *testing.T) {
	tests := []struct {
		name       string
		startTimes []time.Duration
		durations  []int
		want       int
	}{
		{
			name:       "no consultations",
			startTimes: []time.Duration{},
			durations:  []int{},
			want:       8,
		},
		{
			name:       "single consultation",
			startTimes: []time.Duration{9 * time.Hour},
			durations:  []int{30},
			want:       7,
		},
		{
			name:       "multiple consultations",
			startTimes: []time.Duration{9 * time.Hour, 11 * time.Hour, 13 * time.Hour},
			durations:  []int{30, 45, 60},
			want:       5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AvailablePeriods(tt.startTimes, tt.durations, nineAM, fivePM, 60)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("expected %d slots, got %d: %v", tt.want, len(got), got)
			}
		})
	}
}

func TestAvailablePeriods_MultipleConsultationsSlots(t *testing.T) {
	got, err := AvailablePeriods(
		[]time.Duration{9 * time.Hour, 11 * time.Hour, 13 * time.Hour},
		[]int{30, 45, 60},
		nineAM, fivePM, 60,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"10:00-11:00", "12:00-13:00", "14:00-15:00", "15:00-16:00", "16:00-17:00"}
	if len(got) != len(want) {
		t.Fatalf("expected %d slots, got %d", len(want), len(got))
	}
	for i, s := range got {
		if s.String() != want[i] {
			t.Errorf("slot %d: expected %s, got %s", i, want[i], s)
		}
		if s.Minutes() != 60 {
			t.Errorf("slot %d: expected 60 minutes, got %d", i, s.Minutes())
		}
	}
}

func TestAvailablePeriods_ZeroSlotLength(t *testing.T) {
	got, err := AvailablePeriods([]time.Duration{}, []int{}, nineAM, fivePM, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Fatal("expected empty non-nil result")
	}
	if len(got) != 0 {
		t.Errorf("expected no slots, got %v", got)
	}
}

func TestAvailablePeriods_Idempotent(t *testing.T) {
	starts := []time.Duration{9 * time.Hour, 11 * time.Hour, 13 * time.Hour}
	durations := []int{30, 45, 60}

	first, err := AvailablePeriods(starts, durations, nineAM, fivePM, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := AvailablePeriods(starts, durations, nineAM, fivePM, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical results, got %v and %v", first, second)
	}
	if &first[0] == &second[0] {
		t.Error("expected a freshly allocated result per call")
	}
}

func TestAvailablePeriods_DoesNotMutateInput(t *testing.T) {
	starts := []time.Duration{13 * time.Hour, 9 * time.Hour}
	durations := []int{60, 30}

	if _, err := AvailablePeriods(starts, durations, nineAM, fivePM, 60); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if starts[0] != 13*time.Hour || starts[1] != 9*time.Hour {
		t.Errorf("start times were modified: %v", starts)
	}
	if durations[0] != 60 || durations[1] != 30 {
		t.Errorf("durations were modified: %v", durations)
	}
}

func TestCalculate(t *testing.T) {
	w := Window{Start: nineAM, End: 12 * time.Hour}

	tests := []struct {
		name string
		busy []BusyPeriod
		slot int
		want []FreeSlot
	}{
		{
			name: "slot longer than window",
			slot: 240,
			want: []FreeSlot{},
		},
		{
			name: "slot equals window",
			slot: 180,
			want: []FreeSlot{{Start: nineAM, End: 12 * time.Hour}},
		},
		{
			name: "remainder is dropped",
			slot: 50,
			want: []FreeSlot{
				{Start: nineAM, End: nineAM + 50*time.Minute},
				{Start: nineAM + 50*time.Minute, End: nineAM + 100*time.Minute},
				{Start: nineAM + 100*time.Minute, End: nineAM + 150*time.Minute},
			},
		},
		{
			name: "busy period ending at slot start does not block",
			busy: []BusyPeriod{{Start: nineAM, Duration: 60}},
			slot: 60,
			want: []FreeSlot{
				{Start: 10 * time.Hour, End: 11 * time.Hour},
				{Start: 11 * time.Hour, End: 12 * time.Hour},
			},
		},
		{
			name: "busy period straddling step boundary blocks both slots",
			busy: []BusyPeriod{{Start: 9*time.Hour + 45*time.Minute, Duration: 30}},
			slot: 60,
			want: []FreeSlot{{Start: 11 * time.Hour, End: 12 * time.Hour}},
		},
		{
			name: "zero duration busy period blocks nothing",
			busy: []BusyPeriod{{Start: 10 * time.Hour, Duration: 0}},
			slot: 60,
			want: []FreeSlot{
				{Start: nineAM, End: 10 * time.Hour},
				{Start: 10 * time.Hour, End: 11 * time.Hour},
				{Start: 11 * time.Hour, End: 12 * time.Hour},
			},
		},
		{
			name: "unsorted busy periods",
			busy: []BusyPeriod{
				{Start: 11 * time.Hour, Duration: 15},
				{Start: nineAM, Duration: 15},
			},
			slot: 60,
			want: []FreeSlot{{Start: 10 * time.Hour, End: 11 * time.Hour}},
		},
		{
			name: "busy period running past day end",
			busy: []BusyPeriod{{Start: 11*time.Hour + 30*time.Minute, Duration: 120}},
			slot: 30,
			want: []FreeSlot{
				{Start: nineAM, End: nineAM + 30*time.Minute},
				{Start: nineAM + 30*time.Minute, End: 10 * time.Hour},
				{Start: 10 * time.Hour, End: 10*time.Hour + 30*time.Minute},
				{Start: 10*time.Hour + 30*time.Minute, End: 11 * time.Hour},
				{Start: 11 * time.Hour, End: 11*time.Hour + 30*time.Minute},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(w, tt.busy, tt.slot)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCalculate_MatchesAvailablePeriods(t *testing.T) {
	busy := []BusyPeriod{{Start: 9 * time.Hour, Duration: 30}, {Start: 14 * time.Hour, Duration: 90}}

	fromPairs, err := Calculate(Window{Start: nineAM, End: fivePM}, busy, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fromArrays, err := AvailablePeriods(
		[]time.Duration{9 * time.Hour, 14 * time.Hour},
		[]int{30, 90},
		nineAM, fivePM, 30,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(fromPairs, fromArrays) {
		t.Errorf("entry points disagree: %v vs %v", fromPairs, fromArrays)
	}
}

func TestFreeSlotsAreDisjointAndContained(t *testing.T) {
	busy := []BusyPeriod{
		{Start: 9*time.Hour + 10*time.Minute, Duration: 20},
		{Start: 12 * time.Hour, Duration: 75},
		{Start: 16*time.Hour + 50*time.Minute, Duration: 10},
	}
	w := Window{Start: nineAM, End: fivePM}

	for _, length := range []int{1, 15, 25, 60, 90, 480} {
		slots, err := Calculate(w, busy, length)
		if err != nil {
			t.Fatalf("slot %d: unexpected error: %v", length, err)
		}
		for i, s := range slots {
			if s.Minutes() != length {
				t.Errorf("slot %d: %s has wrong length", length, s)
			}
			if s.Start < w.Start || s.End > w.End {
				t.Errorf("slot %d: %s outside window", length, s)
			}
			if overlapsAny(s.Start, s.End, busy) {
				t.Errorf("slot %d: %s overlaps a busy period", length, s)
			}
			if i > 0 && s.Start < slots[i-1].End {
				t.Errorf("slot %d: %s overlaps previous slot %s", length, s, slots[i-1])
			}
		}
	}
}

func TestAvailablePeriods_HugeSlotLength(t *testing.T) {
	for _, length := range []int{481, 200_000_000, math.MaxInt} {
		got, err := AvailablePeriods([]time.Duration{}, []int{}, nineAM, fivePM, length)
		if err != nil {
			t.Fatalf("slot %d: unexpected error: %v", length, err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("slot %d: expected empty result, got %v", length, got)
		}
	}
}

func TestAvailablePeriods_HugeBusyDuration(t *testing.T) {
	for _, duration := range []int{200_000_000, math.MaxInt} {
		got, err := AvailablePeriods([]time.Duration{12 * time.Hour}, []int{duration}, nineAM, fivePM, 60)
		if err != nil {
			t.Fatalf("duration %d: unexpected error: %v", duration, err)
		}
		// Only the slots before noon stay free.
		if len(got) != 3 {
			t.Errorf("duration %d: expected 3 slots, got %v", duration, got)
		}
	}
}

func TestBusyPeriodEnd(t *testing.T) {
	tests := []struct {
		name string
		busy BusyPeriod
		want time.Duration
	}{
		{name: "regular", busy: BusyPeriod{Start: nineAM, Duration: 30}, want: nineAM + 30*time.Minute},
		{name: "zero duration", busy: BusyPeriod{Start: nineAM, Duration: 0}, want: nineAM},
		{name: "negative duration is empty", busy: BusyPeriod{Start: nineAM, Duration: -30}, want: nineAM},
		{name: "huge duration saturates", busy: BusyPeriod{Start: nineAM, Duration: 200_000_000}, want: math.MaxInt64},
		{name: "max int saturates", busy: BusyPeriod{Start: nineAM, Duration: math.MaxInt}, want: math.MaxInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.busy.End(); got != tt.want {
				t.Errorf("End() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCalculate_NegativeDurationActsAsZero(t *testing.T) {
	w := Window{Start: nineAM, End: 12 * time.Hour}

	negative, err := Calculate(w, []BusyPeriod{{Start: 10 * time.Hour, Duration: -90}}, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	zero, err := Calculate(w, []BusyPeriod{{Start: 10 * time.Hour, Duration: 0}}, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(negative, zero) {
		t.Errorf("expected %v, got %v", zero, negative)
	}
	if len(negative) != 3 {
		t.Errorf("expected 3 slots, got %v", negative)
	}
}

func TestFreeMinutes(t *testing.T) {
	slots := []FreeSlot{
		{Start: nineAM, End: 10 * time.Hour},
		{Start: 11 * time.Hour, End: 11*time.Hour + 30*time.Minute},
	}
	if got := FreeMinutes(slots); got != 90 {
		t.Errorf("expected 90, got %d", got)
	}
	if got := FreeMinutes(nil); got != 0 {
		t.Errorf("expected 0 for no slots, got %d", got)
	}
}

func TestError(t *testing.T) {
	err := outOfRange("consultation outside working hours")

	if got := err.Error(); got != "out of range: consultation outside working hours" {
		t.Errorf("unexpected message %q", got)
	}
	if errors.Is(err, ErrInvalidArgument) {
		t.Error("out of range error must not match ErrInvalidArgument")
	}
	if !errors.Is(err, ErrOutOfRange) {
		t.Error("expected match on ErrOutOfRange")
	}
}
