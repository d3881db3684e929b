// Package schedule loads already booked consultations from TOML files and
// command-line entries.
package schedule

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/freeslot/internal/clock"
)

// ErrInvalidEntry is returned for consultations that cannot be parsed.
var ErrInvalidEntry = errors.New("consultation must be in HH:MM/minutes format")

// Consultation is a single booked consultation.
type Consultation struct {
	Start    string `toml:"start"`    // "HH:MM"
	Duration int    `toml:"duration"` // minutes
}

// Schedule is the set of consultations booked for one day.
type Schedule struct {
	Consultations []Consultation `toml:"consultation"`
}

// LoadFile reads a schedule from a TOML file.
func LoadFile(path string) (*Schedule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schedule file: %w", err)
	}

	var s Schedule
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing schedule file: %w", err)
	}
	for i, c := range s.Consultations {
		if _, err := clock.Parse(c.Start); err != nil {
			return nil, fmt.Errorf("consultation %d: %w", i+1, err)
		}
	}
	return &s, nil
}

// ParseEntry parses a "HH:MM/minutes" entry such as "09:00/30".
func ParseEntry(s string) (Consultation, error) {
	start, mins, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return Consultation{}, fmt.Errorf("%w, got %q", ErrInvalidEntry, s)
	}
	if _, err := clock.Parse(start); err != nil {
		return Consultation{}, fmt.Errorf("%w: %w", ErrInvalidEntry, err)
	}
	d, err := strconv.Atoi(mins)
	if err != nil {
		return Consultation{}, fmt.Errorf("%w, got %q", ErrInvalidEntry, s)
	}
	return Consultation{Start: start, Duration: d}, nil
}

// ParseEntries parses every entry, stopping at the first failure.
func ParseEntries(entries []string) ([]Consultation, error) {
	result := make([]Consultation, 0, len(entries))
	for _, e := range entries {
		c, err := ParseEntry(e)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, nil
}

// Add appends consultations to the schedule.
func (s *Schedule) Add(cs ...Consultation) {
	s.Consultations = append(s.Consultations, cs...)
}

// Len returns the number of consultations.
func (s *Schedule) Len() int {
	return len(s.Consultations)
}

// Arrays returns start offsets and durations as parallel slices.
// Both slices are non-nil, even for an empty schedule.
// Start times must already have been validated by LoadFile or ParseEntry.
func (s *Schedule) Arrays() ([]time.Duration, []int) {
	starts := make([]time.Duration, 0, len(s.Consultations))
	durations := make([]int, 0, len(s.Consultations))
	for _, c := range s.Consultations {
		start, _ := clock.Parse(c.Start)
		starts = append(starts, start)
		durations = append(durations, c.Duration)
	}
	return starts, durations
}
