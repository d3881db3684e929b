package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/freeslot/internal/clock"
	"github.com/javiermolinar/freeslot/internal/slot"
)

// maxBarWidth caps the occupancy bar on wide terminals.
const maxBarWidth = 48

var summaryStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

// FreeDay describes a calculated day for printing.
type FreeDay struct {
	Window      slot.Window
	SlotMinutes int
	Busy        int // number of booked consultations
	Slots       []slot.FreeSlot
}

// WindowMinutes returns the length of the working day in minutes.
func (d FreeDay) WindowMinutes() int {
	return clock.Minutes(d.Window.End - d.Window.Start)
}

// FreeMinutes returns the total free minutes across all slots.
func (d FreeDay) FreeMinutes() int {
	return slot.FreeMinutes(d.Slots)
}

// PrintFreeDay writes the human readable listing of free slots.
func PrintFreeDay(w io.Writer, d FreeDay, barWidth int) {
	_, _ = fmt.Fprintf(w, "=== %s ===\n\n", formatHeader(fmt.Sprintf("Free slots %s-%s (%s)",
		clock.Format(d.Window.Start), clock.Format(d.Window.End), FormatDuration(d.SlotMinutes))))

	if len(d.Slots) == 0 {
		_, _ = fmt.Fprintln(w, "No free slots in the working day.")
		return
	}

	for i, s := range d.Slots {
		_, _ = fmt.Fprintf(w, "  %s %s  %s\n",
			formatMuted(fmt.Sprintf("%2d.", i+1)),
			formatFree(s.String()),
			formatMuted(FormatDuration(s.Minutes())))
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, summaryStyle.Render(summaryText(d)))
	_, _ = fmt.Fprintln(w, FreeBar(d.FreeMinutes(), d.WindowMinutes(), barWidth))
}

func summaryText(d FreeDay) string {
	slots := "slots"
	if len(d.Slots) == 1 {
		slots = "slot"
	}
	return fmt.Sprintf("%s free %s, %d booked\nFree: %s of %s",
		formatStats(fmt.Sprintf("%d", len(d.Slots))), slots, d.Busy,
		formatStats(FormatDuration(d.FreeMinutes())), FormatDuration(d.WindowMinutes()))
}

// FreeBar creates an ASCII bar showing the free share of the working day.
func FreeBar(freeMinutes, totalMinutes, width int) string {
	if width <= 0 {
		width = 1
	}
	if totalMinutes <= 0 {
		return "[" + strings.Repeat("░", width) + "] (0% free)"
	}

	pct := (freeMinutes * 100) / totalMinutes
	filled := min((freeMinutes*width)/totalMinutes, width)

	bar := formatFree(strings.Repeat("█", filled)) + formatBusy(strings.Repeat("░", width-filled))
	return fmt.Sprintf("[%s] %s", bar, formatStats(fmt.Sprintf("(%d%% free)", pct)))
}

// barWidth picks the occupancy bar width for the current terminal.
func barWidth() int {
	return min(termWidth()-20, maxBarWidth)
}

// FormatDuration formats minutes as a human-readable duration.
func FormatDuration(minutes int) string {
	if minutes == 0 {
		return "0m"
	}
	hours := minutes / 60
	mins := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%dm", hours, mins)
}

type slotJSON struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type freeDayJSON struct {
	DayStart    string     `json:"day_start"`
	DayEnd      string     `json:"day_end"`
	SlotMinutes int        `json:"slot_minutes"`
	Slots       []slotJSON `json:"slots"`
	FreeMinutes int        `json:"free_minutes"`
}

// WriteFreeDayJSON writes the day as indented JSON.
func WriteFreeDayJSON(w io.Writer, d FreeDay) error {
	out := freeDayJSON{
		DayStart:    clock.Format(d.Window.Start),
		DayEnd:      clock.Format(d.Window.End),
		SlotMinutes: d.SlotMinutes,
		Slots:       make([]slotJSON, 0, len(d.Slots)),
		FreeMinutes: d.FreeMinutes(),
	}
	for _, s := range d.Slots {
		out.Slots = append(out.Slots, slotJSON{Start: clock.Format(s.Start), End: clock.Format(s.End)})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding slots: %w", err)
	}
	return nil
}

// formatOffset renders a minute offset for the format command.
func formatOffset(minutes int) string {
	return clock.FormatMinutes(minutes)
}
