package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Free slots: bold green, the thing the user is looking for
	colorFree = color.New(color.FgGreen, color.Bold)

	// Busy time in the occupancy bar
	colorBusy = color.New(color.FgRed, color.Faint)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Stats: cyan for summary numbers
	colorStats = color.New(color.FgCyan)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

func formatFree(s string) string {
	return colorFree.Sprint(s)
}

func formatBusy(s string) string {
	return colorBusy.Sprint(s)
}

func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

func formatStats(s string) string {
	return colorStats.Sprint(s)
}

func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
