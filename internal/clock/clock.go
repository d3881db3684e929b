// Package clock converts between day offsets and "HH:MM" strings.
package clock

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimeFormat is returned by Parse for anything that is not a
// valid 24-hour "HH:MM" value.
var ErrInvalidTimeFormat = errors.New("time must be in HH:MM format")

// Day is the length of the working day domain.
const Day = 24 * time.Hour

// Format renders an offset from midnight as "HH:MM".
// Seconds are truncated. Offsets outside a single day are clamped to
// 00:00 and 23:59.
func Format(offset time.Duration) string {
	return FormatMinutes(Minutes(offset))
}

// FormatMinutes renders a minute offset from midnight as "HH:MM", clamped
// like Format.
func FormatMinutes(m int) string {
	m = min(max(m, 0), Minutes(Day)-1)
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Minutes returns the whole minutes in d, truncating toward zero.
func Minutes(d time.Duration) int {
	return int(d / time.Minute)
}

// Parse converts "HH:MM" to an offset from midnight.
func Parse(s string) (time.Duration, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w, got %q", ErrInvalidTimeFormat, s)
	}
	if !isDigits(s[0:2]) || !isDigits(s[3:5]) {
		return 0, fmt.Errorf("%w, got %q", ErrInvalidTimeFormat, s)
	}
	hours := int(s[0]-'0')*10 + int(s[1]-'0')
	mins := int(s[3]-'0')*10 + int(s[4]-'0')
	if hours > 23 || mins > 59 {
		return 0, fmt.Errorf("%w, got %q", ErrInvalidTimeFormat, s)
	}
	return time.Duration(hours)*time.Hour + time.Duration(mins)*time.Minute, nil
}

// MustParse is like Parse but panics on error. Intended for constants and tests.
func MustParse(s string) time.Duration {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
