package timeutil

import (
	"fmt"
	"regexp"
)

// timestampPattern matches strict HH:MM:SS: 24-hour clock, zero-padded fields.
var timestampPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9]):([0-5][0-9])$`)

// ValidateTimestamp checks that timeStr is a strict HH:MM:SS timestamp
// (24-hour, zero-padded). Formats like "1:02:03", "00:00", "aa:bb:cc" or
// out-of-range components are rejected.
func ValidateTimestamp(timeStr string) error {
	if !timestampPattern.MatchString(timeStr) {
		return fmt.Errorf("expected HH:MM:SS (24-hour, zero-padded), got '%s'", timeStr)
	}
	return nil
}

// ParseTimestamp converts a strict HH:MM:SS timestamp to seconds of day.
func ParseTimestamp(timeStr string) (int, error) {
	if err := ValidateTimestamp(timeStr); err != nil {
		return 0, err
	}
	var hours, minutes, seconds int
	if n, err := fmt.Sscanf(timeStr, "%d:%d:%d", &hours, &minutes, &seconds); n != 3 || err != nil {
		return 0, fmt.Errorf("expected HH:MM:SS, got '%s'", timeStr)
	}
	return hours*3600 + minutes*60 + seconds, nil
}

// Duration returns end minus start in whole seconds. Both arguments must be
// strict HH:MM:SS timestamps.
func Duration(start, end string) (int, error) {
	startSec, err := ParseTimestamp(start)
	if err != nil {
		return 0, fmt.Errorf("invalid start time: %w", err)
	}
	endSec, err := ParseTimestamp(end)
	if err != nil {
		return 0, fmt.Errorf("invalid end time: %w", err)
	}
	return endSec - startSec, nil
}

// FormatTime formats seconds as H:MM:SS (e.g. 0:01:30, 1:11:22).
func FormatTime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	totalSeconds := int(seconds)
	hours := totalSeconds / 3600
	mins := (totalSeconds % 3600) / 60
	secs := totalSeconds % 60
	return fmt.Sprintf("%d:%02d:%02d", hours, mins, secs)
}
