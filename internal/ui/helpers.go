package ui

import (
	"fmt"
	"strings"
	"time"
)

// clip hard-truncates a string to max runes. Panels clip, never wrap.
func clip(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// truncate shortens a string to max runes with a trailing ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// centerIn centers text in a field of the given width, leaving the extra
// column on the left for odd lengths, and pads the remainder with spaces.
func centerIn(width int, s string) string {
	length := len([]rune(s))
	if length >= width {
		return clip(s, width)
	}
	offset := CenterOffset(width, length)
	return strings.Repeat(" ", offset) + s + strings.Repeat(" ", width-offset-length)
}

// padRight pads a string with spaces to the given width, clipping longer
// values.
func padRight(s string, width int) string {
	length := len([]rune(s))
	if length >= width {
		return clip(s, width)
	}
	return s + strings.Repeat(" ", width-length)
}

// formatMillis renders a duration in milliseconds with two decimals.
func formatMillis(d time.Duration) string {
	return fmt.Sprintf("%.2f ms", float64(d)/float64(time.Millisecond))
}
