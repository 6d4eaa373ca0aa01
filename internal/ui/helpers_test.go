package ui

import (
	"testing"
	"time"
)

func TestClip(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"shorter passes through", "hello", 10, "hello"},
		{"exact passes through", "hello", 5, "hello"},
		{"longer clips hard", "hello world", 5, "hello"},
		{"no ellipsis", "abcdefgh", 4, "abcd"},
		{"zero width", "hello", 0, ""},
		{"negative width", "hello", -3, ""},
		{"multibyte runes", "αβγδε", 3, "αβγ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clip(tt.in, tt.width); got != tt.want {
				t.Fatalf("clip(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"shorter passes through", "hello", 10, "hello"},
		{"longer gets ellipsis", "hello world", 8, "hello..."},
		{"tiny width clips", "hello", 2, "he"},
		{"zero width", "hello", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.in, tt.width); got != tt.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}

func TestCenterIn(t *testing.T) {
	cases := []struct {
		width int
		in    string
		want  string
	}{
		{6, "ab", "  ab  "},
		{7, "ab", "  ab   "},
		{6, "abc", " abc  "},
		{3, "abcdef", "abc"},
		{5, "abcde", "abcde"},
	}
	for _, tt := range cases {
		if got := centerIn(tt.width, tt.in); got != tt.want {
			t.Fatalf("centerIn(%d, %q) = %q, want %q", tt.width, tt.in, got, tt.want)
		}
		if tt.width >= len([]rune(tt.in)) {
			if n := len([]rune(centerIn(tt.width, tt.in))); n != tt.width {
				t.Fatalf("centerIn(%d, %q) length = %d, want %d", tt.width, tt.in, n, tt.width)
			}
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Fatalf("padRight = %q, want %q", got, "ab   ")
	}
	if got := padRight("abcdef", 4); got != "abcd" {
		t.Fatalf("padRight long = %q, want %q", got, "abcd")
	}
}

func TestFormatMillis(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{42 * time.Millisecond, "42.00 ms"},
		{1500 * time.Microsecond, "1.50 ms"},
		{0, "0.00 ms"},
	}
	for _, tt := range tests {
		if got := formatMillis(tt.d); got != tt.want {
			t.Fatalf("formatMillis(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
