package boutique

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{"2024-02-29", NewDate(2024, time.February, 29), false},
		{"2025-02-29", Date{}, true},
		{"invalid-date", Date{}, true},
		{"15/01/2025", Date{}, true},
		{"", Date{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.err {
				t.Fatalf("ParseDate(%q) error = %v, want error %t", tt.input, err, tt.err)
			}
			if got != tt.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDate_String(t *testing.T) {
	if got := NewDate(2025, time.July, 1).String(); got != "2025-07-01" {
		t.Errorf("String() = %q, want zero-padded 2025-07-01", got)
	}
}

func TestDate_MonthLabel(t *testing.T) {
	if got := NewDate(2025, time.June, 15).MonthLabel(); got != "June 2025" {
		t.Errorf("MonthLabel() = %q, want %q", got, "June 2025")
	}
}

func TestRange(t *testing.T) {
	from, to := NewDate(2025, time.January, 10), NewDate(2025, time.January, 20)

	// NewRange swaps reversed bounds.
	r := NewRange(to, from)
	if r.From != from || r.To != to {
		t.Errorf("NewRange() did not swap reversed bounds: %+v", r)
	}

	tests := []struct {
		name string
		r    Range
		d    Date
		want bool
	}{
		{"inside", NewRange(from, to), NewDate(2025, time.January, 15), true},
		{"on lower bound", NewRange(from, to), from, true},
		{"on upper bound", NewRange(from, to), to, true},
		{"before", NewRange(from, to), NewDate(2025, time.January, 9), false},
		{"after", NewRange(from, to), NewDate(2025, time.January, 21), false},
		{"open start", Range{To: to}, NewDate(2020, time.June, 1), true},
		{"open end", Range{From: from}, NewDate(2030, time.June, 1), true},
		{"zero range matches all", Range{}, NewDate(1999, time.December, 31), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Contains(tt.d); got != tt.want {
				t.Errorf("Contains(%v) = %t, want %t", tt.d, got, tt.want)
			}
		})
	}
}
