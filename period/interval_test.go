package period

import (
	"testing"
	"time"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 2, hour, min, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"disjoint", at(9, 0), at(10, 0), at(11, 0), at(12, 0), false},
		{"touching endpoints", at(10, 0), at(12, 0), at(12, 0), at(13, 0), false},
		{"partial overlap", at(10, 0), at(12, 0), at(11, 0), at(13, 0), true},
		{"contained", at(9, 0), at(17, 0), at(10, 0), at(11, 0), true},
		{"identical", at(9, 0), at(10, 0), at(9, 0), at(10, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			// Overlap is symmetric.
			if got := Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd); got != tt.want {
				t.Errorf("Overlaps (swapped) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContains(t *testing.T) {
	start, end := at(9, 0), at(10, 0)

	if !Contains(start, end, start) {
		t.Error("expected start to be contained")
	}
	if Contains(start, end, end) {
		t.Error("expected end to be excluded")
	}
	if !Contains(start, end, at(9, 30)) {
		t.Error("expected interior point to be contained")
	}
	if Contains(start, end, at(8, 59)) {
		t.Error("expected earlier point to be excluded")
	}
}

func TestSameDay(t *testing.T) {
	if !SameDay(at(0, 0), at(23, 59)) {
		t.Error("expected same calendar day")
	}
	if SameDay(at(12, 0), at(12, 0).AddDate(0, 0, 1)) {
		t.Error("expected different days")
	}
}

func TestMidnight(t *testing.T) {
	got := Midnight(at(15, 42))
	want := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Midnight = %v, want %v", got, want)
	}
}
