package ui

import (
	"testing"
	"time"
)

func TestFormatDurationShort(t *testing.T) {
	cases := []struct {
		duration time.Duration
		want     string
	}{
		{-time.Second, "0s"},
		{0, "0s"},
		{45 * time.Second, "45s"},
		{90 * time.Second, "1m"},
		{59 * time.Minute, "59m"},
		{90 * time.Minute, "1h"},
		{25 * time.Hour, "1d"},
	}

	for _, tc := range cases {
		if got := FormatDurationShort(tc.duration); got != tc.want {
			t.Errorf("FormatDurationShort(%v) = %q, want %q", tc.duration, got, tc.want)
		}
	}
}

func TestFormatWorkDuration(t *testing.T) {
	cases := []struct {
		seconds int64
		want    string
	}{
		{0, "0s"},
		{-5, "0s"},
		{45, "45s"},
		{90, "1m"},
		{3600, "1h 0m"},
		{5400, "1h 30m"},
		{3661, "1h 1m"},
	}

	for _, tc := range cases {
		if got := FormatWorkDuration(tc.seconds); got != tc.want {
			t.Errorf("FormatWorkDuration(%d) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestFormatTimeAgo(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	if got := FormatTimeAgo(now.Add(-2*time.Minute), now); got != "2m ago" {
		t.Errorf("expected '2m ago', got %q", got)
	}
	if got := FormatTimeAgo(time.Time{}, now); got != "-" {
		t.Errorf("expected '-', got %q", got)
	}
}
