package age

import (
	"testing"
	"time"
)

func TestWorkedData(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		accrued int64
		last    time.Time
		active  bool
		want    time.Duration
		ok      bool
	}{
		{
			name: "no data",
		},
		{
			name:    "accrued only",
			accrued: 3600,
			want:    time.Hour,
			ok:      true,
		},
		{
			name:    "active adds live interval",
			accrued: 3600,
			last:    now.Add(-30 * time.Minute),
			active:  true,
			want:    time.Hour + 30*time.Minute,
			ok:      true,
		},
		{
			name:   "active with no accrual",
			last:   now.Add(-time.Minute),
			active: true,
			want:   time.Minute,
			ok:     true,
		},
		{
			name:    "active with future timestamp ignores negative interval",
			accrued: 60,
			last:    now.Add(time.Minute),
			active:  true,
			want:    time.Minute,
			ok:      true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := WorkedData(tc.accrued, tc.last, tc.active, now)
			if ok != tc.ok {
				t.Fatalf("expected ok=%v, got %v", tc.ok, ok)
			}
			if got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestAgeData(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	if _, ok := AgeData(time.Time{}, now); ok {
		t.Error("expected no age for zero createdAt")
	}

	got, ok := AgeData(now.Add(-2*time.Hour), now)
	if !ok || got != 2*time.Hour {
		t.Errorf("expected 2h age, got %v ok=%v", got, ok)
	}

	got, ok = AgeData(now.Add(time.Hour), now)
	if !ok || got != 0 {
		t.Errorf("expected clamped zero age for future createdAt, got %v ok=%v", got, ok)
	}
}
