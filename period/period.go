// Package period manages scheduled work periods: named time intervals
// on a calendar day that work activities can be attributed to, with
// overlap-free scheduling per day and utilization statistics.
package period

import (
	"fmt"
	"time"

	"github.com/SuzumiyaAoba/toodo/internal/ids"
)

// WorkPeriod is a scheduled block of time on a single day.
type WorkPeriod struct {
	// ID is a unique identifier for the period.
	ID string `json:"id"`

	// Name is a human-readable label, such as "morning focus".
	Name string `json:"name"`

	// Date is midnight at the start of the period's calendar day.
	Date time.Time `json:"date"`

	// StartTime is the inclusive start of the period.
	StartTime time.Time `json:"start_time"`

	// EndTime is the exclusive end of the period.
	EndTime time.Time `json:"end_time"`

	// CreatedAt is when the period was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the period was last modified.
	UpdatedAt time.Time `json:"updated_at"`
}

// NewWorkPeriod constructs a period on the day of start. The interval
// is half-open [start, end) and must be non-empty.
func NewWorkPeriod(name string, start, end time.Time) (*WorkPeriod, error) {
	if err := validateInterval(start, end); err != nil {
		return nil, err
	}

	now := time.Now()
	return &WorkPeriod{
		ID:        ids.GenerateWithTimestamp(name, now, ids.DefaultLength),
		Name:      name,
		Date:      Midnight(start),
		StartTime: start,
		EndTime:   end,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Duration returns the length of the period.
func (p *WorkPeriod) Duration() time.Duration {
	return p.EndTime.Sub(p.StartTime)
}

// Reschedule replaces the period's interval, moving it to the day of
// start. The period is unchanged if the new interval is invalid.
func (p *WorkPeriod) Reschedule(start, end time.Time) error {
	if err := validateInterval(start, end); err != nil {
		return err
	}
	p.Date = Midnight(start)
	p.StartTime = start
	p.EndTime = end
	p.UpdatedAt = time.Now()
	return nil
}

// Rename replaces the period's name.
func (p *WorkPeriod) Rename(name string) error {
	if name == "" {
		return ErrEmptyPeriodName
	}
	p.Name = name
	p.UpdatedAt = time.Now()
	return nil
}

// OverlapsWith reports whether two periods share any instant.
func (p *WorkPeriod) OverlapsWith(other *WorkPeriod) bool {
	return Overlaps(p.StartTime, p.EndTime, other.StartTime, other.EndTime)
}

func validateInterval(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: start and end must be set", ErrInvalidInterval)
	}
	if !start.Before(end) {
		return fmt.Errorf("%w: start %s is not before end %s",
			ErrInvalidInterval, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	if !SameDay(start, end) && !end.Equal(Midnight(end)) {
		return fmt.Errorf("%w: period must fall within a single day", ErrInvalidInterval)
	}
	return nil
}
