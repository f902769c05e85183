package age

import "time"

// WorkedData computes the displayable tracked duration for an item and
// whether any timing data exists. Accrued seconds cover completed work
// intervals; when the item is actively tracking, the live interval since
// lastStateChangeAt is added on top.
func WorkedData(accruedSeconds int64, lastStateChangeAt time.Time, active bool, now time.Time) (time.Duration, bool) {
	total := time.Duration(accruedSeconds) * time.Second

	if active {
		if lastStateChangeAt.IsZero() {
			return total, accruedSeconds > 0
		}
		live := now.Sub(lastStateChangeAt)
		if live > 0 {
			total += live
		}
		return total, true
	}

	if accruedSeconds > 0 {
		return total, true
	}

	return 0, false
}

// AgeData computes the display age of an entity and whether it is known.
func AgeData(createdAt time.Time, now time.Time) (time.Duration, bool) {
	if createdAt.IsZero() {
		return 0, false
	}
	age := now.Sub(createdAt)
	if age < 0 {
		age = 0
	}
	return age, true
}
