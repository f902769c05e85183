package period

import (
	"fmt"
	"time"
)

// ActivityRecord is the slice of a work activity that statistics care
// about. The todo store's activities are adapted into this shape by
// the caller.
type ActivityRecord struct {
	ID           string
	TodoID       string
	WorkTime     *int64
	WorkPeriodID string
	CreatedAt    time.Time
}

// ActivitySource provides the recorded activities to aggregate.
type ActivitySource interface {
	ActivityRecords() ([]ActivityRecord, error)
}

// TagSource provides the tag IDs carried by a todo, for tag filtering
// and per-tag breakdowns.
type TagSource interface {
	TagIDsForTodo(todoID string) ([]string, error)
}

// StatsFilter narrows ComputeStatistics. All fields are optional; an
// empty filter covers every period and every attributed activity.
type StatsFilter struct {
	From      *time.Time
	To        *time.Time
	PeriodIDs []string
	TodoIDs   []string
	TagIDs    []string
}

// Statistics summarizes scheduled versus worked time.
type Statistics struct {
	// TotalPeriodTime is the summed length of the selected periods,
	// in seconds.
	TotalPeriodTime int64 `json:"total_period_time"`

	// TotalActivityTime is the summed banked work time of the selected
	// activities, in seconds.
	TotalActivityTime int64 `json:"total_activity_time"`

	// UtilizationRate is TotalActivityTime / TotalPeriodTime, or 0
	// when no period time was selected.
	UtilizationRate float64 `json:"utilization_rate"`

	// PeriodCount is the number of selected periods.
	PeriodCount int `json:"period_count"`

	// ActivityCount is the number of selected activities.
	ActivityCount int `json:"activity_count"`

	// TimeByTodo sums activity time per owning todo, in seconds.
	TimeByTodo map[string]int64 `json:"time_by_todo"`

	// TimeByTag sums activity time per tag, in seconds. An activity
	// counts toward every tag its todo carries, so the per-tag sums
	// can exceed TotalActivityTime.
	TimeByTag map[string]int64 `json:"time_by_tag"`
}

// ComputeStatistics aggregates banked work time against scheduled
// period time. Only activities attributed to a selected period and
// carrying a banked work time contribute.
func (l *Ledger) ComputeStatistics(filter StatsFilter, activities ActivitySource, tags TagSource) (*Statistics, error) {
	periods, err := l.selectPeriods(filter)
	if err != nil {
		return nil, err
	}

	selected := make(map[string]bool, len(periods))
	var totalPeriodTime int64
	for _, period := range periods {
		selected[period.ID] = true
		totalPeriodTime += int64(period.Duration() / time.Second)
	}

	records, err := activities.ActivityRecords()
	if err != nil {
		return nil, fmt.Errorf("reading activities: %w", err)
	}

	todoFilter := toSet(filter.TodoIDs)
	tagFilter := toSet(filter.TagIDs)
	todoTags := make(map[string][]string)

	stats := &Statistics{
		PeriodCount: len(periods),
		TimeByTodo:  make(map[string]int64),
		TimeByTag:   make(map[string]int64),
	}

	for _, record := range records {
		if record.WorkTime == nil || !selected[record.WorkPeriodID] {
			continue
		}
		if todoFilter != nil && !todoFilter[record.TodoID] {
			continue
		}

		tagIDs, ok := todoTags[record.TodoID]
		if !ok {
			tagIDs, err = tags.TagIDsForTodo(record.TodoID)
			if err != nil {
				return nil, fmt.Errorf("reading tags for %s: %w", record.TodoID, err)
			}
			todoTags[record.TodoID] = tagIDs
		}
		if tagFilter != nil && !anyMember(tagIDs, tagFilter) {
			continue
		}

		stats.ActivityCount++
		stats.TotalActivityTime += *record.WorkTime
		stats.TimeByTodo[record.TodoID] += *record.WorkTime
		for _, tagID := range tagIDs {
			stats.TimeByTag[tagID] += *record.WorkTime
		}
	}

	stats.TotalPeriodTime = totalPeriodTime
	if totalPeriodTime > 0 {
		stats.UtilizationRate = float64(stats.TotalActivityTime) / float64(totalPeriodTime)
	}
	return stats, nil
}

// selectPeriods applies the filter's date range and period IDs.
// Period IDs may be unique prefixes.
func (l *Ledger) selectPeriods(filter StatsFilter) ([]WorkPeriod, error) {
	periods, err := l.ListPeriods(ListPeriodsFilter{From: filter.From, To: filter.To})
	if err != nil {
		return nil, err
	}
	if len(filter.PeriodIDs) == 0 {
		return periods, nil
	}

	wanted := make(map[string]bool, len(filter.PeriodIDs))
	for _, prefix := range filter.PeriodIDs {
		fullID, err := resolvePeriodID(periods, prefix)
		if err != nil {
			return nil, err
		}
		wanted[fullID] = true
	}

	matched := make([]WorkPeriod, 0, len(wanted))
	for _, period := range periods {
		if wanted[period.ID] {
			matched = append(matched, period)
		}
	}
	return matched, nil
}

func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, value := range values {
		set[value] = true
	}
	return set
}

func anyMember(values []string, set map[string]bool) bool {
	for _, value := range values {
		if set[value] {
			return true
		}
	}
	return false
}
