package period

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/SuzumiyaAoba/toodo/internal/ids"
	"github.com/SuzumiyaAoba/toodo/internal/jsonl"
)

const (
	// PeriodsFile holds one work period per line.
	PeriodsFile = "periods.jsonl"

	lockFile = "periods.lock"
)

// ActivityLinker sets and clears the work period association on
// recorded activities. It is implemented by the todo store.
type ActivityLinker interface {
	AssignActivityPeriod(activityID, periodID string) error
	ClearActivityPeriod(activityID string) error
}

// Ledger stores work periods as JSONL in a data directory.
type Ledger struct {
	dir      string
	readOnly bool
	linker   ActivityLinker
}

// LedgerOptions configures Open.
type LedgerOptions struct {
	// ReadOnly rejects all mutations with ErrReadOnlyLedger.
	ReadOnly bool

	// Linker, if set, enables AssociateActivity and DissociateActivity.
	Linker ActivityLinker
}

// Open opens the period ledger in dir, creating the directory if
// needed.
func Open(dir string, opts LedgerOptions) (*Ledger, error) {
	if dir == "" {
		return nil, ErrNoLedger
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating ledger directory: %w", err)
	}
	return &Ledger{dir: dir, readOnly: opts.ReadOnly, linker: opts.Linker}, nil
}

// Dir returns the ledger's data directory.
func (l *Ledger) Dir() string {
	return l.dir
}

func (l *Ledger) withLock(fn func() error) error {
	return jsonl.WithFileLock(filepath.Join(l.dir, lockFile), fn)
}

// update runs fn under the ledger's exclusive lock, rejecting the
// mutation up front when the ledger is read-only.
func (l *Ledger) update(fn func() error) error {
	if l.readOnly {
		return ErrReadOnlyLedger
	}
	return l.withLock(fn)
}

func (l *Ledger) periodsPath() string {
	return filepath.Join(l.dir, PeriodsFile)
}

func (l *Ledger) readPeriods() ([]WorkPeriod, error) {
	periods, err := jsonl.ReadFile[WorkPeriod](l.periodsPath())
	if err != nil {
		return nil, fmt.Errorf("reading periods: %w", err)
	}
	return periods, nil
}

func (l *Ledger) writePeriods(periods []WorkPeriod) error {
	if err := jsonl.WriteFile(l.periodsPath(), periods); err != nil {
		return fmt.Errorf("writing periods: %w", err)
	}
	return nil
}

// CreatePeriod schedules a new period. It fails with
// ErrOverlappingPeriod when the interval overlaps any existing period
// on the same day.
func (l *Ledger) CreatePeriod(name string, start, end time.Time) (*WorkPeriod, error) {
	if name == "" {
		return nil, ErrEmptyPeriodName
	}
	created, err := NewWorkPeriod(name, start, end)
	if err != nil {
		return nil, err
	}

	err = l.update(func() error {
		periods, err := l.readPeriods()
		if err != nil {
			return err
		}
		if conflict := findOverlap(periods, created, ""); conflict != nil {
			return fmt.Errorf("%w: %q (%s)", ErrOverlappingPeriod,
				conflict.Name, conflict.ID)
		}
		return l.writePeriods(append(periods, *created))
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdatePeriodOptions selects which period fields to change. Nil
// fields are left as they are.
type UpdatePeriodOptions struct {
	Name  *string
	Start *time.Time
	End   *time.Time
}

// UpdatePeriod modifies a period. A rescheduled interval is re-checked
// for overlap against every other period.
func (l *Ledger) UpdatePeriod(id string, opts UpdatePeriodOptions) (*WorkPeriod, error) {
	var updated *WorkPeriod
	err := l.update(func() error {
		periods, err := l.readPeriods()
		if err != nil {
			return err
		}
		fullID, err := resolvePeriodID(periods, id)
		if err != nil {
			return err
		}

		for i := range periods {
			if periods[i].ID != fullID {
				continue
			}
			if opts.Name != nil {
				if err := periods[i].Rename(*opts.Name); err != nil {
					return err
				}
			}
			if opts.Start != nil || opts.End != nil {
				start := periods[i].StartTime
				end := periods[i].EndTime
				if opts.Start != nil {
					start = *opts.Start
				}
				if opts.End != nil {
					end = *opts.End
				}
				if err := periods[i].Reschedule(start, end); err != nil {
					return err
				}
				if conflict := findOverlap(periods, &periods[i], fullID); conflict != nil {
					return fmt.Errorf("%w: %q (%s)", ErrOverlappingPeriod,
						conflict.Name, conflict.ID)
				}
			}
			period := periods[i]
			updated = &period
			return l.writePeriods(periods)
		}
		return fmt.Errorf("%w: %s", ErrPeriodNotFound, id)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeletePeriod removes a period. Activity associations pointing at the
// deleted period are left in place; they dangle harmlessly and are
// skipped by statistics.
func (l *Ledger) DeletePeriod(id string) error {
	return l.update(func() error {
		periods, err := l.readPeriods()
		if err != nil {
			return err
		}
		fullID, err := resolvePeriodID(periods, id)
		if err != nil {
			return err
		}

		remaining := make([]WorkPeriod, 0, len(periods))
		for _, period := range periods {
			if period.ID != fullID {
				remaining = append(remaining, period)
			}
		}
		return l.writePeriods(remaining)
	})
}

// ShowPeriod returns a single period by ID or unique ID prefix.
func (l *Ledger) ShowPeriod(id string) (*WorkPeriod, error) {
	periods, err := l.readPeriods()
	if err != nil {
		return nil, err
	}
	fullID, err := resolvePeriodID(periods, id)
	if err != nil {
		return nil, err
	}
	for _, period := range periods {
		if period.ID == fullID {
			return &period, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPeriodNotFound, id)
}

// ListPeriodsFilter narrows ListPeriods by date range. Both bounds are
// inclusive of the days they name.
type ListPeriodsFilter struct {
	From *time.Time
	To   *time.Time
}

// ListPeriods returns periods matching the filter, ordered by start
// time.
func (l *Ledger) ListPeriods(filter ListPeriodsFilter) ([]WorkPeriod, error) {
	periods, err := l.readPeriods()
	if err != nil {
		return nil, err
	}

	matched := make([]WorkPeriod, 0, len(periods))
	for _, period := range periods {
		if filter.From != nil && period.Date.Before(Midnight(*filter.From)) {
			continue
		}
		if filter.To != nil && period.Date.After(Midnight(*filter.To)) {
			continue
		}
		matched = append(matched, period)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].StartTime.Before(matched[j].StartTime)
	})
	return matched, nil
}

// ResolvePeriodID expands an ID prefix to a full period ID.
func (l *Ledger) ResolvePeriodID(prefix string) (string, error) {
	periods, err := l.readPeriods()
	if err != nil {
		return "", err
	}
	return resolvePeriodID(periods, prefix)
}

// AssociateActivity attributes a recorded activity to a period. The
// activity's timestamp is not required to fall inside the period.
func (l *Ledger) AssociateActivity(activityID, periodID string) error {
	if l.linker == nil {
		return ErrNoLedger
	}
	period, err := l.ShowPeriod(periodID)
	if err != nil {
		return err
	}
	return l.linker.AssignActivityPeriod(activityID, period.ID)
}

// DissociateActivity removes an activity's period attribution.
func (l *Ledger) DissociateActivity(activityID string) error {
	if l.linker == nil {
		return ErrNoLedger
	}
	return l.linker.ClearActivityPeriod(activityID)
}

func resolvePeriodID(periods []WorkPeriod, prefix string) (string, error) {
	if prefix == "" {
		return "", ErrPeriodNotFound
	}

	periodIDs := make([]string, 0, len(periods))
	for _, period := range periods {
		periodIDs = append(periodIDs, period.ID)
	}

	match, found, ambiguous := ids.MatchPrefixNormalized(ids.NormalizeUniqueIDs(periodIDs), prefix)
	if !found {
		return "", fmt.Errorf("%w: %s", ErrPeriodNotFound, prefix)
	}
	if ambiguous {
		return "", fmt.Errorf("%w: %s", ErrAmbiguousPeriodIDPrefix, prefix)
	}
	return match, nil
}

// findOverlap returns the first period overlapping candidate,
// ignoring the period with excludeID.
func findOverlap(periods []WorkPeriod, candidate *WorkPeriod, excludeID string) *WorkPeriod {
	for i := range periods {
		if periods[i].ID == excludeID || periods[i].ID == candidate.ID {
			continue
		}
		if !SameDay(periods[i].Date, candidate.Date) {
			continue
		}
		if periods[i].OverlapsWith(candidate) {
			period := periods[i]
			return &period
		}
	}
	return nil
}
