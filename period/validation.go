package period

import "errors"

var (
	// ErrInvalidInterval indicates a period interval whose start is not
	// strictly before its end.
	ErrInvalidInterval = errors.New("invalid period interval")

	// ErrEmptyPeriodName indicates an empty period name.
	ErrEmptyPeriodName = errors.New("period name cannot be empty")

	// ErrOverlappingPeriod indicates a period that overlaps an existing
	// period on the same day.
	ErrOverlappingPeriod = errors.New("period overlaps an existing period")

	// ErrPeriodNotFound indicates a period ID or prefix that matched
	// nothing.
	ErrPeriodNotFound = errors.New("period not found")

	// ErrAmbiguousPeriodIDPrefix indicates a period ID prefix that
	// matched more than one period.
	ErrAmbiguousPeriodIDPrefix = errors.New("ambiguous period ID prefix")

	// ErrNoLedger indicates an operation attempted without an open
	// ledger.
	ErrNoLedger = errors.New("no period ledger open")

	// ErrReadOnlyLedger indicates a mutation attempted on a read-only
	// ledger.
	ErrReadOnlyLedger = errors.New("ledger is read-only")
)
