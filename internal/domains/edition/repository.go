package edition

import "context"

// Repository is the edition store: one document per canonical date.
// Absence is signalled with a nil edition and a nil error, never a sentinel.
type Repository interface {
	// FindByDate returns the edition for the given canonical date, or nil.
	FindByDate(ctx context.Context, date string) (*Edition, error)

	// Upsert inserts the edition or fully overwrites the existing row for
	// its date, atomically. Reports whether a new row was created.
	Upsert(ctx context.Context, e *Edition) (created bool, err error)

	// FindLatestBefore returns the most recent edition strictly earlier
	// than the given date, or nil.
	FindLatestBefore(ctx context.Context, date string) (*Edition, error)

	// FindRange returns the slim calendar projection for every published
	// day of the month, keyed by canonical date.
	FindRange(ctx context.Context, year, month int) (map[string]RangeEntry, error)
}
