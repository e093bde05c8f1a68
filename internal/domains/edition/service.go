package edition

import "context"

// Service is both sides of the edition domain: the publish workflow and the
// read-side queries backing the public endpoints.
type Service interface {
	// Publish runs the daily publish/update workflow. The caller is
	// already authenticated; Publish handles date resolution, validation,
	// content aggregation, photo resolution, and the idempotent upsert.
	Publish(ctx context.Context, req PublishRequest) (*PublishResult, error)

	// GetEdition returns the full edition for a date, or nil when no
	// edition exists ("no content" is not an error).
	GetEdition(ctx context.Context, date string) (*EditionResponse, error)

	// GetEditionPhoto returns the stored JPEG bytes and label for a date,
	// or nil bytes when no edition exists.
	GetEditionPhoto(ctx context.Context, date string) ([]byte, string, error)

	// GetLatestAvailable returns the most recent published date strictly
	// before today, or yesterday's date string when nothing qualifies, so
	// callers always have a date to display against.
	GetLatestAvailable(ctx context.Context) (string, error)

	// GetCalendarMonth reports availability for every day of the month.
	GetCalendarMonth(ctx context.Context, year, month int) (*CalendarMonth, error)
}
