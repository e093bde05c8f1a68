// Package edition is the core domain: one published edition per IST
// calendar day, holding the administrator's headline and photo plus the
// aggregated daily content.
package edition

import (
	"time"

	"github.com/unignoramus11/lumen/internal/domains/content"
)

// Photo is the administrator's photograph, stored inline as compressed JPEG
// bytes with its caption.
type Photo struct {
	ImageBytes []byte
	Label      string
}

// Edition is one day's issue. Date is the canonical 'YYYY-MM-DD' key in IST
// and is immutable once created; re-publishing the same date overwrites
// every other field.
type Edition struct {
	Date      string
	Headline  string
	Photo     Photo
	Content   content.Daily
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RangeEntry is the slim per-day projection used by the calendar view, so a
// month's query never transfers photo bytes.
type RangeEntry struct {
	Headline string `json:"headline"`
	Label    string `json:"label"`
}

// CalendarDay is one cell of the calendar response. Unavailable covers both
// future days and past days with no published edition.
type CalendarDay struct {
	Available bool   `json:"available"`
	Headline  string `json:"headline,omitempty"`
	ImageURL  string `json:"imageUrl,omitempty"`
	Label     string `json:"label,omitempty"`
}

// CalendarMonth maps every day of a month to its availability.
type CalendarMonth struct {
	Year  int                    `json:"year"`
	Month int                    `json:"month"`
	Data  map[string]CalendarDay `json:"data"`
}
