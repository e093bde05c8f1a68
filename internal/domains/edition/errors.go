package edition

import (
	"errors"
	"net/http"
)

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrFutureDate       = errors.New("cannot publish an edition for a future date")
	ErrHeadlineRequired = errors.New("headline is required")
	ErrLabelRequired    = errors.New("photo label is required")
	// ErrPhotoRequired fires on the first publish of a date without an
	// upload. On later publishes the stored photo is carried forward.
	ErrPhotoRequired = errors.New("a photo is required for the first publish of a date")

	ErrInvalidMonth = errors.New("invalid year or month")
)

// HTTPStatus maps a domain error to the status the handler responds with.
// Validation failures are the caller's fault; everything unexpected is a
// generic internal error.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrFutureDate),
		errors.Is(err, ErrHeadlineRequired),
		errors.Is(err, ErrLabelRequired),
		errors.Is(err, ErrPhotoRequired),
		errors.Is(err, ErrInvalidMonth):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
