package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/unignoramus11/lumen/internal/domains/content"
	"github.com/unignoramus11/lumen/internal/domains/edition"
	"github.com/unignoramus11/lumen/pkg/dateutil"
	"github.com/unignoramus11/lumen/pkg/logger"
)

// PhotoCompressor bounds an uploaded photo; satisfied by
// storage.ImageCompressor.
type PhotoCompressor interface {
	Compress(data []byte) []byte
}

type editionService struct {
	repo          edition.Repository
	contentSvc    content.Service
	compressor    PhotoCompressor
	publicBaseURL string
}

// NewEditionService wires the publish workflow and the read-side queries.
// publicBaseURL is the externally visible origin used to derive photo links
// in the calendar view.
func NewEditionService(repo edition.Repository, contentSvc content.Service, compressor PhotoCompressor, publicBaseURL string) edition.Service {
	return &editionService{
		repo:          repo,
		contentSvc:    contentSvc,
		compressor:    compressor,
		publicBaseURL: publicBaseURL,
	}
}

// Publish is the daily publish/update workflow. The steps are strictly
// ordered: resolve the canonical date, validate, aggregate content, resolve
// the photo, upsert. Validation happens before any external call is made.
func (s *editionService) Publish(ctx context.Context, req edition.PublishRequest) (*edition.PublishResult, error) {
	date := dateutil.Today()
	if req.Date != "" {
		normalized, err := dateutil.Normalize(req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", edition.ErrInvalidDate, req.Date)
		}
		date = normalized
	}

	// The DTO is ozzo-validated at the handler layer; the sentinel checks
	// here keep the workflow safe for non-HTTP callers too.
	if strings.TrimSpace(req.Headline) == "" {
		return nil, edition.ErrHeadlineRequired
	}
	if strings.TrimSpace(req.Label) == "" {
		return nil, edition.ErrLabelRequired
	}
	if dateutil.IsFuture(date) {
		return nil, edition.ErrFutureDate
	}

	// The existing edition is looked up before aggregation so a missing
	// photo on a first publish is rejected without burning external calls.
	existing, err := s.repo.FindByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("look up edition %s: %w", date, err)
	}
	if len(req.PhotoBytes) == 0 && existing == nil {
		return nil, edition.ErrPhotoRequired
	}

	// Every publish re-fetches all seven sources fresh; the decorative
	// content of an edited past day is replaced, not preserved.
	daily := s.contentSvc.FetchAll(ctx)

	photo := edition.Photo{Label: req.Label}
	if len(req.PhotoBytes) > 0 {
		photo.ImageBytes = s.compressor.Compress(req.PhotoBytes)
	} else {
		photo.ImageBytes = existing.Photo.ImageBytes
	}

	created, err := s.repo.Upsert(ctx, &edition.Edition{
		Date:     date,
		Headline: req.Headline,
		Photo:    photo,
		Content:  daily,
	})
	if err != nil {
		return nil, fmt.Errorf("persist edition %s: %w", date, err)
	}

	message := "Edition updated"
	if created {
		message = "Edition published"
	}
	logger.Info("edition persisted", map[string]interface{}{"date": date, "created": created})

	return &edition.PublishResult{Created: created, Date: date, Message: message}, nil
}

func (s *editionService) GetEdition(ctx context.Context, date string) (*edition.EditionResponse, error) {
	normalized, err := dateutil.Normalize(date)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", edition.ErrInvalidDate, date)
	}

	e, err := s.repo.FindByDate(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("look up edition %s: %w", normalized, err)
	}
	return edition.ToResponse(e), nil
}

func (s *editionService) GetEditionPhoto(ctx context.Context, date string) ([]byte, string, error) {
	normalized, err := dateutil.Normalize(date)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s", edition.ErrInvalidDate, date)
	}

	e, err := s.repo.FindByDate(ctx, normalized)
	if err != nil {
		return nil, "", fmt.Errorf("look up edition %s: %w", normalized, err)
	}
	if e == nil {
		return nil, "", nil
	}
	return e.Photo.ImageBytes, e.Photo.Label, nil
}

// GetLatestAvailable never fails to produce a date: with an empty store the
// caller still gets yesterday's key to display against.
func (s *editionService) GetLatestAvailable(ctx context.Context) (string, error) {
	latest, err := s.repo.FindLatestBefore(ctx, dateutil.Today())
	if err != nil {
		return "", fmt.Errorf("look up latest edition: %w", err)
	}
	if latest == nil {
		return dateutil.Yesterday(), nil
	}
	return latest.Date, nil
}

func (s *editionService) GetCalendarMonth(ctx context.Context, year, month int) (*edition.CalendarMonth, error) {
	if year < 1970 || year > 9999 || month < 1 || month > 12 {
		return nil, edition.ErrInvalidMonth
	}

	entries, err := s.repo.FindRange(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("load calendar %04d-%02d: %w", year, month, err)
	}

	data := map[string]edition.CalendarDay{}
	for _, day := range dateutil.MonthDays(year, month) {
		entry, published := entries[day]
		if !published || dateutil.IsFuture(day) {
			data[day] = edition.CalendarDay{Available: false}
			continue
		}
		data[day] = edition.CalendarDay{
			Available: true,
			Headline:  entry.Headline,
			Label:     entry.Label,
			ImageURL:  fmt.Sprintf("%s/api/v1/daily/photo?date=%s", s.publicBaseURL, day),
		}
	}

	return &edition.CalendarMonth{Year: year, Month: month, Data: data}, nil
}
