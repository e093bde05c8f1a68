package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/unignoramus11/lumen/internal/domains/edition"
	"github.com/unignoramus11/lumen/internal/shared/response"
	"github.com/unignoramus11/lumen/pkg/logger"
)

// maxPhotoUpload caps the accepted multipart photo size (15MB); the
// compressor shrinks it further before storage.
const maxPhotoUpload = 15 << 20

type EditionHandler struct {
	service edition.Service
}

func NewEditionHandler(service edition.Service) *EditionHandler {
	return &EditionHandler{service: service}
}

// Publish handles POST /publish. Authentication has already happened in the
// auth middleware; this handler parses the multipart form, validates it, and
// delegates to the workflow.
func (h *EditionHandler) Publish(c *gin.Context) {
	req := edition.PublishRequest{
		Date:     c.PostForm("date"),
		Headline: c.PostForm("headline"),
		Label:    c.PostForm("label"),
	}

	if file, err := c.FormFile("photo"); err == nil {
		if file.Size > maxPhotoUpload {
			response.BadRequest(c, "photo exceeds the upload size limit")
			return
		}
		f, err := file.Open()
		if err != nil {
			response.BadRequest(c, "cannot read uploaded photo")
			return
		}
		defer f.Close()
		req.PhotoBytes, err = io.ReadAll(io.LimitReader(f, maxPhotoUpload))
		if err != nil {
			response.BadRequest(c, "cannot read uploaded photo")
			return
		}
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Publish(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Daily handles GET /daily?date=. A date with no edition responds 200 with
// a null body; only a malformed date or an internal failure is an error.
func (h *EditionHandler) Daily(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		response.BadRequest(c, "date query parameter is required")
		return
	}

	e, err := h.service.GetEdition(c.Request.Context(), date)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if e == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, e)
}

// DailyPhoto handles GET /daily/photo?date=, serving the stored JPEG raw.
// This is the target of the derived image references in the calendar view.
func (h *EditionHandler) DailyPhoto(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		response.BadRequest(c, "date query parameter is required")
		return
	}

	photo, label, err := h.service.GetEditionPhoto(c.Request.Context(), date)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if photo == nil {
		response.NotFound(c, "no edition for this date")
		return
	}

	c.Header("X-Photo-Label", label)
	c.Data(http.StatusOK, "image/jpeg", photo)
}

// LatestDate handles GET /latest-date and always succeeds.
func (h *EditionHandler) LatestDate(c *gin.Context) {
	date, err := h.service.GetLatestAvailable(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"date": date})
}

// Calendar handles GET /calendar?year=&month=.
func (h *EditionHandler) Calendar(c *gin.Context) {
	year, yearErr := strconv.Atoi(c.Query("year"))
	month, monthErr := strconv.Atoi(c.Query("month"))
	if yearErr != nil || monthErr != nil {
		response.BadRequest(c, "year and month query parameters are required")
		return
	}

	calendar, err := h.service.GetCalendarMonth(c.Request.Context(), year, month)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, calendar)
}

// respondError maps domain errors to status codes. Anything unexpected
// becomes a generic 500 with the detail kept in the logs, not the response.
func (h *EditionHandler) respondError(c *gin.Context, err error) {
	status := edition.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error("edition request failed", err)
		response.InternalServerError(c, "internal server error")
		return
	}
	response.BadRequest(c, err.Error())
}
