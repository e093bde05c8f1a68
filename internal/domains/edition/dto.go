package edition

import (
	"encoding/base64"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/unignoramus11/lumen/internal/domains/content"
)

// PublishRequest is the multipart publish form. Date is optional (empty
// means "today" in IST); PhotoBytes is optional when the date already has a
// stored photo.
type PublishRequest struct {
	Date       string
	Headline   string
	Label      string
	PhotoBytes []byte
}

func (r PublishRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Headline,
			validation.Required.Error("headline is required"),
			validation.Length(1, 500),
		),
		validation.Field(&r.Label,
			validation.Required.Error("label is required"),
			validation.Length(1, 500),
		),
	)
}

// PublishResult reports whether the upsert created a new edition or
// overwrote an existing one.
type PublishResult struct {
	Created bool   `json:"created"`
	Date    string `json:"date"`
	Message string `json:"message"`
}

// PhotoResponse inlines the stored JPEG as a base64 data URL.
type PhotoResponse struct {
	Image string `json:"image"`
	Label string `json:"label"`
}

// EditionResponse is the full read-side document for GET /daily.
type EditionResponse struct {
	Date       string           `json:"date"`
	Headline   string           `json:"headline"`
	Photo      PhotoResponse    `json:"photo"`
	Poem       content.Poem     `json:"poem"`
	Joke       content.Joke     `json:"joke"`
	Activity   content.Activity `json:"activity"`
	CatFact    content.Fact     `json:"catFact"`
	DogFact    content.Fact     `json:"dogFact"`
	TriviaFact content.Fact     `json:"triviaFact"`
	Comic      content.Comic    `json:"comic"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

// ToResponse flattens an Edition into the wire shape.
func ToResponse(e *Edition) *EditionResponse {
	if e == nil {
		return nil
	}
	return &EditionResponse{
		Date:     e.Date,
		Headline: e.Headline,
		Photo: PhotoResponse{
			Image: "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(e.Photo.ImageBytes),
			Label: e.Photo.Label,
		},
		Poem:       e.Content.Poem,
		Joke:       e.Content.Joke,
		Activity:   e.Content.Activity,
		CatFact:    e.Content.CatFact,
		DogFact:    e.Content.DogFact,
		TriviaFact: e.Content.TriviaFact,
		Comic:      e.Content.Comic,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
