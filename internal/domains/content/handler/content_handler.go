package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unignoramus11/lumen/internal/domains/content"
)

// ContentHandler proxies each adapter as its own endpoint. The contract is
// unusual on purpose: the fallback payload is the response body even on 500,
// so a client always has something to render and the status only says
// whether the upstream was live.
type ContentHandler struct {
	service content.Service
}

func NewContentHandler(service content.Service) *ContentHandler {
	return &ContentHandler{service: service}
}

func respond(c *gin.Context, value interface{}, err error) {
	status := http.StatusOK
	if err != nil {
		status = http.StatusInternalServerError
	}
	c.JSON(status, value)
}

func (h *ContentHandler) Poem(c *gin.Context) {
	poem, err := h.service.FetchPoem(c.Request.Context())
	respond(c, poem, err)
}

func (h *ContentHandler) Joke(c *gin.Context) {
	joke, err := h.service.FetchJoke(c.Request.Context())
	respond(c, joke, err)
}

func (h *ContentHandler) Activity(c *gin.Context) {
	activity, err := h.service.FetchActivity(c.Request.Context())
	respond(c, activity, err)
}

func (h *ContentHandler) CatFact(c *gin.Context) {
	fact, err := h.service.FetchCatFact(c.Request.Context())
	respond(c, fact, err)
}

func (h *ContentHandler) DogFact(c *gin.Context) {
	fact, err := h.service.FetchDogFact(c.Request.Context())
	respond(c, fact, err)
}

func (h *ContentHandler) TriviaFact(c *gin.Context) {
	fact, err := h.service.FetchTriviaFact(c.Request.Context())
	respond(c, fact, err)
}

func (h *ContentHandler) Comic(c *gin.Context) {
	comic, err := h.service.FetchComic(c.Request.Context())
	respond(c, comic, err)
}
