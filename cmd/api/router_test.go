package main

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	authHandler "github.com/unignoramus11/lumen/internal/domains/auth/handler"
	contentHandler "github.com/unignoramus11/lumen/internal/domains/content/handler"
	editionHandler "github.com/unignoramus11/lumen/internal/domains/edition/handler"
	"github.com/unignoramus11/lumen/pkg/container"
	"github.com/unignoramus11/lumen/pkg/jwt"
)

// Handlers can be constructed without live services when only the route
// table is inspected.
func newRouteTable(t *testing.T) map[string]string {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c := &container.Container{
		JWTManager:     jwt.NewManager("test-secret"),
		AuthHandler:    authHandler.NewAuthHandler(nil),
		EditionHandler: editionHandler.NewEditionHandler(nil),
		ContentHandler: contentHandler.NewContentHandler(nil),
	}

	routes := map[string]string{}
	for _, route := range SetupRouter(c).Routes() {
		routes[route.Path] = route.Method
	}
	return routes
}

func TestRegisteredAPIPaths(t *testing.T) {
	routes := newRouteTable(t)

	expected := map[string]string{
		"/api/v1/health":      http.MethodGet,
		"/api/v1/auth/login":  http.MethodPost,
		"/api/v1/publish":     http.MethodPost,
		"/api/v1/daily":       http.MethodGet,
		"/api/v1/daily/photo": http.MethodGet,
		"/api/v1/latest-date": http.MethodGet,
		"/api/v1/calendar":    http.MethodGet,
		"/api/v1/poem":        http.MethodGet,
		"/api/v1/joke":        http.MethodGet,
		"/api/v1/activity":    http.MethodGet,
		"/api/v1/cat-fact":    http.MethodGet,
		"/api/v1/dog-fact":    http.MethodGet,
		"/api/v1/trivia-fact": http.MethodGet,
		"/api/v1/comic":       http.MethodGet,
	}
	for path, method := range expected {
		assert.Equal(t, method, routes[path], "path %s", path)
	}
	assert.Len(t, routes, len(expected), "no undocumented routes")
}
