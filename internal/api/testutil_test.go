package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bookswap/bookswap/internal/models"
)

// newTestRouter builds a TestMode engine. When actor is non-nil, a stub
// middleware injects it as the authenticated user, standing in for
// AuthMiddleware.
func newTestRouter(actor *models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	if actor != nil {
		router.Use(func(c *gin.Context) {
			c.Set("userID", actor.ID)
			c.Set("userName", actor.Name)
			c.Set("userEmail", actor.Email)
		})
	}
	return router
}

// performRequest serializes body (when non-nil) and runs the request
// through the router.
func performRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		err := json.NewEncoder(&buf).Encode(body)
		assert.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// testActor returns a user with a fresh id for use as the caller
func testActor(name string) *models.User {
	return &models.User{
		ID:    uuid.New(),
		Name:  name,
		Email: name + "@example.com",
	}
}
