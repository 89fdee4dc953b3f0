package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bookswap/bookswap/internal/auth"
	"github.com/bookswap/bookswap/internal/database"
	"github.com/bookswap/bookswap/internal/models"
)

func setupMiddlewareRouter(store *MockStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(AuthMiddleware(store))
	router.GET("/test", func(c *gin.Context) {
		userID, _ := c.Get("userID")
		name, _ := c.Get("userName")
		c.JSON(http.StatusOK, gin.H{"userID": userID, "name": name})
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	auth.InitJWTKey([]byte("test-secret-key-for-api-tests"))

	user := &models.User{
		ID:    uuid.New(),
		Name:  "Carol Reader",
		Email: "carol@example.com",
	}
	token, _, err := auth.GenerateToken(user)
	assert.NoError(t, err)

	deletedUser := &models.User{ID: uuid.New(), Name: "Ghost"}
	deletedToken, _, err := auth.GenerateToken(deletedUser)
	assert.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		cookie     string
		wantStatus int
	}{
		{
			name:       "valid bearer header",
			header:     "Bearer " + token,
			wantStatus: http.StatusOK,
		},
		{
			name:       "valid auth cookie",
			cookie:     token,
			wantStatus: http.StatusOK,
		},
		{
			name:       "no credential",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed header",
			header:     "Token " + token,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "garbage token",
			header:     "Bearer not.a.jwt",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "subject no longer exists",
			header:     "Bearer " + deletedToken,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockStore)
			store.On("GetUserByID", user.ID).Return(user, nil)
			store.On("GetUserByID", deletedUser.ID).Return(nil, database.ErrUserNotFound)
			router := setupMiddlewareRouter(store)

			req := httptest.NewRequest("GET", "/test", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: AuthTokenCookie, Value: tt.cookie})
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestAuthMiddlewareHeaderBeatsCookie(t *testing.T) {
	auth.InitJWTKey([]byte("test-secret-key-for-api-tests"))

	user := &models.User{ID: uuid.New(), Name: "Carol Reader"}
	token, _, err := auth.GenerateToken(user)
	assert.NoError(t, err)

	store := new(MockStore)
	store.On("GetUserByID", user.ID).Return(user, nil)
	router := setupMiddlewareRouter(store)

	// A valid header wins even with a junk cookie alongside
	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.AddCookie(&http.Cookie{Name: AuthTokenCookie, Value: "junk"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
