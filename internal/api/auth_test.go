package api

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bookswap/bookswap/internal/auth"
	"github.com/bookswap/bookswap/internal/database"
	"github.com/bookswap/bookswap/internal/models"
)

func setupAuthRouter() (*MockStore, *gin.Engine) {
	store := new(MockStore)
	handler := NewAuthHandler(store)

	router := newTestRouter(nil)
	router.POST("/auth/register", handler.Register)
	router.POST("/auth/login", handler.Login)

	return store, router
}

func TestRegister(t *testing.T) {
	store, router := setupAuthRouter()

	created := &models.User{
		ID:        uuid.New(),
		Name:      "Carol Reader",
		Email:     "carol@example.com",
		CreatedAt: time.Now().UTC(),
	}

	store.On("CreateUser", "Carol Reader", "carol@example.com", mock.AnythingOfType("string")).
		Return(created, nil)
	store.On("CreateNotification", created.ID, mock.Anything, mock.Anything, models.NotifyWelcome, (*uuid.UUID)(nil)).
		Return(&models.Notification{ID: uuid.New()}, nil)

	w := performRequest(t, router, "POST", "/auth/register", models.UserRegistration{
		Name:     "Carol Reader",
		Email:    "carol@example.com",
		Password: "password123",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp models.UserResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, created.ID, resp.ID)
	assert.Equal(t, "carol@example.com", resp.Email)
	// A welcome notification is part of registration
	store.AssertNumberOfCalls(t, "CreateNotification", 1)
	store.AssertExpectations(t)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store, router := setupAuthRouter()

	store.On("CreateUser", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, database.ErrUserAlreadyExists)

	w := performRequest(t, router, "POST", "/auth/register", models.UserRegistration{
		Name:     "Carol Reader",
		Email:    "taken@example.com",
		Password: "password123",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	store.AssertNotCalled(t, "CreateNotification", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRegisterInvalidInput(t *testing.T) {
	store, router := setupAuthRouter()

	tests := []struct {
		name  string
		input models.UserRegistration
	}{
		{name: "missing name", input: models.UserRegistration{Email: "a@example.com", Password: "password123"}},
		{name: "bad email", input: models.UserRegistration{Name: "Carol", Email: "not-an-email", Password: "password123"}},
		{name: "short password", input: models.UserRegistration{Name: "Carol", Email: "a@example.com", Password: "abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(t, router, "POST", "/auth/register", tt.input)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
	store.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin(t *testing.T) {
	auth.InitJWTKey([]byte("test-secret-key-for-api-tests"))

	hash, err := auth.HashPassword("password123")
	assert.NoError(t, err)

	user := &models.User{
		ID:           uuid.New(),
		Name:         "Carol Reader",
		Email:        "carol@example.com",
		PasswordHash: hash,
	}

	store, router := setupAuthRouter()
	store.On("GetUserByEmail", "carol@example.com").Return(user, nil)

	w := performRequest(t, router, "POST", "/auth/login", models.UserLogin{
		Email:    "carol@example.com",
		Password: "password123",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token  string              `json:"token"`
		Expiry time.Time           `json:"expiry"`
		User   models.UserResponse `json:"user"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.True(t, resp.Expiry.After(time.Now()))
	assert.Equal(t, user.ID, resp.User.ID)

	// The issued token must round-trip through the validator
	claims, err := auth.ValidateToken(resp.Token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := auth.HashPassword("password123")
	assert.NoError(t, err)

	user := &models.User{
		ID:           uuid.New(),
		Email:        "carol@example.com",
		PasswordHash: hash,
	}

	store, router := setupAuthRouter()
	store.On("GetUserByEmail", "carol@example.com").Return(user, nil)

	w := performRequest(t, router, "POST", "/auth/login", models.UserLogin{
		Email:    "carol@example.com",
		Password: "wrongpassword",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginUnknownUser(t *testing.T) {
	store, router := setupAuthRouter()
	store.On("GetUserByEmail", "ghost@example.com").Return(nil, database.ErrUserNotFound)

	w := performRequest(t, router, "POST", "/auth/login", models.UserLogin{
		Email:    "ghost@example.com",
		Password: "password123",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
