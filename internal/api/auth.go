package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bookswap/bookswap/internal/auth"
	"github.com/bookswap/bookswap/internal/database"
	"github.com/bookswap/bookswap/internal/logger"
	"github.com/bookswap/bookswap/internal/models"
)

var log = logger.New("api")

// AuthHandler handles registration and login
type AuthHandler struct {
	Store database.Store
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(store database.Store) *AuthHandler {
	return &AuthHandler{Store: store}
}

// Register handles user registration
func (h *AuthHandler) Register(c *gin.Context) {
	var input models.UserRegistration

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hashedPassword, err := auth.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process password"})
		return
	}

	user, err := h.Store.CreateUser(input.Name, input.Email, hashedPassword)
	if err == database.ErrUserAlreadyExists {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	if _, err := h.Store.CreateNotification(
		user.ID,
		"Welcome to BookSwap",
		"Hi "+user.Name+"! List a book you no longer need to start swapping.",
		models.NotifyWelcome,
		nil,
	); err != nil {
		log.Warn("welcome notification for %s not created: %v", user.ID, err)
	}

	c.JSON(http.StatusCreated, models.NewUserResponse(user))
}

// Login handles user login
func (h *AuthHandler) Login(c *gin.Context) {
	var input models.UserLogin

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Store.GetUserByEmail(input.Email)
	if err == database.ErrUserNotFound {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		return
	}

	if !auth.CheckPasswordHash(input.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, expiry, err := auth.GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":  token,
		"expiry": expiry,
		"user":   models.NewUserResponse(user),
	})
}

// currentUserID reads the authenticated user's id set by AuthMiddleware.
// The bool mirrors gin's Get: false means the route was wired without
// the middleware.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		return uuid.Nil, false
	}
	return userID.(uuid.UUID), true
}
