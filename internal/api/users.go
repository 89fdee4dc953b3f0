package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bookswap/bookswap/internal/database"
	"github.com/bookswap/bookswap/internal/models"
)

// UserHandler handles profile routes
type UserHandler struct {
	Store database.Store
}

// NewUserHandler creates a new user handler
func NewUserHandler(store database.Store) *UserHandler {
	return &UserHandler{Store: store}
}

// GetProfile returns the caller's own profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	actor, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := h.Store.GetUserByID(actor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		return
	}

	c.JSON(http.StatusOK, models.NewUserResponse(user))
}

// UpdateProfile writes the editable profile fields. Password, id and
// email are not part of the payload schema, so they cannot be changed
// here.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	actor, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input models.ProfileUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Store.UpdateUserProfile(actor, &input)
	if err == database.ErrUserNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, models.NewUserResponse(user))
}

// GetUser returns the public projection of any user: no email, no
// private profile fields.
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	user, err := h.Store.GetUserByID(id)
	if err == database.ErrUserNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		return
	}

	c.JSON(http.StatusOK, user.Summary())
}
