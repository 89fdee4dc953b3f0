package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bookswap/bookswap/internal/database"
	"github.com/bookswap/bookswap/internal/models"
)

// NotificationHandler handles the per-user notification feed
type NotificationHandler struct {
	Store database.Store
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(store database.Store) *NotificationHandler {
	return &NotificationHandler{Store: store}
}

// ListNotifications returns the caller's feed, newest first
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	actor, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	notifications, err := h.Store.ListNotifications(actor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list notifications"})
		return
	}
	if notifications == nil {
		notifications = []*models.Notification{}
	}

	c.JSON(http.StatusOK, notifications)
}

// MarkRead flips one notification; scoped to the caller, so another
// user's notification id comes back as not found.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	actor, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification ID"})
		return
	}

	err = h.Store.MarkNotificationRead(id, actor)
	if err == database.ErrNotificationNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notification read"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

// MarkAllRead flips every unread notification of the caller in one step
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	actor, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.Store.MarkAllNotificationsRead(actor); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notifications read"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
}
