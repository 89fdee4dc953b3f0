package models

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType tags the event a notification announces
type NotificationType string

const (
	NotifyExchange  NotificationType = "exchange"
	NotifyAccepted  NotificationType = "accepted"
	NotifyRejected  NotificationType = "rejected"
	NotifyCompleted NotificationType = "completed"
	NotifyProfile   NotificationType = "profile"
	NotifyFollow    NotificationType = "follow"
	NotifyListing   NotificationType = "listing"
	NotifyWelcome   NotificationType = "welcome"
)

// Notification is one entry in a user's append-only feed. RelatedID
// optionally points at the book or exchange request that triggered it.
type Notification struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"user_id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	IsRead    bool             `json:"is_read"`
	RelatedID *uuid.UUID       `json:"related_id,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}
