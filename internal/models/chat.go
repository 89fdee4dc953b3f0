package models

import (
	"time"

	"github.com/google/uuid"
)

// ChatThread is a per-book conversation between two users. Exactly one
// thread exists per (book, unordered pair of participants).
type ChatThread struct {
	ID           uuid.UUID `json:"id"`
	BookID       uuid.UUID `json:"book_id"`
	ParticipantA uuid.UUID `json:"participant_a"`
	ParticipantB uuid.UUID `json:"participant_b"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasParticipant reports whether userID is one of the thread's two sides
func (t *ChatThread) HasParticipant(userID uuid.UUID) bool {
	return t.ParticipantA == userID || t.ParticipantB == userID
}

// OtherParticipant returns the counterpart of userID. Callers must check
// HasParticipant first.
func (t *ChatThread) OtherParticipant(userID uuid.UUID) uuid.UUID {
	if t.ParticipantA == userID {
		return t.ParticipantB
	}
	return t.ParticipantA
}

// ChatMessage belongs to one thread. Immutable after creation except for
// the read flag.
type ChatMessage struct {
	ID        uuid.UUID `json:"id"`
	ThreadID  uuid.UUID `json:"thread_id"`
	SenderID  uuid.UUID `json:"sender_id"`
	Body      string    `json:"body"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// ThreadOpenRequest opens (or returns) the thread for a book between the
// caller and another user.
type ThreadOpenRequest struct {
	BookID uuid.UUID `json:"book_id" binding:"required"`
	UserID uuid.UUID `json:"user_id" binding:"required"`
}

// MessagePost is the body of a new chat message
type MessagePost struct {
	Body string `json:"body" binding:"required"`
}

// ThreadSummary annotates a thread for the inbox view: the book, the
// other participant, and the most recent message as a preview.
type ThreadSummary struct {
	ChatThread
	Book        BookSummary  `json:"book"`
	Counterpart UserSummary  `json:"counterpart"`
	LastMessage *ChatMessage `json:"last_message,omitempty"`
	IsRead      bool         `json:"is_read"`
}

// DeriveRead computes the inbox read flag for viewerID: a thread counts
// as read when it has no messages, the viewer sent the last one, or the
// last one has already been read.
func (s *ThreadSummary) DeriveRead(viewerID uuid.UUID) {
	s.IsRead = s.LastMessage == nil ||
		s.LastMessage.SenderID == viewerID ||
		s.LastMessage.IsRead
}
