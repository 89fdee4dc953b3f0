package models

import (
	"time"

	"github.com/google/uuid"
)

// ExchangeStatus is the lifecycle state of an exchange request.
// Transitions are one-way: pending -> accepted or pending -> rejected.
type ExchangeStatus string

const (
	ExchangePending  ExchangeStatus = "pending"
	ExchangeAccepted ExchangeStatus = "accepted"
	ExchangeRejected ExchangeStatus = "rejected"
)

// Resolved reports whether s is terminal
func (s ExchangeStatus) Resolved() bool {
	return s == ExchangeAccepted || s == ExchangeRejected
}

// ExchangeRequest proposes trading a specific book. OwnerID is a copy of
// the book's owner at creation time.
type ExchangeRequest struct {
	ID          uuid.UUID      `json:"id"`
	BookID      uuid.UUID      `json:"book_id"`
	RequesterID uuid.UUID      `json:"requester_id"`
	OwnerID     uuid.UUID      `json:"owner_id"`
	Message     string         `json:"message"`
	Status      ExchangeStatus `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// ExchangeRequestInput is the creation payload
type ExchangeRequestInput struct {
	BookID  uuid.UUID `json:"book_id" binding:"required"`
	Message string    `json:"message" binding:"required,min=1"`
}

// ExchangeDetail is a request joined with its book and the counterpart
// user, as listed in request/history feeds. Counterpart is the other
// party from the viewer's perspective; for the global recent feed it is
// the requester.
type ExchangeDetail struct {
	ExchangeRequest
	Book        BookSummary `json:"book"`
	Counterpart UserSummary `json:"counterpart"`
}

// ActiveRequest picks the request a chat UI surfaces for a book: the
// first pending one, else the first in creation order.
func ActiveRequest(reqs []*ExchangeRequest) *ExchangeRequest {
	for _, r := range reqs {
		if r.Status == ExchangePending {
			return r
		}
	}
	if len(reqs) > 0 {
		return reqs[0]
	}
	return nil
}
