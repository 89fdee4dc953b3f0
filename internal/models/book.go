package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BookCondition describes the physical state of a listed book
type BookCondition string

const (
	ConditionNew  BookCondition = "New"
	ConditionGood BookCondition = "Good"
	ConditionWorn BookCondition = "Worn"
)

// Valid reports whether c is one of the known conditions
func (c BookCondition) Valid() bool {
	switch c {
	case ConditionNew, ConditionGood, ConditionWorn:
		return true
	}
	return false
}

// Book is a listing owned by exactly one user
type Book struct {
	ID          uuid.UUID     `json:"id"`
	OwnerID     uuid.UUID     `json:"owner_id"`
	Title       string        `json:"title"`
	Author      string        `json:"author"`
	Genre       string        `json:"genre,omitempty"`
	Condition   BookCondition `json:"condition"`
	Description string        `json:"description,omitempty"`
	ImageURL    string        `json:"image_url,omitempty"`
	IsAvailable bool          `json:"is_available"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// BookInput is the create/update payload for a listing
type BookInput struct {
	Title       string        `json:"title" binding:"required,min=1,max=200"`
	Author      string        `json:"author" binding:"required,min=1,max=120"`
	Genre       string        `json:"genre"`
	Condition   BookCondition `json:"condition" binding:"required"`
	Description string        `json:"description"`
	ImageURL    string        `json:"image_url"`
}

// Validate checks the parts gin's binding tags cannot express
func (in *BookInput) Validate() error {
	if !in.Condition.Valid() {
		return fmt.Errorf("unknown condition %q", in.Condition)
	}
	return nil
}

// BookFilter narrows a browse query. Page is 1-based; Size defaults to
// DefaultPageSize when zero.
type BookFilter struct {
	Search    string
	Genre     string
	Condition BookCondition
	Page      int
	Size      int
}

// DefaultPageSize matches the browse grid
const DefaultPageSize = 12

// BookSummary is the projection of a book embedded in exchange and chat
// payloads.
type BookSummary struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Author   string    `json:"author,omitempty"`
	ImageURL string    `json:"image_url,omitempty"`
}

// Summary returns the embedded projection of b
func (b *Book) Summary() BookSummary {
	return BookSummary{ID: b.ID, Title: b.Title, Author: b.Author, ImageURL: b.ImageURL}
}

// BookPage is the paginated browse response
type BookPage struct {
	Books []*Book `json:"books"`
	Total int     `json:"total"`
	Page  int     `json:"page"`
	Size  int     `json:"size"`
}
