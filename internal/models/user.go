package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered BookSwap member
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never send to client
	AvatarURL    string    `json:"avatar_url,omitempty"`
	Birthday     string    `json:"birthday,omitempty"`
	Location     string    `json:"location,omitempty"`
	Genres       []string  `json:"genres,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserRegistration contains data needed for user registration
type UserRegistration struct {
	Name     string `json:"name" binding:"required,min=2,max=60"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// UserLogin contains data needed for user login
type UserLogin struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ProfileUpdate is the writable subset of a profile. Password, id and
// email are deliberately absent.
type ProfileUpdate struct {
	Name      string   `json:"name" binding:"required,min=2,max=60"`
	AvatarURL string   `json:"avatar_url"`
	Birthday  string   `json:"birthday"`
	Location  string   `json:"location"`
	Genres    []string `json:"genres"`
}

// UserResponse is the full self-profile projection returned to the owner
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Birthday  string    `json:"birthday,omitempty"`
	Location  string    `json:"location,omitempty"`
	Genres    []string  `json:"genres,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// UserSummary is the public projection of a user: no email, no profile
// details beyond what a listing or chat needs to render.
type UserSummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatar_url,omitempty"`
}

// NewUserResponse builds the self-profile projection from a user row
func NewUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		AvatarURL: u.AvatarURL,
		Birthday:  u.Birthday,
		Location:  u.Location,
		Genres:    u.Genres,
		CreatedAt: u.CreatedAt,
	}
}

// Summary returns the public projection of u
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, AvatarURL: u.AvatarURL}
}
