package database

import (
	"errors"

	"github.com/google/uuid"

	"github.com/bookswap/bookswap/internal/models"
)

// Sentinel errors the handler layer maps onto HTTP statuses.
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUserAlreadyExists    = errors.New("user already exists")
	ErrBookNotFound         = errors.New("book not found")
	ErrExchangeNotFound     = errors.New("exchange request not found")
	ErrExchangeResolved     = errors.New("exchange request already resolved")
	ErrThreadNotFound       = errors.New("chat thread not found")
	ErrNotificationNotFound = errors.New("notification not found")
)

// Store is the persistence boundary for the whole application. One
// Postgres-backed implementation exists; tests substitute a mock.
type Store interface {
	// User methods
	CreateUser(name, email, passwordHash string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uuid.UUID) (*models.User, error)
	UpdateUserProfile(id uuid.UUID, update *models.ProfileUpdate) (*models.User, error)

	// Book methods
	CreateBook(ownerID uuid.UUID, input *models.BookInput) (*models.Book, error)
	GetBookByID(id uuid.UUID) (*models.Book, error)
	ListBooks(filter models.BookFilter) ([]*models.Book, int, error)
	UpdateBook(id uuid.UUID, input *models.BookInput) (*models.Book, error)
	DeleteBook(id uuid.UUID) error

	// Exchange methods
	CreateExchangeRequest(bookID, requesterID, ownerID uuid.UUID, message string) (*models.ExchangeRequest, error)
	GetExchangeRequestByID(id uuid.UUID) (*models.ExchangeRequest, error)
	ResolveExchangeRequest(id uuid.UUID, status models.ExchangeStatus) (*models.ExchangeRequest, error)
	ListExchangeRequestsForBook(bookID uuid.UUID) ([]*models.ExchangeRequest, error)
	ListExchangeRequestsForUser(userID uuid.UUID) ([]*models.ExchangeDetail, error)
	ExchangeHistory(userID uuid.UUID) ([]*models.ExchangeDetail, error)
	RecentExchanges(limit int) ([]*models.ExchangeDetail, error)

	// Chat methods
	GetOrCreateThread(bookID, userA, userB uuid.UUID) (*models.ChatThread, bool, error)
	GetThreadByID(id uuid.UUID) (*models.ChatThread, error)
	ListThreadsForUser(userID uuid.UUID) ([]*models.ThreadSummary, error)
	ListThreadMessages(threadID uuid.UUID) ([]*models.ChatMessage, error)
	MarkThreadMessagesRead(threadID, readerID uuid.UUID) error
	CreateChatMessage(threadID, senderID uuid.UUID, body string) (*models.ChatMessage, error)

	// Notification methods
	CreateNotification(userID uuid.UUID, title, message string, typ models.NotificationType, relatedID *uuid.UUID) (*models.Notification, error)
	ListNotifications(userID uuid.UUID) ([]*models.Notification, error)
	MarkNotificationRead(id, userID uuid.UUID) error
	MarkAllNotificationsRead(userID uuid.UUID) error

	Close() error
}
