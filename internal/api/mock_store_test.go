package api

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/bookswap/bookswap/internal/models"
)

// MockStore implements database.Store for handler tests
type MockStore struct {
	mock.Mock
}

func (m *MockStore) CreateUser(name, email, passwordHash string) (*models.User, error) {
	args := m.Called(name, email, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStore) GetUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStore) GetUserByID(id uuid.UUID) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStore) UpdateUserProfile(id uuid.UUID, update *models.ProfileUpdate) (*models.User, error) {
	args := m.Called(id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStore) CreateBook(ownerID uuid.UUID, input *models.BookInput) (*models.Book, error) {
	args := m.Called(ownerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Book), args.Error(1)
}

func (m *MockStore) GetBookByID(id uuid.UUID) (*models.Book, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Book), args.Error(1)
}

func (m *MockStore) ListBooks(filter models.BookFilter) ([]*models.Book, int, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*models.Book), args.Int(1), args.Error(2)
}

func (m *MockStore) UpdateBook(id uuid.UUID, input *models.BookInput) (*models.Book, error) {
	args := m.Called(id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Book), args.Error(1)
}

func (m *MockStore) DeleteBook(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStore) CreateExchangeRequest(bookID, requesterID, ownerID uuid.UUID, message string) (*models.ExchangeRequest, error) {
	args := m.Called(bookID, requesterID, ownerID, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ExchangeRequest), args.Error(1)
}

func (m *MockStore) GetExchangeRequestByID(id uuid.UUID) (*models.ExchangeRequest, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ExchangeRequest), args.Error(1)
}

func (m *MockStore) ResolveExchangeRequest(id uuid.UUID, status models.ExchangeStatus) (*models.ExchangeRequest, error) {
	args := m.Called(id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ExchangeRequest), args.Error(1)
}

func (m *MockStore) ListExchangeRequestsForBook(bookID uuid.UUID) ([]*models.ExchangeRequest, error) {
	args := m.Called(bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ExchangeRequest), args.Error(1)
}

func (m *MockStore) ListExchangeRequestsForUser(userID uuid.UUID) ([]*models.ExchangeDetail, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ExchangeDetail), args.Error(1)
}

func (m *MockStore) ExchangeHistory(userID uuid.UUID) ([]*models.ExchangeDetail, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ExchangeDetail), args.Error(1)
}

func (m *MockStore) RecentExchanges(limit int) ([]*models.ExchangeDetail, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ExchangeDetail), args.Error(1)
}

func (m *MockStore) GetOrCreateThread(bookID, userA, userB uuid.UUID) (*models.ChatThread, bool, error) {
	args := m.Called(bookID, userA, userB)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.ChatThread), args.Bool(1), args.Error(2)
}

func (m *MockStore) GetThreadByID(id uuid.UUID) (*models.ChatThread, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChatThread), args.Error(1)
}

func (m *MockStore) ListThreadsForUser(userID uuid.UUID) ([]*models.ThreadSummary, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ThreadSummary), args.Error(1)
}

func (m *MockStore) ListThreadMessages(threadID uuid.UUID) ([]*models.ChatMessage, error) {
	args := m.Called(threadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ChatMessage), args.Error(1)
}

func (m *MockStore) MarkThreadMessagesRead(threadID, readerID uuid.UUID) error {
	args := m.Called(threadID, readerID)
	return args.Error(0)
}

func (m *MockStore) CreateChatMessage(threadID, senderID uuid.UUID, body string) (*models.ChatMessage, error) {
	args := m.Called(threadID, senderID, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChatMessage), args.Error(1)
}

func (m *MockStore) CreateNotification(userID uuid.UUID, title, message string, typ models.NotificationType, relatedID *uuid.UUID) (*models.Notification, error) {
	args := m.Called(userID, title, message, typ, relatedID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Notification), args.Error(1)
}

func (m *MockStore) ListNotifications(userID uuid.UUID) ([]*models.Notification, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Notification), args.Error(1)
}

func (m *MockStore) MarkNotificationRead(id, userID uuid.UUID) error {
	args := m.Called(id, userID)
	return args.Error(0)
}

func (m *MockStore) MarkAllNotificationsRead(userID uuid.UUID) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
