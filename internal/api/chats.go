package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bookswap/bookswap/internal/database"
	"github.com/bookswap/bookswap/internal/models"
)

// ChatHandler handles per-book chat threads
type ChatHandler struct {
	Store database.Store
}

// NewChatHandler creates a new chat handler
func NewChatHandler(store database.Store) *ChatHandler {
	return &ChatHandler{Store: store}
}

// ListThreads returns the caller's inbox, newest activity first
func (h *ChatHandler) ListThreads(c *gin.Context) {
	actor, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	threads, err := h.Store.ListThreadsForUser(actor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list chats"})
		return
	}
	if threads == nil {
		threads = []*models.ThreadSummary{}
	}

	c.JSON(http.StatusOK, threads)
}

// OpenThread finds or creates the thread for a book between the caller
// and another user. The lookup treats the pair as unordered, so a
// second open from either side returns the same thread.
func (h *ChatHandler) OpenThread(c *gin.Context) {
	actor, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input models.ThreadOpenRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.UserID == actor {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot open a chat with yourself"})
		return
	}

	if _, err := h.Store.GetBookByID(input.BookID); err == database.ErrBookNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve book"})
		return
	}

	if _, err := h.Store.GetUserByID(input.UserID); err == database.ErrUserNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		return
	}

	thread, created, err := h.Store.GetOrCreateThread(input.BookID, actor, input.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open chat"})
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, thread)
}

// GetMessages returns a thread's messages oldest-first. Fetching as a
// participant marks every counterpart message read first, so the
// response reflects the fresh read state.
func (h *ChatHandler) GetMessages(c *gin.Context) {
	actor, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	thread, ok := h.loadThreadFor(c, actor)
	if !ok {
		return
	}

	if err := h.Store.MarkThreadMessagesRead(thread.ID, actor); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update read state"})
		return
	}

	messages, err := h.Store.ListThreadMessages(thread.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list messages"})
		return
	}
	if messages == nil {
		messages = []*models.ChatMessage{}
	}

	c.JSON(http.StatusOK, messages)
}

// PostMessage appends a message to a thread the caller participates in
func (h *ChatHandler) PostMessage(c *gin.Context) {
	actor, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	thread, ok := h.loadThreadFor(c, actor)
	if !ok {
		return
	}

	var input models.MessagePost
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(input.Body) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message body cannot be empty"})
		return
	}

	message, err := h.Store.CreateChatMessage(thread.ID, actor, input.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	c.JSON(http.StatusCreated, message)
}

// loadThreadFor resolves the threadId route param and enforces that the
// actor is a participant. It writes the error response itself and
// returns ok=false when the caller should bail out.
func (h *ChatHandler) loadThreadFor(c *gin.Context, actor uuid.UUID) (*models.ChatThread, bool) {
	id, err := uuid.Parse(c.Param("threadId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid thread ID"})
		return nil, false
	}

	thread, err := h.Store.GetThreadByID(id)
	if err == database.ErrThreadNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chat thread not found"})
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve chat thread"})
		return nil, false
	}

	if !thread.HasParticipant(actor) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not a participant in this chat"})
		return nil, false
	}

	return thread, true
}
