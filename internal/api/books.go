package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bookswap/bookswap/internal/database"
	"github.com/bookswap/bookswap/internal/models"
)

// BookHandler handles listing routes
type BookHandler struct {
	Store database.Store
}

// NewBookHandler creates a new book handler
func NewBookHandler(store database.Store) *BookHandler {
	return &BookHandler{Store: store}
}

// ListBooks is the browse endpoint: substring search on title/author,
// equality filters on genre and condition, 1-based pagination.
func (h *BookHandler) ListBooks(c *gin.Context) {
	filter := models.BookFilter{
		Search:    c.Query("search"),
		Genre:     c.Query("genre"),
		Condition: models.BookCondition(c.Query("condition")),
	}
	if filter.Condition != "" && !filter.Condition.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown condition filter"})
		return
	}

	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Size, _ = strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(models.DefaultPageSize)))
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Size < 1 || filter.Size > 100 {
		filter.Size = models.DefaultPageSize
	}

	books, total, err := h.Store.ListBooks(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list books"})
		return
	}
	if books == nil {
		books = []*models.Book{}
	}

	c.JSON(http.StatusOK, models.BookPage{
		Books: books,
		Total: total,
		Page:  filter.Page,
		Size:  filter.Size,
	})
}

// CreateBook publishes a listing owned by the caller
func (h *BookHandler) CreateBook(c *gin.Context) {
	actor, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input models.BookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := input.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	book, err := h.Store.CreateBook(actor, &input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create book"})
		return
	}

	if _, err := h.Store.CreateNotification(
		actor,
		"Listing published",
		"Your book \""+book.Title+"\" is now visible to other members.",
		models.NotifyListing,
		&book.ID,
	); err != nil {
		log.Warn("listing notification for book %s not created: %v", book.ID, err)
	}

	c.JSON(http.StatusCreated, book)
}

// GetBook returns one listing; any authenticated user may read it
func (h *BookHandler) GetBook(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
		return
	}

	book, err := h.Store.GetBookByID(id)
	if err == database.ErrBookNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve book"})
		return
	}

	c.JSON(http.StatusOK, book)
}

// UpdateBook edits a listing. Only the owner may edit, and an
// unavailable book is frozen for owner and non-owner alike.
func (h *BookHandler) UpdateBook(c *gin.Context) {
	actor, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
		return
	}

	book, err := h.Store.GetBookByID(id)
	if err == database.ErrBookNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve book"})
		return
	}

	if !book.IsAvailable {
		c.JSON(http.StatusConflict, gin.H{"error": "Book is no longer available for editing"})
		return
	}
	if book.OwnerID != actor {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the owner can edit a listing"})
		return
	}

	var input models.BookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := input.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Store.UpdateBook(id, &input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update book"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteBook removes a listing; owner only
func (h *BookHandler) DeleteBook(c *gin.Context) {
	actor, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
		return
	}

	book, err := h.Store.GetBookByID(id)
	if err == database.ErrBookNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve book"})
		return
	}

	if book.OwnerID != actor {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the owner can delete a listing"})
		return
	}

	if err := h.Store.DeleteBook(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete book"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Book deleted"})
}
