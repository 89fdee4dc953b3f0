package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bookswap/bookswap/internal/database"
	"github.com/bookswap/bookswap/internal/models"
)

// RecentExchangeLimit caps the global recent-activity feed
const RecentExchangeLimit = 5

// ExchangeHandler handles the exchange-request lifecycle
type ExchangeHandler struct {
	Store database.Store
}

// NewExchangeHandler creates a new exchange handler
func NewExchangeHandler(store database.Store) *ExchangeHandler {
	return &ExchangeHandler{Store: store}
}

// CreateRequest proposes an exchange for a book. Requesting one's own
// listing is a conflict; there is no owner-initiated variant.
func (h *ExchangeHandler) CreateRequest(c *gin.Context) {
	actor, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input models.ExchangeRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	book, err := h.Store.GetBookByID(input.BookID)
	if err == database.ErrBookNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve book"})
		return
	}

	if book.OwnerID == actor {
		c.JSON(http.StatusConflict, gin.H{"error": "You cannot request your own book"})
		return
	}

	req, err := h.Store.CreateExchangeRequest(book.ID, actor, book.OwnerID, input.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create exchange request"})
		return
	}

	requesterName := c.GetString("userName")
	if _, err := h.Store.CreateNotification(
		book.OwnerID,
		"New exchange request",
		requesterName+" wants to swap \""+book.Title+"\".",
		models.NotifyExchange,
		&req.ID,
	); err != nil {
		log.Warn("exchange notification for request %s not created: %v", req.ID, err)
	}

	c.JSON(http.StatusCreated, req)
}

// AcceptRequest transitions a pending request to accepted; owner only
func (h *ExchangeHandler) AcceptRequest(c *gin.Context) {
	h.resolveRequest(c, models.ExchangeAccepted)
}

// RejectRequest transitions a pending request to rejected; owner only
func (h *ExchangeHandler) RejectRequest(c *gin.Context) {
	h.resolveRequest(c, models.ExchangeRejected)
}

// resolveRequest is the shared accept/reject path. The status flip is a
// conditional update in the store, so a request that is already
// resolved comes back as a conflict instead of silently re-applying.
func (h *ExchangeHandler) resolveRequest(c *gin.Context, status models.ExchangeStatus) {
	actor, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	req, err := h.Store.GetExchangeRequestByID(id)
	if err == database.ErrExchangeNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Exchange request not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve exchange request"})
		return
	}

	if req.OwnerID != actor {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the book's owner can resolve a request"})
		return
	}

	resolved, err := h.Store.ResolveExchangeRequest(id, status)
	if err == database.ErrExchangeResolved {
		c.JSON(http.StatusConflict, gin.H{"error": "Exchange request already resolved"})
		return
	}
	if err == database.ErrExchangeNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Exchange request not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve exchange request"})
		return
	}

	title := "Request accepted"
	message := c.GetString("userName") + " accepted your exchange request."
	typ := models.NotifyAccepted
	if status == models.ExchangeRejected {
		title = "Request rejected"
		message = c.GetString("userName") + " declined your exchange request."
		typ = models.NotifyRejected
	}
	if _, err := h.Store.CreateNotification(
		resolved.RequesterID, title, message, typ, &resolved.ID,
	); err != nil {
		log.Warn("%s notification for request %s not created: %v", typ, resolved.ID, err)
	}

	c.JSON(http.StatusOK, resolved)
}

// ListRequests returns the caller's requests joined with book and
// counterpart summaries. With ?book_id= it instead lists every request
// for that book, which any authenticated user may see.
func (h *ExchangeHandler) ListRequests(c *gin.Context) {
	actor, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if bookIDStr := c.Query("book_id"); bookIDStr != "" {
		bookID, err := uuid.Parse(bookIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
			return
		}

		reqs, err := h.Store.ListExchangeRequestsForBook(bookID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list exchange requests"})
			return
		}
		if reqs == nil {
			reqs = []*models.ExchangeRequest{}
		}
		c.JSON(http.StatusOK, reqs)
		return
	}

	details, err := h.Store.ListExchangeRequestsForUser(actor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list exchange requests"})
		return
	}
	if details == nil {
		details = []*models.ExchangeDetail{}
	}

	c.JSON(http.StatusOK, details)
}

// History returns the caller's accepted exchanges, newest first
func (h *ExchangeHandler) History(c *gin.Context) {
	actor, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	details, err := h.Store.ExchangeHistory(actor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load exchange history"})
		return
	}
	if details == nil {
		details = []*models.ExchangeDetail{}
	}

	c.JSON(http.StatusOK, details)
}

// Recent returns the latest accepted exchanges across all users
func (h *ExchangeHandler) Recent(c *gin.Context) {
	details, err := h.Store.RecentExchanges(RecentExchangeLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load recent exchanges"})
		return
	}
	if details == nil {
		details = []*models.ExchangeDetail{}
	}

	c.JSON(http.StatusOK, details)
}
