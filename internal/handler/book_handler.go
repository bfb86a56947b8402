package handler

import (
	"net/http"

	"github.com/books-app/backend/internal/service"
	"github.com/books-app/backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookHandler struct {
	bookService *service.BookService
}

func NewBookHandler(bookService *service.BookService) *BookHandler {
	return &BookHandler{
		bookService: bookService,
	}
}

// requesterID reads the identity the auth middleware attached.
func requesterID(c *gin.Context) (uuid.UUID, bool) {
	val, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "JWT token required"})
		return uuid.Nil, false
	}
	id, ok := val.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "JWT token required"})
		return uuid.Nil, false
	}
	return id, true
}

// POST /books
func (h *BookHandler) Create(c *gin.Context) {
	reqID, ok := requesterID(c)
	if !ok {
		return
	}

	var input service.BookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Log.Warn("Book create request parsing failed",
			zap.String("ip", c.ClientIP()),
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	book, err := h.bookService.Create(c.Request.Context(), reqID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, book)
}

// GET /books
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.bookService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, books)
}

// GET /books/:id
func (h *BookHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid book ID"})
		return
	}

	book, err := h.bookService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, book)
}

// PUT /books/:id
func (h *BookHandler) Update(c *gin.Context) {
	reqID, ok := requesterID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid book ID"})
		return
	}

	var input service.BookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Log.Warn("Book update request parsing failed",
			zap.String("ip", c.ClientIP()),
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	book, err := h.bookService.Update(c.Request.Context(), id, reqID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, book)
}

// DELETE /books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	reqID, ok := requesterID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid book ID"})
		return
	}

	if err := h.bookService.Delete(c.Request.Context(), id, reqID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}
