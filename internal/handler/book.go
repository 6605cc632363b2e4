package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/library-api/internal/dto"
	"github.com/snnyvrz/library-api/internal/validation"
)

type BookService interface {
	Create(ctx context.Context, in dto.Book) (dto.Book, error)
	ListAll(ctx context.Context) ([]dto.Book, error)
	GetByID(ctx context.Context, id uint) (dto.Book, error)
	UpdateByID(ctx context.Context, id uint, in dto.Book) (dto.Book, error)
	DeleteByID(ctx context.Context, id uint) error
}

type BookHandler struct {
	svc BookService
}

func NewBookHandler(svc BookService) *BookHandler {
	return &BookHandler{svc: svc}
}

func (h *BookHandler) RegisterRoutes(r *gin.RouterGroup) {
	books := r.Group("/book")
	{
		books.POST("", h.CreateBook)
		books.GET("", h.ListBooks)
		books.GET("/:id", h.GetBookByID)
		books.PUT("/:id", h.UpdateBook)
		books.DELETE("/:id", h.DeleteBook)
	}
}

// CreateBook godoc
// @Summary      Create a book
// @Description  Create a new book, optionally linked to an existing author
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        payload  body      dto.Book       true  "Book to create"
// @Success      200      {object}  BookResponse
// @Failure      400      {object}  ErrorResponse  "Validation error"
// @Failure      404      {object}  ErrorResponse  "Author not found"
// @Failure      500      {object}  ErrorResponse  "Internal server error"
// @Router       /book [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req dto.Book
	if err := validation.BindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	book, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	writeData(c, http.StatusOK, book)
}

// ListBooks godoc
// @Summary      List books
// @Description  Get every book. Responds 404 when there are none.
// @Tags         books
// @Produce      json
// @Success      200  {object}  BookListResponse
// @Failure      404  {object}  ErrorResponse  "No books"
// @Failure      500  {object}  ErrorResponse  "Internal server error"
// @Router       /book [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	books, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	writeData(c, http.StatusOK, books)
}

// GetBookByID godoc
// @Summary      Get a book by ID
// @Tags         books
// @Produce      json
// @Param        id   path      int            true  "Book ID"
// @Success      200  {object}  BookResponse
// @Failure      400  {object}  ErrorResponse  "Invalid ID"
// @Failure      404  {object}  ErrorResponse  "Book not found"
// @Failure      500  {object}  ErrorResponse  "Internal server error"
// @Router       /book/{id} [get]
func (h *BookHandler) GetBookByID(c *gin.Context) {
	id, err := parseID(c, "book")
	if err != nil {
		_ = c.Error(err)
		return
	}

	book, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	writeData(c, http.StatusOK, book)
}

// UpdateBook godoc
// @Summary      Update a book
// @Description  Overwrite every field of a book, including its author
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        id       path      int            true  "Book ID"
// @Param        payload  body      dto.Book       true  "Book fields"
// @Success      200      {object}  BookResponse
// @Failure      400      {object}  ErrorResponse  "Invalid ID or payload"
// @Failure      404      {object}  ErrorResponse  "Book or author not found"
// @Failure      500      {object}  ErrorResponse  "Internal server error"
// @Router       /book/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, err := parseID(c, "book")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req dto.Book
	if err := validation.BindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	book, err := h.svc.UpdateByID(c.Request.Context(), id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	writeData(c, http.StatusOK, book)
}

// DeleteBook godoc
// @Summary      Delete a book
// @Tags         books
// @Param        id   path      int            true  "Book ID"
// @Success      204  "No Content"
// @Failure      400  {object}  ErrorResponse  "Invalid ID"
// @Failure      404  {object}  ErrorResponse  "Book not found"
// @Failure      500  {object}  ErrorResponse  "Internal server error"
// @Router       /book/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, err := parseID(c, "book")
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.svc.DeleteByID(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
