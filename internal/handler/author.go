package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/library-api/internal/dto"
	"github.com/snnyvrz/library-api/internal/validation"
)

type AuthorService interface {
	Create(ctx context.Context, in dto.Author) (dto.Author, error)
	ListAll(ctx context.Context) ([]dto.Author, error)
	GetByID(ctx context.Context, id uint) (dto.Author, error)
	UpdateByID(ctx context.Context, id uint, in dto.Author) (dto.Author, error)
	DeleteByID(ctx context.Context, id uint) error
}

type AuthorHandler struct {
	svc AuthorService
}

func NewAuthorHandler(svc AuthorService) *AuthorHandler {
	return &AuthorHandler{svc: svc}
}

func (h *AuthorHandler) RegisterRoutes(r *gin.RouterGroup) {
	authors := r.Group("/author")
	{
		authors.POST("", h.CreateAuthor)
		authors.GET("", h.ListAuthors)
		authors.GET("/:id", h.GetAuthorByID)
		authors.PUT("/:id", h.UpdateAuthor)
		authors.DELETE("/:id", h.DeleteAuthor)
	}
}

// CreateAuthor godoc
// @Summary      Create an author
// @Description  Create a new author. The email must not be used by another author.
// @Tags         authors
// @Accept       json
// @Produce      json
// @Param        payload  body      dto.Author      true  "Author to create"
// @Success      200      {object}  AuthorResponse
// @Failure      400      {object}  ErrorResponse   "Validation error"
// @Failure      500      {object}  ErrorResponse   "Duplicate email or internal error"
// @Router       /author [post]
func (h *AuthorHandler) CreateAuthor(c *gin.Context) {
	var req dto.Author
	if err := validation.BindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	author, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	writeData(c, http.StatusOK, author)
}

// ListAuthors godoc
// @Summary      List authors
// @Description  Get every author with their books. Responds 404 when there are none.
// @Tags         authors
// @Produce      json
// @Success      200  {object}  AuthorListResponse
// @Failure      404  {object}  ErrorResponse  "No authors"
// @Failure      500  {object}  ErrorResponse  "Internal server error"
// @Router       /author [get]
func (h *AuthorHandler) ListAuthors(c *gin.Context) {
	authors, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	writeData(c, http.StatusOK, authors)
}

// GetAuthorByID godoc
// @Summary      Get author by ID
// @Tags         authors
// @Produce      json
// @Param        id   path      int            true  "Author ID"
// @Success      200  {object}  AuthorResponse
// @Failure      400  {object}  ErrorResponse  "Invalid ID"
// @Failure      404  {object}  ErrorResponse  "Author not found"
// @Failure      500  {object}  ErrorResponse  "Internal server error"
// @Router       /author/{id} [get]
func (h *AuthorHandler) GetAuthorByID(c *gin.Context) {
	id, err := parseID(c, "author")
	if err != nil {
		_ = c.Error(err)
		return
	}

	author, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	writeData(c, http.StatusOK, author)
}

// UpdateAuthor godoc
// @Summary      Update an author
// @Description  Overwrite an author's fields. The email can not be changed.
// @Tags         authors
// @Accept       json
// @Produce      json
// @Param        id       path      int            true  "Author ID"
// @Param        payload  body      dto.Author     true  "Author fields"
// @Success      200      {object}  AuthorResponse
// @Failure      400      {object}  ErrorResponse  "Invalid ID or validation error"
// @Failure      404      {object}  ErrorResponse  "Author not found"
// @Failure      500      {object}  ErrorResponse  "Email changed or internal error"
// @Router       /author/{id} [put]
func (h *AuthorHandler) UpdateAuthor(c *gin.Context) {
	id, err := parseID(c, "author")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req dto.Author
	if err := validation.BindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	author, err := h.svc.UpdateByID(c.Request.Context(), id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	writeData(c, http.StatusOK, author)
}

// DeleteAuthor godoc
// @Summary      Delete an author
// @Description  Delete an author by ID. Their books are kept without an author.
// @Tags         authors
// @Param        id   path      int            true  "Author ID"
// @Success      204  "No Content"
// @Failure      400  {object}  ErrorResponse  "Invalid ID"
// @Failure      404  {object}  ErrorResponse  "Author not found"
// @Failure      500  {object}  ErrorResponse  "Internal server error"
// @Router       /author/{id} [delete]
func (h *AuthorHandler) DeleteAuthor(c *gin.Context) {
	id, err := parseID(c, "author")
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
