package dto

import "github.com/snnyvrz/library-api/internal/model"

// Author is the wire shape for both author requests and responses.
// Books is read-only and ignored on input.
type Author struct {
	ID    uint          `json:"id"`
	Name  string        `json:"name" binding:"max=255" example:"Shubham"`
	Email string        `json:"email" binding:"required,email,max=255" example:"shubham@gmail.com"`
	Books []BookSummary `json:"books"`
}

type AuthorSummary struct {
	ID    uint   `json:"id" binding:"required"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

func AuthorToModel(a Author) model.Author {
	var books []model.Book
	if len(a.Books) > 0 {
		books = make([]model.Book, 0, len(a.Books))
		for _, b := range a.Books {
			books = append(books, bookSummaryToModel(b, a.ID))
		}
	}

	return model.Author{
		ID:    a.ID,
		Name:  a.Name,
		Email: a.Email,
		Books: books,
	}
}

func AuthorFromModel(a model.Author) Author {
	books := make([]BookSummary, 0, len(a.Books))
	for _, b := range a.Books {
		books = append(books, bookSummaryFromModel(b))
	}

	return Author{
		ID:    a.ID,
		Name:  a.Name,
		Email: a.Email,
		Books: books,
	}
}

func AuthorsFromModel(authors []model.Author) []Author {
	res := make([]Author, 0, len(authors))
	for _, a := range authors {
		res = append(res, AuthorFromModel(a))
	}
	return res
}

func authorSummaryFromModel(a *model.Author) *AuthorSummary {
	if a == nil {
		return nil
	}
	return &AuthorSummary{
		ID:    a.ID,
		Name:  a.Name,
		Email: a.Email,
	}
}

func authorSummaryToModel(s *AuthorSummary) *model.Author {
	if s == nil {
		return nil
	}
	return &model.Author{
		ID:    s.ID,
		Name:  s.Name,
		Email: s.Email,
	}
}
