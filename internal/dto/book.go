package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/snnyvrz/library-api/internal/model"
)

// Book is the wire shape for both book requests and responses. On input
// only author.id is read.
type Book struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title" binding:"required,max=255" example:"Atomic Habits"`
	PublishDate *model.Date     `json:"publishDate" swaggertype:"string" example:"2025-02-10"`
	Publication string          `json:"publication" binding:"max=255" example:"AH Publications"`
	Price       decimal.Decimal `json:"price" binding:"gte=0" swaggertype:"string" example:"2000.00"`
	Author      *AuthorSummary  `json:"author"`
}

type BookSummary struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	PublishDate *model.Date     `json:"publishDate" swaggertype:"string" example:"2025-02-10"`
	Publication string          `json:"publication"`
	Price       decimal.Decimal `json:"price" swaggertype:"string" example:"2000.00"`
}

func BookToModel(b Book) model.Book {
	book := model.Book{
		ID:          b.ID,
		Title:       b.Title,
		PublishDate: dateToTime(b.PublishDate),
		Publication: b.Publication,
		Price:       b.Price,
		Author:      authorSummaryToModel(b.Author),
	}
	if b.Author != nil {
		id := b.Author.ID
		book.AuthorID = &id
	}
	return book
}

func BookFromModel(b model.Book) Book {
	return Book{
		ID:          b.ID,
		Title:       b.Title,
		PublishDate: timeToDate(b.PublishDate),
		Publication: b.Publication,
		Price:       b.Price,
		Author:      authorSummaryFromModel(b.Author),
	}
}

func BooksFromModel(books []model.Book) []Book {
	res := make([]Book, 0, len(books))
	for _, b := range books {
		res = append(res, BookFromModel(b))
	}
	return res
}

func bookSummaryFromModel(b model.Book) BookSummary {
	return BookSummary{
		ID:          b.ID,
		Title:       b.Title,
		PublishDate: timeToDate(b.PublishDate),
		Publication: b.Publication,
		Price:       b.Price,
	}
}

func bookSummaryToModel(s BookSummary, authorID uint) model.Book {
	b := model.Book{
		ID:          s.ID,
		Title:       s.Title,
		PublishDate: dateToTime(s.PublishDate),
		Publication: s.Publication,
		Price:       s.Price,
	}
	if authorID != 0 {
		b.AuthorID = &authorID
	}
	return b
}

func dateToTime(d *model.Date) *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

func timeToDate(t *time.Time) *model.Date {
	if t == nil || t.IsZero() {
		return nil
	}
	d := model.NewDate(*t)
	return &d
}
