package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/snnyvrz/library-api/internal/dto"
	"github.com/snnyvrz/library-api/internal/repository"
	"gorm.io/gorm"
)

type BookService struct {
	books   repository.BookRepository
	authors repository.AuthorRepository
}

func NewBookService(books repository.BookRepository, authors repository.AuthorRepository) *BookService {
	return &BookService{books: books, authors: authors}
}

func (s *BookService) Create(ctx context.Context, in dto.Book) (dto.Book, error) {
	log := zerolog.Ctx(ctx)
	log.Info().Str("title", in.Title).Msg("creating book")

	book := dto.BookToModel(in)
	book.ID = 0
	book.Author = nil

	if err := s.checkAuthor(ctx, book.AuthorID); err != nil {
		return dto.Book{}, err
	}

	if err := s.books.Create(ctx, &book); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return dto.Book{}, NotFound("Author not found with ID : %d", *book.AuthorID).Wrap(err)
		}
		return dto.Book{}, fmt.Errorf("create book: %w", err)
	}

	created, err := s.books.FindByID(ctx, book.ID)
	if err != nil {
		return dto.Book{}, fmt.Errorf("fetch created book %d: %w", book.ID, err)
	}

	log.Info().Uint("book_id", created.ID).Str("title", created.Title).Msg("book created")
	return dto.BookFromModel(*created), nil
}

// ListAll returns every book. An empty catalogue is reported as NotFound.
func (s *BookService) ListAll(ctx context.Context) ([]dto.Book, error) {
	log := zerolog.Ctx(ctx)
	log.Info().Msg("fetching all books")

	books, err := s.books.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	if len(books) == 0 {
		log.Error().Msg("no books found")
		return nil, NotFound("Books are not found")
	}

	log.Info().Int("count", len(books)).Msg("books fetched")
	return dto.BooksFromModel(books), nil
}

func (s *BookService) GetByID(ctx context.Context, id uint) (dto.Book, error) {
	log := zerolog.Ctx(ctx).With().Uint("book_id", id).Logger()
	log.Info().Msg("fetching book")

	book, err := s.books.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error().Msg("book not found")
			return dto.Book{}, NotFound("Book not found with ID : %d", id)
		}
		return dto.Book{}, fmt.Errorf("find book %d: %w", id, err)
	}

	log.Info().Msg("book fetched")
	return dto.BookFromModel(*book), nil
}

// UpdateByID overwrites every field of the book, including the author
// reference. Omitting the author detaches the book from it.
func (s *BookService) UpdateByID(ctx context.Context, id uint, in dto.Book) (dto.Book, error) {
	log := zerolog.Ctx(ctx).With().Uint("book_id", id).Logger()
	log.Info().Msg("updating book")

	if _, err := s.books.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error().Msg("book not found")
			return dto.Book{}, NotFound("Book not found with ID : %d", id)
		}
		return dto.Book{}, fmt.Errorf("find book %d: %w", id, err)
	}

	book := dto.BookToModel(in)
	book.ID = id
	book.Author = nil

	if err := s.checkAuthor(ctx, book.AuthorID); err != nil {
		return dto.Book{}, err
	}

	if err := s.books.Update(ctx, &book); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return dto.Book{}, NotFound("Book not found with ID : %d", id)
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			return dto.Book{}, NotFound("Author not found with ID : %d", *book.AuthorID).Wrap(err)
		}
		return dto.Book{}, fmt.Errorf("update book %d: %w", id, err)
	}

	updated, err := s.books.FindByID(ctx, id)
	if err != nil {
		return dto.Book{}, fmt.Errorf("fetch updated book %d: %w", id, err)
	}

	log.Info().Msg("book updated")
	return dto.BookFromModel(*updated), nil
}

func (s *BookService) DeleteByID(ctx context.Context, id uint) error {
	log := zerolog.Ctx(ctx).With().Uint("book_id", id).Logger()
	log.Info().Msg("deleting book")

	exists, err := s.books.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("check book %d: %w", id, err)
	}
	if !exists {
		log.Error().Msg("book not found")
		return NotFound("Book not found with ID : %d", id)
	}

	if err := s.books.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("Book not found with ID : %d", id)
		}
		return fmt.Errorf("delete book %d: %w", id, err)
	}

	log.Info().Msg("book deleted")
	return nil
}

func (s *BookService) checkAuthor(ctx context.Context, authorID *uint) error {
	if authorID == nil {
		return nil
	}

	exists, err := s.authors.ExistsByID(ctx, *authorID)
	if err != nil {
		return fmt.Errorf("check author %d: %w", *authorID, err)
	}
	if !exists {
		zerolog.Ctx(ctx).Error().Uint("author_id", *authorID).Msg("author not found")
		return NotFound("Author not found with ID : %d", *authorID)
	}
	return nil
}
