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

type AuthorService struct {
	authors repository.AuthorRepository
}

func NewAuthorService(authors repository.AuthorRepository) *AuthorService {
	return &AuthorService{authors: authors}
}

// Create persists a new author. The email must not belong to any existing
// author; the check runs before the insert and the unique index backs it up.
func (s *AuthorService) Create(ctx context.Context, in dto.Author) (dto.Author, error) {
	log := zerolog.Ctx(ctx)
	log.Info().Str("email", in.Email).Msg("creating author")

	_, err := s.authors.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		log.Error().Str("email", in.Email).Msg("author already exists")
		return dto.Author{}, Conflict("Author already exists with Email : %s", in.Email)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return dto.Author{}, fmt.Errorf("find author by email: %w", err)
	}

	author := dto.AuthorToModel(in)
	author.ID = 0
	author.Books = nil

	if err := s.authors.Create(ctx, &author); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Error().Str("email", in.Email).Msg("author already exists")
			return dto.Author{}, Conflict("Author already exists with Email : %s", in.Email).Wrap(err)
		}
		return dto.Author{}, fmt.Errorf("create author: %w", err)
	}

	log.Info().Uint("author_id", author.ID).Str("email", author.Email).Msg("author created")
	return dto.AuthorFromModel(author), nil
}

// ListAll returns every author. An empty catalogue is reported as NotFound.
func (s *AuthorService) ListAll(ctx context.Context) ([]dto.Author, error) {
	log := zerolog.Ctx(ctx)
	log.Info().Msg("fetching all authors")

	authors, err := s.authors.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	if len(authors) == 0 {
		log.Error().Msg("no authors found")
		return nil, NotFound("Authors are not found")
	}

	log.Info().Int("count", len(authors)).Msg("authors fetched")
	return dto.AuthorsFromModel(authors), nil
}

func (s *AuthorService) GetByID(ctx context.Context, id uint) (dto.Author, error) {
	log := zerolog.Ctx(ctx).With().Uint("author_id", id).Logger()
	log.Info().Msg("fetching author")

	author, err := s.authors.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error().Msg("author not found")
			return dto.Author{}, NotFound("Author not found with ID : %d", id)
		}
		return dto.Author{}, fmt.Errorf("find author %d: %w", id, err)
	}

	log.Info().Msg("author fetched")
	return dto.AuthorFromModel(*author), nil
}

// UpdateByID overwrites the author's mutable fields. The email is immutable:
// a differing email rejects the whole update.
func (s *AuthorService) UpdateByID(ctx context.Context, id uint, in dto.Author) (dto.Author, error) {
	log := zerolog.Ctx(ctx).With().Uint("author_id", id).Logger()
	log.Info().Msg("updating author")

	author, err := s.authors.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error().Msg("author not found")
			return dto.Author{}, NotFound("Author not found with ID : %d", id)
		}
		return dto.Author{}, fmt.Errorf("find author %d: %w", id, err)
	}

	if author.Email != in.Email {
		log.Error().Str("email", in.Email).Msg("author email can not be updated")
		return dto.Author{}, Conflict("Email of Author can not be updated : %s", in.Email)
	}

	author.Name = in.Name

	if err := s.authors.Update(ctx, author); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.Author{}, NotFound("Author not found with ID : %d", id)
		}
		return dto.Author{}, fmt.Errorf("update author %d: %w", id, err)
	}

	log.Info().Msg("author updated")
	return dto.AuthorFromModel(*author), nil
}

// DeleteByID removes the author. Books written by the author stay in the
// catalogue without an author.
func (s *AuthorService) DeleteByID(ctx context.Context, id uint) error {
	log := zerolog.Ctx(ctx).With().Uint("author_id", id).Logger()
	log.Info().Msg("deleting author")

	exists, err := s.authors.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("check author %d: %w", id, err)
	}
	if !exists {
		log.Error().Msg("author not found")
		return NotFound("Author not found with ID : %d", id)
	}

	if err := s.authors.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("Author not found with ID : %d", id)
		}
		return fmt.Errorf("delete author %d: %w", id, err)
	}

	log.Info().Msg("author deleted")
	return nil
}
