package repository

import (
	"context"

	"github.com/snnyvrz/library-api/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AuthorRepository interface {
	Create(ctx context.Context, author *model.Author) error
	FindByID(ctx context.Context, id uint) (*model.Author, error)
	FindByEmail(ctx context.Context, email string) (*model.Author, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context) ([]model.Author, error)
	Update(ctx context.Context, author *model.Author) error
	Delete(ctx context.Context, id uint) error
}

type GormAuthorRepository struct {
	db *gorm.DB
}

func NewGormAuthorRepository(db *gorm.DB) *GormAuthorRepository {
	return &GormAuthorRepository{db: db}
}

func (r *GormAuthorRepository) Create(ctx context.Context, author *model.Author) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(author).Error
}

func (r *GormAuthorRepository) FindByID(ctx context.Context, id uint) (*model.Author, error) {
	var author model.Author
	if err := r.db.WithContext(ctx).
		Preload("Books", func(db *gorm.DB) *gorm.DB {
			return db.Order("books.id ASC")
		}).
		First(&author, "id = ?", id).Error; err != nil {

		return nil, err
	}
	return &author, nil
}

func (r *GormAuthorRepository) FindByEmail(ctx context.Context, email string) (*model.Author, error) {
	var author model.Author
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Take(&author).Error; err != nil {

		return nil, err
	}
	return &author, nil
}

func (r *GormAuthorRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.Author{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {

		return false, err
	}
	return count > 0, nil
}

func (r *GormAuthorRepository) List(ctx context.Context) ([]model.Author, error) {
	var authors []model.Author
	if err := r.db.WithContext(ctx).
		Preload("Books", func(db *gorm.DB) *gorm.DB {
			return db.Order("books.id ASC")
		}).
		Order("id ASC").
		Find(&authors).Error; err != nil {

		return nil, err
	}
	return authors, nil
}

func (r *GormAuthorRepository) Update(ctx context.Context, author *model.Author) error {
	result := r.db.WithContext(ctx).
		Model(&model.Author{}).
		Where("id = ?", author.ID).
		Updates(map[string]any{
			"name":  author.Name,
			"email": author.Email,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the author and clears the author reference on its books in
// one transaction. The books themselves are kept.
func (r *GormAuthorRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Book{}).
			Where("author_id = ?", id).
			Update("author_id", nil).Error; err != nil {

			return err
		}

		result := tx.Delete(&model.Author{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
