package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/snnyvrz/library-api/internal/model"
	"github.com/snnyvrz/library-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGormBookRepository_CreateAndFind(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookRepository(db)
	ctx := context.Background()

	author := testutil.SeedAuthor(t, db, "James Clear", "james@clear.com")
	pub := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)

	book := model.Book{
		Title:       "Atomic Habits",
		PublishDate: &pub,
		Publication: "AH Publications",
		Price:       decimal.RequireFromString("2000"),
		AuthorID:    &author.ID,
		Author:      &model.Author{ID: author.ID, Name: "should not be written"},
	}
	require.NoError(t, repo.Create(ctx, &book))
	require.NotZero(t, book.ID)

	got, err := repo.FindByID(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Atomic Habits", got.Title)
	assert.True(t, decimal.RequireFromString("2000").Equal(got.Price))
	require.NotNil(t, got.Author)
	assert.Equal(t, "James Clear", got.Author.Name)

	var count int64
	require.NoError(t, db.Model(&model.Author{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGormBookRepository_FindByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookRepository(db)

	_, err := repo.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	exists, err := repo.ExistsByID(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGormBookRepository_List(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookRepository(db)

	author := testutil.SeedAuthor(t, db, "Uncle Bob", "bob@clean.com")
	testutil.SeedBook(t, db, &author, "Clean Code", nil, "30")
	testutil.SeedBook(t, db, nil, "Anonymous", nil, "5")

	books, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "Clean Code", books[0].Title)
	require.NotNil(t, books[0].Author)
	assert.Equal(t, "Uncle Bob", books[0].Author.Name)
	assert.Nil(t, books[1].Author)
}

func TestGormBookRepository_Update_OverwritesEveryField(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookRepository(db)
	ctx := context.Background()

	author := testutil.SeedAuthor(t, db, "Someone", "someone@x.com")
	pub := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	book := testutil.SeedBook(t, db, &author, "Before", &pub, "10")

	book.Title = "After"
	book.PublishDate = nil
	book.Publication = "Other House"
	book.Price = decimal.RequireFromString("12.5")
	book.AuthorID = nil

	require.NoError(t, repo.Update(ctx, &book))

	got, err := repo.FindByID(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", got.Title)
	assert.Nil(t, got.PublishDate)
	assert.Equal(t, "Other House", got.Publication)
	assert.Equal(t, "12.50", got.Price.StringFixed(2))
	assert.Nil(t, got.AuthorID)
	assert.Nil(t, got.Author)

	missing := model.Book{ID: book.ID + 1, Title: "Ghost"}
	assert.ErrorIs(t, repo.Update(ctx, &missing), gorm.ErrRecordNotFound)
}

func TestGormBookRepository_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookRepository(db)
	ctx := context.Background()

	book := testutil.SeedBook(t, db, nil, "Disposable", nil, "1")

	require.NoError(t, repo.Delete(ctx, book.ID))
	assert.ErrorIs(t, repo.Delete(ctx, book.ID), gorm.ErrRecordNotFound)
}
