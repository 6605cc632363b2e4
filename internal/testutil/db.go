// Package testutil holds helpers shared by package tests: an isolated
// in-memory database per test and seed functions.
package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/snnyvrz/library-api/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db := openDB(t, "testdb")

	if err := db.AutoMigrate(&model.Author{}, &model.Book{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// NewUnmigratedDB returns a database without tables, so every query fails.
func NewUnmigratedDB(t *testing.T) *gorm.DB {
	t.Helper()
	return openDB(t, "errdb")
}

func openDB(t *testing.T, prefix string) *gorm.DB {
	t.Helper()

	dsn := "file:" + prefix + "_" + uuid.New().String() + "?mode=memory&cache=shared"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB from gorm: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

func SeedAuthor(t *testing.T, db *gorm.DB, name, email string) model.Author {
	t.Helper()

	author := model.Author{
		Name:  name,
		Email: email,
	}

	if err := db.Create(&author).Error; err != nil {
		t.Fatalf("failed to seed author %q: %v", name, err)
	}

	return author
}

func SeedBook(t *testing.T, db *gorm.DB, author *model.Author, title string, publishDate *time.Time, price string) model.Book {
	t.Helper()

	book := model.Book{
		Title:       title,
		PublishDate: publishDate,
		Publication: title + " Publications",
		Price:       decimal.RequireFromString(price),
	}
	if author != nil {
		id := author.ID
		book.AuthorID = &id
	}

	if err := db.Omit("Author").Create(&book).Error; err != nil {
		t.Fatalf("failed to seed book %q: %v", title, err)
	}

	return book
}
