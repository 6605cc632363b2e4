package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Book struct {
	ID          uint            `gorm:"primaryKey"`
	Title       string          `gorm:"type:varchar(255);not null"`
	PublishDate *time.Time      `gorm:"type:date"`
	Publication string          `gorm:"type:varchar(255)"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	AuthorID    *uint           `gorm:"index"`
	Author      *Author         `gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Book) TableName() string {
	return "books"
}
