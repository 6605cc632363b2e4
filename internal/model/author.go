package model

import "time"

type Author struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(255)"`
	Email     string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Books     []Book `gorm:"foreignKey:AuthorID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Author) TableName() string {
	return "authors"
}
