package models

import "time"

// Book is a catalog entry created by a user.
type Book struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	Title         string    `gorm:"type:varchar(200);not null"`
	Author        string    `gorm:"type:varchar(100);not null"`
	YearPublished int       `gorm:"not null"`
	Description   string    `gorm:"type:text;not null"`
	UserID        uint      `gorm:"not null;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

func (Book) TableName() string {
	return "books"
}

// OwnerID implements services.Owned.
func (b *Book) OwnerID() uint {
	return b.UserID
}
