package models

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a rating plus comment left by a user on a book.
type Review struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment   string    `gorm:"type:text;not null"`
	UserID    uint      `gorm:"not null;index"`
	BookID    uint      `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Book *Book `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE;"`
}

func (Review) TableName() string {
	return "reviews"
}

// OwnerID implements services.Owned.
func (r *Review) OwnerID() uint {
	return r.UserID
}
