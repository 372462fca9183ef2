package models

import "time"

// User is an account that owns books and reviews.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string    `json:"username" gorm:"uniqueIndex;type:varchar(80);not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;type:varchar(120);not null"`
	PasswordHash string    `json:"-" gorm:"type:varchar(512);not null"` // never serialized
	CreatedAt    time.Time `json:"-"`
}

func (User) TableName() string {
	return "users"
}
