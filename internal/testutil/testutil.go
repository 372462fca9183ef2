package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bookclub/internal/config"
	"bookclub/internal/database"
	"bookclub/internal/models"
)

// NewTestDB opens a private in-memory SQLite database with the schema migrated.
// Each call gets its own named database so parallel tests never share rows.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := &config.Config{
		DBDriver:    "sqlite",
		DatabaseDSN: fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	}
	db, err := database.Open(cfg)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

// CreateUser inserts a user with a throwaway password hash.
func CreateUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	u := &models.User{Username: username, Email: username + "@example.com", PasswordHash: "x"}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return u
}

// CreateBook inserts a book owned by ownerID.
func CreateBook(t *testing.T, db *gorm.DB, ownerID uint, title string) *models.Book {
	t.Helper()
	b := &models.Book{Title: title, Author: "Author", YearPublished: 2000, Description: "desc", UserID: ownerID}
	if err := db.Omit("User").Create(b).Error; err != nil {
		t.Fatalf("create book %s: %v", title, err)
	}
	return b
}
