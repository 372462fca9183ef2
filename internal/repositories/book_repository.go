package repositories

import "bookclub/internal/models"

// BookFields holds the mutable book columns of a partial update. Nil means unchanged.
type BookFields struct {
	Title         *string
	Author        *string
	YearPublished *int
	Description   *string
}

// BookRepository defines the interface for book data access.
type BookRepository interface {
	GetAll() ([]models.Book, error)
	GetByID(id uint) (*models.Book, error)
	Create(book *models.Book) error
	Update(id uint, fields BookFields) (*models.Book, error)
	Delete(id uint) error
}
