package repositories

import (
	"fmt"

	"bookclub/internal/models"

	"gorm.io/gorm"
)

// GORMBookRepository is a GORM implementation of BookRepository.
type GORMBookRepository struct {
	db *gorm.DB
}

// NewGORMBookRepository creates a new instance of GORMBookRepository.
func NewGORMBookRepository(db *gorm.DB) *GORMBookRepository {
	return &GORMBookRepository{
		db: db,
	}
}

// GetAll retrieves every book with its owner, in insertion order.
func (r *GORMBookRepository) GetAll() ([]models.Book, error) {
	books := []models.Book{}
	if err := r.db.Preload("User").Order("id ASC").Find(&books).Error; err != nil {
		return nil, fmt.Errorf("failed to get all books: %w", mapError(err))
	}
	return books, nil
}

// GetByID retrieves a single book with its owner.
func (r *GORMBookRepository) GetByID(id uint) (*models.Book, error) {
	var book models.Book
	if err := r.db.Preload("User").First(&book, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to get book by ID %d: %w", id, mapError(err))
	}
	return &book, nil
}

// Create inserts a book. The owner must exist.
func (r *GORMBookRepository) Create(book *models.Book) error {
	if err := r.db.Omit("User").Create(book).Error; err != nil {
		return fmt.Errorf("failed to create book: %w", mapError(err))
	}
	return nil
}

// Update writes only the non-nil fields; user_id is never touched.
func (r *GORMBookRepository) Update(id uint, fields BookFields) (*models.Book, error) {
	updates := map[string]interface{}{}
	if fields.Title != nil {
		updates["title"] = *fields.Title
	}
	if fields.Author != nil {
		updates["author"] = *fields.Author
	}
	if fields.YearPublished != nil {
		updates["year_published"] = *fields.YearPublished
	}
	if fields.Description != nil {
		updates["description"] = *fields.Description
	}

	if len(updates) > 0 {
		res := r.db.Model(&models.Book{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, fmt.Errorf("failed to update book %d: %w", id, mapError(res.Error))
		}
		if res.RowsAffected == 0 {
			return nil, fmt.Errorf("book with ID %d not found for update: %w", id, ErrNotFound)
		}
	}
	return r.GetByID(id)
}

// Delete removes a book and all of its reviews in one transaction.
func (r *GORMBookRepository) Delete(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("book_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Book{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete book %d: %w", id, mapError(err))
	}
	return nil
}
