package repositories

import (
	"fmt"

	"bookclub/internal/models"

	"gorm.io/gorm"
)

// GORMReviewRepository is a GORM implementation of ReviewRepository.
type GORMReviewRepository struct {
	db *gorm.DB
}

// NewGORMReviewRepository creates a new instance of GORMReviewRepository.
func NewGORMReviewRepository(db *gorm.DB) *GORMReviewRepository {
	return &GORMReviewRepository{
		db: db,
	}
}

func (r *GORMReviewRepository) withAssociations() *gorm.DB {
	return r.db.Preload("User").Preload("Book")
}

// GetAll retrieves every review with its owner and book, in insertion order.
func (r *GORMReviewRepository) GetAll() ([]models.Review, error) {
	reviews := []models.Review{}
	if err := r.withAssociations().Order("id ASC").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to get all reviews: %w", mapError(err))
	}
	return reviews, nil
}

// GetByID retrieves a single review with its owner and book.
func (r *GORMReviewRepository) GetByID(id uint) (*models.Review, error) {
	var review models.Review
	if err := r.withAssociations().First(&review, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to get review by ID %d: %w", id, mapError(err))
	}
	return &review, nil
}

// Create inserts a review. A missing book or owner yields ErrForeignKey.
func (r *GORMReviewRepository) Create(review *models.Review) error {
	if err := r.db.Omit("User", "Book").Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", mapError(err))
	}
	return nil
}

// Update writes only the non-nil fields; user_id and book_id are never touched.
func (r *GORMReviewRepository) Update(id uint, fields ReviewFields) (*models.Review, error) {
	updates := map[string]interface{}{}
	if fields.Rating != nil {
		updates["rating"] = *fields.Rating
	}
	if fields.Comment != nil {
		updates["comment"] = *fields.Comment
	}

	if len(updates) > 0 {
		res := r.db.Model(&models.Review{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, fmt.Errorf("failed to update review %d: %w", id, mapError(res.Error))
		}
		if res.RowsAffected == 0 {
			return nil, fmt.Errorf("review with ID %d not found for update: %w", id, ErrNotFound)
		}
	}
	return r.GetByID(id)
}

// Delete removes a review by its ID.
func (r *GORMReviewRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Review{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete review %d: %w", id, mapError(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("review with ID %d not found for deletion: %w", id, ErrNotFound)
	}
	return nil
}
