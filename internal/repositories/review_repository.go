package repositories

import "bookclub/internal/models"

// ReviewFields holds the mutable review columns of a partial update. Nil means unchanged.
type ReviewFields struct {
	Rating  *int
	Comment *string
}

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	GetAll() ([]models.Review, error)
	GetByID(id uint) (*models.Review, error)
	Create(review *models.Review) error
	Update(id uint, fields ReviewFields) (*models.Review, error)
	Delete(id uint) error
}
