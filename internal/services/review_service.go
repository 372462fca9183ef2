package services

import (
	"log"

	"bookclub/internal/models"
	"bookclub/internal/repositories"
)

// ReviewInput holds the fields of a new review.
type ReviewInput struct {
	Rating  int
	Comment string
	BookID  uint
}

// ReviewService handles business logic related to reviews.
type ReviewService struct {
	repo     repositories.ReviewRepository
	bookRepo repositories.BookRepository
	events   EventPublisher
}

// NewReviewService creates a new ReviewService. events may be nil.
func NewReviewService(repo repositories.ReviewRepository, bookRepo repositories.BookRepository, events EventPublisher) *ReviewService {
	return &ReviewService{
		repo:     repo,
		bookRepo: bookRepo,
		events:   events,
	}
}

func checkRating(rating int) error {
	if rating < models.MinRating || rating > models.MaxRating {
		return newError(ErrBadRequest, nil, "rating must be between %d and %d", models.MinRating, models.MaxRating)
	}
	return nil
}

// GetAllReviews retrieves all reviews with their owners and books.
func (s *ReviewService) GetAllReviews() ([]models.Review, error) {
	reviews, err := s.repo.GetAll()
	if err != nil {
		return nil, fromRepository(err, "")
	}
	return reviews, nil
}

// GetReviewByID retrieves a single review by its ID.
func (s *ReviewService) GetReviewByID(id uint) (*models.Review, error) {
	review, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fromRepository(err, "Review not found")
	}
	return review, nil
}

// CreateReview stores a review by ownerID on an existing book.
func (s *ReviewService) CreateReview(ownerID uint, in ReviewInput) (*models.Review, error) {
	if err := checkRating(in.Rating); err != nil {
		return nil, err
	}
	if _, err := s.bookRepo.GetByID(in.BookID); err != nil {
		return nil, fromRepository(err, "Book not found")
	}

	review := &models.Review{
		Rating:  in.Rating,
		Comment: in.Comment,
		UserID:  ownerID,
		BookID:  in.BookID,
	}
	if err := s.repo.Create(review); err != nil {
		// The book may have been deleted since the check above.
		return nil, fromRepository(err, "Book not found")
	}

	created, err := s.repo.GetByID(review.ID)
	if err != nil {
		return nil, fromRepository(err, "Review not found")
	}

	log.Printf("Review %d on book %d created by user %d", created.ID, in.BookID, ownerID)
	publishEvent(s.events, CatalogEvent{Type: EventReviewCreated, EntityID: created.ID, UserID: ownerID, BookID: in.BookID})
	return created, nil
}

// UpdateReview applies a partial update if requesterID owns the review.
func (s *ReviewService) UpdateReview(requesterID, id uint, fields repositories.ReviewFields) (*models.Review, error) {
	if fields.Rating != nil {
		if err := checkRating(*fields.Rating); err != nil {
			return nil, err
		}
	}

	review, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fromRepository(err, "Review not found")
	}
	if err := AuthorizeOwner(review, requesterID); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(id, fields)
	if err != nil {
		return nil, fromRepository(err, "Review not found")
	}

	publishEvent(s.events, CatalogEvent{Type: EventReviewUpdated, EntityID: id, UserID: requesterID, BookID: updated.BookID})
	return updated, nil
}

// DeleteReview removes the review if requesterID owns it.
func (s *ReviewService) DeleteReview(requesterID, id uint) error {
	review, err := s.repo.GetByID(id)
	if err != nil {
		return fromRepository(err, "Review not found")
	}
	if err := AuthorizeOwner(review, requesterID); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return fromRepository(err, "Review not found")
	}

	log.Printf("Review %d deleted by user %d", id, requesterID)
	publishEvent(s.events, CatalogEvent{Type: EventReviewDeleted, EntityID: id, UserID: requesterID, BookID: review.BookID})
	return nil
}
