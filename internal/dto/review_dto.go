package dto

import (
	"bookclub/internal/models"
	"bookclub/internal/repositories"
)

type CreateReviewRequest struct {
	Rating  *int    `json:"rating" validate:"required,min=1,max=5"`
	Comment *string `json:"comment" validate:"required"`
	BookID  *uint   `json:"book_id" validate:"required"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment"`
}

func (r UpdateReviewRequest) Fields() repositories.ReviewFields {
	return repositories.ReviewFields{Rating: r.Rating, Comment: r.Comment}
}

type BookSummary struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

type ReviewResponse struct {
	ID      uint          `json:"id"`
	Rating  int           `json:"rating"`
	Comment string        `json:"comment"`
	UserID  uint          `json:"user_id"`
	BookID  uint          `json:"book_id"`
	User    *UserResponse `json:"user"`
	Book    *BookSummary  `json:"book"`
}

func ReviewFromModel(r *models.Review) ReviewResponse {
	resp := ReviewResponse{
		ID:      r.ID,
		Rating:  r.Rating,
		Comment: r.Comment,
		UserID:  r.UserID,
		BookID:  r.BookID,
		User:    UserFromModel(r.User),
	}
	if r.Book != nil && r.Book.ID != 0 {
		resp.Book = &BookSummary{ID: r.Book.ID, Title: r.Book.Title}
	}
	return resp
}

func ReviewsFromModels(reviews []models.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, ReviewFromModel(&reviews[i]))
	}
	return out
}
