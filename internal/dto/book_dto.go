package dto

import (
	"bookclub/internal/models"
	"bookclub/internal/repositories"
)

type CreateBookRequest struct {
	Title         *string `json:"title" validate:"required,min=1,max=200"`
	Author        *string `json:"author" validate:"required,min=1,max=120"`
	YearPublished *int    `json:"year_published" validate:"required"`
	Description   *string `json:"description" validate:"required"`
}

// UpdateBookRequest carries only the fields the client sent.
type UpdateBookRequest struct {
	Title         *string `json:"title" validate:"omitempty,min=1,max=200"`
	Author        *string `json:"author" validate:"omitempty,min=1,max=120"`
	YearPublished *int    `json:"year_published"`
	Description   *string `json:"description"`
}

func (r UpdateBookRequest) Fields() repositories.BookFields {
	return repositories.BookFields{
		Title:         r.Title,
		Author:        r.Author,
		YearPublished: r.YearPublished,
		Description:   r.Description,
	}
}

type BookResponse struct {
	ID            uint          `json:"id"`
	Title         string        `json:"title"`
	Author        string        `json:"author"`
	YearPublished int           `json:"year_published"`
	Description   string        `json:"description"`
	UserID        uint          `json:"user_id"`
	User          *UserResponse `json:"user"`
}

func BookFromModel(b *models.Book) BookResponse {
	return BookResponse{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		YearPublished: b.YearPublished,
		Description:   b.Description,
		UserID:        b.UserID,
		User:          UserFromModel(b.User),
	}
}

func BooksFromModels(books []models.Book) []BookResponse {
	out := make([]BookResponse, 0, len(books))
	for i := range books {
		out = append(out, BookFromModel(&books[i]))
	}
	return out
}
