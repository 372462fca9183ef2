package services

import (
	"log"

	"bookclub/internal/models"
	"bookclub/internal/repositories"
)

// BookInput holds the fields of a new book.
type BookInput struct {
	Title         string
	Author        string
	YearPublished int
	Description   string
}

// BookService handles business logic related to books.
type BookService struct {
	repo   repositories.BookRepository
	events EventPublisher
}

// NewBookService creates a new BookService. events may be nil.
func NewBookService(repo repositories.BookRepository, events EventPublisher) *BookService {
	return &BookService{
		repo:   repo,
		events: events,
	}
}

// GetAllBooks retrieves all books with their owners.
func (s *BookService) GetAllBooks() ([]models.Book, error) {
	books, err := s.repo.GetAll()
	if err != nil {
		return nil, fromRepository(err, "")
	}
	return books, nil
}

// GetBookByID retrieves a single book by its ID.
func (s *BookService) GetBookByID(id uint) (*models.Book, error) {
	book, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fromRepository(err, "Book not found")
	}
	return book, nil
}

// CreateBook stores a new book owned by ownerID.
func (s *BookService) CreateBook(ownerID uint, in BookInput) (*models.Book, error) {
	book := &models.Book{
		Title:         in.Title,
		Author:        in.Author,
		YearPublished: in.YearPublished,
		Description:   in.Description,
		UserID:        ownerID,
	}
	if err := s.repo.Create(book); err != nil {
		return nil, fromRepository(err, "")
	}

	// Reload with owner data
	created, err := s.repo.GetByID(book.ID)
	if err != nil {
		return nil, fromRepository(err, "Book not found")
	}

	log.Printf("Book %d created by user %d", created.ID, ownerID)
	publishEvent(s.events, CatalogEvent{Type: EventBookCreated, EntityID: created.ID, UserID: ownerID})
	return created, nil
}

// UpdateBook applies a partial update if requesterID owns the book.
func (s *BookService) UpdateBook(requesterID, id uint, fields repositories.BookFields) (*models.Book, error) {
	book, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fromRepository(err, "Book not found")
	}
	if err := AuthorizeOwner(book, requesterID); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(id, fields)
	if err != nil {
		return nil, fromRepository(err, "Book not found")
	}

	publishEvent(s.events, CatalogEvent{Type: EventBookUpdated, EntityID: id, UserID: requesterID})
	return updated, nil
}

// DeleteBook removes the book and its reviews if requesterID owns it.
func (s *BookService) DeleteBook(requesterID, id uint) error {
	book, err := s.repo.GetByID(id)
	if err != nil {
		return fromRepository(err, "Book not found")
	}
	if err := AuthorizeOwner(book, requesterID); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return fromRepository(err, "Book not found")
	}

	log.Printf("Book %d deleted by user %d", id, requesterID)
	publishEvent(s.events, CatalogEvent{Type: EventBookDeleted, EntityID: id, UserID: requesterID})
	return nil
}
