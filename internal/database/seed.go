package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"bookclub/internal/models"
)

type seedBook struct {
	title, author, description string
	year                       int
	owner                      int // index into the seeded users
}

var seedBooks = []seedBook{
	{"1984", "George Orwell", "A dystopian novel about totalitarianism.", 1949, 0},
	{"To Kill a Mockingbird", "Harper Lee", "A classic American novel about racism and injustice.", 1960, 1},
	{"Pride and Prejudice", "Jane Austen", "A romantic novel about manners and marriage.", 1813, 0},
	{"The Great Gatsby", "F. Scott Fitzgerald", "A story of the Jazz Age and the American Dream.", 1925, 0},
	{"The Catcher in the Rye", "J.D. Salinger", "A controversial novel about teenage angst.", 1951, 1},
	{"Harry Potter and the Sorcerer's Stone", "J.K. Rowling", "The first book in the Harry Potter series.", 1997, 0},
	{"The Lord of the Rings", "J.R.R. Tolkien", "An epic fantasy adventure.", 1954, 1},
	{"The Hobbit", "J.R.R. Tolkien", "A fantasy adventure novel.", 1937, 0},
	{"Dune", "Frank Herbert", "A science fiction epic set on the desert planet Arrakis.", 1965, 1},
	{"Neuromancer", "William Gibson", "A cyberpunk novel that defined the genre.", 1984, 0},
	{"The Hitchhiker's Guide to the Galaxy", "Douglas Adams", "A comedic science fiction series.", 1979, 1},
	{"Ender's Game", "Orson Scott Card", "A military science fiction novel.", 1985, 0},
	{"The Name of the Wind", "Patrick Rothfuss", "An epic fantasy novel.", 2007, 1},
	{"American Gods", "Neil Gaiman", "A blend of fantasy, mythology, and Americana.", 2001, 0},
	{"The Martian", "Andy Weir", "A survival story on Mars.", 2011, 1},
}

// Seed populates an empty database with demo users, books and reviews.
// hash turns the demo password into a stored credential.
func Seed(db *gorm.DB, hash func(string) (string, error)) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		log.Println("Database already has users, skipping seed")
		return nil
	}

	pw, err := hash("password123")
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		users := []models.User{
			{Username: "john_doe", Email: "john@example.com", PasswordHash: pw},
			{Username: "jane_smith", Email: "jane@example.com", PasswordHash: pw},
		}
		if err := tx.Create(&users).Error; err != nil {
			return fmt.Errorf("failed to seed users: %w", err)
		}

		books := make([]models.Book, 0, len(seedBooks))
		for _, sb := range seedBooks {
			books = append(books, models.Book{
				Title:         sb.title,
				Author:        sb.author,
				YearPublished: sb.year,
				Description:   sb.description,
				UserID:        users[sb.owner].ID,
			})
		}
		if err := tx.Create(&books).Error; err != nil {
			return fmt.Errorf("failed to seed books: %w", err)
		}

		reviews := []models.Review{
			{Rating: 5, Comment: "A masterpiece!", UserID: users[1].ID, BookID: books[0].ID},
			{Rating: 4, Comment: "Timeless story.", UserID: users[0].ID, BookID: books[1].ID},
			{Rating: 5, Comment: "Love the characters.", UserID: users[1].ID, BookID: books[2].ID},
		}
		if err := tx.Create(&reviews).Error; err != nil {
			return fmt.Errorf("failed to seed reviews: %w", err)
		}

		log.Printf("Seeded %d users, %d books, %d reviews", len(users), len(books), len(reviews))
		return nil
	})
}
