package shelf

import "fmt"

// Book is an immutable catalog entry.
type Book struct {
	title  string
	author string
	genre  string
}

// NewBook creates a Book. No field is validated.
func NewBook(title, author, genre string) Book {
	return Book{title: title, author: author, genre: genre}
}

func (b Book) Title() string  { return b.title }
func (b Book) Author() string { return b.author }
func (b Book) Genre() string  { return b.genre }

// Matches reports whether title equals the book's title after ASCII
// lower-case folding of both sides.
func (b Book) Matches(title string) bool {
	return lowerASCII(b.title) == lowerASCII(title)
}

// String renders the book as three labelled lines without a trailing newline.
func (b Book) String() string {
	return fmt.Sprintf("Title: %s\nAuthor: %s\nGenre: %s", b.title, b.author, b.genre)
}

// lowerASCII folds A-Z to a-z and leaves every other byte alone.
func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
