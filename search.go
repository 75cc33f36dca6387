package shelf

import "fmt"

// SearchResult is the outcome of a title search. A miss is a normal result
// with Found false, not an error.
type SearchResult struct {
	Query string
	Found bool
	Index int // insertion index; -1 when not found
	Book  Book
}

// String renders the result the way the console reports it.
func (r SearchResult) String() string {
	if !r.Found {
		return fmt.Sprintf("Book not found with the title: %s", r.Query)
	}
	return "Book found: \n" + r.Book.String()
}

// FindBookByTitle returns the insertion index of the first book whose title
// matches title case-insensitively. found is false when no book matches.
func (c *Catalog) FindBookByTitle(title string) (index int, found bool, err error) {
	books, err := c.Books()
	if err != nil {
		return -1, false, fmt.Errorf("shelf: find book by title: %w", err)
	}
	index = findFrom(books, title, 0)
	return index, index >= 0, nil
}

// findFrom returns the index of the first book in books[i:] matching title,
// or -1.
func findFrom(books []Book, title string, i int) int {
	if i >= len(books) {
		return -1
	}
	if books[i].Matches(title) {
		return i
	}
	return findFrom(books, title, i+1)
}

// SearchBookByTitle looks up title and returns the matching book's details
// or a not-found result.
func (c *Catalog) SearchBookByTitle(title string) (SearchResult, error) {
	books, err := c.Books()
	if err != nil {
		return SearchResult{}, fmt.Errorf("shelf: search book by title: %w", err)
	}
	res := SearchResult{Query: title, Index: findFrom(books, title, 0)}
	if res.Index >= 0 {
		res.Found = true
		res.Book = books[res.Index]
	}
	c.logger.Debug("title search", "query", title, "found", res.Found, "index", res.Index)
	return res, nil
}
