package shelf

import (
	"fmt"
	"io"
	"iter"
	"log/slog"

	"github.com/jward/shelf/internal/store"
)

// Catalog owns an insertion-ordered sequence of books and of members.
type Catalog struct {
	store     store.DataStore
	backend   Backend
	announcer Announcer
	logger    *slog.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithBackend selects the DataStore implementation New opens. Ignored when
// WithStore is also given.
func WithBackend(b Backend) Option {
	return func(c *Catalog) {
		c.backend = b
	}
}

// WithStore makes the Catalog use ds instead of opening a new backend. The
// Catalog takes ownership and closes ds in Close.
func WithStore(ds DataStore) Option {
	return func(c *Catalog) {
		c.store = ds
	}
}

// WithAnnouncer sets the function that receives every Issue.
func WithAnnouncer(a Announcer) Option {
	return func(c *Catalog) {
		c.announcer = a
	}
}

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *Catalog) {
		c.logger = l
	}
}

// New creates an empty Catalog. Without options it keeps records in memory.
func New(opts ...Option) (*Catalog, error) {
	c := &Catalog{backend: BackendMemory}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if c.store == nil {
		ds, err := c.backend.open()
		if err != nil {
			return nil, fmt.Errorf("shelf: open %s backend: %w", c.backend, err)
		}
		c.store = ds
	}
	c.logger.Debug("catalog opened", "backend", c.backend)
	return c, nil
}

// Close releases the Catalog's backend.
func (c *Catalog) Close() error {
	return c.store.Close()
}

// Store returns the underlying DataStore for direct access.
func (c *Catalog) Store() DataStore {
	return c.store
}

// AddBook appends book to the book sequence.
func (c *Catalog) AddBook(book Book) error {
	rec := &store.Book{Title: book.title, Author: book.author, Genre: book.genre}
	if _, err := c.store.InsertBook(rec); err != nil {
		return fmt.Errorf("shelf: add book: %w", err)
	}
	c.logger.Debug("book added", "title", book.title, "seq", rec.Seq)
	return nil
}

// AddMember appends member to the member sequence. It does not check that
// the id is positive or unique; see IsIDUnique.
func (c *Catalog) AddMember(member Member) error {
	rec := &store.Member{MemberID: member.id, Name: member.name}
	if _, err := c.store.InsertMember(rec); err != nil {
		return fmt.Errorf("shelf: add member: %w", err)
	}
	c.logger.Debug("member added", "name", member.name, "id", member.id)
	return nil
}

// IsIDUnique reports whether no member in the catalog has the given id.
func (c *Catalog) IsIDUnique(id int) (bool, error) {
	m, err := c.store.MemberByID(id)
	if err != nil {
		return false, fmt.Errorf("shelf: is id unique: %w", err)
	}
	return m == nil, nil
}

// Books returns a snapshot of all books in insertion order.
func (c *Catalog) Books() ([]Book, error) {
	recs, err := c.store.Books()
	if err != nil {
		return nil, fmt.Errorf("shelf: books: %w", err)
	}
	books := make([]Book, len(recs))
	for i, r := range recs {
		books[i] = NewBook(r.Title, r.Author, r.Genre)
	}
	return books, nil
}

// Members returns a snapshot of all members in insertion order.
func (c *Catalog) Members() ([]Member, error) {
	recs, err := c.store.Members()
	if err != nil {
		return nil, fmt.Errorf("shelf: members: %w", err)
	}
	members := make([]Member, len(recs))
	for i, r := range recs {
		members[i] = NewMember(r.Name, r.MemberID)
	}
	return members, nil
}

// Len returns the number of books and members.
func (c *Catalog) Len() (books, members int, err error) {
	books, members, err = c.store.Counts()
	if err != nil {
		return 0, 0, fmt.Errorf("shelf: len: %w", err)
	}
	return books, members, nil
}

// DisplayBooks yields each book's display text in insertion order. Every
// range over the sequence reads the catalog afresh; a read failure is
// yielded once as the error and ends the sequence.
func (c *Catalog) DisplayBooks() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		books, err := c.Books()
		if err != nil {
			yield("", err)
			return
		}
		for _, b := range books {
			if !yield(b.String(), nil) {
				return
			}
		}
	}
}

// DisplayMembers yields each member's display text in insertion order, with
// the same semantics as DisplayBooks.
func (c *Catalog) DisplayMembers() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		members, err := c.Members()
		if err != nil {
			yield("", err)
			return
		}
		for _, m := range members {
			if !yield(m.String(), nil) {
				return
			}
		}
	}
}
