package shelf

import "fmt"

// IssueKind tells how an Issue names what was taken.
type IssueKind string

const (
	IssueByCopy  IssueKind = "copy"
	IssueByGenre IssueKind = "genre"
)

// Issue announces that a member took a book. It is never stored.
type Issue struct {
	Kind   IssueKind
	Member Member
	Title  string // set for IssueByCopy
	Genre  string // set for IssueByGenre; also the book's genre for IssueByCopy
}

func (i Issue) String() string {
	if i.Kind == IssueByGenre {
		return fmt.Sprintf("%s issued a book with genre: %s", i.Member.name, i.Genre)
	}
	return fmt.Sprintf("%s issued the book titled: %s", i.Member.name, i.Title)
}

// Announcer receives issue announcements.
type Announcer func(Issue)

// IssueBookByCopy announces that member took book. The book need not be in
// the catalog and nothing is recorded.
func (c *Catalog) IssueBookByCopy(book Book, member Member) Issue {
	return c.announce(Issue{Kind: IssueByCopy, Member: member, Title: book.title, Genre: book.genre})
}

// IssueBookByGenre announces that member took a book of the given genre.
// No catalog lookup happens.
func (c *Catalog) IssueBookByGenre(genre string, member Member) Issue {
	return c.announce(Issue{Kind: IssueByGenre, Member: member, Genre: genre})
}

func (c *Catalog) announce(iss Issue) Issue {
	c.logger.Info("book issued",
		"kind", iss.Kind, "member", iss.Member.name, "member_id", iss.Member.id,
		"title", iss.Title, "genre", iss.Genre)
	if c.announcer != nil {
		c.announcer(iss)
	}
	return iss
}
