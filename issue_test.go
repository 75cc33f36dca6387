package shelf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueBookByCopy(t *testing.T) {
	t.Parallel()
	var got []Issue
	c := newTestCatalog(t, BackendMemory, WithAnnouncer(func(i Issue) { got = append(got, i) }))

	book := NewBook("The Great Gatsby", "F. Scott Fitzgerald", "International Classics")
	iss := c.IssueBookByCopy(book, NewMember("John Doe", 1))

	assert.Equal(t, IssueByCopy, iss.Kind)
	assert.Equal(t, "The Great Gatsby", iss.Title)
	assert.Equal(t, "John Doe issued the book titled: The Great Gatsby", iss.String())
	require.Len(t, got, 1)
	assert.Equal(t, iss, got[0])
}

func TestIssueBookByGenre(t *testing.T) {
	t.Parallel()
	var got []Issue
	c := newTestCatalog(t, BackendMemory, WithAnnouncer(func(i Issue) { got = append(got, i) }))

	iss := c.IssueBookByGenre("Russian Classics", NewMember("Whimsy Lou", 2))

	assert.Equal(t, IssueByGenre, iss.Kind)
	assert.Empty(t, iss.Title)
	assert.Equal(t, "Whimsy Lou issued a book with genre: Russian Classics", iss.String())
	require.Len(t, got, 1)
}

func TestIssue_NoCatalogMembershipRequired(t *testing.T) {
	t.Parallel()
	forEachBackend(t, func(t *testing.T, c *Catalog) {
		// Neither the book, the genre nor the member exist in the catalog.
		first := c.IssueBookByCopy(NewBook("Ghost", "", ""), NewMember("Nobody", 99))
		second := c.IssueBookByCopy(NewBook("Ghost", "", ""), NewMember("Nobody", 99))
		assert.Equal(t, first, second)
		c.IssueBookByGenre("Nonexistent", NewMember("Nobody", 99))

		books, members, err := c.Len()
		require.NoError(t, err)
		assert.Zero(t, books)
		assert.Zero(t, members)
	})
}
