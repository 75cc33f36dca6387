package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(MemoryDSN)
	require.NoError(t, err)
	require.NoError(t, s.Migrate())
	t.Cleanup(func() { s.Close() })
	return s
}

// backends returns one fresh instance of every DataStore implementation.
func backends(t *testing.T) map[string]DataStore {
	t.Helper()
	return map[string]DataStore{
		"sqlite": newTestStore(t),
		"memory": NewMemoryStore(),
	}
}

// =============================================================================
// Schema & Lifecycle
// =============================================================================

func TestMigrate_AllTablesExist(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	for _, table := range []string{"books", "members"} {
		var name string
		err := s.db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	require.NoError(t, s.Migrate())
}

func TestNewStore_MemoryDatabasesAreIsolated(t *testing.T) {
	t.Parallel()
	a := newTestStore(t)
	b := newTestStore(t)

	_, err := a.InsertBook(&Book{Title: "Dune", Author: "F. Herbert", Genre: "Sci-Fi"})
	require.NoError(t, err)

	books, _, err := b.Counts()
	require.NoError(t, err)
	assert.Zero(t, books)
}

// =============================================================================
// Book operations
// =============================================================================

func TestBooks_InsertionOrder(t *testing.T) {
	t.Parallel()
	for name, ds := range backends(t) {
		t.Run(name, func(t *testing.T) {
			titles := []string{"Foo", "FOO", "Bar"}
			for i, title := range titles {
				b := &Book{Title: title, Author: "A", Genre: "G"}
				seq, err := ds.InsertBook(b)
				require.NoError(t, err)
				assert.Equal(t, int64(i+1), seq)
				assert.Equal(t, seq, b.Seq)
			}

			books, err := ds.Books()
			require.NoError(t, err)
			require.Len(t, books, 3)
			for i, b := range books {
				assert.Equal(t, titles[i], b.Title)
				assert.Equal(t, int64(i+1), b.Seq)
			}
		})
	}
}

func TestBooks_EmptyStore(t *testing.T) {
	t.Parallel()
	for name, ds := range backends(t) {
		t.Run(name, func(t *testing.T) {
			books, err := ds.Books()
			require.NoError(t, err)
			assert.Empty(t, books)
		})
	}
}

func TestBooks_PreservesTextExactly(t *testing.T) {
	t.Parallel()
	for name, ds := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := ds.InsertBook(&Book{Title: " Dune ", Author: "", Genre: "Sci-Fi"})
			require.NoError(t, err)

			books, err := ds.Books()
			require.NoError(t, err)
			require.Len(t, books, 1)
			assert.Equal(t, " Dune ", books[0].Title)
			assert.Equal(t, "", books[0].Author)
		})
	}
}

// =============================================================================
// Member operations
// =============================================================================

func TestMembers_InsertAndLookup(t *testing.T) {
	t.Parallel()
	for name, ds := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := ds.InsertMember(&Member{MemberID: 5, Name: "Ann"})
			require.NoError(t, err)

			got, err := ds.MemberByID(5)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, "Ann", got.Name)
			assert.Equal(t, int64(1), got.Seq)

			missing, err := ds.MemberByID(6)
			require.NoError(t, err)
			assert.Nil(t, missing)
		})
	}
}

func TestMembers_DuplicateIDsAreAccepted(t *testing.T) {
	t.Parallel()
	for name, ds := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := ds.InsertMember(&Member{MemberID: 1, Name: "First"})
			require.NoError(t, err)
			_, err = ds.InsertMember(&Member{MemberID: 1, Name: "Second"})
			require.NoError(t, err)

			got, err := ds.MemberByID(1)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, "First", got.Name, "lookup returns the earliest insert")

			members, err := ds.Members()
			require.NoError(t, err)
			assert.Len(t, members, 2)
		})
	}
}

func TestCounts(t *testing.T) {
	t.Parallel()
	for name, ds := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for range 3 {
				_, err := ds.InsertBook(&Book{Title: "T"})
				require.NoError(t, err)
			}
			_, err := ds.InsertMember(&Member{MemberID: 9, Name: "N"})
			require.NoError(t, err)

			books, members, err := ds.Counts()
			require.NoError(t, err)
			assert.Equal(t, 3, books)
			assert.Equal(t, 1, members)
		})
	}
}
