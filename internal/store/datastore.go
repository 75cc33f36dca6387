package store

// DataStore is the interface for catalog data access. Both Store (SQLite)
// and MemoryStore (ordered slices) implement it. Reads always return records
// in insertion order.
type DataStore interface {
	// Inserts append and return the assigned sequence number.
	InsertBook(b *Book) (int64, error)
	InsertMember(m *Member) (int64, error)

	Books() ([]*Book, error)
	Members() ([]*Member, error)

	// MemberByID returns the first member holding memberID, or nil.
	MemberByID(memberID int) (*Member, error)

	Counts() (books, members int, err error)

	Close() error
}
