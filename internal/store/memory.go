package store

// MemoryStore keeps books and members in insertion-ordered slices. It is the
// default backend and never returns an error.
//
// Records are copied on the way in and on the way out, so callers cannot
// mutate stored state through the pointers they pass or receive.
type MemoryStore struct {
	books   []Book
	members []Member
}

// Compile-time check: *MemoryStore satisfies DataStore.
var _ DataStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) InsertBook(b *Book) (int64, error) {
	b.Seq = int64(len(m.books) + 1)
	m.books = append(m.books, *b)
	return b.Seq, nil
}

func (m *MemoryStore) InsertMember(mem *Member) (int64, error) {
	mem.Seq = int64(len(m.members) + 1)
	m.members = append(m.members, *mem)
	return mem.Seq, nil
}

func (m *MemoryStore) Books() ([]*Book, error) {
	out := make([]*Book, len(m.books))
	for i := range m.books {
		b := m.books[i]
		out[i] = &b
	}
	return out, nil
}

func (m *MemoryStore) Members() ([]*Member, error) {
	out := make([]*Member, len(m.members))
	for i := range m.members {
		mem := m.members[i]
		out[i] = &mem
	}
	return out, nil
}

func (m *MemoryStore) MemberByID(memberID int) (*Member, error) {
	for i := range m.members {
		if m.members[i].MemberID == memberID {
			mem := m.members[i]
			return &mem, nil
		}
	}
	return nil, nil
}

func (m *MemoryStore) Counts() (books, members int, err error) {
	return len(m.books), len(m.members), nil
}

// Close is a no-op.
func (m *MemoryStore) Close() error {
	return nil
}
