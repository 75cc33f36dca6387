package shelf

import "fmt"

// Member is an immutable library member. The id is expected to be positive
// and unique within a Catalog; that rule is enforced by whoever registers
// the member, not by Catalog.AddMember.
type Member struct {
	name string
	id   int
}

// NewMember creates a Member.
func NewMember(name string, id int) Member {
	return Member{name: name, id: id}
}

func (m Member) Name() string { return m.name }
func (m Member) ID() int      { return m.id }

func (m Member) String() string {
	return fmt.Sprintf("Name: %s, ID: %d", m.name, m.id)
}
