package store

// Catalog record types. Seq is assigned on insert and orders reads.

type Book struct {
	Seq    int64
	Title  string
	Author string
	Genre  string
}

type Member struct {
	Seq      int64
	MemberID int
	Name     string
}
