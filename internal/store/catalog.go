package store

import (
	"database/sql"
	"fmt"
)

// --- Book operations ---

func (s *Store) InsertBook(b *Book) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO books (title, author, genre) VALUES (?, ?, ?)",
		b.Title, b.Author, b.Genre,
	)
	if err != nil {
		return 0, fmt.Errorf("insert book: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	b.Seq = id
	return id, nil
}

func (s *Store) Books() ([]*Book, error) {
	rows, err := s.db.Query("SELECT seq, title, author, genre FROM books ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("books: %w", err)
	}
	defer rows.Close()
	var books []*Book
	for rows.Next() {
		b := &Book{}
		if err := rows.Scan(&b.Seq, &b.Title, &b.Author, &b.Genre); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

// --- Member operations ---

func (s *Store) InsertMember(m *Member) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO members (member_id, name) VALUES (?, ?)",
		m.MemberID, m.Name,
	)
	if err != nil {
		return 0, fmt.Errorf("insert member: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	m.Seq = id
	return id, nil
}

func (s *Store) Members() ([]*Member, error) {
	rows, err := s.db.Query("SELECT seq, member_id, name FROM members ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("members: %w", err)
	}
	defer rows.Close()
	var members []*Member
	for rows.Next() {
		m := &Member{}
		if err := rows.Scan(&m.Seq, &m.MemberID, &m.Name); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (s *Store) MemberByID(memberID int) (*Member, error) {
	m := &Member{}
	err := s.db.QueryRow(
		"SELECT seq, member_id, name FROM members WHERE member_id = ? ORDER BY seq LIMIT 1", memberID,
	).Scan(&m.Seq, &m.MemberID, &m.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("member by id: %w", err)
	}
	return m, nil
}

// Counts returns the number of stored books and members.
func (s *Store) Counts() (books, members int, err error) {
	err = s.db.QueryRow(
		"SELECT (SELECT COUNT(*) FROM books), (SELECT COUNT(*) FROM members)",
	).Scan(&books, &members)
	if err != nil {
		return 0, 0, fmt.Errorf("counts: %w", err)
	}
	return books, members, nil
}
