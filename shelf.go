// Package shelf manages a small in-memory library catalog of books and
// members with case-insensitive title lookup.
package shelf
