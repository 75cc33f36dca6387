// Package shelf manages a small in-memory library catalog: an ordered
// collection of books, an ordered collection of members, title search, and
// issue announcements between a member and a book.
//
// # Usage
//
// Create a Catalog, add entries, and search:
//
//	c, err := shelf.New()
//	if err != nil { ... }
//	defer c.Close()
//
//	err = c.AddBook(shelf.NewBook("Dune", "F. Herbert", "Sci-Fi"))
//	res, err := c.SearchBookByTitle("dune")
//	if res.Found { ... }
//
// # Backends
//
// The Catalog keeps its records in a [DataStore]. [BackendMemory] (the
// default) stores them in ordered slices; [BackendSQLite] stores them in a
// private in-memory SQLite database. Neither survives the process.
//
// # Lookup
//
//   - [Catalog.FindBookByTitle] returns the insertion index of the first book
//     whose title equals the query after ASCII lower-case folding. There is
//     no trimming and no substring matching.
//   - [Catalog.IsIDUnique] reports whether no member holds a given id.
//
// # Issuing
//
// [Catalog.IssueBookByCopy] and [Catalog.IssueBookByGenre] announce that a
// member took a book. Issues are not recorded and never change the catalog;
// they are delivered to the Catalog's [Announcer], if any.
package shelf
