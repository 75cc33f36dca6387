package runtime

import (
	"context"
	"fmt"

	"github.com/risor-io/risor/object"

	"github.com/jward/shelf"
)

// Catalog host functions. Each wraps one Catalog operation; failures are
// returned as Risor errors so the script stops with a message naming the
// function.

func makeAddBookFn(c *shelf.Catalog) *object.Builtin {
	return object.NewBuiltin("add_book", func(ctx context.Context, args ...object.Object) object.Object {
		if len(args) != 1 {
			return object.NewArgsError("add_book", 1, len(args))
		}
		m, err := extractMap(args[0])
		if err != nil {
			return object.Errorf("add_book: %v", err)
		}
		title, err := requireString(m, "title")
		if err != nil {
			return object.Errorf("add_book: %v", err)
		}
		book := shelf.NewBook(title, getString(m, "author"), getString(m, "genre"))
		if err := c.AddBook(book); err != nil {
			return object.Errorf("add_book: %v", err)
		}
		books, _, err := c.Len()
		if err != nil {
			return object.Errorf("add_book: %v", err)
		}
		return object.NewInt(int64(books - 1))
	})
}

func makeAddMemberFn(c *shelf.Catalog) *object.Builtin {
	return object.NewBuiltin("add_member", func(ctx context.Context, args ...object.Object) object.Object {
		if len(args) != 1 {
			return object.NewArgsError("add_member", 1, len(args))
		}
		m, err := extractMap(args[0])
		if err != nil {
			return object.Errorf("add_member: %v", err)
		}
		name, err := requireString(m, "name")
		if err != nil {
			return object.Errorf("add_member: %v", err)
		}
		id, err := requireInt(m, "id")
		if err != nil {
			return object.Errorf("add_member: %v", err)
		}
		if err := c.AddMember(shelf.NewMember(name, id)); err != nil {
			return object.Errorf("add_member: %v", err)
		}
		_, members, err := c.Len()
		if err != nil {
			return object.Errorf("add_member: %v", err)
		}
		return object.NewInt(int64(members - 1))
	})
}

func makeIsIDUniqueFn(c *shelf.Catalog) *object.Builtin {
	return object.NewBuiltin("is_id_unique", func(ctx context.Context, args ...object.Object) object.Object {
		if len(args) != 1 {
			return object.NewArgsError("is_id_unique", 1, len(args))
		}
		id, err := toInt64(args[0])
		if err != nil {
			return object.Errorf("is_id_unique: %v", err)
		}
		ok, err := c.IsIDUnique(int(id))
		if err != nil {
			return object.Errorf("is_id_unique: %v", err)
		}
		return object.NewBool(ok)
	})
}

// find_book returns the insertion index of the first matching title, or nil.
func makeFindBookFn(c *shelf.Catalog) *object.Builtin {
	return object.NewBuiltin("find_book", func(ctx context.Context, args ...object.Object) object.Object {
		if len(args) != 1 {
			return object.NewArgsError("find_book", 1, len(args))
		}
		title, err := toString(args[0])
		if err != nil {
			return object.Errorf("find_book: %v", err)
		}
		idx, found, err := c.FindBookByTitle(title)
		if err != nil {
			return object.Errorf("find_book: %v", err)
		}
		if !found {
			return object.Nil
		}
		return object.NewInt(int64(idx))
	})
}

func makeBooksFn(c *shelf.Catalog) *object.Builtin {
	return object.NewBuiltin("books", func(ctx context.Context, args ...object.Object) object.Object {
		if len(args) != 0 {
			return object.NewArgsError("books", 0, len(args))
		}
		books, err := c.Books()
		if err != nil {
			return object.Errorf("books: %v", err)
		}
		results := make([]object.Object, 0, len(books))
		for _, b := range books {
			results = append(results, object.NewMap(map[string]object.Object{
				"title":  object.NewString(b.Title()),
				"author": object.NewString(b.Author()),
				"genre":  object.NewString(b.Genre()),
			}))
		}
		return object.NewList(results)
	})
}

func makeMembersFn(c *shelf.Catalog) *object.Builtin {
	return object.NewBuiltin("members", func(ctx context.Context, args ...object.Object) object.Object {
		if len(args) != 0 {
			return object.NewArgsError("members", 0, len(args))
		}
		members, err := c.Members()
		if err != nil {
			return object.Errorf("members: %v", err)
		}
		results := make([]object.Object, 0, len(members))
		for _, m := range members {
			results = append(results, object.NewMap(map[string]object.Object{
				"name": object.NewString(m.Name()),
				"id":   object.NewInt(int64(m.ID())),
			}))
		}
		return object.NewList(results)
	})
}

// --- Argument helpers ---

func extractMap(obj object.Object) (map[string]object.Object, error) {
	m, ok := obj.(*object.Map)
	if !ok {
		return nil, fmt.Errorf("expected map, got %s", obj.Type())
	}
	return m.Value(), nil
}

func getString(m map[string]object.Object, key string) string {
	v, ok := m[key]
	if !ok {
		return ""
	}
	if s, ok := v.(*object.String); ok {
		return s.Value()
	}
	return ""
}

// requireString is getString for keys that must be present. An empty
// string is a valid value.
func requireString(m map[string]object.Object, key string) (string, error) {
	v, ok := m[key]
	if !ok {
		return "", fmt.Errorf("missing key %q", key)
	}
	s, err := toString(v)
	if err != nil {
		return "", fmt.Errorf("key %q: %w", key, err)
	}
	return s, nil
}

func requireInt(m map[string]object.Object, key string) (int, error) {
	v, ok := m[key]
	if !ok {
		return 0, fmt.Errorf("missing key %q", key)
	}
	i, err := toInt64(v)
	if err != nil {
		return 0, fmt.Errorf("key %q: %w", key, err)
	}
	return int(i), nil
}

func toInt64(obj object.Object) (int64, error) {
	if i, ok := obj.(*object.Int); ok {
		return i.Value(), nil
	}
	return 0, fmt.Errorf("expected int, got %s", obj.Type())
}

func toString(obj object.Object) (string, error) {
	if s, ok := obj.(*object.String); ok {
		return s.Value(), nil
	}
	return "", fmt.Errorf("expected string, got %s", obj.Type())
}
