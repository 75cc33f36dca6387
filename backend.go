package shelf

import (
	"fmt"
	"strings"

	"github.com/jward/shelf/internal/store"
)

// Backend names a DataStore implementation.
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendSQLite Backend = "sqlite"
)

// Backends lists accepted backend names in display order.
var Backends = []Backend{BackendMemory, BackendSQLite}

// ParseBackend maps a name to a Backend. Matching ignores case.
func ParseBackend(name string) (Backend, error) {
	for _, b := range Backends {
		if strings.EqualFold(name, string(b)) {
			return b, nil
		}
	}
	names := make([]string, len(Backends))
	for i, b := range Backends {
		names[i] = string(b)
	}
	return "", fmt.Errorf("unknown backend %q: must be %s", name, strings.Join(names, " or "))
}

// open creates an empty, ready-to-use DataStore for b.
func (b Backend) open() (store.DataStore, error) {
	switch b {
	case BackendMemory, "":
		return store.NewMemoryStore(), nil
	case BackendSQLite:
		s, err := store.NewStore(store.MemoryDSN)
		if err != nil {
			return nil, err
		}
		if err := s.Migrate(); err != nil {
			s.Close()
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown backend %q", string(b))
	}
}
