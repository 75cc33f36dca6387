package shelf

import "github.com/jward/shelf/internal/store"

// DataStore is the record storage contract behind a Catalog. It is a type
// alias for the internal store interface, so no conversion is needed.
type DataStore = store.DataStore
