package lexicon

import "context"

// Repository supplies candidate rules for a lookup. The returned slice need
// not be ordered; the selection engine sorts it. Implementations must be
// safe for concurrent readers.
type Repository interface {
	// Rules returns every rule matching the query, or an error when the
	// backing store cannot be reached. An empty result is not an error.
	Rules(ctx context.Context, q Query) ([]Rule, error)
}

// Reloader is implemented by repositories that can re-read their backing
// store. Reload is atomic: on failure the previous snapshot stays active.
type Reloader interface {
	Reload(ctx context.Context) error
}
