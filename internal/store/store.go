package store

import "context"

// Collection keys for the persisted state layout. Each collection key holds
// one JSON array of records; the session key holds an opaque token.
const (
	KeyUsers       = "users"
	KeyCourses     = "courses"
	KeyAssignments = "assignments"
	KeyGroups      = "groups"
	KeySession     = "currentUser"
)

// Store is the synchronous string-keyed persistence primitive. It is a dumb
// adapter: no validation, no transactions, no isolation. Consistency rules
// live in the repository layer.
type Store interface {
	// Get returns the value for key. The second return is false when the key
	// is absent.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set writes the value for key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Remove deletes the key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
