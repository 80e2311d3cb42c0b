// Package store is the durable credential store: a small encrypted
// key-value table in a local SQLite database, scoped per installation.
//
// It persists exactly the session record (the bearer token and the
// serialized user profile) under fixed keys. The two entries are written
// and deleted together by the auth service, but the storage layer itself
// gives no transactional guarantee across them: readers must treat a
// partial record as no session.
package store

import "context"

// Fixed key names of the persisted session record.
const (
	KeyToken = "auth_token"
	KeyUser  = "auth_user"

	// keyInstallID identifies this installation; assigned on first open.
	keyInstallID = "installation_id"
)

// Repository is durable key-value storage for credentials.
//
// Contract:
//   - Get returns (nil, nil) for a missing key, never an error.
//   - Set failures are fatal to the caller and must be propagated.
//   - Delete of a missing key succeeds silently.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
