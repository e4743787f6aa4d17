// Package storage provides the key-value store the client keeps its account
// state in. Two implementations exist with different lifetimes: SQLiteStore
// persists across runs, MemoryStore lives only as long as the process.
package storage

import "context"

// Logical keys for the records kept in a store. Values are JSON.
const (
	KeyUsers         = "users"
	KeySession       = "session"
	KeySessionMode   = "session-storage-mode"
	KeyProfileStatus = "profile-status"
	KeyAccessToken   = "access_token"
	KeyUserRole      = "user_role"
)

// Store is a minimal key-value capability: get, set, remove.
//
// Contract: Get returns (nil, nil) for a missing key; Set overwrites;
// Delete is idempotent.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
