package auth

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/skillbridge/skillbridge/internal/client/storage"
	"github.com/skillbridge/skillbridge/internal/common"
	"github.com/skillbridge/skillbridge/internal/cryptox"
	"github.com/skillbridge/skillbridge/internal/dbx"
)

// CredentialRepository keeps all registered accounts as one JSON list under
// the "users" key of the durable store.
//
// Passwords are stored as unsalted SHA-256 digests (see cryptox). That is a
// deliberate, documented demo limitation, not an oversight: anything that can
// read the store can brute-force the digests offline. Do not reuse this
// repository behind anything that matters.
//
// A single mutex serializes the read-modify-write of the user list, so two
// interleaved registrations cannot both pass the duplicate check.
type CredentialRepository struct {
	store  storage.Store
	ledger *ProfileLedger
	db     *sql.DB
	mu     sync.Mutex
}

func NewCredentialRepository(store storage.Store, ledger *ProfileLedger) *CredentialRepository {
	return &CredentialRepository{store: store, ledger: ledger}
}

// WithDB hands the repository the SQL handle backing the durable store.
// When set, Register commits the user list and the profile flag in one
// transaction instead of two independent writes.
func (r *CredentialRepository) WithDB(db *sql.DB) *CredentialRepository {
	r.db = db
	return r
}

func (r *CredentialRepository) loadUsers(ctx context.Context) ([]storedUser, error) {
	raw, err := r.store.Get(ctx, storage.KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	var users []storedUser
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

func saveUsers(ctx context.Context, store storage.Store, users []storedUser) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to encode users: %w", err)
	}
	if err := store.Set(ctx, storage.KeyUsers, raw); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}
	return nil
}

// Register creates a new account and returns its public user. It fails with
// common.ErrValidation when name, email or password is empty, and with
// common.ErrDuplicateAccount when an account with the same normalized email
// and role already exists. The same email under the other role is fine.
//
// The new account's profile-completion flag starts out false, committed
// together with the user list when a SQL handle is attached (WithDB), as
// two ordered writes otherwise.
func (r *CredentialRepository) Register(ctx context.Context, name, email, password string, role Role) (User, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)

	if name == "" {
		return User{}, fmt.Errorf("%w: name is required", common.ErrValidation)
	}
	if email == "" {
		return User{}, fmt.Errorf("%w: email is required", common.ErrValidation)
	}
	if password == "" {
		return User{}, fmt.Errorf("%w: password is required", common.ErrValidation)
	}
	if !role.Valid() {
		return User{}, fmt.Errorf("%w: unknown role %q", common.ErrValidation, role)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.loadUsers(ctx)
	if err != nil {
		return User{}, err
	}

	for _, u := range users {
		if u.Email == email && u.Role == role {
			return User{}, common.ErrDuplicateAccount
		}
	}

	user := storedUser{
		User: User{
			ID:    uuid.NewString(),
			Role:  role,
			Name:  name,
			Email: email,
		},
		PasswordHash: cryptox.PasswordDigest(password),
	}

	persist := func(ctx context.Context, store storage.Store, ledger *ProfileLedger) error {
		if err := saveUsers(ctx, store, append(users, user)); err != nil {
			return err
		}
		return ledger.SetCompleted(ctx, role, email, false)
	}

	if r.db != nil {
		err = dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			txStore := storage.NewSQLiteStore(tx)
			return persist(ctx, txStore, NewProfileLedger(txStore))
		})
	} else {
		// Without a transactional handle these are two independent writes.
		// A crash in between leaves an account with no ledger entry, which
		// reads as incomplete anyway.
		err = persist(ctx, r.store, r.ledger)
	}
	if err != nil {
		return User{}, err
	}
	return user.public(), nil
}

// Authenticate returns the public user for a matching (role, email, password)
// triple. Any mismatch, including an account that does not exist, fails with
// common.ErrInvalidCredentials so the caller cannot tell which part was wrong.
func (r *CredentialRepository) Authenticate(ctx context.Context, role Role, creds Credentials) (User, error) {
	email := NormalizeEmail(creds.Email)

	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.loadUsers(ctx)
	if err != nil {
		return User{}, err
	}

	for _, u := range users {
		if u.Email == email && u.Role == role {
			if !cryptox.VerifyPassword(creds.Password, u.PasswordHash) {
				return User{}, common.ErrInvalidCredentials
			}
			return u.public(), nil
		}
	}
	return User{}, common.ErrInvalidCredentials
}

// ResetPassword overwrites the stored digest for an existing account.
// Unknown (role, email) fails with common.ErrNotFound. This is the demo-grade
// flow: no verification step, anyone at the terminal can reset any account.
func (r *CredentialRepository) ResetPassword(ctx context.Context, role Role, email, newPassword string) error {
	email = NormalizeEmail(email)
	if newPassword == "" {
		return fmt.Errorf("%w: password is required", common.ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.loadUsers(ctx)
	if err != nil {
		return err
	}

	for i, u := range users {
		if u.Email == email && u.Role == role {
			users[i].PasswordHash = cryptox.PasswordDigest(newPassword)
			return saveUsers(ctx, r.store, users)
		}
	}
	return common.ErrNotFound
}
