package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/skillbridge/skillbridge/internal/client/storage"
	"github.com/skillbridge/skillbridge/internal/logging"
)

// PersistenceMode selects which store lifetime the session is written to.
// The flag itself always lives in the durable store so it survives restarts.
type PersistenceMode string

const (
	// ModeDurable keeps the session across process restarts ("remember me").
	ModeDurable PersistenceMode = "local"
	// ModeEphemeral keeps the session only for the current process.
	ModeEphemeral PersistenceMode = "session"
)

// SessionManager owns the single active session. Login writes the mode flag
// before the session payload, and Current reads the flag before the payload,
// so a reader always consults the store the last writer used.
type SessionManager struct {
	creds     *CredentialRepository
	durable   storage.Store
	ephemeral storage.Store
	log       logging.Logger
	now       func() time.Time
}

func NewSessionManager(creds *CredentialRepository, durable, ephemeral storage.Store, log logging.Logger) *SessionManager {
	return &SessionManager{
		creds:     creds,
		durable:   durable,
		ephemeral: ephemeral,
		log:       log.With("module", "session"),
		now:       time.Now,
	}
}

func (m *SessionManager) storeFor(mode PersistenceMode) storage.Store {
	if mode == ModeEphemeral {
		return m.ephemeral
	}
	return m.durable
}

// mode reads the persisted flag; anything unreadable defaults to durable,
// matching the store layout's original default.
func (m *SessionManager) mode(ctx context.Context) PersistenceMode {
	raw, err := m.durable.Get(ctx, storage.KeySessionMode)
	if err != nil || raw == nil {
		return ModeDurable
	}
	var mode PersistenceMode
	if err := json.Unmarshal(raw, &mode); err != nil {
		return ModeDurable
	}
	if mode != ModeEphemeral {
		return ModeDurable
	}
	return mode
}

func (m *SessionManager) setMode(ctx context.Context, mode PersistenceMode) error {
	raw, err := json.Marshal(mode)
	if err != nil {
		return err
	}
	if err := m.durable.Set(ctx, storage.KeySessionMode, raw); err != nil {
		return fmt.Errorf("failed to persist session mode: %w", err)
	}
	return nil
}

// Login authenticates against the credential repository and, on success,
// persists a fresh session. rememberMe selects the durable store; otherwise
// the session lives only until the process exits. Authentication failures
// come back unchanged (common.ErrInvalidCredentials).
func (m *SessionManager) Login(ctx context.Context, role Role, creds Credentials, rememberMe bool) (*Session, error) {
	user, err := m.creds.Authenticate(ctx, role, creds)
	if err != nil {
		return nil, err
	}

	mode := ModeEphemeral
	if rememberMe {
		mode = ModeDurable
	}

	// The flag must land before the payload: Current trusts the flag.
	if err := m.setMode(ctx, mode); err != nil {
		return nil, err
	}

	session := &Session{User: user, CreatedAt: m.now()}

	raw, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to encode session: %w", err)
	}
	if err := m.storeFor(mode).Set(ctx, storage.KeySession, raw); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	m.log.Info(ctx, "session created", "role", string(role), "mode", string(mode))
	return session, nil
}

// Current returns the active session or nil. It never fails: storage errors
// and undecodable payloads are logged and read as "no session".
func (m *SessionManager) Current(ctx context.Context) *Session {
	mode := m.mode(ctx)

	raw, err := m.storeFor(mode).Get(ctx, storage.KeySession)
	if err != nil {
		m.log.Warn(ctx, "failed to read session", "error", err.Error())
		return nil
	}
	if raw == nil {
		return nil
	}

	var session Session
	if err := json.Unmarshal(raw, &session); err != nil {
		m.log.Warn(ctx, "discarding undecodable session", "error", err.Error())
		return nil
	}
	return &session
}

// Logout removes the session from both stores so a stale copy cannot
// resurface after the mode flag changes. Idempotent; the mode flag is left
// as it was.
func (m *SessionManager) Logout(ctx context.Context) error {
	if err := m.durable.Delete(ctx, storage.KeySession); err != nil {
		return fmt.Errorf("failed to clear durable session: %w", err)
	}
	if err := m.ephemeral.Delete(ctx, storage.KeySession); err != nil {
		return fmt.Errorf("failed to clear ephemeral session: %w", err)
	}
	return nil
}
