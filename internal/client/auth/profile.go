package auth

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/skillbridge/skillbridge/internal/client/storage"
)

// ProfileLedger tracks onboarding completion per (role, email), stored as a
// single JSON map under the "profile-status" key. Its lifecycle is
// independent of the session: logging out does not reset it.
type ProfileLedger struct {
	store storage.Store
}

func NewProfileLedger(store storage.Store) *ProfileLedger {
	return &ProfileLedger{store: store}
}

func profileKey(role Role, email string) string {
	return fmt.Sprintf("%s:%s", role, NormalizeEmail(email))
}

func (l *ProfileLedger) load(ctx context.Context) (map[string]bool, error) {
	raw, err := l.store.Get(ctx, storage.KeyProfileStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile status: %w", err)
	}
	status := make(map[string]bool)
	if raw == nil {
		return status, nil
	}
	if err := json.Unmarshal(raw, &status); err != nil {
		return nil, fmt.Errorf("failed to decode profile status: %w", err)
	}
	return status, nil
}

// Completed reports whether the account has finished its onboarding flow.
// An absent entry reads as false.
func (l *ProfileLedger) Completed(ctx context.Context, role Role, email string) (bool, error) {
	status, err := l.load(ctx)
	if err != nil {
		return false, err
	}
	return status[profileKey(role, email)], nil
}

// SetCompleted records the onboarding state for an account.
func (l *ProfileLedger) SetCompleted(ctx context.Context, role Role, email string, completed bool) error {
	status, err := l.load(ctx)
	if err != nil {
		return err
	}
	status[profileKey(role, email)] = completed

	raw, err := json.Marshal(status)
	if err != nil {
		return fmt.Errorf("failed to encode profile status: %w", err)
	}
	if err := l.store.Set(ctx, storage.KeyProfileStatus, raw); err != nil {
		return fmt.Errorf("failed to save profile status: %w", err)
	}
	return nil
}
