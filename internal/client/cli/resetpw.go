package cli

import (
	"context"

	"github.com/skillbridge/skillbridge/internal/common"
)

// ResetPassword overwrites a local account's password. Demo-grade: there is
// no verification step, so it is only offered for the local store, never
// against a backend.
func (a *App) ResetPassword(ctx context.Context) error {
	if a.backend != nil {
		a.printf("Password reset is not available with a remote backend.")
		return nil
	}

	role, err := GetRole(a.reader, a.out)
	if err != nil {
		a.printf("error: %v", err)
		return err
	}

	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		a.printf("error: %v", err)
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		a.printf("error: %v", err)
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.creds.ResetPassword(ctx, role, email, string(password)); err != nil {
		a.printf("Reset failed: %s", err.Error())
		return err
	}

	a.printf("Password updated.")
	return nil
}
