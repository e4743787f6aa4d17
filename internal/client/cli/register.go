package cli

import (
	"context"

	"github.com/skillbridge/skillbridge/internal/common"
)

// Register creates a new account, locally or on the configured backend.
func (a *App) Register(ctx context.Context) error {
	role, err := GetRole(a.reader, a.out)
	if err != nil {
		a.printf("error: %v", err)
		return err
	}

	name, err := GetSimpleText(a.reader, "Full name", a.out)
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

	if a.backend != nil {
		resp, err := a.backend.Signup(ctx, name, email, string(password), string(role))
		if err != nil {
			a.printf("Signup failed: %s", err.Error())
			return err
		}
		a.printf("%s", resp.Message)
		return nil
	}

	user, err := a.creds.Register(ctx, name, email, string(password), role)
	if err != nil {
		a.printf("Signup failed: %s", err.Error())
		return err
	}

	a.printf("Account created for %s. Log in to continue.", user.Email)
	return nil
}
