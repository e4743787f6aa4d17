package cli

import (
	"context"

	"github.com/skillbridge/skillbridge/internal/client/auth"
	"github.com/skillbridge/skillbridge/internal/common"
)

// Login authenticates and creates the session. With a backend configured,
// the issued token is persisted instead of a local session.
func (a *App) Login(ctx context.Context) error {
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

	if a.backend != nil {
		resp, err := a.backend.Login(ctx, string(role), email, string(password))
		if err != nil {
			a.printf("Login failed: %s", err.Error())
			return err
		}
		a.printf("Logged in as %s", resp.Role)
		return nil
	}

	rememberMe, err := GetYesNo(a.reader, "Remember me?", a.out)
	if err != nil {
		a.printf("error: %v", err)
		return err
	}

	session, err := a.sessions.Login(ctx, role, auth.Credentials{
		Email:    email,
		Password: string(password),
	}, rememberMe)
	if err != nil {
		a.printf("Login failed: %s", err.Error())
		return err
	}

	a.printf("Logged in as %s (%s)", session.User.Name, session.User.Role)

	completed, err := a.ledger.Completed(ctx, session.User.Role, session.User.Email)
	if err == nil && !completed {
		a.printf("Your profile is incomplete. Run 'profile' to finish onboarding.")
	}
	return nil
}

// Logout clears the session (and any backend token). Safe to run twice.
func (a *App) Logout(ctx context.Context) error {
	if a.backend != nil {
		if err := a.backend.Logout(ctx); err != nil {
			a.printf("error: %v", err)
			return err
		}
	}
	if err := a.sessions.Logout(ctx); err != nil {
		a.printf("error: %v", err)
		return err
	}
	a.printf("Logged out.")
	return nil
}

// WhoAmI prints the active session.
func (a *App) WhoAmI(ctx context.Context) error {
	session := a.sessions.Current(ctx)
	if session == nil {
		a.printf("Not logged in.")
		return nil
	}
	a.printf("%s <%s> %s, logged in since %s",
		session.User.Name, session.User.Email, session.User.Role,
		session.CreatedAt.Format("2006-01-02 15:04:05"))
	return nil
}
