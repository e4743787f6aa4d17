package cli

import (
	"context"

	"github.com/skillbridge/skillbridge/internal/client/auth"
)

// Profile runs the role-specific onboarding flow for the logged-in account
// and marks its profile as completed. Profile completion is required before
// the dashboards unlock, and it survives logout.
func (a *App) Profile(ctx context.Context) error {
	session := a.sessions.Current(ctx)
	if session == nil {
		a.printf("Log in first.")
		return nil
	}

	completed, err := a.ledger.Completed(ctx, session.User.Role, session.User.Email)
	if err != nil {
		a.printf("error: %v", err)
		return err
	}
	if completed {
		a.printf("Profile already completed.")
		return nil
	}

	switch session.User.Role {
	case auth.RoleJobSeeker:
		if _, err := GetSimpleText(a.reader, "Top skills (comma separated)", a.out); err != nil {
			return err
		}
		if _, err := GetSimpleText(a.reader, "Career goal", a.out); err != nil {
			return err
		}
	case auth.RoleRecruiter:
		if _, err := GetSimpleText(a.reader, "Company name", a.out); err != nil {
			return err
		}
		if _, err := GetSimpleText(a.reader, "Industry", a.out); err != nil {
			return err
		}
	}

	if err := a.ledger.SetCompleted(ctx, session.User.Role, session.User.Email, true); err != nil {
		a.printf("error: %v", err)
		return err
	}

	a.printf("Profile completed. The dashboard is now available.")
	return nil
}

// requireProfile returns the session when logged in with a completed
// profile, printing guidance otherwise.
func (a *App) requireProfile(ctx context.Context) *auth.Session {
	session := a.sessions.Current(ctx)
	if session == nil {
		a.printf("Log in first.")
		return nil
	}
	completed, err := a.ledger.Completed(ctx, session.User.Role, session.User.Email)
	if err != nil {
		a.printf("error: %v", err)
		return nil
	}
	if !completed {
		a.printf("Complete your profile first (run 'profile').")
		return nil
	}
	return session
}
