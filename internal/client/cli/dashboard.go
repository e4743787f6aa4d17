package cli

import (
	"context"
	"errors"

	"github.com/skillbridge/skillbridge/internal/client/auth"
	"github.com/skillbridge/skillbridge/internal/common"
	"github.com/skillbridge/skillbridge/internal/match"
)

// Dashboard renders the job-seeker view: ranked matches, the overall
// readiness figure and the unique critical skill gaps.
func (a *App) Dashboard(ctx context.Context) error {
	session := a.requireProfile(ctx)
	if session == nil {
		return nil
	}
	if session.User.Role != auth.RoleJobSeeker {
		a.printf("The dashboard is for job seekers. Try 'compare'.")
		return nil
	}

	matches := demoJobMatches

	readiness, err := match.OverallReadiness(matches)
	if err != nil {
		if errors.Is(err, common.ErrInsufficientData) {
			a.printf("No matches yet.")
			return nil
		}
		a.printf("error: %v", err)
		return err
	}

	a.printf("Overall readiness: %d%% (%s)", readiness, match.Recommend(readiness))
	a.printf("")
	a.printf("Top matches:")
	for _, m := range matches {
		a.printf("  %-28s %-14s match %3d%%  readiness %3d%%",
			m.JobTitle, m.Company, m.MatchPercentage, m.ReadinessScore)
	}

	gaps := match.UniqueCriticalGaps(matches)
	if len(gaps) == 0 {
		a.printf("No critical skill gaps. Nice.")
		return nil
	}

	a.printf("")
	a.printf("Critical skill gaps:")
	for _, gap := range gaps {
		if gap.EstimatedWeeks > 0 {
			a.printf("  %-16s ~%d weeks to close", gap.SkillName, gap.EstimatedWeeks)
		} else {
			a.printf("  %s", gap.SkillName)
		}
	}
	return nil
}

// Compare renders the recruiter view: candidates ranked with the best match
// highlighted, plus aggregate stats.
func (a *App) Compare(ctx context.Context) error {
	session := a.requireProfile(ctx)
	if session == nil {
		return nil
	}
	if session.User.Role != auth.RoleRecruiter {
		a.printf("Candidate comparison is for recruiters. Try 'dashboard'.")
		return nil
	}

	candidates := demoCandidateMatches

	best, err := match.BestCandidate(candidates)
	if err != nil {
		if errors.Is(err, common.ErrInsufficientData) {
			a.printf("No candidates yet.")
			return nil
		}
		a.printf("error: %v", err)
		return err
	}

	average, _ := match.AverageMatch(candidates)
	a.printf("%d candidates, average match %d%%, %d at 80%% or above",
		len(candidates), average, match.HighMatchCount(candidates, 80))
	a.printf("")

	for _, c := range candidates {
		marker := " "
		if c.CandidateID == best.CandidateID {
			marker = "*"
		}
		a.printf("%s %-14s %-18s match %3d%%  readiness %3d%%  %s",
			marker, c.Name, c.Title, c.MatchPercentage, c.ReadinessScore,
			match.Recommend(c.ReadinessScore))
	}

	a.printf("")
	a.printf("Best match: %s (%d%%)", best.Name, best.MatchPercentage)
	return nil
}
