// Package match computes readiness and match aggregates for the dashboards.
// All functions are pure: they never mutate their inputs and keep no state.
// The scores themselves (0-100) are supplied by the analysis pipeline, not
// computed here.
package match

// GapPriority classifies how badly a missing skill is needed.
type GapPriority string

const (
	PriorityCritical  GapPriority = "critical"
	PriorityImportant GapPriority = "important"
	PriorityOptional  GapPriority = "optional"
)

// SkillGap is a skill the profile lacks for a particular posting.
type SkillGap struct {
	SkillName        string      `json:"skillName"`
	Priority         GapPriority `json:"priority"`
	EstimatedWeeks   int         `json:"estimatedWeeks,omitempty"`
	SuggestedCourses []string    `json:"suggestedCourses,omitempty"`
}

// JobMatch is a job posting scored against a seeker's profile.
type JobMatch struct {
	JobID           string     `json:"jobId"`
	JobTitle        string     `json:"jobTitle"`
	Company         string     `json:"company"`
	MatchPercentage int        `json:"matchPercentage"`
	ReadinessScore  int        `json:"readinessScore"`
	StrengthAreas   []string   `json:"strengthAreas,omitempty"`
	MissingSkills   []SkillGap `json:"missingSkills"`
}

// CandidateMatch is a candidate scored against a recruiter's posting.
type CandidateMatch struct {
	CandidateID     string     `json:"candidateId"`
	Name            string     `json:"name"`
	Title           string     `json:"title"`
	MatchPercentage int        `json:"matchPercentage"`
	ReadinessScore  int        `json:"readinessScore"`
	StrengthAreas   []string   `json:"strengthAreas,omitempty"`
	MissingSkills   []SkillGap `json:"missingSkills"`
}

// Recommendation is the hiring-recommendation tier derived from a
// readiness score.
type Recommendation string

const (
	HighlyRecommended Recommendation = "highly recommended"
	GoodCandidate     Recommendation = "good candidate"
	NeedsDevelopment  Recommendation = "needs development"
)
