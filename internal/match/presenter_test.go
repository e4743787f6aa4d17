package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillbridge/skillbridge/internal/common"
)

func TestOverallReadiness_TopThreeByMatchPercentage(t *testing.T) {
	matches := []JobMatch{
		{JobID: "j1", MatchPercentage: 92, ReadinessScore: 90},
		{JobID: "j2", MatchPercentage: 78, ReadinessScore: 75},
		{JobID: "j3", MatchPercentage: 52, ReadinessScore: 48},
	}

	got, err := OverallReadiness(matches)
	require.NoError(t, err)
	// round((90+75+48)/3) = 71
	assert.Equal(t, 71, got)
}

func TestOverallReadiness_RanksBeforeSlicing(t *testing.T) {
	// The low-percentage match would drag the mean down if the input order
	// were used instead of the ranking.
	matches := []JobMatch{
		{JobID: "low", MatchPercentage: 10, ReadinessScore: 0},
		{JobID: "a", MatchPercentage: 90, ReadinessScore: 80},
		{JobID: "b", MatchPercentage: 85, ReadinessScore: 70},
		{JobID: "c", MatchPercentage: 80, ReadinessScore: 90},
	}

	got, err := OverallReadiness(matches)
	require.NoError(t, err)
	assert.Equal(t, 80, got)
}

func TestOverallReadiness_FewerThanThree(t *testing.T) {
	got, err := OverallReadiness([]JobMatch{
		{MatchPercentage: 70, ReadinessScore: 60},
		{MatchPercentage: 60, ReadinessScore: 51},
	})
	require.NoError(t, err)
	// round((60+51)/2) = 56
	assert.Equal(t, 56, got)
}

func TestOverallReadiness_Empty(t *testing.T) {
	_, err := OverallReadiness(nil)
	require.ErrorIs(t, err, common.ErrInsufficientData)
}

func TestOverallReadiness_DoesNotMutateInput(t *testing.T) {
	matches := []JobMatch{
		{JobID: "b", MatchPercentage: 10},
		{JobID: "a", MatchPercentage: 90},
	}
	_, err := OverallReadiness(matches)
	require.NoError(t, err)
	assert.Equal(t, "b", matches[0].JobID)
}

func TestUniqueCriticalGaps_DedupesByName(t *testing.T) {
	matches := []JobMatch{
		{MissingSkills: []SkillGap{
			{SkillName: "Deep Learning", Priority: PriorityCritical},
		}},
		{MissingSkills: []SkillGap{
			{SkillName: "Deep Learning", Priority: PriorityCritical},
			{SkillName: "PyTorch", Priority: PriorityCritical},
		}},
	}

	gaps := UniqueCriticalGaps(matches)
	names := make([]string, 0, len(gaps))
	for _, g := range gaps {
		names = append(names, g.SkillName)
	}
	assert.Equal(t, []string{"Deep Learning", "PyTorch"}, names)
}

func TestUniqueCriticalGaps_FirstOccurrenceWins(t *testing.T) {
	matches := []JobMatch{
		{MissingSkills: []SkillGap{
			{SkillName: "MLOps", Priority: PriorityCritical, EstimatedWeeks: 4},
		}},
		{MissingSkills: []SkillGap{
			{SkillName: "MLOps", Priority: PriorityCritical, EstimatedWeeks: 12},
		}},
	}

	gaps := UniqueCriticalGaps(matches)
	require.Len(t, gaps, 1)
	assert.Equal(t, 4, gaps[0].EstimatedWeeks)
}

func TestUniqueCriticalGaps_IgnoresNonCritical(t *testing.T) {
	matches := []JobMatch{
		{MissingSkills: []SkillGap{
			{SkillName: "TensorFlow", Priority: PriorityOptional},
			{SkillName: "Docker", Priority: PriorityCritical},
		}},
	}

	gaps := UniqueCriticalGaps(matches)
	require.Len(t, gaps, 1)
	assert.Equal(t, "Docker", gaps[0].SkillName)
}

func TestUniqueCriticalGaps_Empty(t *testing.T) {
	assert.Empty(t, UniqueCriticalGaps(nil))
}

func TestBestCandidate_ArgMax(t *testing.T) {
	candidates := []CandidateMatch{
		{CandidateID: "c1", MatchPercentage: 88},
		{CandidateID: "c2", MatchPercentage: 78},
		{CandidateID: "c3", MatchPercentage: 72},
		{CandidateID: "c4", MatchPercentage: 65},
	}

	best, err := BestCandidate(candidates)
	require.NoError(t, err)
	assert.Equal(t, "c1", best.CandidateID)
}

func TestBestCandidate_TieGoesToFirst(t *testing.T) {
	candidates := []CandidateMatch{
		{CandidateID: "first", MatchPercentage: 80},
		{CandidateID: "second", MatchPercentage: 80},
	}

	best, err := BestCandidate(candidates)
	require.NoError(t, err)
	assert.Equal(t, "first", best.CandidateID)
}

func TestBestCandidate_Empty(t *testing.T) {
	_, err := BestCandidate(nil)
	require.ErrorIs(t, err, common.ErrInsufficientData)
}

func TestRecommend_Boundaries(t *testing.T) {
	tests := []struct {
		score int
		want  Recommendation
	}{
		{100, HighlyRecommended},
		{85, HighlyRecommended},
		{84, GoodCandidate},
		{70, GoodCandidate},
		{69, NeedsDevelopment},
		{0, NeedsDevelopment},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Recommend(tt.score), "score %d", tt.score)
	}
}

func TestAverageMatch(t *testing.T) {
	got, err := AverageMatch([]CandidateMatch{
		{MatchPercentage: 88},
		{MatchPercentage: 78},
		{MatchPercentage: 72},
	})
	require.NoError(t, err)
	// round(238/3) = 79
	assert.Equal(t, 79, got)

	_, err = AverageMatch(nil)
	require.ErrorIs(t, err, common.ErrInsufficientData)
}

func TestHighMatchCount(t *testing.T) {
	candidates := []CandidateMatch{
		{MatchPercentage: 88},
		{MatchPercentage: 80},
		{MatchPercentage: 79},
	}
	assert.Equal(t, 2, HighMatchCount(candidates, 80))
	assert.Equal(t, 0, HighMatchCount(nil, 80))
}
