package match

import (
	"math"
	"sort"

	"github.com/skillbridge/skillbridge/internal/common"
)

// topMatchesForReadiness is how many of the best-ranked matches feed the
// overall readiness figure on the seeker dashboard.
const topMatchesForReadiness = 3

// OverallReadiness returns the rounded mean readiness score over the top
// three matches ranked by descending match percentage. With fewer than three
// matches the mean is taken over however many are present; with none it
// returns common.ErrInsufficientData.
func OverallReadiness(matches []JobMatch) (int, error) {
	if len(matches) == 0 {
		return 0, common.ErrInsufficientData
	}

	ranked := make([]JobMatch, len(matches))
	copy(ranked, matches)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchPercentage > ranked[j].MatchPercentage
	})

	n := topMatchesForReadiness
	if len(ranked) < n {
		n = len(ranked)
	}

	sum := 0
	for _, m := range ranked[:n] {
		sum += m.ReadinessScore
	}
	return int(math.Round(float64(sum) / float64(n))), nil
}

// UniqueCriticalGaps collects skill gaps with critical priority across all
// matches, deduplicated by skill name. When the same name appears with
// different attributes, the first occurrence wins.
func UniqueCriticalGaps(matches []JobMatch) []SkillGap {
	seen := make(map[string]struct{})
	gaps := make([]SkillGap, 0)

	for _, m := range matches {
		for _, gap := range m.MissingSkills {
			if gap.Priority != PriorityCritical {
				continue
			}
			if _, ok := seen[gap.SkillName]; ok {
				continue
			}
			seen[gap.SkillName] = struct{}{}
			gaps = append(gaps, gap)
		}
	}
	return gaps
}

// BestCandidate returns the candidate with the highest match percentage.
// Ties go to the earliest candidate in input order. An empty slice returns
// common.ErrInsufficientData.
func BestCandidate(candidates []CandidateMatch) (CandidateMatch, error) {
	if len(candidates) == 0 {
		return CandidateMatch{}, common.ErrInsufficientData
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.MatchPercentage > best.MatchPercentage {
			best = c
		}
	}
	return best, nil
}

// Recommend maps a readiness score to a hiring-recommendation tier.
// Boundaries are inclusive: 85 is highly recommended, 70 is a good candidate.
func Recommend(readinessScore int) Recommendation {
	switch {
	case readinessScore >= 85:
		return HighlyRecommended
	case readinessScore >= 70:
		return GoodCandidate
	default:
		return NeedsDevelopment
	}
}

// AverageMatch returns the rounded mean match percentage over all
// candidates, or common.ErrInsufficientData when there are none.
func AverageMatch(candidates []CandidateMatch) (int, error) {
	if len(candidates) == 0 {
		return 0, common.ErrInsufficientData
	}
	sum := 0
	for _, c := range candidates {
		sum += c.MatchPercentage
	}
	return int(math.Round(float64(sum) / float64(len(candidates)))), nil
}

// HighMatchCount counts candidates whose match percentage is at least min.
func HighMatchCount(candidates []CandidateMatch, min int) int {
	count := 0
	for _, c := range candidates {
		if c.MatchPercentage >= min {
			count++
		}
	}
	return count
}
