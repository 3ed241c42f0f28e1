package progression

import (
	"slices"
	"strings"

	"github.com/wildlog/wildlog_api/internal/models"
)

// BadgeState is the post-update state badges are evaluated against.
type BadgeState struct {
	Collected     []string
	Owned         []string
	Sighted       models.Species
	CurrentStreak int
	Level         int
	// Hour of the sighting, 0-23. Anything else never matches a time window.
	Hour int
}

type Award struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Reward   int64  `json:"reward"`
}

func newAward(b Badge) Award {
	return Award{ID: b.ID, Name: b.Name, Category: b.Category, Reward: b.Reward}
}

type BadgeResult struct {
	Earned  []Award
	Reward  int64
	Primary *Award
}

// EvaluateBadges returns the badges from catalog that match state and are not
// already owned. Primary is the highest reward, the earliest entry on ties.
func EvaluateBadges(catalog []Badge, families Families, names func([]string) []string, state BadgeState) BadgeResult {
	result := BadgeResult{Earned: []Award{}}
	for _, badge := range catalog {
		if badge.ID == "" || slices.Contains(state.Owned, badge.ID) {
			continue
		}
		if slices.ContainsFunc(result.Earned, func(a Award) bool { return a.ID == badge.ID }) {
			continue
		}
		if !matches(badge, families, names, state) {
			continue
		}
		award := newAward(badge)
		result.Earned = append(result.Earned, award)
		result.Reward += max(award.Reward, 0)
	}

	for i := range result.Earned {
		if result.Primary == nil || result.Earned[i].Reward > result.Primary.Reward {
			result.Primary = &result.Earned[i]
		}
	}
	return result
}

func matches(badge Badge, families Families, names func([]string) []string, state BadgeState) bool {
	switch c := badge.Condition.(type) {
	case CountCondition:
		if badge.Category == CategoryStreak {
			return state.CurrentStreak >= c.Threshold
		}
		return len(state.Collected) >= c.Threshold
	case SpeciesCondition:
		return c.SpeciesID != "" && state.Sighted.ID == c.SpeciesID
	case RarityCondition:
		target := strings.ToLower(strings.TrimSpace(c.Contains))
		return target != "" && strings.Contains(strings.ToLower(state.Sighted.Rarity), target)
	case LocationCondition:
		return c.Location != "" && state.Sighted.Location == c.Location
	case TimeWindowCondition:
		return c.Contains(state.Hour)
	case FamilyCondition:
		if names == nil {
			return false
		}
		return families.Count(c.Family, names(state.Collected)) >= max(c.Threshold, 1)
	case LevelCondition:
		return state.Level >= c.Threshold
	}
	return false
}

// Evaluate runs the personal badge catalog.
func (c *Catalog) Evaluate(state BadgeState) BadgeResult {
	return EvaluateBadges(c.Badges, c.Families, c.scientificNames, state)
}
