package progression

import (
	"slices"

	"github.com/wildlog/wildlog_api/internal/models"
)

// SwarmState is the persisted group progress fed back into Aggregate.
type SwarmState struct {
	Badges []string
	Streak Streak
}

type SwarmView struct {
	Union           []string `json:"union"`
	Size            int      `json:"size"`
	Members         int      `json:"members"`
	Streak          Streak   `json:"streak"`
	StreakIncreased bool     `json:"streak_increased"`
	Badges          []string `json:"badges"`
	NewBadges       []Award  `json:"new_badges"`
	// Reward each member receives for NewBadges.
	Reward int64 `json:"reward"`
}

// Union merges member collections, dropping vacation finds, sorted by id.
func Union(collections [][]string, isVacation func(string) bool) []string {
	seen := make(map[string]struct{})
	for _, ids := range collections {
		for _, id := range ids {
			if id == "" || (isVacation != nil && isVacation(id)) {
				continue
			}
			seen[id] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// A corrupt personal streak must not make the group walk back years.
const maxActivityBackfill = 366

// ActiveDays lists the distinct days after since on which at least one member
// was active, oldest first. A member's personal streak vouches for every day
// of its run, not only for the last active date.
func ActiveDays(members []models.Profile, since models.Date) []models.Date {
	seen := make(map[models.Date]struct{})
	for _, m := range members {
		if m.LastActiveDate.IsZero() {
			continue
		}
		run := min(max(m.CurrentStreak, 1), maxActivityBackfill)
		for i := 0; i < run; i++ {
			day := m.LastActiveDate.AddDays(-i)
			if !since.IsZero() && !since.Before(day) {
				break
			}
			seen[day] = struct{}{}
		}
	}

	days := make([]models.Date, 0, len(seen))
	for day := range seen {
		days = append(days, day)
	}
	slices.SortFunc(days, func(a, b models.Date) int {
		switch {
		case a.Before(b):
			return -1
		case b.Before(a):
			return 1
		}
		return 0
	})
	return days
}

// Aggregate computes the group view. It only decides eligibility: granting
// rewards and storing the new state is left to the caller.
func (c *Catalog) Aggregate(members []models.Profile, state SwarmState) SwarmView {
	collections := make([][]string, len(members))
	for i, m := range members {
		collections[i] = m.CollectedIDs
	}
	union := Union(collections, c.IsVacation)

	view := SwarmView{
		Union:     union,
		Size:      len(union),
		Members:   len(members),
		Streak:    state.Streak,
		Badges:    slices.Clone(state.Badges),
		NewBadges: []Award{},
	}
	if view.Badges == nil {
		view.Badges = []string{}
	}

	// Days already folded into the stored streak are skipped, so it only
	// moves forward.
	for _, day := range ActiveDays(members, state.Streak.LastActive) {
		var increased bool
		view.Streak, increased = view.Streak.Advance(day)
		view.StreakIncreased = view.StreakIncreased || increased
	}

	result := EvaluateBadges(c.SwarmBadges, c.Families, c.scientificNames, BadgeState{
		Collected:     union,
		Owned:         state.Badges,
		CurrentStreak: view.Streak.Current,
		Hour:          -1,
	})
	for _, award := range result.Earned {
		view.Badges = append(view.Badges, award.ID)
	}
	view.NewBadges = result.Earned
	view.Reward = result.Reward
	return view
}
