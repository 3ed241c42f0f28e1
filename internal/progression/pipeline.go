package progression

import (
	"slices"

	"github.com/wildlog/wildlog_api/internal/models"
)

type Settings struct {
	Mode         XPMode
	SpamSpecies  []string
	SpamDailyCap int
}

// Event is one sighting, already resolved to a species.
type Event struct {
	Species models.Species
	Today   models.Date
	Hour    int
	// How many times the species already earned XP today. Only read for
	// spam-prone species under the formula.
	SpamCountToday int
}

// Notification is what the client needs to celebrate a sighting.
type Notification struct {
	SpeciesID       string              `json:"species_id"`
	Duplicate       bool                `json:"duplicate"`
	XPDelta         int64               `json:"xp_delta"`
	SpeciesXP       int64               `json:"species_xp"`
	BadgeXP         int64               `json:"badge_xp"`
	TotalXP         int64               `json:"total_xp"`
	StreakIncreased bool                `json:"streak_increased"`
	Streak          int                 `json:"streak"`
	Badges          []Award             `json:"badges"`
	Primary         *Award              `json:"primary_badge,omitempty"`
	LevelUp         bool                `json:"level_up"`
	OldLevel        models.LevelBracket `json:"old_level"`
	NewLevel        models.LevelBracket `json:"new_level"`
	DailyCapReached bool                `json:"daily_cap_reached,omitempty"`
}

// Outcome pairs the updated profile with its notification.
type Outcome struct {
	Profile      models.Profile `json:"profile"`
	Notification Notification   `json:"notification"`
}

type Engine struct {
	catalog  *Catalog
	settings Settings
}

func NewEngine(catalog *Catalog, settings Settings) *Engine {
	if settings.Mode == "" {
		settings.Mode = XPModeFlat
	}
	return &Engine{catalog: catalog, settings: settings}
}

func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

func (e *Engine) Settings() Settings {
	return e.settings
}

// Apply runs one sighting through streak, XP and badges. The input profile
// is not modified. Apply never fails: sparse input falls back to zero values.
func (e *Engine) Apply(profile models.Profile, event Event) Outcome {
	p := profile.Clone()
	p.Normalize()

	oldLevel := e.catalog.Level(p.XP)
	isNew := !p.HasCollected(event.Species.ID)

	n := Notification{
		SpeciesID: event.Species.ID,
		Duplicate: !isNew,
		Badges:    []Award{},
		OldLevel:  oldLevel,
		NewLevel:  oldLevel,
		Streak:    p.CurrentStreak,
		TotalXP:   p.XP,
	}

	if event.Species.ID == "" || (!isNew && e.settings.Mode != XPModeFormula) {
		return Outcome{Profile: p, Notification: n}
	}

	streak, increased := profileStreak(p).Advance(event.Today)
	streak.applyTo(&p)
	n.StreakIncreased = increased
	n.Streak = streak.Current

	switch e.settings.Mode {
	case XPModeFormula:
		capped := DailyCapReached(event.Species.ID, e.settings.SpamSpecies, e.settings.SpamDailyCap, event.SpamCountToday)
		n.DailyCapReached = capped
		n.SpeciesXP = FormulaXP(event.Species, isNew, streak.Current, capped)
	default:
		n.SpeciesXP = FlatXP(event.Species, isNew)
	}
	p.XP += n.SpeciesXP

	if isNew {
		p.CollectedIDs = append(p.CollectedIDs, event.Species.ID)

		badges := e.catalog.Evaluate(BadgeState{
			Collected:     p.CollectedIDs,
			Owned:         p.Badges,
			Sighted:       event.Species,
			CurrentStreak: streak.Current,
			Level:         e.catalog.Level(p.XP).Level,
			Hour:          event.Hour,
		})
		for _, award := range badges.Earned {
			p.Badges = append(p.Badges, award.ID)
		}
		p.XP += badges.Reward
		n.Badges = badges.Earned
		n.Primary = badges.Primary
		n.BadgeXP = badges.Reward
	}

	n.XPDelta = n.SpeciesXP + n.BadgeXP
	n.TotalXP = p.XP
	n.NewLevel = e.catalog.Level(p.XP)
	n.LevelUp = n.NewLevel.Level > oldLevel.Level
	return Outcome{Profile: p, Notification: n}
}

// Delta lists what changed between two profile states.
type Delta struct {
	XP             int64       `json:"xp"`
	AddedIDs       []string    `json:"added_ids"`
	AddedBadges    []string    `json:"added_badges"`
	CurrentStreak  int         `json:"current_streak"`
	LongestStreak  int         `json:"longest_streak"`
	LastActiveDate models.Date `json:"last_active_date"`
}

func Diff(before, after models.Profile) Delta {
	d := Delta{
		XP:             after.XP,
		AddedIDs:       []string{},
		AddedBadges:    []string{},
		CurrentStreak:  after.CurrentStreak,
		LongestStreak:  after.LongestStreak,
		LastActiveDate: after.LastActiveDate,
	}
	for _, id := range after.CollectedIDs {
		if !slices.Contains(before.CollectedIDs, id) {
			d.AddedIDs = append(d.AddedIDs, id)
		}
	}
	for _, id := range after.Badges {
		if !slices.Contains(before.Badges, id) {
			d.AddedBadges = append(d.AddedBadges, id)
		}
	}
	return d
}

func (d Delta) Empty() bool {
	return len(d.AddedIDs) == 0 && len(d.AddedBadges) == 0
}
