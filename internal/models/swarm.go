package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/wildlog/wildlog_api/internal/database/sqlc/db"
)

// Swarm is the persisted part of a group: its badges and streak. The species
// union is recomputed from the members on every view.
type Swarm struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Badges         []string  `json:"badges"`
	CurrentStreak  int       `json:"current_streak"`
	LongestStreak  int       `json:"longest_streak"`
	LastActiveDate Date      `json:"last_active_date"`
	Version        int64     `json:"version"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (s *Swarm) Model(swarm db.Swarm) {
	s.ID = swarm.ID
	s.Name = swarm.Name
	s.Badges = dedupe(swarm.Badges)
	s.CurrentStreak = int(swarm.CurrentStreak)
	s.LongestStreak = max(int(swarm.LongestStreak), s.CurrentStreak)
	s.LastActiveDate = DateFromPg(swarm.LastActiveDate)
	s.Version = swarm.Version
	s.CreatedAt = swarm.CreatedAt
	s.UpdatedAt = swarm.UpdatedAt
}

func NewProfilesList(profiles []db.Profile) []*Profile {
	list := make([]*Profile, len(profiles))
	for i, dbProfile := range profiles {
		model := &Profile{}
		model.Model(dbProfile)
		list[i] = model
	}
	return list
}
