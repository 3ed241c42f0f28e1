package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/wildlog/wildlog_api/internal/database/sqlc/db"
)

type Sighting struct {
	ID            uuid.UUID `json:"id"`
	ProfileID     uuid.UUID `json:"profile_id"`
	SpeciesID     string    `json:"species_id"`
	PhotoKey      *string   `json:"photo_key,omitempty"`
	XPAwarded     int64     `json:"xp_awarded"`
	BadgesAwarded []string  `json:"badges_awarded"`
	Duplicate     bool      `json:"duplicate"`
	SightedAt     time.Time `json:"sighted_at"`
	CreatedAt     time.Time `json:"created_at"`
}

func (s *Sighting) Model(sighting db.Sighting) {
	s.ID = sighting.ID
	s.ProfileID = sighting.ProfileID
	s.SpeciesID = sighting.SpeciesID
	s.PhotoKey = sighting.PhotoKey
	s.XPAwarded = sighting.XpAwarded
	s.BadgesAwarded = sighting.BadgesAwarded
	if s.BadgesAwarded == nil {
		s.BadgesAwarded = []string{}
	}
	s.Duplicate = sighting.Duplicate
	s.SightedAt = sighting.SightedAt
	s.CreatedAt = sighting.CreatedAt
}

func NewSightingsList(sightings []db.Sighting) []*Sighting {
	list := make([]*Sighting, len(sightings))
	for i, dbSighting := range sightings {
		model := &Sighting{}
		model.Model(dbSighting)
		list[i] = model
	}
	return list
}
