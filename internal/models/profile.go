package models

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/wildlog/wildlog_api/internal/database/sqlc/db"
)

// Profile is the progression state of one user. Collected ids and badges only
// ever grow and XP never decreases.
type Profile struct {
	ID             uuid.UUID  `json:"id"`
	XP             int64      `json:"xp"`
	CollectedIDs   []string   `json:"collected_ids"`
	Badges         []string   `json:"badges"`
	CurrentStreak  int        `json:"current_streak"`
	LongestStreak  int        `json:"longest_streak"`
	LastActiveDate Date       `json:"last_active_date"`
	Friends        []string   `json:"friends,omitempty"`
	SwarmID        *uuid.UUID `json:"swarm_id,omitempty"`
	Version        int64      `json:"version"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (p *Profile) Model(profile db.Profile) {
	p.ID = profile.ID
	p.XP = profile.Xp
	p.CollectedIDs = profile.CollectedIds
	p.Badges = profile.Badges
	p.CurrentStreak = int(profile.CurrentStreak)
	p.LongestStreak = int(profile.LongestStreak)
	p.LastActiveDate = DateFromPg(profile.LastActiveDate)
	p.Friends = profile.Friends
	p.SwarmID = profile.SwarmID
	p.Version = profile.Version
	p.CreatedAt = profile.CreatedAt
	p.UpdatedAt = profile.UpdatedAt
	p.Normalize()
}

// Normalize repairs sparse or inconsistent records so every field has a usable
// zero value.
func (p *Profile) Normalize() {
	if p.CollectedIDs == nil {
		p.CollectedIDs = []string{}
	}
	if p.Badges == nil {
		p.Badges = []string{}
	}
	p.CollectedIDs = dedupe(p.CollectedIDs)
	p.Badges = dedupe(p.Badges)
	if p.XP < 0 {
		p.XP = 0
	}
	if p.CurrentStreak < 0 {
		p.CurrentStreak = 0
	}
	if p.LongestStreak < p.CurrentStreak {
		p.LongestStreak = p.CurrentStreak
	}
}

func (p Profile) HasCollected(speciesID string) bool {
	return slices.Contains(p.CollectedIDs, speciesID)
}

func (p Profile) HasBadge(badgeID string) bool {
	return slices.Contains(p.Badges, badgeID)
}

// Clone returns a copy that shares no slices with p.
func (p Profile) Clone() Profile {
	c := p
	c.CollectedIDs = slices.Clone(p.CollectedIDs)
	c.Badges = slices.Clone(p.Badges)
	c.Friends = slices.Clone(p.Friends)
	if p.SwarmID != nil {
		id := *p.SwarmID
		c.SwarmID = &id
	}
	return c
}

func DateFromPg(d pgtype.Date) Date {
	if !d.Valid {
		return Date{}
	}
	return DateOf(d.Time, time.UTC)
}

func (d Date) Pg() pgtype.Date {
	if d.IsZero() {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: d.Time(), Valid: true}
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
