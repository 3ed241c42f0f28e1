package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/wildlog/wildlog_api/internal/database/sqlc/db"
	"github.com/wildlog/wildlog_api/internal/errlocal"
	"github.com/wildlog/wildlog_api/internal/models"
)

func (s *pgStore) CreateSighting(ctx context.Context, sighting *models.Sighting) error {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	badges := sighting.BadgesAwarded
	if badges == nil {
		badges = []string{}
	}

	id, err := s.q.CreateSighting(ctx, db.CreateSightingParams{
		ProfileID:     sighting.ProfileID,
		SpeciesID:     sighting.SpeciesID,
		PhotoKey:      sighting.PhotoKey,
		XpAwarded:     sighting.XPAwarded,
		BadgesAwarded: badges,
		Duplicate:     sighting.Duplicate,
		SightedAt:     sighting.SightedAt,
	})
	if err != nil {
		if pgCode(err) == foreignKeyViolation {
			return errlocal.NewErrNotFound("profile not found", err.Error(),
				map[string]any{"profile_id": sighting.ProfileID.String()})
		}
		return errlocal.NewErrInternal("failed to log sighting", err.Error(),
			map[string]any{"profile_id": sighting.ProfileID.String(), "species_id": sighting.SpeciesID})
	}
	sighting.ID = id

	return nil
}

func (s *pgStore) ListSightings(ctx context.Context, profileID uuid.UUID, limit, offset int) ([]*models.Sighting, error) {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	if limit <= 0 || limit > defaultQueryLimit {
		limit = defaultQueryLimit
	}
	if offset < 0 {
		offset = 0
	}

	sightings, err := s.q.ListSightingsByProfile(ctx, db.ListSightingsByProfileParams{
		ProfileID: profileID,
		Limit:     int32(limit),
		Offset:    int32(offset),
	})
	if err != nil {
		return nil, errlocal.NewErrInternal("database error", err.Error(),
			map[string]any{"profile_id": profileID.String()})
	}

	return models.NewSightingsList(sightings), nil
}
