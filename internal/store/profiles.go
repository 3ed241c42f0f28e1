package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/wildlog/wildlog_api/internal/database/sqlc/db"
	"github.com/wildlog/wildlog_api/internal/errlocal"
	"github.com/wildlog/wildlog_api/internal/models"
)

func (s *pgStore) CreateProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	dbProfile, err := s.q.CreateProfile(ctx, id)
	if err != nil {
		if pgCode(err) == uniqueViolation {
			return nil, errlocal.NewErrConflict("profile already exists", err.Error(),
				map[string]any{"profile_id": id.String()})
		}
		return nil, errlocal.NewErrInternal("database error", err.Error(),
			map[string]any{"profile_id": id.String()})
	}

	profile := new(models.Profile)
	profile.Model(dbProfile)

	return profile, nil
}

func (s *pgStore) GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	dbProfile, err := s.q.GetProfile(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, errlocal.NewErrNotFound("profile not found", err.Error(),
				map[string]any{"profile_id": id.String()})
		}
		return nil, errlocal.NewErrInternal("database error", err.Error(),
			map[string]any{"profile_id": id.String()})
	}

	profile := new(models.Profile)
	profile.Model(dbProfile)

	return profile, nil
}

// SaveProfile writes the progression fields only if the stored version still
// matches profile.Version. On success the version is bumped in place; a stale
// version yields a conflict and nothing is written.
func (s *pgStore) SaveProfile(ctx context.Context, profile *models.Profile) error {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	rows, err := s.q.UpdateProfileProgress(ctx, db.UpdateProfileProgressParams{
		ID:             profile.ID,
		Xp:             profile.XP,
		CollectedIds:   profile.CollectedIDs,
		Badges:         profile.Badges,
		CurrentStreak:  int32(profile.CurrentStreak),
		LongestStreak:  int32(profile.LongestStreak),
		LastActiveDate: profile.LastActiveDate.Pg(),
		Version:        profile.Version,
	})
	if err != nil {
		return errlocal.NewErrInternal("failed to save profile", err.Error(),
			map[string]any{"profile_id": profile.ID.String()})
	}
	if rows == 0 {
		return errlocal.NewErrConflict("profile was modified concurrently", "stale version",
			map[string]any{"profile_id": profile.ID.String(), "version": profile.Version})
	}

	profile.Version++

	return nil
}

func (s *pgStore) SetProfileSwarm(ctx context.Context, profileID uuid.UUID, swarmID *uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	err := s.q.SetProfileSwarm(ctx, db.SetProfileSwarmParams{ID: profileID, SwarmID: swarmID})
	if err != nil {
		if pgCode(err) == foreignKeyViolation {
			return errlocal.NewErrNotFound("swarm not found", err.Error(),
				map[string]any{"profile_id": profileID.String()})
		}
		return errlocal.NewErrInternal("failed to set profile swarm", err.Error(),
			map[string]any{"profile_id": profileID.String()})
	}

	return nil
}

func (s *pgStore) AddProfileXP(ctx context.Context, profileID uuid.UUID, xp int64) error {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	if xp <= 0 {
		return nil
	}

	if err := s.q.AddProfileXP(ctx, db.AddProfileXPParams{ID: profileID, Xp: xp}); err != nil {
		return errlocal.NewErrInternal("failed to add profile xp", err.Error(),
			map[string]any{"profile_id": profileID.String(), "xp": xp})
	}

	return nil
}
