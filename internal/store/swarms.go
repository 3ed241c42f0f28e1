package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/wildlog/wildlog_api/internal/database/sqlc/db"
	"github.com/wildlog/wildlog_api/internal/errlocal"
	"github.com/wildlog/wildlog_api/internal/models"
)

func (s *pgStore) CreateSwarm(ctx context.Context, name string) (*models.Swarm, error) {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	dbSwarm, err := s.q.CreateSwarm(ctx, name)
	if err != nil {
		return nil, errlocal.NewErrInternal("database error", err.Error(),
			map[string]any{"name": name})
	}

	swarm := new(models.Swarm)
	swarm.Model(dbSwarm)

	return swarm, nil
}

func (s *pgStore) GetSwarm(ctx context.Context, id uuid.UUID) (*models.Swarm, error) {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	dbSwarm, err := s.q.GetSwarm(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, errlocal.NewErrNotFound("swarm not found", err.Error(),
				map[string]any{"swarm_id": id.String()})
		}
		return nil, errlocal.NewErrInternal("database error", err.Error(),
			map[string]any{"swarm_id": id.String()})
	}

	swarm := new(models.Swarm)
	swarm.Model(dbSwarm)

	return swarm, nil
}

func (s *pgStore) ListSwarmMembers(ctx context.Context, swarmID uuid.UUID) ([]*models.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	members, err := s.q.ListSwarmMembers(ctx, &swarmID)
	if err != nil {
		return nil, errlocal.NewErrInternal("database error", err.Error(),
			map[string]any{"swarm_id": swarmID.String()})
	}

	return models.NewProfilesList(members), nil
}

// SaveSwarmProgress is the swarm counterpart of SaveProfile: a version
// compare-and-swap over badges and the group streak.
func (s *pgStore) SaveSwarmProgress(ctx context.Context, swarm *models.Swarm) error {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	rows, err := s.q.UpdateSwarmProgress(ctx, db.UpdateSwarmProgressParams{
		ID:             swarm.ID,
		Badges:         swarm.Badges,
		CurrentStreak:  int32(swarm.CurrentStreak),
		LongestStreak:  int32(swarm.LongestStreak),
		LastActiveDate: swarm.LastActiveDate.Pg(),
		Version:        swarm.Version,
	})
	if err != nil {
		return errlocal.NewErrInternal("failed to save swarm", err.Error(),
			map[string]any{"swarm_id": swarm.ID.String()})
	}
	if rows == 0 {
		return errlocal.NewErrConflict("swarm was modified concurrently", "stale version",
			map[string]any{"swarm_id": swarm.ID.String(), "version": swarm.Version})
	}

	swarm.Version++

	return nil
}
