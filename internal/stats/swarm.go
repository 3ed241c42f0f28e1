package stats

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/wildlog/wildlog_api/internal/errlocal"
	"github.com/wildlog/wildlog_api/internal/metrics"
	"github.com/wildlog/wildlog_api/internal/models"
	"github.com/wildlog/wildlog_api/internal/progression"
	"github.com/wildlog/wildlog_api/internal/store"
)

type SwarmResult struct {
	Swarm *models.Swarm         `json:"swarm"`
	View  progression.SwarmView `json:"view"`
}

// CreateSwarm creates a group and makes its creator the first member.
func (s *Service) CreateSwarm(ctx context.Context, creator uuid.UUID, name string) (*models.Swarm, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errlocal.NewErrBadRequest("swarm name is required", errlocal.SystemStats, nil)
	}

	var swarm *models.Swarm
	err := s.store.ExecTx(ctx, func(tx store.Store) error {
		created, err := tx.CreateSwarm(ctx, name)
		if err != nil {
			return err
		}
		swarm = created
		return tx.SetProfileSwarm(ctx, creator, &created.ID)
	})
	if err != nil {
		return nil, err
	}

	s.log.WithContext(ctx).Infof("swarm %s created by %s", swarm.ID, creator)

	return swarm, nil
}

// JoinSwarm moves a profile into a swarm. A nil swarm id leaves the current one.
func (s *Service) JoinSwarm(ctx context.Context, profileID uuid.UUID, swarmID *uuid.UUID) (*ProfileView, error) {
	if swarmID != nil {
		if _, err := s.store.GetSwarm(ctx, *swarmID); err != nil {
			return nil, err
		}
	}

	if err := s.store.SetProfileSwarm(ctx, profileID, swarmID); err != nil {
		return nil, err
	}

	return s.GetProfile(ctx, profileID)
}

// SwarmView aggregates the members of a swarm. Newly earned group badges and
// streak progress are stored, and the badge reward is credited to every
// member in the same transaction.
func (s *Service) SwarmView(ctx context.Context, swarmID uuid.UUID) (*SwarmResult, error) {
	logger := s.log.WithContext(ctx).WithField("swarm_id", swarmID.String())

	for attempt := 1; attempt <= s.saveAttempts; attempt++ {
		swarm, err := s.store.GetSwarm(ctx, swarmID)
		if err != nil {
			return nil, err
		}

		members, err := s.store.ListSwarmMembers(ctx, swarmID)
		if err != nil {
			return nil, err
		}

		profiles := make([]models.Profile, len(members))
		for i, member := range members {
			profiles[i] = *member
		}

		state := progression.SwarmState{
			Badges: swarm.Badges,
			Streak: progression.Streak{
				LastActive: swarm.LastActiveDate,
				Current:    swarm.CurrentStreak,
				Longest:    swarm.LongestStreak,
			},
		}
		view := s.engine.Catalog().Aggregate(profiles, state)

		if len(view.NewBadges) == 0 && view.Streak == state.Streak {
			return &SwarmResult{Swarm: swarm, View: view}, nil
		}

		updated := *swarm
		updated.Badges = view.Badges
		updated.CurrentStreak = view.Streak.Current
		updated.LongestStreak = view.Streak.Longest
		updated.LastActiveDate = view.Streak.LastActive

		err = s.store.ExecTx(ctx, func(tx store.Store) error {
			if err := tx.SaveSwarmProgress(ctx, &updated); err != nil {
				return err
			}
			if view.Reward <= 0 {
				return nil
			}
			for _, member := range members {
				if err := tx.AddProfileXP(ctx, member.ID, view.Reward); err != nil {
					return err
				}
			}
			return nil
		})
		if errlocal.IsConflict(err) {
			metrics.SaveConflicts.WithLabelValues("swarm").Inc()
			logger.Debugf("swarm changed while aggregating, attempt %d", attempt)
			continue
		}
		if err != nil {
			return nil, err
		}

		for _, award := range view.NewBadges {
			metrics.BadgesAwarded.WithLabelValues("swarm", award.ID).Inc()
		}
		if view.Reward > 0 {
			metrics.XPAwarded.Add(float64(view.Reward * int64(len(members))))
			logger.WithField("badges", awardIDs(view.NewBadges)).
				Infof("swarm earned %d xp for each of %d members", view.Reward, len(members))
		}

		return &SwarmResult{Swarm: &updated, View: view}, nil
	}

	return nil, errlocal.NewErrConflict("swarm is being updated concurrently, try again",
		errlocal.SystemStats, map[string]any{"swarm_id": swarmID.String()})
}
