package dto

import (
	"github.com/google/uuid"
	"github.com/wildlog/wildlog_api/internal/progression"
	"github.com/wildlog/wildlog_api/internal/stats"
)

type CreateSwarmRequest struct {
	Name string `json:"name" validate:"required,max=64"`
}

// JoinSwarmRequest moves the caller into a swarm. A null swarm_id leaves the
// current one.
type JoinSwarmRequest struct {
	SwarmID *uuid.UUID `json:"swarm_id"`
}

type SwarmResponse struct {
	ID              uuid.UUID           `json:"id"`
	Name            string              `json:"name"`
	Members         int                 `json:"members"`
	Union           []string            `json:"union"`
	Size            int                 `json:"size"`
	Streak          progression.Streak  `json:"streak"`
	StreakIncreased bool                `json:"streak_increased"`
	Badges          []string            `json:"badges"`
	NewBadges       []progression.Award `json:"new_badges"`
	Reward          int64               `json:"reward"`
}

func NewSwarmResponse(res *stats.SwarmResult) SwarmResponse {
	return SwarmResponse{
		ID:              res.Swarm.ID,
		Name:            res.Swarm.Name,
		Members:         res.View.Members,
		Union:           res.View.Union,
		Size:            res.View.Size,
		Streak:          res.View.Streak,
		StreakIncreased: res.View.StreakIncreased,
		Badges:          res.View.Badges,
		NewBadges:       res.View.NewBadges,
		Reward:          res.View.Reward,
	}
}
