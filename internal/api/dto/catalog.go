package dto

import "github.com/wildlog/wildlog_api/internal/progression"

type ConditionResponse struct {
	Kind   string         `json:"kind"`
	Params map[string]any `json:"params"`
}

type BadgeResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Category    string            `json:"category,omitempty"`
	Reward      int64             `json:"reward"`
	Condition   ConditionResponse `json:"condition"`
}

type BadgesResponse struct {
	Badges      []BadgeResponse `json:"badges"`
	SwarmBadges []BadgeResponse `json:"swarm_badges"`
}

func NewBadgesResponse(c *progression.Catalog) BadgesResponse {
	return BadgesResponse{
		Badges:      newBadgeResponses(c.Badges),
		SwarmBadges: newBadgeResponses(c.SwarmBadges),
	}
}

func newBadgeResponses(badges []progression.Badge) []BadgeResponse {
	out := make([]BadgeResponse, len(badges))
	for i, b := range badges {
		kind, params := progression.Describe(b.Condition)
		out[i] = BadgeResponse{
			ID:          b.ID,
			Name:        b.Name,
			Description: b.Description,
			Category:    b.Category,
			Reward:      b.Reward,
			Condition:   ConditionResponse{Kind: string(kind), Params: params},
		}
	}
	return out
}
