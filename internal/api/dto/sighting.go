package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/wildlog/wildlog_api/internal/stats"
)

type LogSightingRequest struct {
	// Catalog id, common or scientific name.
	SpeciesID string     `json:"species_id" validate:"required,max=128"`
	SightedAt *time.Time `json:"sighted_at,omitempty"`
}

func (r LogSightingRequest) ToRequest(profileID uuid.UUID) stats.SightingRequest {
	req := stats.SightingRequest{
		ProfileID: profileID,
		Species:   r.SpeciesID,
		Source:    stats.SourceManual,
	}
	if r.SightedAt != nil {
		req.SightedAt = *r.SightedAt
	}
	return req
}
