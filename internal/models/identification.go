package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/wildlog/wildlog_api/internal/database/sqlc/db"
)

type IdentificationStatus string

const (
	IdentificationProcessingStatus IdentificationStatus = "processing"
	IdentificationCompletedStatus  IdentificationStatus = "completed"
	IdentificationFailedStatus     IdentificationStatus = "failed"
)

func (st IdentificationStatus) IsValid() bool {
	switch st {
	case IdentificationProcessingStatus, IdentificationCompletedStatus, IdentificationFailedStatus:
		return true
	}
	return false
}

func (st IdentificationStatus) String() string {
	return string(st)
}

// Identification tracks one photo sent to the recognition service. Outcome
// holds the serialized sighting outcome once the species has been logged.
type Identification struct {
	ID         uuid.UUID            `json:"id"`
	ProfileID  uuid.UUID            `json:"profile_id"`
	PhotoKey   string               `json:"photo_key"`
	Status     IdentificationStatus `json:"status"`
	SpeciesID  string               `json:"species_id,omitempty"`
	Confidence float64              `json:"confidence,omitempty"`
	Outcome    json.RawMessage      `json:"outcome,omitempty" swaggertype:"object"`
	Error      string               `json:"error,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
}

func (i *Identification) Model(identification db.Identification) {
	i.ID = identification.ID
	i.ProfileID = identification.ProfileID
	i.PhotoKey = identification.PhotoKey
	i.Status = IdentificationStatus(identification.Status)
	i.SpeciesID = ""
	if identification.SpeciesID != nil {
		i.SpeciesID = *identification.SpeciesID
	}
	i.Confidence = 0
	if identification.Confidence != nil {
		i.Confidence = *identification.Confidence
	}
	i.Outcome = nil
	if len(identification.Outcome) > 0 {
		i.Outcome = json.RawMessage(identification.Outcome)
	}
	i.Error = ""
	if identification.Error != nil {
		i.Error = *identification.Error
	}
	i.CreatedAt = identification.CreatedAt
	i.UpdatedAt = identification.UpdatedAt
}

func (i Identification) IsValid() bool {
	return i.Status.IsValid()
}
