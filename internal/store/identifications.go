package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/wildlog/wildlog_api/internal/database/sqlc/db"
	"github.com/wildlog/wildlog_api/internal/errlocal"
	"github.com/wildlog/wildlog_api/internal/models"
	"github.com/wildlog/wildlog_api/internal/utils"
)

func (s *pgStore) StartIdentification(ctx context.Context, profileID uuid.UUID, photoKey string) (*models.Identification, error) {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	identification, err := s.q.CreateIdentification(ctx, db.CreateIdentificationParams{
		ProfileID: profileID,
		PhotoKey:  photoKey,
		Status:    models.IdentificationProcessingStatus.String(),
	})
	if err != nil {
		if pgCode(err) == uniqueViolation {
			return nil, errlocal.NewErrConflict(
				"identification for this photo already exists",
				err.Error(),
				map[string]any{"profile_id": profileID.String(), "photo": photoKey},
			)
		}

		return nil, errlocal.NewErrInternal(
			"database error",
			err.Error(),
			map[string]any{"profile_id": profileID.String(), "photo": photoKey},
		)
	}

	model := new(models.Identification)
	model.Model(identification)

	return model, nil
}

// CompleteIdentification persists the final state of an identification. A
// failed one keeps only its error message.
func (s *pgStore) CompleteIdentification(ctx context.Context, identification *models.Identification) error {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	params := db.CompleteIdentificationParams{
		ID:     identification.ID,
		Status: identification.Status.String(),
	}
	switch identification.Status {
	case models.IdentificationFailedStatus:
		params.Error = utils.Ptr(identification.Error)
	case models.IdentificationCompletedStatus:
		if identification.SpeciesID != "" {
			params.SpeciesID = utils.Ptr(identification.SpeciesID)
		}
		params.Confidence = utils.Ptr(identification.Confidence)
		params.Outcome = identification.Outcome
	default:
		return errlocal.NewErrBadRequest("identification is still processing", "",
			map[string]any{"identification_id": identification.ID.String()})
	}

	if err := s.q.CompleteIdentification(ctx, params); err != nil {
		return errlocal.NewErrInternal("database error", err.Error(),
			map[string]any{"identification_id": identification.ID.String()})
	}

	return nil
}

func (s *pgStore) GetIdentification(ctx context.Context, id uuid.UUID) (*models.Identification, error) {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	identification, err := s.q.GetIdentification(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, errlocal.NewErrNotFound(
				"identification not found",
				err.Error(),
				map[string]any{"identification_id": id.String()},
			)
		}

		return nil, errlocal.NewErrInternal("database error", err.Error(), nil)
	}

	model := &models.Identification{}
	model.Model(identification)

	return model, nil
}
