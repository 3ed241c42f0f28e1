package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	dbMock "github.com/wildlog/wildlog_api/internal/database/mocks"
	"github.com/wildlog/wildlog_api/internal/database/sqlc/db"
	"github.com/wildlog/wildlog_api/internal/errlocal"
	"github.com/wildlog/wildlog_api/internal/models"
)

func TestCreateSighting(t *testing.T) {
	sightedAt := time.Date(2024, 5, 3, 22, 15, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		mockQ := dbMock.NewQuerier(t)
		store := &pgStore{q: mockQ}
		id := uuid.New()
		sighting := &models.Sighting{
			ProfileID: uuid.New(),
			SpeciesID: "barn_owl",
			XPAwarded: 25,
			SightedAt: sightedAt,
		}

		mockQ.EXPECT().CreateSighting(mock.Anything, db.CreateSightingParams{
			ProfileID:     sighting.ProfileID,
			SpeciesID:     "barn_owl",
			XpAwarded:     25,
			BadgesAwarded: []string{},
			SightedAt:     sightedAt,
		}).Return(id, nil).Once()

		require.NoError(t, store.CreateSighting(context.Background(), sighting))
		assert.Equal(t, id, sighting.ID)
	})

	t.Run("unknown profile", func(t *testing.T) {
		mockQ := dbMock.NewQuerier(t)
		store := &pgStore{q: mockQ}

		mockQ.EXPECT().CreateSighting(mock.Anything, mock.Anything).
			Return(uuid.Nil, &pgconn.PgError{Code: foreignKeyViolation}).Once()

		err := store.CreateSighting(context.Background(), &models.Sighting{ProfileID: uuid.New()})
		assert.True(t, errlocal.IsNotFound(err))
	})
}

func TestListSightings(t *testing.T) {
	tests := []struct {
		name          string
		limit, offset int
		wantLimit     int32
		wantOffset    int32
	}{
		{name: "passes paging through", limit: 10, offset: 20, wantLimit: 10, wantOffset: 20},
		{name: "zero limit uses default", limit: 0, offset: 0, wantLimit: defaultQueryLimit, wantOffset: 0},
		{name: "clamps oversized limit", limit: 1000, offset: -5, wantLimit: defaultQueryLimit, wantOffset: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockQ := dbMock.NewQuerier(t)
			store := &pgStore{q: mockQ}
			profileID := uuid.New()

			mockQ.EXPECT().ListSightingsByProfile(mock.Anything, db.ListSightingsByProfileParams{
				ProfileID: profileID,
				Limit:     tc.wantLimit,
				Offset:    tc.wantOffset,
			}).Return([]db.Sighting{{ID: uuid.New(), ProfileID: profileID, SpeciesID: "red_fox"}}, nil).Once()

			sightings, err := store.ListSightings(context.Background(), profileID, tc.limit, tc.offset)
			require.NoError(t, err)
			require.Len(t, sightings, 1)
			assert.Equal(t, "red_fox", sightings[0].SpeciesID)
			assert.Equal(t, []string{}, sightings[0].BadgesAwarded)
		})
	}
}
