package stats

import (
	"context"
	"time"

	"github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"
	"github.com/wildlog/wildlog_api/internal/errlocal"
	"github.com/wildlog/wildlog_api/internal/models"
)

func (s *statsTestSuite) swarmMembers(swarmID uuid.UUID) []*models.Profile {
	return []*models.Profile{
		{ID: uuid.New(), CollectedIDs: []string{"red_fox", "vacation_koala"}, SwarmID: &swarmID, LastActiveDate: today},
		{ID: uuid.New(), CollectedIDs: []string{"great_tit"}, SwarmID: &swarmID,
			LastActiveDate: models.Date{Year: 2024, Month: time.June, Day: 10}},
	}
}

func (s *statsTestSuite) TestSwarmView_GrantsRewardToEveryMember() {
	swarmID := uuid.New()
	swarm := &models.Swarm{ID: swarmID, Name: "owls", Badges: []string{}, Version: 3}
	members := s.swarmMembers(swarmID)

	s.mStore.EXPECT().GetSwarm(mock.Anything, swarmID).Return(swarm, nil).Once()
	s.mStore.EXPECT().ListSwarmMembers(mock.Anything, swarmID).Return(members, nil).Once()
	s.expectTx().Once()
	s.mStore.EXPECT().SaveSwarmProgress(mock.Anything, mock.Anything).
		Run(func(_ context.Context, saved *models.Swarm) {
			s.Equal([]string{"swarm_2"}, saved.Badges)
			s.Equal(1, saved.CurrentStreak)
			s.Equal(1, saved.LongestStreak)
			s.Equal(today, saved.LastActiveDate)
			s.Equal(int64(3), saved.Version)
		}).Return(nil).Once()
	s.mStore.EXPECT().AddProfileXP(mock.Anything, members[0].ID, int64(20)).Return(nil).Once()
	s.mStore.EXPECT().AddProfileXP(mock.Anything, members[1].ID, int64(20)).Return(nil).Once()

	result, err := s.service.SwarmView(s.ctx, swarmID)
	s.Require().NoError(err)

	s.Equal([]string{"great_tit", "red_fox"}, result.View.Union)
	s.Equal(2, result.View.Size)
	s.Equal(2, result.View.Members)
	s.Equal(int64(20), result.View.Reward)
	s.Require().Len(result.View.NewBadges, 1)
	s.Equal("swarm_2", result.View.NewBadges[0].ID)
	s.Equal([]string{"swarm_2"}, result.Swarm.Badges)
	s.Empty(swarm.Badges)
}

func (s *statsTestSuite) TestSwarmView_NothingNewSkipsSave() {
	swarmID := uuid.New()
	swarm := &models.Swarm{
		ID:             swarmID,
		Name:           "owls",
		Badges:         []string{"swarm_2"},
		CurrentStreak:  1,
		LongestStreak:  4,
		LastActiveDate: today,
	}

	s.mStore.EXPECT().GetSwarm(mock.Anything, swarmID).Return(swarm, nil).Once()
	s.mStore.EXPECT().ListSwarmMembers(mock.Anything, swarmID).Return(s.swarmMembers(swarmID), nil).Once()

	result, err := s.service.SwarmView(s.ctx, swarmID)
	s.Require().NoError(err)

	s.Same(swarm, result.Swarm)
	s.Empty(result.View.NewBadges)
	s.Zero(result.View.Reward)
	s.Equal(4, result.View.Streak.Longest)
	s.mStore.AssertNotCalled(s.T(), "ExecTx", mock.Anything, mock.Anything)
}

func (s *statsTestSuite) TestSwarmView_StreakOnlyIsSavedWithoutReward() {
	swarmID := uuid.New()
	swarm := &models.Swarm{
		ID:             swarmID,
		Badges:         []string{"swarm_2"},
		CurrentStreak:  1,
		LongestStreak:  1,
		LastActiveDate: models.Date{Year: 2024, Month: time.June, Day: 14},
	}

	s.mStore.EXPECT().GetSwarm(mock.Anything, swarmID).Return(swarm, nil).Once()
	s.mStore.EXPECT().ListSwarmMembers(mock.Anything, swarmID).Return(s.swarmMembers(swarmID), nil).Once()
	s.expectTx().Once()
	s.mStore.EXPECT().SaveSwarmProgress(mock.Anything, mock.Anything).
		Run(func(_ context.Context, saved *models.Swarm) {
			s.Equal(2, saved.CurrentStreak)
			s.Equal(today, saved.LastActiveDate)
		}).Return(nil).Once()

	result, err := s.service.SwarmView(s.ctx, swarmID)
	s.Require().NoError(err)
	s.True(result.View.StreakIncreased)
	s.mStore.AssertNotCalled(s.T(), "AddProfileXP", mock.Anything, mock.Anything, mock.Anything)
}

func (s *statsTestSuite) TestSwarmView_RetriesOnConflict() {
	swarmID := uuid.New()
	members := s.swarmMembers(swarmID)

	s.mStore.EXPECT().GetSwarm(mock.Anything, swarmID).
		RunAndReturn(func(context.Context, uuid.UUID) (*models.Swarm, error) {
			return &models.Swarm{ID: swarmID, Badges: []string{}}, nil
		}).Twice()
	s.mStore.EXPECT().ListSwarmMembers(mock.Anything, swarmID).Return(members, nil).Twice()
	s.expectTx().Twice()
	s.mStore.EXPECT().SaveSwarmProgress(mock.Anything, mock.Anything).
		Return(errlocal.NewErrConflict("version mismatch", "", nil)).Once()
	s.mStore.EXPECT().SaveSwarmProgress(mock.Anything, mock.Anything).Return(nil).Once()
	s.mStore.EXPECT().AddProfileXP(mock.Anything, mock.Anything, int64(20)).Return(nil).Twice()

	result, err := s.service.SwarmView(s.ctx, swarmID)
	s.Require().NoError(err)
	s.Equal([]string{"swarm_2"}, result.Swarm.Badges)
}

func (s *statsTestSuite) TestSwarmView_NotFound() {
	swarmID := uuid.New()
	s.mStore.EXPECT().GetSwarm(mock.Anything, swarmID).
		Return(nil, errlocal.NewErrNotFound("swarm not found", "", nil)).Once()

	_, err := s.service.SwarmView(s.ctx, swarmID)
	s.True(errlocal.IsNotFound(err))
}

func (s *statsTestSuite) TestCreateSwarm() {
	swarmID := uuid.New()

	s.expectTx().Once()
	s.mStore.EXPECT().CreateSwarm(mock.Anything, "Night Owls").
		Return(&models.Swarm{ID: swarmID, Name: "Night Owls", Badges: []string{}}, nil).Once()
	s.mStore.EXPECT().SetProfileSwarm(mock.Anything, s.profileID, &swarmID).Return(nil).Once()

	swarm, err := s.service.CreateSwarm(s.ctx, s.profileID, "  Night Owls ")
	s.Require().NoError(err)
	s.Equal(swarmID, swarm.ID)
}

func (s *statsTestSuite) TestCreateSwarm_EmptyName() {
	_, err := s.service.CreateSwarm(s.ctx, s.profileID, " ")

	var badRequest *errlocal.ErrBadRequest
	s.ErrorAs(err, &badRequest)
}

func (s *statsTestSuite) TestJoinSwarm() {
	swarmID := uuid.New()
	profile := s.freshProfile()
	profile.SwarmID = &swarmID

	s.mStore.EXPECT().GetSwarm(mock.Anything, swarmID).Return(&models.Swarm{ID: swarmID}, nil).Once()
	s.mStore.EXPECT().SetProfileSwarm(mock.Anything, s.profileID, &swarmID).Return(nil).Once()
	s.mStore.EXPECT().GetProfile(mock.Anything, s.profileID).Return(profile, nil).Once()

	view, err := s.service.JoinSwarm(s.ctx, s.profileID, &swarmID)
	s.Require().NoError(err)
	s.Equal(&swarmID, view.SwarmID)
}

func (s *statsTestSuite) TestJoinSwarm_UnknownSwarm() {
	swarmID := uuid.New()
	s.mStore.EXPECT().GetSwarm(mock.Anything, swarmID).
		Return(nil, errlocal.NewErrNotFound("swarm not found", "", nil)).Once()

	_, err := s.service.JoinSwarm(s.ctx, s.profileID, &swarmID)
	s.True(errlocal.IsNotFound(err))
	s.mStore.AssertNotCalled(s.T(), "SetProfileSwarm", mock.Anything, mock.Anything, mock.Anything)
}

func (s *statsTestSuite) TestJoinSwarm_Leave() {
	s.mStore.EXPECT().SetProfileSwarm(mock.Anything, s.profileID, (*uuid.UUID)(nil)).Return(nil).Once()
	s.mStore.EXPECT().GetProfile(mock.Anything, s.profileID).Return(s.freshProfile(), nil).Once()

	view, err := s.service.JoinSwarm(s.ctx, s.profileID, nil)
	s.Require().NoError(err)
	s.Nil(view.SwarmID)
}
