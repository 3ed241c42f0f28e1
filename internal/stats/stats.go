// Package stats ties the progression engine to persistence: it loads state,
// runs the pure pipeline and stores the result under a version check.
package stats

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wildlog/wildlog_api/internal/cache"
	"github.com/wildlog/wildlog_api/internal/config"
	"github.com/wildlog/wildlog_api/internal/errlocal"
	"github.com/wildlog/wildlog_api/internal/logging"
	"github.com/wildlog/wildlog_api/internal/metrics"
	"github.com/wildlog/wildlog_api/internal/models"
	"github.com/wildlog/wildlog_api/internal/progression"
	"github.com/wildlog/wildlog_api/internal/store"
)

const (
	defaultSaveAttempts = 3
	maxClockSkew        = 5 * time.Minute
)

type Source string

const (
	SourceManual         Source = "manual"
	SourceIdentification Source = "identification"
)

type Service struct {
	log          *logging.Logger
	store        store.Store
	engine       *progression.Engine
	counter      cache.Counter
	loc          *time.Location
	saveAttempts int
	now          func() time.Time
}

func NewService(
	logger *logging.Logger,
	st store.Store,
	engine *progression.Engine,
	counter cache.Counter,
	cfg config.ProgressionConfig,
) *Service {
	attempts := cfg.SaveAttempts
	if attempts <= 0 {
		attempts = defaultSaveAttempts
	}
	if counter == nil {
		counter = cache.NewMemoryCounter()
	}

	return &Service{
		log:          logger.WithStatsTag(),
		store:        st,
		engine:       engine,
		counter:      counter,
		loc:          cfg.Location(),
		saveAttempts: attempts,
		now:          time.Now,
	}
}

func (s *Service) Catalog() *progression.Catalog {
	return s.engine.Catalog()
}

type ProfileView struct {
	*models.Profile
	Level progression.LevelProgress `json:"level"`
}

func (s *Service) view(profile *models.Profile) *ProfileView {
	return &ProfileView{
		Profile: profile,
		Level:   progression.ResolveProgress(profile.XP, s.engine.Catalog().Levels),
	}
}

func (s *Service) CreateProfile(ctx context.Context, profileID uuid.UUID) (*ProfileView, error) {
	profile, err := s.store.CreateProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	s.log.WithContext(ctx).Infof("profile %s created", profileID)

	return s.view(profile), nil
}

func (s *Service) GetProfile(ctx context.Context, profileID uuid.UUID) (*ProfileView, error) {
	profile, err := s.store.GetProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	return s.view(profile), nil
}

func (s *Service) ListSightings(ctx context.Context, profileID uuid.UUID, limit, offset int) ([]*models.Sighting, error) {
	return s.store.ListSightings(ctx, profileID, limit, offset)
}

type SightingRequest struct {
	ProfileID uuid.UUID
	// Catalog id, common or scientific name. Anything unknown is logged as
	// a vacation find.
	Species   string
	SightedAt time.Time
	PhotoKey  *string
	Source    Source
}

type SightingResult struct {
	Sighting     *models.Sighting          `json:"sighting"`
	Delta        progression.Delta         `json:"delta"`
	Notification progression.Notification  `json:"notification"`
	Level        progression.LevelProgress `json:"level"`
}

// LogSighting runs one sighting through the engine and persists it. When the
// profile changes underneath, the pipeline is re-run on the fresh state.
func (s *Service) LogSighting(ctx context.Context, req SightingRequest) (*SightingResult, error) {
	logger := s.log.WithContext(ctx).WithField("profile_id", req.ProfileID.String())

	name := strings.TrimSpace(req.Species)
	if name == "" {
		return nil, errlocal.NewErrBadRequest("species is required", errlocal.SystemStats, nil)
	}
	species, known := s.engine.Catalog().Resolve(name)
	if !known {
		logger.Debugf("species %q not in catalog, logging vacation find %s", name, species.ID)
	}

	now := s.now()
	sightedAt := req.SightedAt
	if sightedAt.IsZero() {
		sightedAt = now
	}
	if sightedAt.After(now.Add(maxClockSkew)) {
		return nil, errlocal.NewErrBadRequest("sighted_at is in the future", errlocal.SystemStats,
			map[string]any{"sighted_at": sightedAt.Format(time.RFC3339)})
	}

	// The streak and the daily cap follow the server's calendar day. The
	// reported time only feeds the record and time-window badges.
	event := progression.Event{
		Species: species,
		Today:   models.DateOf(now, s.loc),
		Hour:    sightedAt.In(s.loc).Hour(),
	}
	capKey, reserved := s.reserveSpamSlot(ctx, logger, req.ProfileID, species.ID, event.Today)
	event.SpamCountToday = reserved
	stored := false
	defer func() {
		if capKey != "" && !stored {
			s.releaseSpamSlot(ctx, logger, capKey)
		}
	}()

	source := req.Source
	if source == "" {
		source = SourceManual
	}

	for attempt := 1; attempt <= s.saveAttempts; attempt++ {
		profile, err := s.store.GetProfile(ctx, req.ProfileID)
		if err != nil {
			return nil, err
		}

		outcome := s.engine.Apply(*profile, event)
		n := outcome.Notification

		sighting := &models.Sighting{
			ProfileID:     req.ProfileID,
			SpeciesID:     species.ID,
			PhotoKey:      req.PhotoKey,
			XPAwarded:     n.XPDelta,
			BadgesAwarded: awardIDs(n.Badges),
			Duplicate:     n.Duplicate,
			SightedAt:     sightedAt,
		}

		updated := outcome.Profile
		err = s.store.ExecTx(ctx, func(tx store.Store) error {
			if progressChanged(*profile, updated) {
				if err := tx.SaveProfile(ctx, &updated); err != nil {
					return err
				}
			}
			return tx.CreateSighting(ctx, sighting)
		})
		if errlocal.IsConflict(err) {
			metrics.SaveConflicts.WithLabelValues("profile").Inc()
			logger.Debugf("profile changed while logging %s, attempt %d", species.ID, attempt)
			continue
		}
		if err != nil {
			return nil, err
		}

		stored = true
		s.record(source, n)
		logger.WithField("species_id", species.ID).
			WithField("xp_delta", n.XPDelta).
			WithField("duplicate", n.Duplicate).
			Info("sighting logged")

		return &SightingResult{
			Sighting:     sighting,
			Delta:        progression.Diff(*profile, updated),
			Notification: n,
			Level:        progression.ResolveProgress(updated.XP, s.engine.Catalog().Levels),
		}, nil
	}

	return nil, errlocal.NewErrConflict("profile is being updated concurrently, try again",
		errlocal.SystemStats, map[string]any{"profile_id": req.ProfileID.String()})
}

// reserveSpamSlot bumps the per-day counter of a spam-prone species and
// returns the key together with how many sightings came before this one. An
// empty key means no slot was taken. Counter failures only cost the cap,
// never the sighting.
func (s *Service) reserveSpamSlot(ctx context.Context, logger *logging.Logger, profileID uuid.UUID,
	speciesID string, day models.Date,
) (string, int) {
	settings := s.engine.Settings()
	if settings.Mode != progression.XPModeFormula || settings.SpamDailyCap <= 0 ||
		!progression.IsSpamProne(speciesID, settings.SpamSpecies) {
		return "", 0
	}

	key := cache.DailyCapKey(profileID, speciesID, day)
	count, err := s.counter.Incr(ctx, key, cache.DailyTTL)
	if err != nil {
		logger.WithError(err).Warn("daily cap counter unavailable")
		return "", 0
	}

	return key, int(max(count-1, 0))
}

func (s *Service) releaseSpamSlot(ctx context.Context, logger *logging.Logger, key string) {
	if err := s.counter.Decr(context.WithoutCancel(ctx), key); err != nil {
		logger.WithError(err).Warn("failed to release daily cap slot")
	}
}

func (s *Service) record(source Source, n progression.Notification) {
	result := "new"
	if n.Duplicate {
		result = "duplicate"
	}
	metrics.SightingsLogged.WithLabelValues(string(source), result).Inc()
	if n.XPDelta > 0 {
		metrics.XPAwarded.Add(float64(n.XPDelta))
	}
	for _, award := range n.Badges {
		metrics.BadgesAwarded.WithLabelValues("profile", award.ID).Inc()
	}
}

func progressChanged(before, after models.Profile) bool {
	return before.XP != after.XP ||
		before.CurrentStreak != after.CurrentStreak ||
		before.LongestStreak != after.LongestStreak ||
		!before.LastActiveDate.Equal(after.LastActiveDate) ||
		len(before.CollectedIDs) != len(after.CollectedIDs) ||
		len(before.Badges) != len(after.Badges)
}

func awardIDs(awards []progression.Award) []string {
	ids := make([]string, len(awards))
	for i, award := range awards {
		ids[i] = award.ID
	}
	return ids
}
