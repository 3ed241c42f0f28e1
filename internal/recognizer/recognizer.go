// Package recognizer sends sighting photos to the image recognition service
// and logs the recognized species in the background.
package recognizer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/wildlog/wildlog_api/internal/config"
	"github.com/wildlog/wildlog_api/internal/errlocal"
	"github.com/wildlog/wildlog_api/internal/filestore"
	"github.com/wildlog/wildlog_api/internal/logging"
	"github.com/wildlog/wildlog_api/internal/metrics"
	"github.com/wildlog/wildlog_api/internal/models"
	"github.com/wildlog/wildlog_api/internal/stats"
	"github.com/wildlog/wildlog_api/internal/store"
	"github.com/wildlog/wildlog_api/internal/utils"
)

type recognizeRequester interface {
	Recognize(ctx context.Context, photoURL string, identificationID uuid.UUID,
		optHeaders ...http.Header) (*recognizeResponse, error)
}

type sightingLogger interface {
	LogSighting(ctx context.Context, req stats.SightingRequest) (*stats.SightingResult, error)
}

type Recognizer struct {
	mu                 sync.RWMutex
	log                *logging.Logger
	client             recognizeRequester
	store              store.Store
	files              filestore.FileStore
	sightings          sightingLogger
	photosInProcessing map[string]struct{}
	limiter            atomic.Int32
	limitRate          int32
	minConfidence      float64
	now                func() time.Time
	wg                 sync.WaitGroup
}

func NewRecognizer(
	logger *logging.Logger,
	st store.Store,
	files filestore.FileStore,
	sightings sightingLogger,
	cfg config.RecognizerConfig,
) *Recognizer {
	return &Recognizer{
		log:                logger.WithRecognizerTag(),
		store:              st,
		files:              files,
		sightings:          sightings,
		photosInProcessing: make(map[string]struct{}, cfg.MaxIdentificationsInProcessing),
		client:             newRecognizerClient(cfg, logger),
		limiter:            atomic.Int32{},
		limitRate:          int32(cfg.MaxIdentificationsInProcessing),
		minConfidence:      cfg.MinConfidence,
		now:                time.Now,
	}
}

// Identify starts an identification for an uploaded photo and returns the
// record still in processing state. The result is stored on the record once
// the recognition service answers.
func (r *Recognizer) Identify(ctx context.Context, profileID uuid.UUID, photoKey string) (*models.Identification, error) {
	if !r.tryAcquireSlot() {
		return nil, errlocal.NewErrTooManyRequests("too many identifications in processing", errlocal.SystemRecognizer)
	}

	if !r.tryPutPhotoInProcessing(photoKey) {
		r.limiter.Add(-1)
		return nil, errlocal.NewErrConflict("photo already in processing", errlocal.SystemRecognizer,
			map[string]any{"photo": photoKey})
	}

	r.log.WithContext(ctx).Debugf("photo %s start processing", photoKey)
	identification, err := r.store.StartIdentification(ctx, profileID, photoKey)
	if err != nil {
		r.limiter.Add(-1)
		r.deletePhotoFromProcessing(photoKey)
		return nil, err
	}

	sightedAt := r.now()
	metrics.IdentificationsInFlight.Inc()
	r.wg.Add(1)
	go r.processIdentification(context.WithoutCancel(ctx), *identification, sightedAt)

	return identification, nil
}

// Wait blocks until every background identification has finished.
func (r *Recognizer) Wait() {
	r.wg.Wait()
}

func (r *Recognizer) processIdentification(ctx context.Context, identification models.Identification, sightedAt time.Time) {
	defer func() {
		r.limiter.Add(-1)
		r.deletePhotoFromProcessing(identification.PhotoKey)
		metrics.IdentificationsInFlight.Dec()
		r.wg.Done()
	}()
	logger := r.log.WithContext(ctx).WithField("identification_id", identification.ID.String())

	if err := r.identify(ctx, logger, &identification, sightedAt); err != nil {
		logger.WithError(err).Warn("identification failed")
		identification.Status = models.IdentificationFailedStatus
		identification.Error = failureMessage(err)
	}
	metrics.IdentificationsFinished.WithLabelValues(identification.Status.String()).Inc()

	if storeErr := r.store.CompleteIdentification(ctx, &identification); storeErr != nil {
		logger.Errorf("error while complete identification: %v", storeErr)
	}
}

func (r *Recognizer) identify(
	ctx context.Context,
	logger *logging.Logger,
	identification *models.Identification,
	sightedAt time.Time,
) error {
	photoURL, err := r.files.PhotoURL(ctx, identification.PhotoKey)
	if err != nil {
		return err
	}

	optsHeader := http.Header{}
	if requestID, ok := utils.GetRequestID(ctx); ok {
		optsHeader.Add("X-Request-ID", requestID)
	}

	start := time.Now()
	resp, err := r.client.Recognize(ctx, photoURL, identification.ID, optsHeader)
	metrics.RecognizerLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		return err
	}
	logger.Debugf("recognized %q with confidence %.3f", resp.Species, resp.Confidence)

	if strings.TrimSpace(resp.Species) == "" {
		return errlocal.NewErrNotFound("no species recognized", errlocal.SystemRecognizer, nil)
	}
	if resp.Confidence < r.minConfidence {
		return errlocal.NewErrBadRequest(
			fmt.Sprintf("confidence %.2f below %.2f", resp.Confidence, r.minConfidence),
			errlocal.SystemRecognizer,
			map[string]any{"species": resp.Species},
		)
	}

	photoKey := identification.PhotoKey
	result, err := r.sightings.LogSighting(ctx, stats.SightingRequest{
		ProfileID: identification.ProfileID,
		Species:   resp.Species,
		SightedAt: sightedAt,
		PhotoKey:  &photoKey,
		Source:    stats.SourceIdentification,
	})
	if err != nil {
		return err
	}

	outcome, err := json.Marshal(result)
	if err != nil {
		return err
	}

	identification.Status = models.IdentificationCompletedStatus
	identification.SpeciesID = result.Sighting.SpeciesID
	identification.Confidence = resp.Confidence
	identification.Outcome = outcome

	return nil
}

func failureMessage(err error) string {
	if localErr, ok := errlocal.As(err); ok {
		return localErr.Message()
	}
	return err.Error()
}

func (r *Recognizer) tryAcquireSlot() bool {
	for {
		inFlight := r.limiter.Load()
		if inFlight >= r.limitRate {
			return false
		}
		if r.limiter.CompareAndSwap(inFlight, inFlight+1) {
			return true
		}
	}
}

func (r *Recognizer) tryPutPhotoInProcessing(photoKey string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.photosInProcessing[photoKey]; ok {
		return false
	}
	r.photosInProcessing[photoKey] = struct{}{}

	return true
}

func (r *Recognizer) deletePhotoFromProcessing(photoKey string) {
	r.mu.Lock()
	delete(r.photosInProcessing, photoKey)
	r.mu.Unlock()
}
