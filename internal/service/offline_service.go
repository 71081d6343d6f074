package service

import (
	"math/rand"
	"sync"
	"time"

	"pocketpay/internal/core/domain"
	"pocketpay/internal/core/ports"
	"pocketpay/internal/store"
	"pocketpay/pkg/apperror"
	"pocketpay/pkg/format"

	"github.com/rs/zerolog"
)

// OfflineServiceImpl implements ports.OfflineService: acquire the
// camera, simulate a scan after a fixed delay and record an unsynced
// offline payment.
type OfflineServiceImpl struct {
	store     *store.Memory
	camera    ports.CameraProvider
	sched     ports.Scheduler
	rng       *rand.Rand
	scanDelay time.Duration
	log       zerolog.Logger

	mu         sync.Mutex
	stream     ports.Stream
	cancelScan func()
}

// NewOfflineService creates a new OfflineServiceImpl.
func NewOfflineService(
	st *store.Memory,
	camera ports.CameraProvider,
	sched ports.Scheduler,
	rng *rand.Rand,
	scanDelay time.Duration,
	log zerolog.Logger,
) *OfflineServiceImpl {
	return &OfflineServiceImpl{
		store:     st,
		camera:    camera,
		sched:     sched,
		rng:       rng,
		scanDelay: scanDelay,
		log:       log,
	}
}

// StartScan acquires the camera and schedules the simulated scan.
// Re-entry while a scan is running is rejected; a failed attempt must
// be re-invoked explicitly, there is no retry.
func (s *OfflineServiceImpl) StartScan() error {
	status, _ := s.store.CameraState()
	if status == domain.CameraRequesting || status == domain.CameraScanning {
		err := apperror.ErrScanInProgress()
		s.store.SetLastError(err)
		return err
	}

	ctx := s.store.NavContext()
	if ctx.Current != domain.ScreenOffline {
		err := apperror.ErrIllegalTransition(string(ctx.Current), string(domain.ScreenOfflineSuccess))
		s.store.SetLastError(err)
		return err
	}

	if !s.camera.Supported() {
		err := apperror.ErrCameraUnsupported()
		s.store.SetCameraState(domain.CameraError, err.Message)
		s.store.SetLastError(err)
		s.log.Warn().Msg("scan attempted without camera capability")
		return err
	}

	s.store.SetCameraState(domain.CameraRequesting, "")

	stream, err := s.camera.RequestStream(ports.FacingBack)
	if err != nil {
		appErr := apperror.ErrCameraDenied(err)
		s.store.SetCameraState(domain.CameraError, appErr.Message)
		s.store.SetLastError(appErr)
		s.log.Warn().Err(err).Msg("camera stream request failed")
		return appErr
	}

	s.store.SetCameraState(domain.CameraScanning, "")
	s.store.ClearLastError()

	s.mu.Lock()
	s.stream = stream
	s.cancelScan = s.sched.After(s.scanDelay, s.completeScan)
	s.mu.Unlock()
	s.log.Info().Dur("delay", s.scanDelay).Msg("camera scanning")
	return nil
}

// completeScan releases the stream, records the synthetic scan result
// and moves to the offline success screen.
func (s *OfflineServiceImpl) completeScan() {
	s.releaseStream()

	code := format.ScanCode(s.rng)
	now := s.sched.Now()
	s.store.RecordScan(domain.OfflineScanRecord{
		ResultCode: code,
		RecordedAt: now,
	})
	s.store.SetCameraState(domain.CameraIdle, "")

	ctx := s.store.NavContext()
	next, navErr := domain.NextScreen(ctx, domain.EventStartScan)
	if navErr == nil {
		s.store.SetScreen(domain.EnforceSession(ctx.LoggedIn, next))
	}

	s.log.Info().Str("result_code", code).Msg("offline payment recorded")
}

// Leave stops the camera and abandons a pending scan without error.
// Called when the user navigates away from the offline screen and on
// teardown; calling it with nothing running is a no-op.
func (s *OfflineServiceImpl) Leave() {
	s.mu.Lock()
	if s.cancelScan != nil {
		s.cancelScan()
		s.cancelScan = nil
	}
	s.mu.Unlock()

	s.releaseStream()
	s.store.SetCameraState(domain.CameraIdle, "")
}

// releaseStream stops the held stream exactly once. Stream.Stop itself
// is idempotent, so a racing double release stays harmless.
func (s *OfflineServiceImpl) releaseStream() {
	s.mu.Lock()
	stream := s.stream
	s.stream = nil
	s.cancelScan = nil
	s.mu.Unlock()

	if stream != nil {
		stream.Stop()
	}
}
