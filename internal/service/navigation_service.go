package service

import (
	"strings"
	"sync"
	"time"

	"pocketpay/internal/core/domain"
	"pocketpay/internal/core/ports"
	"pocketpay/internal/store"
	"pocketpay/pkg/apperror"

	"github.com/rs/zerolog"
)

// NavigationServiceImpl implements ports.NavigationService. It is the
// only writer of the current screen outside the two workflows, and it
// enforces the logged-out invariant on every transition.
type NavigationServiceImpl struct {
	store  *store.Memory
	sched  ports.Scheduler
	splash time.Duration
	log    zerolog.Logger

	// Teardown hooks run when a transition leaves a workflow screen,
	// so pending timers and the camera are released on any exit path,
	// not just the explicit cancel buttons.
	onLeaveConfirm func()
	onLeaveOffline func()

	mu           sync.Mutex
	cancelSplash func()
}

// NewNavigationService creates a new NavigationServiceImpl. splash is
// the cosmetic boot delay.
func NewNavigationService(
	st *store.Memory,
	sched ports.Scheduler,
	splash time.Duration,
	log zerolog.Logger,
) *NavigationServiceImpl {
	return &NavigationServiceImpl{
		store:  st,
		sched:  sched,
		splash: splash,
		log:    log,
	}
}

// SetLeaveHooks wires the workflow teardown callbacks. Called once at
// assembly, after the workflow services exist.
func (s *NavigationServiceImpl) SetLeaveHooks(onLeaveConfirm, onLeaveOffline func()) {
	s.onLeaveConfirm = onLeaveConfirm
	s.onLeaveOffline = onLeaveOffline
}

// Boot shows the login screen and starts the splash timer. The timer is
// purely cosmetic; its completion is only logged.
func (s *NavigationServiceImpl) Boot() {
	s.store.SetScreen(domain.ScreenLogin)

	s.mu.Lock()
	s.cancelSplash = s.sched.After(s.splash, func() {
		s.log.Debug().Msg("boot splash finished")
	})
	s.mu.Unlock()

	s.log.Info().Dur("splash", s.splash).Msg("app booted")
}

// Close cancels the splash timer if it is still pending.
func (s *NavigationServiceImpl) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancelSplash != nil {
		s.cancelSplash()
		s.cancelSplash = nil
	}
}

// LoginSubmit validates the entered name and, if non-empty, opens the
// session and moves to home. A blank name stays on login with an
// inline error.
func (s *NavigationServiceImpl) LoginSubmit(name string) (domain.Screen, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		err := apperror.ErrNameRequired()
		s.store.SetLastError(err)
		return s.store.Screen(), err
	}

	s.store.SetSession(trimmed)
	next, err := s.dispatch(domain.EventLoginSubmit)
	if err == nil {
		s.log.Info().Str("user", trimmed).Msg("logged in")
	}
	return next, errOrNil(err)
}

// Logout clears the session and forces the login screen, tearing down
// whatever workflow screen was active.
func (s *NavigationServiceImpl) Logout() domain.Screen {
	current := s.store.Screen()
	s.runLeaveHooks(current, domain.ScreenLogin)

	s.store.ClearSession()
	s.store.ClearLastError()
	s.store.SetScreen(domain.ScreenLogin)

	s.log.Info().Str("from", string(current)).Msg("logged out")
	return domain.ScreenLogin
}

func (s *NavigationServiceImpl) GoHome() (domain.Screen, error) {
	next, err := s.dispatch(domain.EventGoHome)
	return next, errOrNil(err)
}

func (s *NavigationServiceImpl) GoTransfer() (domain.Screen, error) {
	next, err := s.dispatch(domain.EventGoTransfer)
	return next, errOrNil(err)
}

func (s *NavigationServiceImpl) GoHistory() (domain.Screen, error) {
	next, err := s.dispatch(domain.EventGoHistory)
	return next, errOrNil(err)
}

func (s *NavigationServiceImpl) GoOffline() (domain.Screen, error) {
	next, err := s.dispatch(domain.EventGoOffline)
	return next, errOrNil(err)
}

// Back follows the context-sensitive inverse edge for the current
// screen. Never fails; screens without a back edge stay put.
func (s *NavigationServiceImpl) Back() domain.Screen {
	next, _ := s.dispatch(domain.EventBack)
	return next
}

// dispatch runs one event through the reducer, applies the session
// invariant, fires teardown hooks for the screen being left and stores
// the outcome.
func (s *NavigationServiceImpl) dispatch(ev domain.Event) (domain.Screen, *apperror.AppError) {
	ctx := s.store.NavContext()

	next, navErr := domain.NextScreen(ctx, ev)
	next = domain.EnforceSession(ctx.LoggedIn, next)

	if navErr != nil {
		s.store.SetLastError(navErr)
		s.log.Warn().
			Str("event", string(ev)).
			Str("screen", string(ctx.Current)).
			Str("code", navErr.Code).
			Msg("navigation rejected")
	} else {
		s.store.ClearLastError()
	}

	s.runLeaveHooks(ctx.Current, next)
	s.store.SetScreen(next)

	s.log.Debug().
		Str("event", string(ev)).
		Str("from", string(ctx.Current)).
		Str("to", string(next)).
		Msg("screen transition")

	return next, navErr
}

func (s *NavigationServiceImpl) runLeaveHooks(from, to domain.Screen) {
	if from == to {
		return
	}
	switch from {
	case domain.ScreenConfirm:
		// Leaving confirm discards the staged transfer; the draft is
		// preserved for another attempt.
		s.store.ClearPendingTransfer()
		s.store.SetBiometricStatus(domain.BiometricIdle)
		if s.onLeaveConfirm != nil {
			s.onLeaveConfirm()
		}
	case domain.ScreenOffline:
		if s.onLeaveOffline != nil {
			s.onLeaveOffline()
		}
	}
}

// errOrNil converts a typed nil *AppError into a plain nil error so
// callers can compare against nil directly.
func errOrNil(err *apperror.AppError) error {
	if err == nil {
		return nil
	}
	return err
}
