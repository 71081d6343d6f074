package domain

import (
	"pocketpay/pkg/apperror"
)

// Screen is the closed set of screens the app can show.
type Screen string

const (
	ScreenLogin          Screen = "login"
	ScreenHome           Screen = "home"
	ScreenTransfer       Screen = "transfer"
	ScreenConfirm        Screen = "confirm"
	ScreenSuccess        Screen = "success"
	ScreenHistory        Screen = "history"
	ScreenOffline        Screen = "offline"
	ScreenOfflineSuccess Screen = "offline_success"
)

// Event is a user or workflow action that may change the current screen.
type Event string

const (
	EventLoginSubmit       Event = "login_submit"
	EventGoHome            Event = "go_home"
	EventGoTransfer        Event = "go_transfer"
	EventGoHistory         Event = "go_history"
	EventContinueToConfirm Event = "continue_to_confirm"
	EventApproveTransfer   Event = "approve_transfer"
	EventCancelConfirm     Event = "cancel_confirm"
	EventBack              Event = "back"
	EventGoOffline         Event = "go_offline"
	EventStartScan         Event = "start_qr_scan"
	EventLogout            Event = "logout"
)

// BiometricStatus tracks the simulated fingerprint confirmation stage.
type BiometricStatus string

const (
	BiometricIdle      BiometricStatus = "idle"
	BiometricVerifying BiometricStatus = "verifying"
	BiometricVerified  BiometricStatus = "verified"
)

// CameraStatus tracks the offline-QR camera lifecycle.
type CameraStatus string

const (
	CameraIdle       CameraStatus = "idle"
	CameraRequesting CameraStatus = "requesting"
	CameraScanning   CameraStatus = "scanning"
	CameraError      CameraStatus = "error"
)

// NavContext is the slice of app state the navigation reducer needs to
// decide a transition.
type NavContext struct {
	Current            Screen
	LoggedIn           bool
	HasPendingTransfer bool
}

// backTargets is the context-sensitive inverse edge for the back event.
// Screens not listed stay where they are.
var backTargets = map[Screen]Screen{
	ScreenTransfer:       ScreenHome,
	ScreenConfirm:        ScreenTransfer,
	ScreenHistory:        ScreenHome,
	ScreenSuccess:        ScreenHome,
	ScreenOffline:        ScreenTransfer,
	ScreenOfflineSuccess: ScreenTransfer,
}

// NextScreen is the pure navigation reducer: given the current context
// and an event it returns the next screen, or the current screen plus a
// guard error when the transition is not allowed. Rendering never feeds
// back into it.
//
// Confirm, success, offline and offline_success are workflow-only
// screens: no event jumps to them directly except through the workflow
// edges below.
func NextScreen(ctx NavContext, ev Event) (Screen, *apperror.AppError) {
	switch ev {
	case EventLoginSubmit:
		if !ctx.LoggedIn {
			return ScreenLogin, apperror.ErrNotLoggedIn()
		}
		return ScreenHome, nil

	case EventGoHome:
		return guardLoggedIn(ctx, ScreenHome)

	case EventGoTransfer:
		return guardLoggedIn(ctx, ScreenTransfer)

	case EventGoHistory:
		return guardLoggedIn(ctx, ScreenHistory)

	case EventContinueToConfirm:
		if !ctx.LoggedIn {
			return ScreenLogin, apperror.ErrNotLoggedIn()
		}
		if ctx.Current != ScreenTransfer {
			return ctx.Current, apperror.ErrIllegalTransition(string(ctx.Current), string(ScreenConfirm))
		}
		return ScreenConfirm, nil

	case EventApproveTransfer:
		if ctx.Current != ScreenConfirm {
			return ctx.Current, apperror.ErrIllegalTransition(string(ctx.Current), string(ScreenSuccess))
		}
		// Approving with nothing staged degrades to the transfer
		// screen instead of raising.
		if !ctx.HasPendingTransfer {
			return ScreenTransfer, nil
		}
		return ScreenSuccess, nil

	case EventCancelConfirm:
		if ctx.Current != ScreenConfirm {
			return ctx.Current, apperror.ErrIllegalTransition(string(ctx.Current), string(ScreenTransfer))
		}
		return ScreenTransfer, nil

	case EventBack:
		if target, ok := backTargets[ctx.Current]; ok {
			return target, nil
		}
		return ctx.Current, nil

	case EventGoOffline:
		if !ctx.LoggedIn {
			return ScreenLogin, apperror.ErrNotLoggedIn()
		}
		if ctx.Current != ScreenTransfer {
			return ctx.Current, apperror.ErrIllegalTransition(string(ctx.Current), string(ScreenOffline))
		}
		return ScreenOffline, nil

	case EventStartScan:
		if ctx.Current != ScreenOffline {
			return ctx.Current, apperror.ErrIllegalTransition(string(ctx.Current), string(ScreenOfflineSuccess))
		}
		return ScreenOfflineSuccess, nil

	case EventLogout:
		return ScreenLogin, nil

	default:
		return ctx.Current, apperror.ErrIllegalTransition(string(ctx.Current), string(ev))
	}
}

// EnforceSession applies the continuous invariant that a logged-out
// session can only see the login screen. Checked after every
// transition, not just on explicit logout.
func EnforceSession(loggedIn bool, s Screen) Screen {
	if !loggedIn && s != ScreenLogin {
		return ScreenLogin
	}
	return s
}

func guardLoggedIn(ctx NavContext, target Screen) (Screen, *apperror.AppError) {
	if !ctx.LoggedIn {
		return ScreenLogin, apperror.ErrNotLoggedIn()
	}
	return target, nil
}
