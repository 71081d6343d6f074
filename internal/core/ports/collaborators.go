package ports

import "time"

// Facing selects which device camera to open.
type Facing string

const (
	FacingBack  Facing = "environment"
	FacingFront Facing = "user"
)

// Stream is a live camera stream handle. Stop releases the underlying
// device and must be idempotent: stopping twice is a no-op, not an error.
type Stream interface {
	Stop()
}

// CameraProvider abstracts the device camera. The real thing lives
// outside this core; implementations here simulate grant, denial and
// absence of a camera.
type CameraProvider interface {
	Supported() bool
	RequestStream(facing Facing) (Stream, error)
}

// Scheduler abstracts the clock: wall time plus cancellable one-shot
// timers. The returned cancel func abandons the callback without error
// and may be called after the timer has fired.
type Scheduler interface {
	Now() time.Time
	After(d time.Duration, fn func()) (cancel func())
}
