package camera

import (
	"errors"
	"sync"

	"pocketpay/internal/core/ports"
)

// ErrPermissionDenied is returned by the simulated provider when the
// user rejects the permission prompt.
var ErrPermissionDenied = errors.New("camera permission denied")

// Simulated is a camera provider that grants a fake stream. It stands
// in for the device camera, which lives outside this core.
type Simulated struct {
	mu      sync.Mutex
	denied  bool
	streams []*SimulatedStream
}

// NewSimulated creates a granting provider.
func NewSimulated() *Simulated {
	return &Simulated{}
}

// Deny makes subsequent RequestStream calls fail with
// ErrPermissionDenied.
func (p *Simulated) Deny() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.denied = true
}

func (p *Simulated) Supported() bool {
	return true
}

func (p *Simulated) RequestStream(facing ports.Facing) (ports.Stream, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.denied {
		return nil, ErrPermissionDenied
	}
	s := &SimulatedStream{facing: facing}
	p.streams = append(p.streams, s)
	return s, nil
}

// Streams returns every stream handed out so far, in order.
func (p *Simulated) Streams() []*SimulatedStream {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*SimulatedStream(nil), p.streams...)
}

// OpenStreams counts streams handed out and not yet stopped.
func (p *Simulated) OpenStreams() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	open := 0
	for _, s := range p.streams {
		if !s.Stopped() {
			open++
		}
	}
	return open
}

// SimulatedStream is a fake camera stream with an idempotent Stop.
type SimulatedStream struct {
	mu      sync.Mutex
	facing  ports.Facing
	stopped bool
	stops   int
}

func (s *SimulatedStream) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stops++
	s.stopped = true
}

// Stopped reports whether the stream has been released.
func (s *SimulatedStream) Stopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped
}

// StopCalls reports how many times Stop was invoked.
func (s *SimulatedStream) StopCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stops
}

// Unsupported is a provider for runtimes with no camera capability.
type Unsupported struct{}

// NewUnsupported creates a provider that reports no camera.
func NewUnsupported() *Unsupported {
	return &Unsupported{}
}

func (Unsupported) Supported() bool {
	return false
}

func (Unsupported) RequestStream(ports.Facing) (ports.Stream, error) {
	return nil, errors.New("no camera capability")
}
