package prism

import (
	"errors"
	"fmt"
)

// Configuration errors returned by Engine entry points. All of them are
// fatal-to-the-caller: the hosting application must fix its initialization
// order rather than catch and continue, since all rendering depends on an
// initialized engine.
var (
	// ErrNotInitialized is returned by Factory and Backend before any
	// successful Init or InitOverlay call.
	ErrNotInitialized = errors.New("prism: engine not initialized")

	// ErrUnsupportedMode is returned by Init when asked for a backend it
	// cannot construct synchronously.
	ErrUnsupportedMode = errors.New("prism: unsupported backend mode")

	// ErrBackendUnavailable is returned when the requested backend has no
	// registered provider.
	ErrBackendUnavailable = errors.New("prism: backend unavailable")
)

// Provider constructs a backend factory. Backend packages register one from
// their init function; applications select backends by importing the
// packages they ship with:
//
//	import _ "github.com/phanxgames/prism/scene2d"
type Provider func() (Factory, error)

// providers holds one registered constructor per backend. Plain map, no
// locking — registration happens in package init and the execution model is
// single-threaded (see doc.go).
var providers = map[BackendType]Provider{}

// Register makes a backend factory constructor available to engines.
// It panics if the backend already has a provider, which indicates two
// packages claiming the same backend.
func Register(t BackendType, p Provider) {
	if p == nil {
		panic("prism: Register called with nil provider")
	}
	if _, dup := providers[t]; dup {
		panic(fmt.Sprintf("prism: backend %s registered twice", t))
	}
	providers[t] = p
}

// Engine holds the active factory and backend selection for one render
// surface. Engines are cheap; create one per independent surface (or per
// test) rather than sharing. The package-level Default engine covers the
// common single-surface application.
//
// An engine's state is single-writer: the last successful Init, InitOverlay,
// or Switch call wins. Switching is not transactional — objects created
// under the old factory keep working, but Factory returns the new one.
type Engine struct {
	factory Factory
	backend BackendType
	ready   bool
}

// NewEngine returns an uninitialized engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Init constructs the 2D factory synchronously. Asking for BackendOverlay
// here is a configuration error: the overlay factory carries a heavier
// dependency that must only be linked on demand, so it is reachable solely
// through InitOverlay.
func (e *Engine) Init(mode BackendType) error {
	if mode != Backend2D {
		return fmt.Errorf("%w: %s requires InitOverlay", ErrUnsupportedMode, mode)
	}
	p, ok := providers[Backend2D]
	if !ok {
		return fmt.Errorf("%w: 2d backend not registered (import the scene2d package)", ErrBackendUnavailable)
	}
	f, err := p()
	if err != nil {
		return fmt.Errorf("prism: 2d backend failed to initialize: %w", err)
	}
	e.factory = f
	e.backend = Backend2D
	e.ready = true
	return nil
}

// InitOverlay constructs the lazily registered overlay factory. A missing
// provider or a failed construction is surfaced as a descriptive
// ErrBackendUnavailable naming the overlay backend, never as a bare lookup
// miss. The error is reported once, not retried; retry policy belongs to
// the caller.
func (e *Engine) InitOverlay() error {
	p, ok := providers[BackendOverlay]
	if !ok {
		return fmt.Errorf("%w: overlay backend not registered (import the overlay3d package)", ErrBackendUnavailable)
	}
	f, err := p()
	if err != nil {
		return fmt.Errorf("%w: overlay backend failed to initialize: %w", ErrBackendUnavailable, err)
	}
	e.factory = f
	e.backend = BackendOverlay
	e.ready = true
	return nil
}

// Factory returns the active factory. It fails with ErrNotInitialized if no
// Init variant has succeeded yet.
func (e *Engine) Factory() (Factory, error) {
	if !e.ready {
		return nil, ErrNotInitialized
	}
	return e.factory, nil
}

// Backend returns the active backend tag, with the same failure condition
// as Factory.
func (e *Engine) Backend() (BackendType, error) {
	if !e.ready {
		return 0, ErrNotInitialized
	}
	return e.backend, nil
}

// Initialized reports whether any Init variant has succeeded.
func (e *Engine) Initialized() bool {
	return e.ready
}

// Switch re-runs initialization for the given mode, replacing the active
// factory and backend tag. Only the 2D path is synchronous; switching to the
// overlay backend goes through InitOverlay like first-time initialization.
func (e *Engine) Switch(mode BackendType) error {
	if mode == BackendOverlay {
		return e.InitOverlay()
	}
	return e.Init(mode)
}

// Default is the engine used by Active. Single-surface applications
// initialize it once at startup:
//
//	if err := prism.Default.Init(prism.Backend2D); err != nil { ... }
var Default = NewEngine()

// Active returns the Default engine's factory. It is the parameterless
// accessor widget code builds on, and panics if the Default engine was never
// initialized — by contract the hosting application completes engine
// initialization before any widget runs.
func Active() Factory {
	f, err := Default.Factory()
	if err != nil {
		panic("prism: Active called before Default engine initialization")
	}
	return f
}
