// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation of the reorder engine without
// adding hard dependencies on specific observability backends. Consumers can
// register hooks at startup to receive events about drag sessions, swaps and
// transitions between the row and the free pool.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the engine dependency-free from observability frameworks
//   - Allows different backends (structured logs, Prometheus, OpenTelemetry)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetEngineHooks(&myEngineHooks{})
//	    // ... run application
//	}
//
// The engine calls hooks to emit events:
//
//	observability.Engine().OnSwap(item.ID, neighbor.ID, "right")
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Engine Hooks
// =============================================================================

// EngineHooks receives events from the reorder engine.
// Hooks are invoked synchronously from the engine's event handlers and must
// not call back into the engine.
type EngineHooks interface {
	// Drag session events
	OnPress(itemID string, inRow bool)
	OnRelease(itemID string, inRow bool, held time.Duration)

	// Row events
	OnSwap(itemID, neighborID, direction string)
	OnDetach(itemID string, repositioned int)
	OnReenter(itemID string)

	// OnRejected records an operation the engine refused (e.g. detaching an
	// item that is not in the row).
	OnRejected(op string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopEngineHooks is a no-op implementation of EngineHooks.
type NoopEngineHooks struct{}

func (NoopEngineHooks) OnPress(string, bool)                  {}
func (NoopEngineHooks) OnRelease(string, bool, time.Duration) {}
func (NoopEngineHooks) OnSwap(string, string, string)         {}
func (NoopEngineHooks) OnDetach(string, int)                  {}
func (NoopEngineHooks) OnReenter(string)                      {}
func (NoopEngineHooks) OnRejected(string, error)              {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	engineHooks EngineHooks = NoopEngineHooks{}
	hooksMu     sync.RWMutex
)

// SetEngineHooks registers custom engine hooks.
// This should be called once at application startup before any engine is used.
func SetEngineHooks(h EngineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		engineHooks = h
	}
}

// Engine returns the registered engine hooks.
func Engine() EngineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return engineHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	engineHooks = NoopEngineHooks{}
}
