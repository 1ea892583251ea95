// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about conversion and graph builds.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach avoids import cycles (hooks are registered by the consumer,
// not by libraries) and keeps the core free of observability frameworks.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetConvertHooks(&myConvertHooks{})
//	    observability.SetBuildHooks(&myBuildHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Build().OnBuildStart(nodeCount)
//	// ... validate, derive, sort ...
//	observability.Build().OnBuildComplete(nodeCount, thunkCount, duration, err)
package observability

import (
	"sync"
	"time"
)

// ConvertHooks receives events from AST to hypergraph conversion.
type ConvertHooks interface {
	// OnConvertStart records the start of a conversion. freeVars is the
	// number of free variables of the whole program.
	OnConvertStart(freeVars int)

	// OnConvertComplete records the end of a conversion, successful or not.
	OnConvertComplete(nodeCount int, duration time.Duration, err error)
}

// BuildHooks receives events from hypergraph builds.
type BuildHooks interface {
	// OnBuildStart records the start of a build over nodeCount nodes.
	OnBuildStart(nodeCount int)

	// OnBuildComplete records the end of a build, successful or not.
	OnBuildComplete(nodeCount, thunkCount int, duration time.Duration, err error)
}

// NoopConvertHooks is a no-op implementation of ConvertHooks.
type NoopConvertHooks struct{}

func (NoopConvertHooks) OnConvertStart(int)                          {}
func (NoopConvertHooks) OnConvertComplete(int, time.Duration, error) {}

// NoopBuildHooks is a no-op implementation of BuildHooks.
type NoopBuildHooks struct{}

func (NoopBuildHooks) OnBuildStart(int)                               {}
func (NoopBuildHooks) OnBuildComplete(int, int, time.Duration, error) {}

var (
	convertHooks ConvertHooks = NoopConvertHooks{}
	buildHooks   BuildHooks   = NoopBuildHooks{}
	hooksMu      sync.RWMutex
)

// SetConvertHooks registers custom conversion hooks.
// This should be called once at application startup before any conversion.
func SetConvertHooks(h ConvertHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		convertHooks = h
	}
}

// SetBuildHooks registers custom build hooks.
// This should be called once at application startup before any build.
func SetBuildHooks(h BuildHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		buildHooks = h
	}
}

// Convert returns the registered conversion hooks.
func Convert() ConvertHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return convertHooks
}

// Build returns the registered build hooks.
func Build() BuildHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return buildHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	convertHooks = NoopConvertHooks{}
	buildHooks = NoopBuildHooks{}
}
