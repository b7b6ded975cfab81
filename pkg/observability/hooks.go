// Package observability lets mermaidgen report render activity to metrics
// or tracing backends without depending on any of them.
//
// Hooks are registered once by main and called by the CLI and the HTTP
// server around every document import and diagram render:
//
//	observability.SetRenderHooks(&promHooks{})
//
//	start := time.Now()
//	d, err := mio.Read(body, mio.FormatJSON)
//	observability.Render().OnImport(ctx, "json", time.Since(start), err)
//
// The defaults do nothing.
package observability

import (
	"context"
	"sync"
	"time"
)

// RenderHooks receives events from document decoding and rendering.
type RenderHooks interface {
	// OnImport is called after a diagram document was decoded. err is the
	// decode or validation failure, if any.
	OnImport(ctx context.Context, format string, duration time.Duration, err error)

	// OnRender is called after a diagram was rendered to text.
	OnRender(ctx context.Context, stats RenderStats, duration time.Duration)
}

// RenderStats describes a rendered diagram.
type RenderStats struct {
	Type  string // diagram type tag, e.g. "flowchart"
	Nodes int
	Edges int
	Bytes int // length of the rendered text
}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnImport(context.Context, string, time.Duration, error) {}
func (NoopRenderHooks) OnRender(context.Context, RenderStats, time.Duration)   {}

var (
	renderHooks RenderHooks = NoopRenderHooks{}
	hooksMu     sync.RWMutex
)

// SetRenderHooks registers custom render hooks. A nil h is ignored.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores the no-op hooks. Tests use it to undo a registration.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	renderHooks = NoopRenderHooks{}
}
