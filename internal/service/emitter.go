package service

import (
	"context"
	"sync"
)

// ─────────────────────────────────────────────────────────────
// EventEmitter — decouples services from wailsRuntime
// ─────────────────────────────────────────────────────────────

// EventEmitter pushes map and session events (fly-to commands, AOI list
// changes, toast show/clear) to the frontend. The App struct implements it
// by delegating to wailsRuntime.EventsEmit; services depend only on this
// interface so they can be tested without a Wails context.
type EventEmitter interface {
	Emit(ctx context.Context, event string, data any)
}

// EmittedEvent holds a single recorded emission for test assertions.
type EmittedEvent struct {
	Event string
	Data  any
}

// MockEmitter is a test EventEmitter that records all calls. Emissions
// arrive from timer goroutines too (toast expiry, move-end settle), so the
// recorded slice is mutex-guarded and must only be read through Filter.
type MockEmitter struct {
	mu     sync.Mutex
	events []EmittedEvent
}

func (m *MockEmitter) Emit(_ context.Context, event string, data any) {
	m.mu.Lock()
	m.events = append(m.events, EmittedEvent{Event: event, Data: data})
	m.mu.Unlock()
}

// Filter returns the recorded emissions matching the event name.
func (m *MockEmitter) Filter(event string) []EmittedEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []EmittedEvent
	for _, e := range m.events {
		if e.Event == event {
			out = append(out, e)
		}
	}
	return out
}
