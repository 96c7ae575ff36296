package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ─────────────────────────────────────────────────────────────
// Notification Service — single-slot transient toast
// ─────────────────────────────────────────────────────────────
//
// One slot, newest wins. A superseded notification is dropped without ever
// being shown again; its pending expiry timer must not clear the newer one.
// The expiry check therefore compares the firing timer's captured id
// against the current slot, never just "is something showing".

// DefaultNotificationTTL is how long a toast stays visible unless replaced.
const DefaultNotificationTTL = 2500 * time.Millisecond

// Notification is the currently visible toast, if any.
type Notification struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// NotificationService holds the single toast slot and its expiry timer.
type NotificationService struct {
	mu      sync.Mutex
	current *Notification
	timer   *time.Timer
	ttl     time.Duration
	emitter EventEmitter
}

// NewNotificationService creates a NotificationService with the default TTL.
func NewNotificationService(emitter EventEmitter) *NotificationService {
	return &NotificationService{ttl: DefaultNotificationTTL, emitter: emitter}
}

// NewNotificationServiceTTL creates a NotificationService with a custom TTL.
// Used by tests to exercise expiry without waiting 2.5s.
func NewNotificationServiceTTL(emitter EventEmitter, ttl time.Duration) *NotificationService {
	return &NotificationService{ttl: ttl, emitter: emitter}
}

// Notify replaces the current toast and arms its expiry. The timer captures
// the new toast's id; when it fires it clears the slot only if that exact
// toast is still current.
func (s *NotificationService) Notify(ctx context.Context, message string) Notification {
	n := Notification{ID: uuid.New().String(), Message: message}

	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.current = &n
	s.timer = time.AfterFunc(s.ttl, func() {
		s.expire(ctx, n.ID)
	})
	s.mu.Unlock()

	if s.emitter != nil {
		s.emitter.Emit(ctx, "toast:show", n)
	}
	return n
}

// Current returns the visible toast, or nil.
func (s *NotificationService) Current() *Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	n := *s.current
	return &n
}

// expire clears the slot only when the toast with id is still the one
// showing. A stale timer firing for a replaced toast is a no-op.
func (s *NotificationService) expire(ctx context.Context, id string) {
	s.mu.Lock()
	if s.current == nil || s.current.ID != id {
		s.mu.Unlock()
		return
	}
	s.current = nil
	s.timer = nil
	s.mu.Unlock()

	if s.emitter != nil {
		s.emitter.Emit(ctx, "toast:clear", map[string]string{"id": id})
	}
}

// Stop cancels any pending expiry timer. Called on shutdown.
func (s *NotificationService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
