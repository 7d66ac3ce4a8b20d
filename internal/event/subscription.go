package event

import "sync/atomic"

// Priority determines handler execution order.
// Lower values execute first.
type Priority int

const (
	// PriorityCritical is for handlers that must observe state first.
	PriorityCritical Priority = 0

	// PriorityNormal is the default priority.
	PriorityNormal Priority = 200

	// PriorityLow is for handlers that only observe, such as redraw requests.
	PriorityLow Priority = 300
)

// FilterFunc decides whether an event is delivered to a subscription.
type FilterFunc func(ev Event) bool

// Option configures a subscription.
type Option func(*subscription)

// WithPriority sets the handler priority.
func WithPriority(p Priority) Option {
	return func(s *subscription) {
		s.priority = p
	}
}

// WithFilter restricts delivery to events accepted by fn.
func WithFilter(fn FilterFunc) Option {
	return func(s *subscription) {
		s.filter = fn
	}
}

// Subscription represents an active event subscription.
type Subscription interface {
	// ID returns the unique subscription identifier.
	ID() string

	// Topic returns the subscribed topic pattern.
	Topic() Topic

	// IsActive returns true if the subscription can receive events.
	IsActive() bool

	// Cancel permanently cancels the subscription.
	Cancel()
}

type subscription struct {
	id        string
	pattern   Topic
	handler   HandlerFunc
	priority  Priority
	filter    FilterFunc
	seq       uint64
	cancelled atomic.Bool
}

func (s *subscription) ID() string     { return s.id }
func (s *subscription) Topic() Topic   { return s.pattern }
func (s *subscription) IsActive() bool { return !s.cancelled.Load() }
func (s *subscription) Cancel()        { s.cancelled.Store(true) }

func (s *subscription) shouldDeliver(ev Event) bool {
	if !s.IsActive() {
		return false
	}
	return s.filter == nil || s.filter(ev)
}
