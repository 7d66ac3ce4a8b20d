package event

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Event is a published payload together with its topic.
type Event struct {
	Topic   Topic
	Payload any
}

// HandlerFunc processes an event.
type HandlerFunc func(ctx context.Context, ev Event) error

// Bus dispatches events to subscribers synchronously.
type Bus struct {
	mu   sync.RWMutex
	subs map[string]*subscription
	seq  uint64
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[string]*subscription)}
}

// Subscribe registers fn for events whose topic matches pattern.
// This method is safe to call from within a handler.
func (b *Bus) Subscribe(pattern Topic, fn HandlerFunc, opts ...Option) (Subscription, error) {
	if fn == nil {
		return nil, ErrNilHandler
	}
	if !pattern.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTopic, pattern)
	}

	sub := &subscription{
		id:       uuid.NewString(),
		pattern:  pattern,
		handler:  fn,
		priority: PriorityNormal,
	}
	for _, opt := range opts {
		opt(sub)
	}

	b.mu.Lock()
	b.seq++
	sub.seq = b.seq
	b.subs[sub.id] = sub
	b.mu.Unlock()

	return sub, nil
}

// Unsubscribe cancels and removes sub.
func (b *Bus) Unsubscribe(sub Subscription) error {
	if sub == nil {
		return ErrSubscriptionNotFound
	}
	sub.Cancel()

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subs[sub.ID()]; !ok {
		return ErrSubscriptionNotFound
	}
	delete(b.subs, sub.ID())
	return nil
}

// Count returns the number of live subscriptions.
func (b *Bus) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Publish delivers payload to every subscription matching t, in priority
// order, and returns once all handlers have run. Handler errors and panics
// are collected; delivery continues past them.
func (b *Bus) Publish(ctx context.Context, t Topic, payload any) error {
	if !t.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidTopic, t)
	}
	ev := Event{Topic: t, Payload: payload}

	var errs []error
	for _, sub := range b.match(t) {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		// A handler may have cancelled a later subscription.
		if !sub.shouldDeliver(ev) {
			continue
		}
		if err := b.deliver(ctx, sub, ev); err != nil {
			errs = append(errs, &HandlerError{SubscriptionID: sub.id, Topic: t, Err: err})
		}
	}
	return errors.Join(errs...)
}

// match returns a snapshot of matching subscriptions so handlers may
// subscribe or unsubscribe while an event is being delivered.
func (b *Bus) match(t Topic) []*subscription {
	b.mu.RLock()
	matched := make([]*subscription, 0, len(b.subs))
	for _, sub := range b.subs {
		if t.Matches(sub.pattern) {
			matched = append(matched, sub)
		}
	}
	b.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].priority != matched[j].priority {
			return matched[i].priority < matched[j].priority
		}
		return matched[i].seq < matched[j].seq
	})
	return matched
}

func (b *Bus) deliver(ctx context.Context, sub *subscription, ev Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrHandlerPanic, r)
		}
	}()
	return sub.handler(ctx, ev)
}
