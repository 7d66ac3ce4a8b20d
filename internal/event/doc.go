// Package event provides the synchronous event bus used by centerview.
//
// Components publish typed payloads on hierarchical topics and other
// components subscribe to topic patterns:
//
//	window.layout.changed   - Viewport geometry changed (resize, split, close)
//	window.content.changed  - A viewport now displays different content
//	config.reloaded         - Configuration was reloaded from disk
//
// Patterns support wildcards:
//
//	window.*     - matches window.focus (single segment)
//	window.**    - matches window.layout.changed (multi-segment)
//
// # Delivery
//
// Delivery is always synchronous: Publish runs every matching handler in
// the caller's goroutine, in priority order, before it returns. All
// publishing happens on the UI event loop, so handlers never overlap.
// A failing or panicking handler does not stop delivery to the others;
// the failures are returned joined.
//
// # Basic Usage
//
//	bus := event.NewBus()
//	sub, err := bus.Subscribe("window.layout.changed", func(ctx context.Context, ev event.Event) error {
//	    changed := ev.Payload.(window.LayoutChanged)
//	    ...
//	    return nil
//	})
//	defer bus.Unsubscribe(sub)
//
//	bus.Publish(ctx, "window.layout.changed", payload)
package event
