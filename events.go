package decor

import (
	"context"
	"io"
	"sync"
)

// Event is a DOM-style event.
type Event struct {
	Type   string
	Detail any
}

// Listener consumes dispatched events.
type Listener func(Event)

// Element is the DOM-like surface the event decorator binds to.
//
// On registers a listener for an event type and returns the function that
// removes exactly that registration. Dispatch delivers an event to the
// listeners registered for its type.
type Element interface {
	On(event string, fn Listener) (off func())
	Dispatch(Event)
}

// ElementProvider is implemented by components with an associated element.
// The event decorator dispatches re-emitted events on that element when
// present, falling back to the bound element otherwise.
type ElementProvider interface {
	Element() Element
}

// EmitPrefix names re-emitted events: a bound "click" handler re-emits
// "decor:click" carrying the original event as Detail.
const EmitPrefix = "decor:"

// DefaultEvents is the pointer-interaction set bound after each render when
// auto-attach is enabled.
var DefaultEvents = []string{"click", "pointerenter", "pointerleave"}

type bindingKey struct {
	el    Element
	event string
}

// EventBinder attaches listeners to an element around render and guarantees
// their removal on dispose.
//
// After each successful render (with auto-attach enabled, the default) the
// configured event set is bound to the element, each registration recorded
// in a registry keyed by (element, event). Attach is strictly idempotent per
// key: a second attach detaches the prior binding before installing the new
// one, so repeated renders never leak listeners. Dispose removes every
// recorded binding exactly once, clears the registry, then delegates.
type EventBinder struct {
	*Base
	el         Element
	events     []string
	autoAttach bool

	mu       sync.Mutex
	bindings map[bindingKey]func()
}

// WithEvents wraps a component with listener lifecycle management bound to
// el. Panics if el is nil - an event decorator without an element is a
// programming error.
func WithEvents(inner Component, el Element) *EventBinder {
	if el == nil {
		panic("decor: nil element")
	}
	return &EventBinder{
		Base:       NewBase(inner),
		el:         el,
		events:     DefaultEvents,
		autoAttach: true,
		bindings:   make(map[bindingKey]func()),
	}
}

// AutoAttach controls whether Render binds the event set automatically.
// Disable it to drive Attach manually.
func (b *EventBinder) AutoAttach(enabled bool) *EventBinder {
	b.autoAttach = enabled
	return b
}

// Events overrides the event set bound on render.
func (b *EventBinder) Events(events ...string) *EventBinder {
	b.events = events
	return b
}

// Render delegates, then binds the configured event set when auto-attach is
// enabled. A failing delegated render binds nothing.
func (b *EventBinder) Render(ctx context.Context, w io.Writer) error {
	if err := b.Base.Render(ctx, w); err != nil {
		return err
	}
	if b.autoAttach {
		for _, event := range b.events {
			b.Attach(b.el, event)
		}
	}
	return nil
}

// Attach binds a re-emitting handler for event on el and records the
// registration. If a binding already exists for this (element, event) pair,
// it is detached first - the prior listener never leaks.
//
// The handler re-emits EmitPrefix+event carrying the original event as
// Detail, dispatched on the wrapped component's associated element when it
// provides one, otherwise on el itself.
func (b *EventBinder) Attach(el Element, event string) {
	target := b.target(el)
	handler := func(ev Event) {
		target.Dispatch(Event{Type: EmitPrefix + ev.Type, Detail: ev})
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	key := bindingKey{el: el, event: event}
	if off, ok := b.bindings[key]; ok {
		off()
	}
	b.bindings[key] = el.On(event, handler)
}

// Detach removes the binding for (el, event), if any.
func (b *EventBinder) Detach(el Element, event string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := bindingKey{el: el, event: event}
	if off, ok := b.bindings[key]; ok {
		off()
		delete(b.bindings, key)
	}
}

// Bindings reports the number of live registrations. Zero after Dispose.
func (b *EventBinder) Bindings() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.bindings)
}

// Dispose removes every recorded listener, clears the registry, then
// delegates disposal. No listener registered by this decorator outlives a
// Dispose call, even when the delegated disposal fails.
func (b *EventBinder) Dispose(ctx context.Context) error {
	b.mu.Lock()
	for _, off := range b.bindings {
		off()
	}
	b.bindings = make(map[bindingKey]func())
	b.mu.Unlock()

	return b.Base.Dispose(ctx)
}

// target resolves the dispatch element for re-emitted events.
func (b *EventBinder) target(fallback Element) Element {
	if p, ok := b.Unwrap().(ElementProvider); ok {
		if el := p.Element(); el != nil {
			return el
		}
	}
	return fallback
}
