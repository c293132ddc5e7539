package decor

import (
	"bytes"
	"context"
	"io"
)

// RenderString renders a component and returns its output as a string.
//
// Convenience for tests and for callers assembling HTML fragments:
//
//	html, err := decor.RenderString(cached)
func RenderString(c Component) (string, error) {
	var buf bytes.Buffer
	err := c.Render(context.Background(), &buf)
	return buf.String(), err
}

// Recorder is a test component that counts Render and Dispose calls.
//
// Output is written on every successful render. RenderErr and DisposeErr,
// when set, are returned after the corresponding call is counted - use them
// to exercise decorator behavior around failing delegates. Key, when
// non-empty, is served through CacheKeyer so tests can steer the caching
// decorator's key per render.
type Recorder struct {
	Output     string
	Key        string
	RenderErr  error
	DisposeErr error

	renders  int
	disposes int
}

// NewRecorder creates a Recorder that renders the given output.
func NewRecorder(output string) *Recorder {
	return &Recorder{Output: output}
}

// Render counts the call, then writes Output or returns RenderErr.
func (r *Recorder) Render(ctx context.Context, w io.Writer) error {
	r.renders++
	if r.RenderErr != nil {
		return r.RenderErr
	}
	_, err := io.WriteString(w, r.Output)
	return err
}

// Dispose counts the call, then returns DisposeErr.
func (r *Recorder) Dispose(ctx context.Context) error {
	r.disposes++
	return r.DisposeErr
}

// CacheKey serves Key for the caching decorator. Empty means "no opinion"
// and the decorator falls back to its construction-site identity.
func (r *Recorder) CacheKey() string {
	return r.Key
}

// RenderCalls returns how many times Render was invoked.
func (r *Recorder) RenderCalls() int {
	return r.renders
}

// DisposeCalls returns how many times Dispose was invoked.
func (r *Recorder) DisposeCalls() int {
	return r.disposes
}

type fakeBinding struct {
	event string
	fn    Listener
}

// FakeElement is an in-memory Element for tests.
//
// Listeners registered through On are delivered events via Dispatch (or the
// Fire convenience). Every dispatched event is also recorded in Dispatched
// for assertions, whether or not anything was listening.
type FakeElement struct {
	bindings   []*fakeBinding
	Dispatched []Event
}

// NewFakeElement creates an empty fake element.
func NewFakeElement() *FakeElement {
	return &FakeElement{}
}

// On registers a listener and returns its removal function.
func (e *FakeElement) On(event string, fn Listener) func() {
	b := &fakeBinding{event: event, fn: fn}
	e.bindings = append(e.bindings, b)
	return func() {
		for i, cur := range e.bindings {
			if cur == b {
				e.bindings = append(e.bindings[:i], e.bindings[i+1:]...)
				return
			}
		}
	}
}

// Dispatch records the event and delivers it to listeners registered for
// its type. Listeners are snapshotted first, so a listener may safely
// remove itself (or others) during delivery.
func (e *FakeElement) Dispatch(ev Event) {
	e.Dispatched = append(e.Dispatched, ev)
	snapshot := make([]*fakeBinding, len(e.bindings))
	copy(snapshot, e.bindings)
	for _, b := range snapshot {
		if b.event == ev.Type {
			b.fn(ev)
		}
	}
}

// Fire simulates a DOM event of the given type.
func (e *FakeElement) Fire(event string, detail any) {
	e.Dispatch(Event{Type: event, Detail: detail})
}

// ListenerCount reports live registrations for an event type.
func (e *FakeElement) ListenerCount(event string) int {
	n := 0
	for _, b := range e.bindings {
		if b.event == event {
			n++
		}
	}
	return n
}
