package decor

import (
	"context"
	"errors"
	"testing"
)

func TestEventsAutoAttachOnRender(t *testing.T) {
	el := NewFakeElement()
	b := WithEvents(NewRecorder("out"), el)

	if _, err := RenderString(b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	for _, event := range DefaultEvents {
		if got := el.ListenerCount(event); got != 1 {
			t.Errorf("ListenerCount(%q) = %d, want 1", event, got)
		}
	}
	if got := b.Bindings(); got != len(DefaultEvents) {
		t.Errorf("Bindings() = %d, want %d", got, len(DefaultEvents))
	}
}

func TestEventsReEmitCarriesOriginal(t *testing.T) {
	el := NewFakeElement()
	b := WithEvents(NewRecorder("out"), el).Events("click")

	if _, err := RenderString(b); err != nil {
		t.Fatal(err)
	}

	el.Fire("click", "payload")

	var reEmitted *Event
	for i := range el.Dispatched {
		if el.Dispatched[i].Type == EmitPrefix+"click" {
			reEmitted = &el.Dispatched[i]
		}
	}
	if reEmitted == nil {
		t.Fatalf("no %q event dispatched; got %+v", EmitPrefix+"click", el.Dispatched)
	}
	orig, ok := reEmitted.Detail.(Event)
	if !ok {
		t.Fatalf("Detail type = %T, want Event", reEmitted.Detail)
	}
	if orig.Type != "click" || orig.Detail != "payload" {
		t.Errorf("original event = %+v", orig)
	}
}

// providedComponent exposes an associated element for re-emitted events.
type providedComponent struct {
	*Recorder
	el Element
}

func (p *providedComponent) Element() Element { return p.el }

func TestEventsDispatchOnProvidedElement(t *testing.T) {
	bound := NewFakeElement()
	associated := NewFakeElement()
	inner := &providedComponent{Recorder: NewRecorder("out"), el: associated}
	b := WithEvents(inner, bound).Events("click")

	if _, err := RenderString(b); err != nil {
		t.Fatal(err)
	}
	bound.Fire("click", nil)

	found := false
	for _, ev := range associated.Dispatched {
		if ev.Type == EmitPrefix+"click" {
			found = true
		}
	}
	if !found {
		t.Errorf("re-emitted event not dispatched on associated element; got %+v", associated.Dispatched)
	}
}

func TestEventsReattachIsIdempotent(t *testing.T) {
	el := NewFakeElement()
	b := WithEvents(NewRecorder("out"), el).Events("click")

	// Repeated renders re-attach; the prior binding must be detached first.
	for i := 0; i < 3; i++ {
		if _, err := RenderString(b); err != nil {
			t.Fatal(err)
		}
	}

	if got := el.ListenerCount("click"); got != 1 {
		t.Errorf("ListenerCount(click) = %d after 3 renders, want 1", got)
	}
	if got := b.Bindings(); got != 1 {
		t.Errorf("Bindings() = %d, want 1", got)
	}
}

func TestEventsDisposeRemovesAllListeners(t *testing.T) {
	el := NewFakeElement()
	rec := NewRecorder("out")
	b := WithEvents(rec, el)

	if _, err := RenderString(b); err != nil {
		t.Fatal(err)
	}
	if err := b.Dispose(context.Background()); err != nil {
		t.Fatalf("Dispose() error = %v", err)
	}

	if rec.DisposeCalls() != 1 {
		t.Errorf("DisposeCalls() = %d, want 1", rec.DisposeCalls())
	}
	if got := b.Bindings(); got != 0 {
		t.Errorf("Bindings() = %d after Dispose, want 0", got)
	}

	// No previously attached listener fires for a subsequent event.
	before := len(el.Dispatched)
	el.Fire("click", nil)
	for _, ev := range el.Dispatched[before:] {
		if ev.Type == EmitPrefix+"click" {
			t.Error("listener fired after Dispose")
		}
	}
}

func TestEventsDisposeRemovesListenersEvenOnDelegateFailure(t *testing.T) {
	el := NewFakeElement()
	rec := NewRecorder("out")
	disposeErr := errors.New("dispose failed")
	rec.DisposeErr = disposeErr
	b := WithEvents(rec, el)

	if _, err := RenderString(b); err != nil {
		t.Fatal(err)
	}
	if err := b.Dispose(context.Background()); !errors.Is(err, disposeErr) {
		t.Fatalf("Dispose() error = %v, want %v", err, disposeErr)
	}
	if got := b.Bindings(); got != 0 {
		t.Errorf("Bindings() = %d, want 0 even when delegate fails", got)
	}
}

func TestEventsFailedRenderBindsNothing(t *testing.T) {
	el := NewFakeElement()
	rec := NewRecorder("out")
	rec.RenderErr = errors.New("boom")
	b := WithEvents(rec, el)

	if _, err := RenderString(b); err == nil {
		t.Fatal("Render() error = nil, want failure")
	}
	if got := b.Bindings(); got != 0 {
		t.Errorf("Bindings() = %d after failed render, want 0", got)
	}
}

func TestEventsAutoAttachDisabled(t *testing.T) {
	el := NewFakeElement()
	b := WithEvents(NewRecorder("out"), el).AutoAttach(false)

	if _, err := RenderString(b); err != nil {
		t.Fatal(err)
	}
	if got := b.Bindings(); got != 0 {
		t.Errorf("Bindings() = %d with auto-attach off, want 0", got)
	}

	b.Attach(el, "click")
	if got := el.ListenerCount("click"); got != 1 {
		t.Errorf("ListenerCount(click) = %d after manual Attach, want 1", got)
	}
	b.Detach(el, "click")
	if got := el.ListenerCount("click"); got != 0 {
		t.Errorf("ListenerCount(click) = %d after Detach, want 0", got)
	}
}

func TestEventsNilElementPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("WithEvents(c, nil) did not panic")
		}
	}()
	WithEvents(NewRecorder("out"), nil)
}
