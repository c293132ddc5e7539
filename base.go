package decor

import (
	"context"
	"io"
)

// Base is the foundation every decorator embeds. It holds exactly one inner
// component and forwards Render and Dispose to it unchanged.
//
// Decorators embed *Base and override only the operations they intercept;
// everything else delegates through the embedded methods. This keeps the
// wrapping contract explicit - there is no dynamic dispatch or property
// fallthrough, just the Component capability set.
//
// Base is also usable on its own as a transparent pass-through:
//
//	d := decor.NewBase(c)
//	d.Render(ctx, w) // identical to c.Render(ctx, w)
type Base struct {
	inner Component
}

// NewBase wraps a component with transparent delegation.
// Panics if inner is nil - a decorator without a component is a
// programming error, not a runtime condition.
func NewBase(inner Component) *Base {
	if inner == nil {
		panic("decor: nil component")
	}
	return &Base{inner: inner}
}

// Render forwards to the wrapped component unchanged.
func (b *Base) Render(ctx context.Context, w io.Writer) error {
	return b.inner.Render(ctx, w)
}

// Dispose forwards to the wrapped component unchanged.
func (b *Base) Dispose(ctx context.Context) error {
	return b.inner.Dispose(ctx)
}

// Unwrap returns the wrapped component, enabling inspection of a decorator
// chain in the manner of errors.Unwrap:
//
//	for c := decorated; c != nil; {
//	    u, ok := c.(interface{ Unwrap() decor.Component })
//	    if !ok {
//	        break
//	    }
//	    c = u.Unwrap()
//	}
func (b *Base) Unwrap() Component {
	return b.inner
}
