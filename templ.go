package decor

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// FromTempl adapts a templ component to the decorator capability set, with a
// no-op Dispose. Use this to put templ templates behind caching, logging, or
// performance decorators:
//
//	cached := decor.WithCaching(decor.FromTempl(sidebar(props))).TTL(time.Minute)
func FromTempl(tc templ.Component) Component {
	return Func(func(ctx context.Context, w io.Writer) error {
		return tc.Render(ctx, w)
	})
}

// ToTempl exposes a decorated component as a templ.Component so it drops
// into templ templates with the @ render syntax.
//
// Only Render crosses the adapter - templ has no disposal phase, so the
// owner remains responsible for calling Dispose.
func ToTempl(c Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return c.Render(ctx, w)
	})
}
