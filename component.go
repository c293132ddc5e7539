package decor

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
)

// Component is the capability set every renderable unit must satisfy.
//
// Render writes the component's visual representation to w. Dispose releases
// any resources the component holds; it is called at most once by
// well-behaved owners, but implementations should tolerate repeats.
//
// Decorators hold a reference to the component they wrap but do not own its
// lifecycle beyond forwarding disposal. Every decorator in this package
// satisfies Component itself, so decorators stack arbitrarily.
type Component interface {
	Render(ctx context.Context, w io.Writer) error
	Dispose(ctx context.Context) error
}

// funcComponent adapts plain functions to the Component capability set.
type funcComponent struct {
	render  func(ctx context.Context, w io.Writer) error
	dispose func(ctx context.Context) error
}

// Func builds a Component from a render function with a no-op Dispose.
//
// Use this for the common case of stateless renderables that hold nothing
// worth releasing:
//
//	hello := decor.Func(func(ctx context.Context, w io.Writer) error {
//	    _, err := io.WriteString(w, "<p>hello</p>")
//	    return err
//	})
func Func(render func(ctx context.Context, w io.Writer) error) Component {
	return &funcComponent{render: render}
}

// FuncWithDispose builds a Component from separate render and dispose
// functions. Either may be nil, in which case the operation is a no-op.
func FuncWithDispose(render func(ctx context.Context, w io.Writer) error, dispose func(ctx context.Context) error) Component {
	return &funcComponent{render: render, dispose: dispose}
}

func (f *funcComponent) Render(ctx context.Context, w io.Writer) error {
	if f.render == nil {
		return nil
	}
	return f.render(ctx, w)
}

func (f *funcComponent) Dispose(ctx context.Context) error {
	if f.dispose == nil {
		return nil
	}
	return f.dispose(ctx)
}

// componentHash generates a deterministic identity based on a name and source
// location. This gives each construction site a stable identifier without
// manual coordination; the caching decorator uses it as the default key
// namespace.
func componentHash(name string, skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	var input string
	if ok {
		// Use base filename only for portability across environments
		input = fmt.Sprintf("%s:%d:%s", filepath.Base(file), line, name)
	} else {
		input = name
	}
	h := sha256.Sum256([]byte(input))
	return name + "-" + hex.EncodeToString(h[:4]) // 8 hex chars
}
