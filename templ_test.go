package decor

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/a-h/templ"
)

func TestFromTempl(t *testing.T) {
	tc := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<nav>menu</nav>")
		return err
	})

	c := FromTempl(tc)
	out, err := RenderString(c)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if out != "<nav>menu</nav>" {
		t.Errorf("Render() output = %q", out)
	}
	if err := c.Dispose(context.Background()); err != nil {
		t.Errorf("Dispose() error = %v, want nil no-op", err)
	}
}

func TestToTempl(t *testing.T) {
	c := ToTempl(NewRecorder("<footer/>"))

	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if buf.String() != "<footer/>" {
		t.Errorf("Render() output = %q", buf.String())
	}
}

func TestTemplBehindCaching(t *testing.T) {
	calls := 0
	tc := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		calls++
		_, err := io.WriteString(w, "<aside/>")
		return err
	})

	cached := WithCaching(FromTempl(tc)).TTL(time.Hour)
	for i := 0; i < 3; i++ {
		out, err := RenderString(cached)
		if err != nil {
			t.Fatal(err)
		}
		if out != "<aside/>" {
			t.Errorf("Render() #%d output = %q", i, out)
		}
	}
	if calls != 1 {
		t.Errorf("templ component rendered %d times, want 1", calls)
	}
}
