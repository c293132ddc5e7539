package decor_test

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/pthm/decor"
)

func ExampleCompose() {
	banner := decor.Func(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<h1>welcome</h1>")
		return err
	})

	c := decor.Compose(banner,
		decor.Caching(time.Minute, 10),
		decor.Performance(),
		decor.Logging(zap.NewNop()),
	)

	html, _ := decor.RenderString(c)
	fmt.Println(html)
	// Output: <h1>welcome</h1>
}

func ExampleWithValidation() {
	form := decor.Func(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<form>...</form>")
		return err
	})

	rules := decor.NewRuleSet().
		Field("name", decor.Required(), decor.MinLength(2)).
		Field("email", decor.Required(), decor.Email())

	v := decor.WithValidation(form, rules)
	if !v.Validate(map[string]string{"name": "A", "email": "not-an-email"}) {
		for _, e := range v.Errors() {
			fmt.Println(e)
		}
	}
	// Output:
	// name: must be at least 2 characters
	// email: must be a valid email address
}

func ExampleWithCaching() {
	renders := 0
	list := decor.Func(func(ctx context.Context, w io.Writer) error {
		renders++
		_, err := io.WriteString(w, "<ul>...</ul>")
		return err
	})

	c := decor.WithCaching(list).TTL(time.Minute).MaxSize(50)
	decor.RenderString(c)
	decor.RenderString(c)

	fmt.Println("renders:", renders)
	fmt.Println("hits:", c.Stats().Hits)
	// Output:
	// renders: 1
	// hits: 1
}

func ExampleWithEvents() {
	el := decor.NewFakeElement()
	button := decor.Func(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<button>go</button>")
		return err
	})

	b := decor.WithEvents(button, el).Events("click")
	decor.RenderString(b)

	el.Fire("click", nil)
	fmt.Println(el.Dispatched[len(el.Dispatched)-1].Type)

	b.Dispose(context.Background())
	fmt.Println("bindings:", b.Bindings())
	// Output:
	// decor:click
	// bindings: 0
}
