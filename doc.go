// Package decor provides a component decoration layer for renderable UI
// components. Decorators wrap a component and selectively intercept its
// operations, adding cross-cutting behavior - validation, logging, caching,
// performance measurement, event listener management - without modifying
// the wrapped component.
//
// # Core Concepts
//
// A component is anything satisfying the Component capability set:
//
//	type Component interface {
//	    Render(ctx context.Context, w io.Writer) error
//	    Dispose(ctx context.Context) error
//	}
//
// Render writes the component's visual representation to w. Dispose releases
// any resources the component holds. Every decorator itself satisfies
// Component, so decorators stack arbitrarily (decorator-of-decorator).
//
// Decorators hold exactly one inner component, set at construction. There is
// no dynamic fallthrough - interception is always an explicit method on the
// decorator, and everything else forwards through the embedded Base.
//
// # Decorators
//
// Each decorator is constructed with a With* function and configured through
// fluent option methods:
//
//	c := decor.WithCaching(inner).TTL(30 * time.Second).MaxSize(100)
//	c := decor.WithLogging(inner, logger).Level(zapcore.DebugLevel)
//	c := decor.WithEvents(inner, element).Events("click")
//
// The validation decorator adds a Validate operation for form-style data,
// separate from the render path:
//
//	rules := decor.NewRuleSet().
//	    Field("name", decor.Required(), decor.MinLength(2)).
//	    Field("email", decor.Required(), decor.Email())
//	v := decor.WithValidation(form, rules)
//	if !v.Validate(data) {
//	    for _, e := range v.Errors() { ... }
//	}
//
// # Composition
//
// Compose folds decorators over a base component. The last decorator applied
// is the outermost:
//
//	c := decor.Compose(inner,
//	    decor.Caching(time.Minute, 50),
//	    decor.Performance(),
//	    decor.Logging(logger),
//	)
//
// Here logging wraps performance wraps caching wraps the component, so a
// cache hit is still timed and logged.
//
// # Caching
//
// The caching decorator memoizes render output with time-based expiry and a
// FIFO capacity bound. Keys derive from stable inputs only - component
// identity plus render props via PropsKey - never from the clock; the TTL is
// the sole time-dependent factor. Expiry is lazy: a stale entry is replaced
// on the next access or evicted when capacity demands.
//
// # Events
//
// The event decorator binds DOM-style listeners to an Element after each
// render and guarantees every binding is removed on Dispose. Attaching twice
// for the same (element, event) pair detaches the prior binding first, so
// re-renders never leak listeners.
//
// # Error Semantics
//
// Decorators propagate errors from the wrapped component's Render and
// Dispose unchanged. Side effects around a failing call may be partially
// recorded: a logging decorator emits "starting" before a delegated call
// that then fails, and never emits "complete". Validation failures are
// reported through Errors(), not returned as Go errors.
//
// # Testing
//
// The package exports a small harness: RenderString renders to a string,
// Recorder is a call-counting component with injectable failures, and
// FakeElement is an in-memory Element that can simulate DOM events.
//
// # Design Rationale
//
// The system favors explicitness over magic:
//   - Explicit capability interface (no dynamic property fallthrough)
//   - Explicit construction (no init() side effects, no global registry)
//   - Explicit configuration (fluent options, not ambient state)
//   - Explicit lifecycle (every listener bound by render dies at dispose)
package decor
