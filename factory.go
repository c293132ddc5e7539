package decor

import (
	"time"

	"go.uber.org/zap"
)

// Decorator constructs a decorated component from an inner component.
// Named constructors below build them; Compose folds them over a base.
type Decorator func(Component) Component

// Compose folds an ordered sequence of decorators over a base component,
// producing a single nested chain. The last decorator applied is outermost:
//
//	c := decor.Compose(inner,
//	    decor.Caching(time.Minute, 50),
//	    decor.Logging(logger),
//	)
//	// logging wraps caching wraps inner
func Compose(base Component, decorators ...Decorator) Component {
	c := base
	for _, d := range decorators {
		c = d(c)
	}
	return c
}

// Validation returns a decorator adding rule-based validation.
func Validation(rules *RuleSet) Decorator {
	return func(inner Component) Component {
		return WithValidation(inner, rules)
	}
}

// Logging returns a decorator emitting logs around render and dispose.
func Logging(log *zap.Logger) Decorator {
	return func(inner Component) Component {
		return WithLogging(inner, log)
	}
}

// Caching returns a decorator memoizing render output with the given TTL
// and capacity bound.
func Caching(ttl time.Duration, maxSize int) Decorator {
	return func(inner Component) Component {
		return WithCaching(inner).TTL(ttl).MaxSize(maxSize)
	}
}

// Performance returns a decorator accumulating render metrics.
func Performance() Decorator {
	return func(inner Component) Component {
		return WithPerformance(inner)
	}
}

// Events returns a decorator managing listener lifecycle on el.
func Events(el Element) Decorator {
	return func(inner Component) Component {
		return WithEvents(inner, el)
	}
}
