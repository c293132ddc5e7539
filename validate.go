package decor

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"
)

// emailPattern accepts a single @ with a dotted domain. Intentionally loose -
// real deliverability can only be established by sending mail.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldError describes one failing rule for one field.
type FieldError struct {
	Field   string // field name the rule was configured for
	Rule    string // rule name, e.g. "required", "minLength"
	Message string // human-readable message for display
}

// Error implements the error interface so collected failures can be passed
// to error-aware plumbing when callers want that.
func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Rule is a single field-level check. Rules are built with the typed
// constructors (Required, MinLength, Email, ...) or parsed from string
// descriptors via ParseRule.
//
// A rule's check receives the field value and whether the field was present
// in the submitted data; it returns an empty string on pass or a
// human-readable message on failure.
type Rule struct {
	name  string
	check func(value string, present bool) string
}

// Name returns the rule's name as it appears in FieldError.Rule.
func (r Rule) Name() string {
	return r.name
}

// Required fails when the field is absent or empty after trimming whitespace.
func Required() Rule {
	return Rule{name: "required", check: func(value string, present bool) string {
		if !present || strings.TrimSpace(value) == "" {
			return "this field is required"
		}
		return ""
	}}
}

// MinLength fails when a present value is shorter than n characters.
// Absent or empty values pass - combine with Required to reject those.
func MinLength(n int) Rule {
	return Rule{name: "minLength", check: func(value string, present bool) string {
		if !present || value == "" {
			return ""
		}
		if utf8.RuneCountInString(value) < n {
			return fmt.Sprintf("must be at least %d characters", n)
		}
		return ""
	}}
}

// MaxLength fails when a present value is longer than n characters.
func MaxLength(n int) Rule {
	return Rule{name: "maxLength", check: func(value string, present bool) string {
		if !present || value == "" {
			return ""
		}
		if utf8.RuneCountInString(value) > n {
			return fmt.Sprintf("must be at most %d characters", n)
		}
		return ""
	}}
}

// Email fails when a present value does not look like an email address
// (single @, dotted domain).
func Email() Rule {
	return Rule{name: "email", check: func(value string, present bool) string {
		if !present || value == "" {
			return ""
		}
		if !emailPattern.MatchString(value) {
			return "must be a valid email address"
		}
		return ""
	}}
}

// URL fails when a present value cannot be parsed as an absolute URL.
// Parse failures are reported as validation failures, never propagated.
func URL() Rule {
	return Rule{name: "url", check: func(value string, present bool) string {
		if !present || value == "" {
			return ""
		}
		u, err := url.Parse(value)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return "must be a valid URL"
		}
		return ""
	}}
}

// Custom builds a rule from a caller-supplied predicate. The message is used
// verbatim on failure; when empty, a generic fallback is reported. The
// predicate receives the raw value (empty string when the field is absent).
func Custom(name string, pass func(value string) bool, message string) Rule {
	if name == "" {
		name = "custom"
	}
	if message == "" {
		message = "invalid value"
	}
	return Rule{name: name, check: func(value string, present bool) string {
		if !pass(value) {
			return message
		}
		return ""
	}}
}

// ParseRule builds a rule from a string descriptor, for rule sets loaded
// from dynamic configuration. Recognized kinds: required, minLength,
// maxLength, email, url. Length rules take their bound as arg.
//
// Unknown kinds return ErrUnknownRule and malformed arguments return
// ErrInvalidRule; misconfiguration is surfaced, never silently skipped.
func ParseRule(kind, arg string) (Rule, error) {
	switch kind {
	case "required":
		return Required(), nil
	case "minLength":
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 {
			return Rule{}, fmt.Errorf("%w: minLength bound %q", ErrInvalidRule, arg)
		}
		return MinLength(n), nil
	case "maxLength":
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 {
			return Rule{}, fmt.Errorf("%w: maxLength bound %q", ErrInvalidRule, arg)
		}
		return MaxLength(n), nil
	case "email":
		return Email(), nil
	case "url":
		return URL(), nil
	case "custom":
		return Rule{}, fmt.Errorf("%w: custom rules must be built with Custom", ErrInvalidRule)
	default:
		return Rule{}, fmt.Errorf("%w: %q", ErrUnknownRule, kind)
	}
}

// RuleSet maps field names to ordered rule sequences. Build it fluently,
// then treat it as read-only - a RuleSet may be shared across validators.
//
//	rules := decor.NewRuleSet().
//	    Field("name", decor.Required(), decor.MinLength(2)).
//	    Field("email", decor.Required(), decor.Email())
type RuleSet struct {
	order  []string
	fields map[string][]Rule
}

// NewRuleSet creates an empty rule set.
func NewRuleSet() *RuleSet {
	return &RuleSet{fields: make(map[string][]Rule)}
}

// Field appends rules for a field. Repeated calls for the same field extend
// its rule sequence in order. Fields validate in first-configured order.
func (rs *RuleSet) Field(name string, rules ...Rule) *RuleSet {
	if _, ok := rs.fields[name]; !ok {
		rs.order = append(rs.order, name)
	}
	rs.fields[name] = append(rs.fields[name], rules...)
	return rs
}

// Validator intercepts data submission with field-level rule checks. Render
// and Dispose pass through untouched - validation is a separate operation on
// the decorated component.
type Validator struct {
	*Base
	rules *RuleSet

	mu     sync.Mutex
	errors []FieldError
}

// WithValidation wraps a component with rule-based validation.
// A nil rules set is treated as empty (everything validates).
func WithValidation(inner Component, rules *RuleSet) *Validator {
	if rules == nil {
		rules = NewRuleSet()
	}
	return &Validator{Base: NewBase(inner), rules: rules}
}

// Validate clears previously collected errors, applies every configured
// field's rules in order against data, and collects one message per failing
// rule. Returns true iff no errors were collected. It never panics or
// returns a Go error - failures are reported, not thrown.
func (v *Validator) Validate(data map[string]string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.errors = v.errors[:0]
	for _, field := range v.rules.order {
		value, present := data[field]
		for _, rule := range v.rules.fields[field] {
			if msg := rule.check(value, present); msg != "" {
				v.errors = append(v.errors, FieldError{Field: field, Rule: rule.name, Message: msg})
			}
		}
	}
	return len(v.errors) == 0
}

// Errors returns a copy of the errors collected by the last Validate call.
func (v *Validator) Errors() []FieldError {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([]FieldError, len(v.errors))
	copy(out, v.errors)
	return out
}

// ClearErrors resets the collected error list.
func (v *Validator) ClearErrors() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.errors = v.errors[:0]
}
