// Package service holds the cross-cutting conventions shared by all
// application services: the domain error type and the error-logging helper
// that services are wrapped with before they reach the transport layer.
package service

// Context is caller-supplied structured data attached to a domain error.
// Values must be JSON-serializable; that is the caller's responsibility.
type Context map[string]any

// Kind identifies a domain error variant: a stable name plus the static
// description used as the default message. Declare variants as package-level
// values (see internal/domain/errors.go) and compare with errors.Is.
type Kind struct {
	name        string
	description string
}

// NewKind declares an error variant.
func NewKind(name, description string) Kind {
	return Kind{name: name, description: description}
}

func (k Kind) Name() string        { return k.name }
func (k Kind) Description() string { return k.description }

// Error implements error so a Kind can be used as an errors.Is target.
func (k Kind) Error() string { return k.description }

// With raises the variant with its static description and the given context.
func (k Kind) With(ctx Context) *Error {
	return &Error{kind: k, message: k.description, context: cloneContext(ctx)}
}

// WithMessage raises the variant with an explicit message override.
// An empty msg falls back to the static description.
func (k Kind) WithMessage(msg string, ctx Context) *Error {
	if msg == "" {
		msg = k.description
	}
	return &Error{kind: k, message: msg, context: cloneContext(ctx)}
}

// Error is a domain error raised by application business logic, as opposed to
// infrastructure or transport failures. It is immutable after construction:
// the context is cloned on the way in and copied on the way out.
type Error struct {
	kind    Kind
	message string
	context Context
}

func (e *Error) Error() string { return e.message }

// Name returns the variant name, e.g. "ProductNotFound".
func (e *Error) Name() string { return e.kind.name }

// Message returns the resolved message: the construction-time override if one
// was given, else the variant's static description. Never empty.
func (e *Error) Message() string { return e.message }

// Context returns a copy of the context mapping. Never nil, even when empty.
func (e *Error) Context() Context { return cloneContext(e.context) }

// Is matches against the variant so errors.Is(err, domain.ErrOutOfStock) works.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.kind
}

func cloneContext(in Context) Context {
	out := make(Context, len(in))
	for k, v := range in {
		if m, ok := v.(map[string]any); ok {
			out[k] = map[string]any(cloneContext(m))
			continue
		}
		if m, ok := v.(Context); ok {
			out[k] = cloneContext(m)
			continue
		}
		out[k] = v
	}
	return out
}
