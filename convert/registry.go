package convert

import (
	"context"
	"errors"
	"reflect"

	"github.com/keshon/commandkit"
)

// ErrNilConverter is returned by Register when given a nil converter.
var ErrNilConverter = errors.New("cannot register a nil converter")

// Default is the process-wide registry, seeded with the built-in primitive
// converters at init time.
var Default = NewRegistry()

// Registry maps target types to converters and friendly type names. It has
// no internal locking: registration belongs to the startup phase, and
// mutating a registry while a bind is in flight is the caller's bug.
type Registry struct {
	converters map[reflect.Type]Converter
	names      map[reflect.Type]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		converters: make(map[reflect.Type]Converter),
		names:      make(map[reflect.Type]string),
	}
}

// Register installs c as the converter for t, replacing any previous entry.
func (r *Registry) Register(t reflect.Type, c Converter) error {
	if c == nil {
		return ErrNilConverter
	}
	r.converters[t] = c
	return nil
}

// Unregister removes the converter for t; a no-op when none is registered.
func (r *Registry) Unregister(t reflect.Type) {
	delete(r.converters, t)
}

// Lookup returns the converter registered for t.
func (r *Registry) Lookup(t reflect.Type) (Converter, bool) {
	c, ok := r.converters[t]
	return c, ok
}

// SetName records a friendly label for t, used in conversion diagnostics.
func (r *Registry) SetName(t reflect.Type, label string) {
	r.names[t] = label
}

// Name returns the friendly label for t, falling back to the Go type string.
func (r *Registry) Name(t reflect.Type) string {
	if label, ok := r.names[t]; ok {
		return label
	}
	return t.String()
}

// Convert parses token into a value of type t. A missing converter, or a
// converter that yields a value not assignable to t, is a *ConfigError. A
// token the converter rejects yields def when optional is set, otherwise a
// *ConvertError. This is the single conversion path; the generic As helper
// routes through it.
func (r *Registry) Convert(ctx context.Context, inv *commandkit.Invocation, token string, t reflect.Type, optional bool, def any) (any, error) {
	c, ok := r.Lookup(t)
	if !ok {
		return nil, &ConfigError{Type: t, Reason: "no converter registered"}
	}
	v, ok := c.Convert(ctx, inv, token)
	if !ok {
		if optional {
			return def, nil
		}
		return nil, &ConvertError{Token: token, Type: t, Label: r.Name(t)}
	}
	if v == nil || !reflect.TypeOf(v).AssignableTo(t) {
		return nil, &ConfigError{Type: t, Reason: "converter produced a value of the wrong type"}
	}
	return v, nil
}

// RegisterFunc installs a typed conversion function for T in r.
func RegisterFunc[T any](r *Registry, fn func(ctx context.Context, inv *commandkit.Invocation, token string) (T, bool)) {
	r.Register(reflect.TypeFor[T](), ConverterFunc(func(ctx context.Context, inv *commandkit.Invocation, token string) (any, bool) {
		v, ok := fn(ctx, inv, token)
		if !ok {
			return nil, false
		}
		return v, true
	}))
}

// As parses token into a T using r, with the exact semantics of
// Registry.Convert for the type known at the call site.
func As[T any](ctx context.Context, r *Registry, inv *commandkit.Invocation, token string, optional bool, def T) (T, error) {
	v, err := r.Convert(ctx, inv, token, reflect.TypeFor[T](), optional, def)
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
