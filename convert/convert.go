// Package convert parses argument tokens into typed values through a registry
// of per-type converters. The registry is keyed by reflect.Type so binding can
// dispatch on a type known only at run time, while the generic helpers give
// call sites with a statically known type the same behavior through the same
// underlying lookup. The package-level Default registry is seeded with
// converters for common primitive types; adapters add entity converters on
// top (see the discord subpackage).
package convert

import (
	"context"
	"fmt"
	"reflect"

	"github.com/keshon/commandkit"
)

// Converter attempts to parse a token into a value of the type it is
// registered under. The returned bool signals whether the token was
// understood; a false return carries no error detail, the caller decides
// whether that is fatal. Converters may read inv.Data for ambient state
// (e.g. a session for resolving entity mentions) and may honor a deadline
// carried by ctx; neither is required.
type Converter interface {
	Convert(ctx context.Context, inv *commandkit.Invocation, token string) (any, bool)
}

// ConverterFunc adapts a function to the Converter interface.
type ConverterFunc func(ctx context.Context, inv *commandkit.Invocation, token string) (any, bool)

// Convert calls f.
func (f ConverterFunc) Convert(ctx context.Context, inv *commandkit.Invocation, token string) (any, bool) {
	return f(ctx, inv, token)
}

// ConfigError reports a converter setup defect: a required type has no
// converter registered, or a registered converter produced a value of the
// wrong type. It indicates a bug in registration, not bad user input.
type ConfigError struct {
	Type   reflect.Type
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("converter for %s: %s", e.Type, e.Reason)
}

// ConvertError reports that a token could not be parsed as its target type.
// Label is the type's friendly name, falling back to the Go type string.
type ConvertError struct {
	Token string
	Type  reflect.Type
	Label string
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("cannot read %q as %s", e.Token, e.Label)
}
