package commandkit

import "reflect"

// Param describes one formal parameter of a command. Parameters are positional;
// a command's signature is the ordered slice returned by Params.
type Param struct {
	// Name is used in diagnostics and help text, never for matching.
	Name string

	// Type is the target type a token must convert to.
	Type reflect.Type

	// Optional marks the parameter as skippable; Default is substituted when
	// no token is supplied or when conversion of the supplied token fails.
	Optional bool

	// Default is the value used for an optional parameter without a token.
	// Meaningful only when Optional is set.
	Default any

	// CatchAll marks the final parameter as absorbing every remaining token
	// into a slice of Type. At most one per command, and it must be last.
	CatchAll bool
}

// Required returns a mandatory positional parameter.
func Required(name string, t reflect.Type) Param {
	return Param{Name: name, Type: t}
}

// Optional returns a parameter that falls back to def when absent.
func Optional(name string, t reflect.Type, def any) Param {
	return Param{Name: name, Type: t, Optional: true, Default: def}
}

// CatchAll returns a trailing parameter that absorbs all remaining tokens
// as a []t.
func CatchAll(name string, t reflect.Type) Param {
	return Param{Name: name, Type: t, CatchAll: true}
}

// TypeOf is shorthand for reflect.TypeFor, for building signatures.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}
