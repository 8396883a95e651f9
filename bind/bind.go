// Package bind matches argument tokens against a command's parameter
// signature, converting each token to its declared type and applying
// optional-default and trailing catch-all rules. Arity is validated before
// any conversion runs, so a wrong-shaped invocation never triggers converter
// side effects.
package bind

import (
	"context"
	"reflect"

	"github.com/keshon/commandkit"
	"github.com/keshon/commandkit/convert"
)

// Bind converts tokens against specs using reg and returns the bound value
// sequence: index 0 is inv, index i+1 the value for specs[i]. A catch-all
// slot holds a slice of the parameter type. Binding aborts on the first
// failure; there is no partial result. Optional parameters are the only
// recovery point: a missing or unconvertible token for an optional parameter
// silently yields its default. Catch-all elements never fall back to a
// default — every remaining token must convert.
func Bind(ctx context.Context, reg *convert.Registry, inv *commandkit.Invocation, specs []commandkit.Param, tokens []string) ([]any, error) {
	if err := validate(specs, tokens); err != nil {
		return nil, err
	}

	out := make([]any, len(specs)+1)
	out[0] = inv

	bound := 0
	for i, p := range specs {
		if len(tokens) <= i {
			break
		}
		if p.CatchAll {
			rest, err := bindCatchAll(ctx, reg, inv, p, tokens[i:])
			if err != nil {
				return nil, err
			}
			out[i+1] = rest
			bound = len(specs)
			break
		}
		v, err := reg.Convert(ctx, inv, tokens[i], p.Type, p.Optional, p.Default)
		if err != nil {
			return nil, err
		}
		out[i+1] = v
		bound = i + 1
	}

	// Fill the slots no token reached.
	for i := bound; i < len(specs); i++ {
		p := specs[i]
		switch {
		case p.CatchAll:
			out[i+1] = reflect.MakeSlice(reflect.SliceOf(p.Type), 0, 0).Interface()
		case p.Optional:
			out[i+1] = p.Default
		}
	}
	return out, nil
}

// bindCatchAll converts every remaining token as required, preserving token
// order in the resulting slice.
func bindCatchAll(ctx context.Context, reg *convert.Registry, inv *commandkit.Invocation, p commandkit.Param, tokens []string) (any, error) {
	rest := reflect.MakeSlice(reflect.SliceOf(p.Type), 0, len(tokens))
	for _, token := range tokens {
		v, err := reg.Convert(ctx, inv, token, p.Type, false, nil)
		if err != nil {
			return nil, err
		}
		rest = reflect.Append(rest, reflect.ValueOf(v))
	}
	return rest.Interface(), nil
}

// validate checks signature shape and arity before any conversion.
func validate(specs []commandkit.Param, tokens []string) error {
	required := 0
	for i, p := range specs {
		if p.CatchAll && i != len(specs)-1 {
			return &SignatureError{Param: p.Name, Reason: "catch-all parameter must be last"}
		}
		if !p.Optional && !p.CatchAll {
			required++
		}
	}
	if len(tokens) < required {
		return &ArityError{Expected: required, Got: len(tokens)}
	}
	if len(tokens) > len(specs) && (len(specs) == 0 || !specs[len(specs)-1].CatchAll) {
		return &ArityError{Expected: len(specs), Got: len(tokens), TooMany: true}
	}
	return nil
}
