package convert

import (
	"context"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/keshon/commandkit"
)

// Built-in converters for primitive types, installed into Default at startup.
// Adapters layer entity converters on top of these.
func init() {
	RegisterFunc(Default, func(_ context.Context, _ *commandkit.Invocation, token string) (string, bool) {
		return token, true
	})
	RegisterFunc(Default, func(_ context.Context, _ *commandkit.Invocation, token string) (bool, bool) {
		v, err := strconv.ParseBool(strings.ToLower(token))
		return v, err == nil
	})
	RegisterFunc(Default, func(_ context.Context, _ *commandkit.Invocation, token string) (int, bool) {
		v, err := strconv.Atoi(token)
		return v, err == nil
	})
	RegisterFunc(Default, func(_ context.Context, _ *commandkit.Invocation, token string) (int64, bool) {
		v, err := strconv.ParseInt(token, 10, 64)
		return v, err == nil
	})
	RegisterFunc(Default, func(_ context.Context, _ *commandkit.Invocation, token string) (uint, bool) {
		v, err := strconv.ParseUint(token, 10, strconv.IntSize)
		return uint(v), err == nil
	})
	RegisterFunc(Default, func(_ context.Context, _ *commandkit.Invocation, token string) (uint64, bool) {
		v, err := strconv.ParseUint(token, 10, 64)
		return v, err == nil
	})
	RegisterFunc(Default, func(_ context.Context, _ *commandkit.Invocation, token string) (float32, bool) {
		v, err := strconv.ParseFloat(token, 32)
		return float32(v), err == nil
	})
	RegisterFunc(Default, func(_ context.Context, _ *commandkit.Invocation, token string) (float64, bool) {
		v, err := strconv.ParseFloat(token, 64)
		return v, err == nil
	})
	RegisterFunc(Default, func(_ context.Context, _ *commandkit.Invocation, token string) (time.Duration, bool) {
		v, err := time.ParseDuration(token)
		return v, err == nil
	})

	Default.SetName(reflect.TypeFor[string](), "text")
	Default.SetName(reflect.TypeFor[bool](), "true/false")
	Default.SetName(reflect.TypeFor[int](), "whole number")
	Default.SetName(reflect.TypeFor[int64](), "whole number")
	Default.SetName(reflect.TypeFor[uint](), "positive whole number")
	Default.SetName(reflect.TypeFor[uint64](), "positive whole number")
	Default.SetName(reflect.TypeFor[float32](), "number")
	Default.SetName(reflect.TypeFor[float64](), "number")
	Default.SetName(reflect.TypeFor[time.Duration](), "duration")
}
