package bind

import (
	"context"
	"testing"

	"github.com/keshon/commandkit"
	"github.com/keshon/commandkit/convert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindRequiredAndOptional(t *testing.T) {
	inv := &commandkit.Invocation{}
	specs := []commandkit.Param{
		commandkit.Required("first", commandkit.TypeOf[int]()),
		commandkit.Optional("second", commandkit.TypeOf[int](), 5),
	}

	out, err := Bind(context.Background(), convert.Default, inv, specs, []string{"3"})
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Same(t, inv, out[0].(*commandkit.Invocation))
	assert.Equal(t, 3, out[1])
	assert.Equal(t, 5, out[2])
}

func TestBindTooFewArguments(t *testing.T) {
	specs := []commandkit.Param{
		commandkit.Required("first", commandkit.TypeOf[int]()),
	}

	_, err := Bind(context.Background(), convert.Default, nil, specs, nil)
	var arity *ArityError
	require.ErrorAs(t, err, &arity)
	assert.False(t, arity.TooMany)
	assert.Equal(t, 1, arity.Expected)
	assert.Equal(t, 0, arity.Got)
}

func TestBindTooManyArguments(t *testing.T) {
	_, err := Bind(context.Background(), convert.Default, nil, nil, []string{"1"})
	var arity *ArityError
	require.ErrorAs(t, err, &arity)
	assert.True(t, arity.TooMany)
	assert.Equal(t, 0, arity.Expected)
	assert.Equal(t, 1, arity.Got)

	specs := []commandkit.Param{
		commandkit.Required("only", commandkit.TypeOf[string]()),
	}
	_, err = Bind(context.Background(), convert.Default, nil, specs, []string{"a", "b"})
	require.ErrorAs(t, err, &arity)
	assert.True(t, arity.TooMany)
}

func TestBindCatchAll(t *testing.T) {
	inv := &commandkit.Invocation{}
	specs := []commandkit.Param{
		commandkit.CatchAll("rest", commandkit.TypeOf[int]()),
	}

	out, err := Bind(context.Background(), convert.Default, inv, specs, []string{"2", "1", "3"})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 3}, out[1], "token order must be preserved")
}

func TestBindCatchAllElementFailureIsHard(t *testing.T) {
	specs := []commandkit.Param{
		commandkit.CatchAll("rest", commandkit.TypeOf[int]()),
	}

	_, err := Bind(context.Background(), convert.Default, nil, specs, []string{"1", "2", "x"})
	var convErr *convert.ConvertError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, "x", convErr.Token)
}

func TestBindUnreachedCatchAllIsEmptySlice(t *testing.T) {
	inv := &commandkit.Invocation{}
	specs := []commandkit.Param{
		commandkit.Required("first", commandkit.TypeOf[string]()),
		commandkit.CatchAll("rest", commandkit.TypeOf[string]()),
	}

	out, err := Bind(context.Background(), convert.Default, inv, specs, []string{"only"})
	require.NoError(t, err)
	assert.Equal(t, "only", out[1])
	assert.Equal(t, []string{}, out[2])
}

func TestBindCatchAllAbsorbsSurplus(t *testing.T) {
	specs := []commandkit.Param{
		commandkit.Required("head", commandkit.TypeOf[string]()),
		commandkit.CatchAll("tail", commandkit.TypeOf[string]()),
	}

	out, err := Bind(context.Background(), convert.Default, nil, specs, []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, "a", out[1])
	assert.Equal(t, []string{"b", "c"}, out[2])
}

func TestBindOptionalConversionFailureUsesDefault(t *testing.T) {
	specs := []commandkit.Param{
		commandkit.Optional("count", commandkit.TypeOf[int](), 7),
	}

	out, err := Bind(context.Background(), convert.Default, nil, specs, []string{"not-a-number"})
	require.NoError(t, err)
	assert.Equal(t, 7, out[1])
}

func TestBindRequiredConversionFailure(t *testing.T) {
	specs := []commandkit.Param{
		commandkit.Required("count", commandkit.TypeOf[int]()),
	}

	_, err := Bind(context.Background(), convert.Default, nil, specs, []string{"nope"})
	var convErr *convert.ConvertError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, "nope", convErr.Token)
	assert.Equal(t, "whole number", convErr.Label)
}

func TestBindRequiredCountIgnoresOptionalAndCatchAll(t *testing.T) {
	specs := []commandkit.Param{
		commandkit.Required("a", commandkit.TypeOf[string]()),
		commandkit.Optional("b", commandkit.TypeOf[string](), "fallback"),
		commandkit.CatchAll("c", commandkit.TypeOf[string]()),
	}

	out, err := Bind(context.Background(), convert.Default, nil, specs, []string{"x"})
	require.NoError(t, err)
	assert.Equal(t, "x", out[1])
	assert.Equal(t, "fallback", out[2])
	assert.Equal(t, []string{}, out[3])
}

func TestBindRejectsNonFinalCatchAll(t *testing.T) {
	specs := []commandkit.Param{
		commandkit.CatchAll("rest", commandkit.TypeOf[string]()),
		commandkit.Required("late", commandkit.TypeOf[string]()),
	}

	_, err := Bind(context.Background(), convert.Default, nil, specs, []string{"a", "b"})
	var sigErr *SignatureError
	require.ErrorAs(t, err, &sigErr)
}

func TestBindMissingConverterIsConfigError(t *testing.T) {
	type opaque struct{}
	specs := []commandkit.Param{
		commandkit.Required("weird", commandkit.TypeOf[opaque]()),
	}

	_, err := Bind(context.Background(), convert.Default, nil, specs, []string{"x"})
	var cfgErr *convert.ConfigError
	require.ErrorAs(t, err, &cfgErr)
}
