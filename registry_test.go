package commandkit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCommand struct {
	name    string
	aliases []string
	calls   *[]string
}

func (c *fakeCommand) Name() string { return c.name }

func (c *fakeCommand) Description() string { return "fake" }

func (c *fakeCommand) Aliases() []string { return c.aliases }

func (c *fakeCommand) Params() []Param { return nil }

func (c *fakeCommand) Run(context.Context, *Invocation) error {
	if c.calls != nil {
		*c.calls = append(*c.calls, c.name)
	}
	return nil
}

func TestRegistryLookupByNameAndAlias(t *testing.T) {
	r := NewRegistry()
	r.Register(&fakeCommand{name: "echo", aliases: []string{"say"}})

	require.NotNil(t, r.Get("echo"))
	require.NotNil(t, r.Get("say"))
	assert.Nil(t, r.Get("missing"))
	assert.Equal(t, "echo", r.Get("say").Name())
}

func TestRegistryReplacesOnReRegister(t *testing.T) {
	r := NewRegistry()
	first := &fakeCommand{name: "ping"}
	second := &fakeCommand{name: "ping"}
	r.Register(first)
	r.Register(second)

	assert.Same(t, Command(second), r.Get("ping"))
}

func TestRegistryAllIsSortedAndUnique(t *testing.T) {
	r := NewRegistry()
	r.Register(&fakeCommand{name: "roll", aliases: []string{"dice", "d"}})
	r.Register(&fakeCommand{name: "echo"})

	all := r.All()
	require.Len(t, all, 2)
	assert.Equal(t, "echo", all[0].Name())
	assert.Equal(t, "roll", all[1].Name())
}

func TestApplyMiddlewareOrder(t *testing.T) {
	var order []string
	mw := func(tag string) Middleware {
		return func(c Command) Command {
			return Wrap(c, func(ctx context.Context, inv *Invocation) error {
				order = append(order, tag)
				return c.Run(ctx, inv)
			})
		}
	}

	cmd := Apply(&fakeCommand{name: "x", calls: &order}, mw("inner"), mw("outer"))
	require.NoError(t, cmd.Run(context.Background(), &Invocation{}))
	assert.Equal(t, []string{"outer", "inner", "x"}, order)
}

func TestRootUnwrapsNestedWrappers(t *testing.T) {
	base := &fakeCommand{name: "base"}
	wrapped := Wrap(Wrap(base, nil), nil)

	assert.Same(t, Command(base), Root(wrapped))
	assert.Equal(t, "base", wrapped.Name())
}

func TestRegistryAppliesMiddlewareAtRegistration(t *testing.T) {
	var order []string
	r := NewRegistry()
	r.Register(&fakeCommand{name: "guarded", calls: &order}, func(c Command) Command {
		return Wrap(c, func(ctx context.Context, inv *Invocation) error {
			order = append(order, "mw")
			return c.Run(ctx, inv)
		})
	})

	require.NoError(t, r.Get("guarded").Run(context.Background(), &Invocation{}))
	assert.Equal(t, []string{"mw", "guarded"}, order)
}
