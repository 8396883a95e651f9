package discord

import (
	"context"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/keshon/commandkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingCommand struct {
	runs int
}

func (c *countingCommand) Name() string { return "counting" }

func (c *countingCommand) Description() string { return "counts runs" }

func (c *countingCommand) Params() []commandkit.Param { return nil }

func (c *countingCommand) Run(context.Context, *commandkit.Invocation) error {
	c.runs++
	return nil
}

func invocationFor(userID string) *commandkit.Invocation {
	return &commandkit.Invocation{
		Data: &Context{
			Event: &discordgo.MessageCreate{
				Message: &discordgo.Message{Author: &discordgo.User{ID: userID}},
			},
		},
	}
}

func TestWithUserRateLimitDropsBurstOverflow(t *testing.T) {
	base := &countingCommand{}
	cmd := WithUserRateLimit(1, 2)(base)

	for range 5 {
		require.NoError(t, cmd.Run(context.Background(), invocationFor("123")))
	}
	assert.Equal(t, 2, base.runs, "only the burst allowance should get through")
}

func TestWithUserRateLimitIsPerUser(t *testing.T) {
	base := &countingCommand{}
	cmd := WithUserRateLimit(1, 1)(base)

	require.NoError(t, cmd.Run(context.Background(), invocationFor("1")))
	require.NoError(t, cmd.Run(context.Background(), invocationFor("2")))
	assert.Equal(t, 2, base.runs)
}

func TestWithUserRateLimitPassesThroughWithoutContext(t *testing.T) {
	base := &countingCommand{}
	cmd := WithUserRateLimit(1, 1)(base)

	require.NoError(t, cmd.Run(context.Background(), &commandkit.Invocation{}))
	assert.Equal(t, 1, base.runs)
}
