// Package command holds the example bot's commands. Each file registers its
// command from init(), so importing the package for side effects is enough
// to populate the default registry, the way cmd/examplebot does it.
package command

import (
	"context"
	"log"
	"time"

	"github.com/keshon/commandkit"
	"github.com/keshon/commandkit/discord"
	"github.com/keshon/commandkit/internal/storage"
	"golang.org/x/time/rate"
)

// command is a declarative commandkit.Command.
type command struct {
	name        string
	description string
	aliases     []string
	params      []commandkit.Param
	run         func(ctx context.Context, inv *commandkit.Invocation) error
}

func (c *command) Name() string { return c.name }

func (c *command) Description() string { return c.description }

func (c *command) Aliases() []string { return c.aliases }

func (c *command) Params() []commandkit.Param { return c.params }

func (c *command) Run(ctx context.Context, inv *commandkit.Invocation) error {
	return c.run(ctx, inv)
}

// register installs a command with the shared middleware chain.
func register(c commandkit.Command) {
	commandkit.DefaultRegistry.Register(c,
		withHistory(),
		discord.WithUserRateLimit(rate.Limit(1), 3),
	)
}

// messageContext unpacks the adapter payload the dispatcher attaches to
// every invocation.
func messageContext(inv *commandkit.Invocation) (*discord.Context, *storage.Storage) {
	c, ok := discord.FromInvocation(inv)
	if !ok {
		return nil, nil
	}
	store, _ := c.Data.(*storage.Storage)
	return c, store
}

// reply sends a plain message back to the invoking channel.
func reply(c *discord.Context, text string) error {
	_, err := c.Session.ChannelMessageSend(c.Event.ChannelID, text)
	return err
}

// withHistory records executed commands to per-guild history.
func withHistory() commandkit.Middleware {
	return func(cmd commandkit.Command) commandkit.Command {
		return commandkit.Wrap(cmd, func(ctx context.Context, inv *commandkit.Invocation) error {
			if c, store := messageContext(inv); store != nil && c.Event.GuildID != "" {
				rec := storage.CommandHistoryRecord{
					ChannelID: c.Event.ChannelID,
					UserID:    c.Event.Author.ID,
					Username:  c.Event.Author.Username,
					Command:   commandkit.Root(cmd).Name(),
					Args:      c.Event.Content,
					Datetime:  time.Now(),
				}
				if err := store.AppendCommandToHistory(c.Event.GuildID, rec); err != nil {
					log.Println("[WARN] Failed to log command:", err)
				}
			}
			return cmd.Run(ctx, inv)
		})
	}
}
