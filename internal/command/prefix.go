package command

import (
	"context"
	"fmt"

	"github.com/keshon/commandkit"
)

func init() {
	register(&command{
		name:        "prefix",
		description: "Sets this server's command prefix.",
		params: []commandkit.Param{
			commandkit.Required("new-prefix", commandkit.TypeOf[string]()),
		},
		run: runPrefix,
	})
}

func runPrefix(_ context.Context, inv *commandkit.Invocation) error {
	c, store := messageContext(inv)
	if c.Event.GuildID == "" {
		return reply(c, "Prefixes are per-server; this is a direct message.")
	}
	if store == nil {
		return reply(c, "No storage configured; the prefix cannot be changed.")
	}
	prefix := inv.Bound[1].(string)
	if len(prefix) > 8 {
		return reply(c, "That prefix is too long, keep it under 8 characters.")
	}
	if err := store.SetPrefix(c.Event.GuildID, prefix); err != nil {
		return err
	}
	return reply(c, fmt.Sprintf("Prefix set to `%s`.", prefix))
}
