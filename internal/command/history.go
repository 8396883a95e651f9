package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/keshon/commandkit"
)

func init() {
	register(&command{
		name:        "history",
		description: "Shows the most recent commands run on this server.",
		params: []commandkit.Param{
			commandkit.Optional("count", commandkit.TypeOf[int](), 10),
		},
		run: runHistory,
	})
}

func runHistory(_ context.Context, inv *commandkit.Invocation) error {
	c, store := messageContext(inv)
	if c.Event.GuildID == "" || store == nil {
		return reply(c, "No history here.")
	}
	count := inv.Bound[1].(int)

	records, err := store.CommandHistory(c.Event.GuildID)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return reply(c, "No commands on record yet.")
	}
	if count > 0 && len(records) > count {
		records = records[len(records)-count:]
	}

	var b strings.Builder
	for _, r := range records {
		fmt.Fprintf(&b, "`%s` — %s by %s\n", r.Datetime.Format("2006-01-02 15:04"), r.Command, r.Username)
	}
	return reply(c, b.String())
}
