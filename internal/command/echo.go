package command

import (
	"context"
	"strings"

	"github.com/keshon/commandkit"
)

func init() {
	register(&command{
		name:        "echo",
		description: "Repeats the given words back.",
		aliases:     []string{"say"},
		params: []commandkit.Param{
			commandkit.CatchAll("words", commandkit.TypeOf[string]()),
		},
		run: runEcho,
	})
}

func runEcho(_ context.Context, inv *commandkit.Invocation) error {
	c, _ := messageContext(inv)
	words := inv.Bound[1].([]string)
	if len(words) == 0 {
		return reply(c, "Nothing to repeat.")
	}
	return reply(c, strings.Join(words, " "))
}
