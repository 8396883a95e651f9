package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/keshon/commandkit"
)

func init() {
	register(&command{
		name:        "help",
		description: "Lists every available command.",
		run:         runHelp,
	})
}

func runHelp(_ context.Context, inv *commandkit.Invocation) error {
	c, _ := messageContext(inv)
	var b strings.Builder
	for _, cmd := range commandkit.DefaultRegistry.All() {
		fmt.Fprintf(&b, "**%s** — %s\n", cmd.Name(), cmd.Description())
	}
	return reply(c, b.String())
}
