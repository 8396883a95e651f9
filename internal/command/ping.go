package command

import (
	"context"
	"fmt"

	"github.com/keshon/commandkit"
)

func init() {
	register(&command{
		name:        "ping",
		description: "Pong! Shows the gateway latency.",
		run:         runPing,
	})
}

func runPing(_ context.Context, inv *commandkit.Invocation) error {
	c, _ := messageContext(inv)
	latency := c.Session.HeartbeatLatency().Milliseconds()
	return reply(c, fmt.Sprintf("🏓 Pong! Response time: `%dms`", latency))
}
