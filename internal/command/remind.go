package command

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/keshon/commandkit"
)

func init() {
	register(&command{
		name:        "remind",
		description: "Pings you after the given delay, e.g. remind 10m tea.",
		params: []commandkit.Param{
			commandkit.Required("delay", commandkit.TypeOf[time.Duration]()),
			commandkit.CatchAll("message", commandkit.TypeOf[string]()),
		},
		run: runRemind,
	})
}

func runRemind(_ context.Context, inv *commandkit.Invocation) error {
	c, _ := messageContext(inv)
	delay := inv.Bound[1].(time.Duration)
	message := strings.Join(inv.Bound[2].([]string), " ")
	if delay <= 0 {
		return reply(c, "The delay has to be in the future.")
	}
	if message == "" {
		message = "time's up"
	}

	author := c.Event.Author
	session := c.Session
	channelID := c.Event.ChannelID
	time.AfterFunc(delay, func() {
		_, err := session.ChannelMessageSend(channelID, fmt.Sprintf("⏰ <@%s> %s", author.ID, message))
		if err != nil {
			log.Println("[WARN] Failed to deliver reminder:", err)
		}
	})
	return reply(c, fmt.Sprintf("Will remind you in %s.", delay))
}
