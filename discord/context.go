// Package discord adapts the commandkit core to discordgo: a message
// dispatcher that runs prefix stripping, tokenization and binding over
// incoming messages, entity converters that resolve user/channel/role
// mentions through the session, and a per-user rate limit middleware.
package discord

import (
	"github.com/bwmarrin/discordgo"
	"github.com/keshon/commandkit"
)

// Context is the adapter payload the dispatcher places in Invocation.Data
// for message commands. Entity converters read the session and event from
// here; application state (storage, players, ...) rides along in Data.
type Context struct {
	Session *discordgo.Session
	Event   *discordgo.MessageCreate
	Data    any
}

// FromInvocation extracts the adapter context from an invocation dispatched
// by this package.
func FromInvocation(inv *commandkit.Invocation) (*Context, bool) {
	if inv == nil {
		return nil, false
	}
	c, ok := inv.Data.(*Context)
	return c, ok
}
