package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/keshon/commandkit"
	"github.com/keshon/commandkit/bind"
	"github.com/keshon/commandkit/convert"
	"github.com/keshon/commandkit/parse"
)

// Dispatcher routes incoming messages to registered commands: strip the
// invocation prefix (literal or bot mention), tokenize the rest, look the
// command up by its first token, bind the remaining tokens against its
// signature, and run it. Register HandleMessage with session.AddHandler.
type Dispatcher struct {
	Registry   *commandkit.Registry
	Converters *convert.Registry

	// PrefixFor returns the literal command prefix for a guild. When nil or
	// returning "", only mentioning the bot invokes commands.
	PrefixFor func(guildID string) string

	// Data rides along in Context.Data for every invocation.
	Data any
}

// NewDispatcher returns a dispatcher over the default registries with a
// fixed literal prefix.
func NewDispatcher(prefix string) *Dispatcher {
	return &Dispatcher{
		Registry:   commandkit.DefaultRegistry,
		Converters: convert.Default,
		PrefixFor:  func(string) string { return prefix },
	}
}

// HandleMessage is a discordgo MessageCreate handler.
func (d *Dispatcher) HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	self := s.State.User
	if m.Author == nil || m.Author.Bot || self == nil || m.Author.ID == self.ID {
		return
	}

	content := m.Content
	n, ok := 0, false
	if d.PrefixFor != nil {
		if prefix := d.PrefixFor(m.GuildID); prefix != "" {
			n, ok = parse.HasLiteralPrefix(content, prefix)
		}
	}
	if !ok {
		n, ok = parse.HasMentionPrefix(content, self.ID)
	}
	if !ok {
		return
	}

	tokens := parse.Tokens(content[n:])
	if len(tokens) == 0 {
		return
	}
	cmd := d.Registry.Get(tokens[0])
	if cmd == nil {
		return
	}

	inv := &commandkit.Invocation{
		Args: tokens[1:],
		Data: &Context{Session: s, Event: m, Data: d.Data},
	}
	bound, err := bind.Bind(context.Background(), d.Converters, inv, cmd.Params(), inv.Args)
	if err != nil {
		d.reportBindError(s, m, cmd, err)
		return
	}
	inv.Bound = bound

	if err := cmd.Run(context.Background(), inv); err != nil {
		log.Printf("[ERR] Command %s failed: %v", cmd.Name(), err)
		replyEmbed(s, m.ChannelID, fmt.Sprintf("Error running `%s`: %v", cmd.Name(), err))
	}
}

// reportBindError replies to the user for input mistakes and logs setup
// defects without exposing them in chat.
func (d *Dispatcher) reportBindError(s *discordgo.Session, m *discordgo.MessageCreate, cmd commandkit.Command, err error) {
	var arity *bind.ArityError
	var conv *convert.ConvertError
	switch {
	case errors.As(err, &arity), errors.As(err, &conv):
		replyEmbed(s, m.ChannelID, fmt.Sprintf("`%s`: %v", cmd.Name(), err))
	default:
		log.Printf("[ERR] Command %s is misconfigured: %v", cmd.Name(), err)
	}
}

func replyEmbed(s *discordgo.Session, channelID, text string) {
	_, err := s.ChannelMessageSendEmbed(channelID, &discordgo.MessageEmbed{Description: text})
	if err != nil {
		log.Println("[WARN] Failed to send reply:", err)
	}
}
