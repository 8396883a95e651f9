package discord

import (
	"context"
	"reflect"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/keshon/commandkit"
	"github.com/keshon/commandkit/convert"
)

// Entity converters, layered over the primitive ones in convert.Default.
// Each accepts a mention or a bare numeric ID and resolves it through the
// session state first, falling back to the REST API.
func init() {
	convert.RegisterFunc(convert.Default, convertUser)
	convert.RegisterFunc(convert.Default, convertChannel)
	convert.RegisterFunc(convert.Default, convertRole)

	convert.Default.SetName(reflect.TypeFor[*discordgo.User](), "user")
	convert.Default.SetName(reflect.TypeFor[*discordgo.Channel](), "channel")
	convert.Default.SetName(reflect.TypeFor[*discordgo.Role](), "role")
}

func convertUser(_ context.Context, inv *commandkit.Invocation, token string) (*discordgo.User, bool) {
	c, ok := FromInvocation(inv)
	if !ok || c.Session == nil || c.Event == nil {
		return nil, false
	}
	id, ok := parseUserID(token)
	if !ok {
		return nil, false
	}
	for _, u := range c.Event.Mentions {
		if u.ID == id {
			return u, true
		}
	}
	if member, err := c.Session.State.Member(c.Event.GuildID, id); err == nil && member.User != nil {
		return member.User, true
	}
	u, err := c.Session.User(id)
	if err != nil {
		return nil, false
	}
	return u, true
}

func convertChannel(_ context.Context, inv *commandkit.Invocation, token string) (*discordgo.Channel, bool) {
	c, ok := FromInvocation(inv)
	if !ok || c.Session == nil {
		return nil, false
	}
	id, ok := parseChannelID(token)
	if !ok {
		return nil, false
	}
	if ch, err := c.Session.State.Channel(id); err == nil {
		return ch, true
	}
	ch, err := c.Session.Channel(id)
	if err != nil {
		return nil, false
	}
	return ch, true
}

func convertRole(_ context.Context, inv *commandkit.Invocation, token string) (*discordgo.Role, bool) {
	c, ok := FromInvocation(inv)
	if !ok || c.Session == nil || c.Event == nil {
		return nil, false
	}
	id, ok := parseRoleID(token)
	if !ok {
		return nil, false
	}
	if role, err := c.Session.State.Role(c.Event.GuildID, id); err == nil {
		return role, true
	}
	roles, err := c.Session.GuildRoles(c.Event.GuildID)
	if err != nil {
		return nil, false
	}
	for _, role := range roles {
		if role.ID == id {
			return role, true
		}
	}
	return nil, false
}

// parseUserID extracts the numeric ID from <@id>, <@!id>, or a bare ID.
func parseUserID(token string) (string, bool) {
	if strings.HasPrefix(token, "<@") && strings.HasSuffix(token, ">") {
		token = strings.TrimPrefix(strings.TrimSuffix(token[2:], ">"), "!")
	}
	return token, isSnowflake(token)
}

// parseChannelID extracts the numeric ID from <#id> or a bare ID.
func parseChannelID(token string) (string, bool) {
	if strings.HasPrefix(token, "<#") && strings.HasSuffix(token, ">") {
		token = strings.TrimSuffix(token[2:], ">")
	}
	return token, isSnowflake(token)
}

// parseRoleID extracts the numeric ID from <@&id> or a bare ID.
func parseRoleID(token string) (string, bool) {
	if strings.HasPrefix(token, "<@&") && strings.HasSuffix(token, ">") {
		token = strings.TrimSuffix(token[3:], ">")
	}
	return token, isSnowflake(token)
}

func isSnowflake(s string) bool {
	if s == "" {
		return false
	}
	_, err := strconv.ParseUint(s, 10, 64)
	return err == nil
}
