package command

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/keshon/commandkit"
)

func init() {
	register(&command{
		name:        "avatar",
		description: "Shows a user's avatar, your own when no user is given.",
		params: []commandkit.Param{
			commandkit.Optional("user", commandkit.TypeOf[*discordgo.User](), (*discordgo.User)(nil)),
		},
		run: runAvatar,
	})
}

func runAvatar(_ context.Context, inv *commandkit.Invocation) error {
	c, _ := messageContext(inv)
	user := inv.Bound[1].(*discordgo.User)
	if user == nil {
		user = c.Event.Author
	}
	return reply(c, user.AvatarURL("256"))
}
