package command

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/keshon/commandkit"
)

func init() {
	register(&command{
		name:        "roll",
		description: "Rolls a die, six-sided unless told otherwise.",
		params: []commandkit.Param{
			commandkit.Optional("sides", commandkit.TypeOf[int](), 6),
		},
		run: runRoll,
	})
}

func runRoll(_ context.Context, inv *commandkit.Invocation) error {
	c, _ := messageContext(inv)
	sides := inv.Bound[1].(int)
	if sides < 1 {
		return reply(c, "A die needs at least one side.")
	}
	return reply(c, fmt.Sprintf("🎲 You rolled **%d** (d%d)", rand.IntN(sides)+1, sides))
}
