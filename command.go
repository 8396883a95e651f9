// Package commandkit provides a transport-agnostic text-command core: a command
// is something with a name, a parameter signature, and Run(ctx, invocation).
// How a raw message becomes an invocation is handled by the subpackages — parse
// strips prefixes and tokenizes, convert turns tokens into typed values, bind
// matches tokens against a command's parameter signature. Transport adapters
// (Discord, CLI, HTTP) wrap this core; see the discord subpackage.
package commandkit

import "context"

// Invocation carries one command invocation through the pipeline: the raw
// argument tokens, the bound values produced by bind.Bind, and an opaque
// payload set by the adapter (e.g. *discord.Context for Discord messages).
// Converters receive the invocation and may read Data to resolve entity
// references; the core never mutates Data.
type Invocation struct {
	// Args holds the raw tokens following the command name.
	Args []string

	// Bound is the bound value sequence: Bound[0] is this invocation,
	// Bound[i+1] corresponds to the command's i-th parameter. Populated by
	// the adapter before Run is called.
	Bound []any

	// Data is the adapter's context payload.
	Data any
}

// Command is the universal contract: identity, parameter signature, execution.
// Permissions, cooldowns, and transport-specific registration stay in adapters.
type Command interface {
	Name() string
	Description() string
	Params() []Param
	Run(ctx context.Context, inv *Invocation) error
}

// Aliased is implemented by commands that answer to additional names.
type Aliased interface {
	Aliases() []string
}
