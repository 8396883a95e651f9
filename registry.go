package commandkit

import "sort"

// DefaultRegistry is the process-wide registry used by adapters and by the
// example commands' init() registration.
var DefaultRegistry = NewRegistry()

// Registry stores commands by name and alias. It does not perform dispatch;
// each adapter looks up commands and invokes them with its own context.
// Registration is expected to happen during startup (typically from init());
// mutating the registry while an adapter is dispatching is the caller's bug.
type Registry struct {
	commands map[string]Command
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds a command under its name and any aliases, applying the given
// middlewares with the last as outermost. A later registration under the same
// name replaces the earlier one.
func (r *Registry) Register(c Command, mws ...Middleware) {
	c = Apply(c, mws...)
	r.commands[Root(c).Name()] = c
	if a, ok := Root(c).(Aliased); ok {
		for _, alias := range a.Aliases() {
			r.commands[alias] = c
		}
	}
}

// Get returns the command registered under name (or an alias), or nil.
func (r *Registry) Get(name string) Command {
	return r.commands[name]
}

// All returns every registered command once, sorted by name.
func (r *Registry) All() []Command {
	seen := make(map[string]bool, len(r.commands))
	list := make([]Command, 0, len(r.commands))
	for _, c := range r.commands {
		if seen[c.Name()] {
			continue
		}
		seen[c.Name()] = true
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name() < list[j].Name()
	})
	return list
}
