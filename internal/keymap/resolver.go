package keymap

import "slices"

// Resolver maps key strings to actions, optionally within one context.
type Resolver struct {
	byKey    map[string]Binding  // key -> binding that owns it
	byAction map[Action][]string // action -> keys, in binding order
}

// NewResolver creates a resolver from bindings. When two bindings claim
// the same key, the later one wins.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		byKey:    make(map[string]Binding),
		byAction: make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.byKey[key] = b
			if !slices.Contains(r.byAction[b.Action], key) {
				r.byAction[b.Action] = append(r.byAction[b.Action], key)
			}
		}
	}
	return r
}

// Resolve returns the action for a key, or empty string if not bound.
func (r *Resolver) Resolve(key string) Action {
	return r.byKey[key].Action
}

// ResolveIn returns the action for a key only if it is bound in context.
func (r *Resolver) ResolveIn(context, key string) Action {
	b, ok := r.byKey[key]
	if !ok || b.Context != context {
		return ""
	}
	return b.Action
}

// KeysFor returns the keys bound to an action (for help and hints).
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}
