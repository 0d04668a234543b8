package keymap

import "github.com/llehouerou/lofi/internal/playback"

// Resolver maps key strings to commands.
type Resolver struct {
	bindings map[string]playback.Command
}

// NewResolver creates a resolver from bindings. Later bindings win when
// a key is bound twice.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{bindings: make(map[string]playback.Command)}
	for _, b := range bindings {
		for _, k := range b.Keys {
			r.bindings[k] = b.Command
		}
	}
	return r
}

// Resolve returns the command for a key, or playback.None if unbound.
func (r *Resolver) Resolve(key string) playback.Command {
	return r.bindings[key]
}
