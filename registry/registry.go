package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/ciacob/go-shard/shard"
)

// ErrUnknownType indicates a recorded type name with no registered factory
// and no usable fallback. Decoders surface it without touching their target.
var ErrUnknownType = errors.New("unknown shard type")

// Factory produces a blank node of one concrete type. Factories take no
// arguments and must not pre-populate content or children; decoders fill
// the node from recorded data.
type Factory func() *shard.Node

// Registry maps stable type names to factories. It is consulted only during
// decode, to pick the constructor for each recorded node before recursing
// into it.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

func New() *Registry {
	return &Registry{factories: map[string]Factory{}}
}

// Register associates name with f. Re-registration overwrites.
func (r *Registry) Register(name string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = f
}

// Resolve returns the factory for name. When name is not registered and a
// fallback name is supplied, the fallback's factory is returned instead, so
// data produced by a type unavailable here degrades into a caller-chosen
// substitute. With no usable fallback, Resolve fails with ErrUnknownType.
func (r *Registry) Resolve(name string, fallback ...string) (Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if f, ok := r.factories[name]; ok {
		return f, nil
	}
	for _, fb := range fallback {
		if f, ok := r.factories[fb]; ok {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}

// Names returns the registered type names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]string, 0, len(r.factories))
	for name := range r.factories {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}

// Default is the process-wide registry codecs fall back to when no explicit
// registry is supplied. It starts out knowing only the base node type;
// applications register their own types before decoding.
var Default = func() *Registry {
	r := New()
	r.Register(shard.DefaultFQN, shard.New)
	return r
}()

// Register adds name to the Default registry.
func Register(name string, f Factory) {
	Default.Register(name, f)
}

// Resolve resolves name against the Default registry.
func Resolve(name string, fallback ...string) (Factory, error) {
	return Default.Resolve(name, fallback...)
}
