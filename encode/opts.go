package encode

import (
	"github.com/ciacob/go-shard/format"
	"github.com/ciacob/go-shard/registry"
)

type Option func(*options)

type options struct {
	format   format.Format
	registry *registry.Registry
	fallback string
	indent   int
}

// WithFormat selects the wire format; the default is format.Binary.
func WithFormat(f format.Format) Option {
	return func(o *options) { o.format = f }
}

// WithRegistry supplies the registry used to resolve recorded type names
// during decode; the default is registry.Default.
func WithRegistry(r *registry.Registry) Option {
	return func(o *options) { o.registry = r }
}

// WithFallback names the type a recorded-but-unregistered type degrades to
// during decode. Without it, an unknown type name fails the decode.
func WithFallback(name string) Option {
	return func(o *options) { o.fallback = name }
}

// WithIndent pretty-prints JSON output with the given indent width. Ignored
// by the other formats.
func WithIndent(n int) Option {
	return func(o *options) { o.indent = n }
}

func buildOpts(opts []Option) *options {
	o := &options{
		format:   format.Binary,
		registry: registry.Default,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) fallbacks() []string {
	if o.fallback == "" {
		return nil
	}
	return []string{o.fallback}
}
