package encode

import (
	"fmt"
	"io"

	"github.com/ciacob/go-shard/format"
	"github.com/ciacob/go-shard/shard"
)

// Marshal encodes n and its full subtree in the format selected by the
// options (binary by default).
func Marshal(n *shard.Node, opts ...Option) ([]byte, error) {
	o := buildOpts(opts)
	switch o.format {
	case format.Binary:
		return marshalBinary(n)
	case format.JSON:
		return marshalJSON(n, o)
	case format.YAML:
		return marshalYAML(n)
	}
	return nil, fmt.Errorf("%w: %d", format.ErrBadFormat, o.format)
}

// Encode writes Marshal's output to w.
func Encode(n *shard.Node, w io.Writer, opts ...Option) error {
	d, err := Marshal(n, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// Unmarshal decodes data and overwrites dst in place: id, type name,
// content and children are replaced wholesale with the decoded values. Each
// recorded type name is resolved through the registry before its node is
// built. On any failure dst's prior state is completely unchanged. A sealed
// (read-only) dst is left untouched regardless of the input.
func Unmarshal(dst *shard.Node, data []byte, opts ...Option) error {
	if dst.ReadOnly() {
		return nil
	}
	o := buildOpts(opts)
	var (
		scratch *shard.Node
		err     error
	)
	switch o.format {
	case format.Binary:
		scratch, err = unmarshalBinary(data, o)
	case format.JSON:
		scratch, err = unmarshalJSON(data, o)
	case format.YAML:
		scratch, err = unmarshalYAML(data, o)
	default:
		return fmt.Errorf("%w: %d", format.ErrBadFormat, o.format)
	}
	if err != nil {
		return err
	}
	dst.CopyFrom(scratch)
	return nil
}

// Decode reads all of r and unmarshals it into dst.
func Decode(dst *shard.Node, r io.Reader, opts ...Option) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return Unmarshal(dst, data, opts...)
}

// rawNode is a decoded node before type resolution.
type rawNode struct {
	id       string
	fqn      string
	entries  []shard.Entry
	children []*shard.Node
}

// build turns a rawNode into a typed node: the recorded type name picks the
// factory (with the caller's fallback as degradation), then the blank node
// is filled from the recorded data. An empty id keeps the factory's fresh
// one.
func (o *options) build(raw *rawNode) (*shard.Node, error) {
	fac, err := o.registry.Resolve(raw.fqn, o.fallbacks()...)
	if err != nil {
		return nil, err
	}
	n := fac().WithID(raw.id)
	for _, e := range raw.entries {
		n.Set(e.Key, e.Value)
	}
	for _, c := range raw.children {
		n.AddChild(c)
	}
	return n, nil
}
