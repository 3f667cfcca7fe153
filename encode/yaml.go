package encode

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cast"

	"github.com/ciacob/go-shard/shard"
)

func marshalYAML(n *shard.Node) ([]byte, error) {
	tree, err := yamlTree(n)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(tree)
}

// yamlTree builds the same schema the JSON codec writes, as an ordered
// MapSlice so content slot order survives.
func yamlTree(n *shard.Node) (yaml.MapSlice, error) {
	content := yaml.MapSlice{}
	for _, e := range n.Entries() {
		v, err := yamlValue(e.Value)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", e.Key, err)
		}
		content = append(content, yaml.MapItem{Key: e.Key, Value: v})
	}
	children := []yaml.MapSlice{}
	for _, c := range n.Children() {
		ct, err := yamlTree(c)
		if err != nil {
			return nil, err
		}
		children = append(children, ct)
	}
	return yaml.MapSlice{
		{Key: "id", Value: n.ID()},
		{Key: "fqn", Value: n.FQN()},
		{Key: "intrinsic", Value: yaml.MapSlice{{Key: "isFlat", Value: n.NumChildren() == 0}}},
		{Key: "content", Value: content},
		{Key: "children", Value: children},
	}, nil
}

func yamlValue(v any) (any, error) {
	k, err := shard.KindOf(v)
	if err != nil {
		return nil, err
	}
	if k == shard.KindFloat {
		return yamlFloat(v.(float64)), nil
	}
	return v, nil
}

// yamlFloat renders integral floats with a trailing ".0" so the float kind
// survives a round trip.
type yamlFloat float64

func (f yamlFloat) MarshalYAML() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte(".nan"), nil
	case math.IsInf(v, 1):
		return []byte(".inf"), nil
	case math.IsInf(v, -1):
		return []byte("-.inf"), nil
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return []byte(s), nil
}

type yamlNode struct {
	ID       string        `yaml:"id"`
	FQN      string        `yaml:"fqn"`
	Content  yaml.MapSlice `yaml:"content"`
	Children []yamlNode    `yaml:"children"`
}

func unmarshalYAML(data []byte, o *options) (*shard.Node, error) {
	var yn yamlNode
	if err := yaml.Unmarshal(data, &yn); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return buildYAMLNode(o, &yn)
}

func buildYAMLNode(o *options, yn *yamlNode) (*shard.Node, error) {
	raw := &rawNode{id: yn.ID, fqn: yn.FQN}
	for _, item := range yn.Content {
		key, ok := item.Key.(string)
		if !ok {
			return nil, fmt.Errorf("%w: content key %v is not a string", ErrDecode, item.Key)
		}
		v, err := yamlContentValue(item.Value)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		raw.entries = append(raw.entries, shard.Entry{Key: key, Value: v})
	}
	for i := range yn.Children {
		c, err := buildYAMLNode(o, &yn.Children[i])
		if err != nil {
			return nil, err
		}
		raw.children = append(raw.children, c)
	}
	return o.build(raw)
}

func yamlContentValue(v any) (any, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case bool, string, float64:
		return x, nil
	case int, int64, uint64:
		i, err := cast.ToInt64E(x)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		return i, nil
	}
	return nil, fmt.Errorf("%w: content value must be a primitive, got %T", ErrDecode, v)
}
