package encode

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ciacob/go-shard/format"
	"github.com/ciacob/go-shard/registry"
	"github.com/ciacob/go-shard/shard"
)

// buildDoc covers every value kind plus nesting.
func buildDoc() *shard.Node {
	root := shard.New().
		Set("title", "doc").
		Set("rev", 3).
		Set("ratio", 0.25).
		Set("draft", true).
		Set("note", nil)
	section := shard.New().Set("type", "section").Set("weight", 2.0)
	root.AddChild(section)
	section.AddChild(shard.New().Set("leaf", true))
	root.AddChild(shard.New().Set("type", "appendix"))
	return root
}

func TestCrossFormatConsistency(t *testing.T) {
	src := buildDoc()
	for _, f := range format.AllFormats() {
		t.Run(f.String(), func(t *testing.T) {
			data, err := Marshal(src, WithFormat(f))
			require.NoError(t, err)

			dst := shard.New()
			require.NoError(t, Unmarshal(dst, data, WithFormat(f)))
			require.True(t, dst.Same(src), "decoded tree differs from source")
			// slot order is part of the contract
			require.Equal(t, src.Keys(), dst.Keys())
		})
	}
}

func TestEncodeDecodeStream(t *testing.T) {
	src := buildDoc()
	var buf bytes.Buffer
	require.NoError(t, Encode(src, &buf, WithFormat(format.JSON)))

	dst := shard.New()
	require.NoError(t, Decode(dst, &buf, WithFormat(format.JSON)))
	require.True(t, dst.Same(src))
}

func TestUnmarshalReadOnly(t *testing.T) {
	data, err := Marshal(buildDoc())
	require.NoError(t, err)

	dst := shard.NewReadOnly(map[string]any{"k": "v"})
	require.NoError(t, Unmarshal(dst, data))
	require.Equal(t, "v", dst.Get("k"))
	require.Zero(t, dst.NumChildren())
}

func TestUnmarshalReplacesChildren(t *testing.T) {
	src := shard.New()
	src.AddChild(shard.New().Set("n", "fresh"))
	data, err := Marshal(src)
	require.NoError(t, err)

	dst := shard.New()
	old := shard.New().Set("n", "old")
	dst.AddChild(old)

	require.NoError(t, Unmarshal(dst, data))
	require.Equal(t, 1, dst.NumChildren())
	require.Equal(t, "fresh", dst.ChildAt(0).Get("n"))

	// the replaced child is fully detached, not an orphan still pointing
	// at dst
	require.Nil(t, old.Parent())
	require.Equal(t, -1, old.Index())

	other := shard.New()
	require.True(t, other.AddChild(old))
	require.Equal(t, 1, dst.NumChildren(), "reparenting the replaced child must not touch dst")
	require.Equal(t, "fresh", dst.ChildAt(0).Get("n"))
}

func TestUnmarshalBadFormat(t *testing.T) {
	err := Unmarshal(shard.New(), nil, WithFormat(format.Format(99)))
	require.ErrorIs(t, err, format.ErrBadFormat)
	_, err = Marshal(shard.New(), WithFormat(format.Format(99)))
	require.ErrorIs(t, err, format.ErrBadFormat)
}

func TestUnmarshalTypedTree(t *testing.T) {
	reg := registry.New()
	reg.Register(shard.DefaultFQN, shard.New)
	reg.Register("doc.Paragraph", func() *shard.Node {
		return shard.NewTyped("doc.Paragraph")
	})

	src := shard.New()
	src.AddChild(shard.NewTyped("doc.Paragraph").Set("text", "hi"))

	for _, f := range format.AllFormats() {
		t.Run(f.String(), func(t *testing.T) {
			data, err := Marshal(src, WithFormat(f))
			require.NoError(t, err)

			dst := shard.New()
			require.NoError(t, Unmarshal(dst, data, WithFormat(f), WithRegistry(reg)))
			require.Equal(t, "doc.Paragraph", dst.ChildAt(0).FQN())
			require.Equal(t, src.ChildAt(0).ID(), dst.ChildAt(0).ID())
		})
	}
}

func TestUnmarshalUnknownType(t *testing.T) {
	src := shard.New()
	src.AddChild(shard.NewTyped("doc.Unregistered").Set("text", "hi"))
	data, err := Marshal(src)
	require.NoError(t, err)

	dst := shard.New().Set("keep", 1)
	err = Unmarshal(dst, data)
	require.ErrorIs(t, err, registry.ErrUnknownType)
	// failed decode leaves the target alone
	require.Equal(t, int64(1), dst.Get("keep"))
	require.Zero(t, dst.NumChildren())

	// fallback degrades the unknown type instead of failing
	require.NoError(t, Unmarshal(dst, data, WithFallback(shard.DefaultFQN)))
	require.Equal(t, shard.DefaultFQN, dst.ChildAt(0).FQN())
	require.Equal(t, "hi", dst.ChildAt(0).Get("text"))
	require.False(t, dst.Has("keep"))
}
