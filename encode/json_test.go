package encode

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ciacob/go-shard/format"
	"github.com/ciacob/go-shard/shard"
)

const fixedID = "3b241101-e2bb-4255-8caf-4136c566a962"

func TestJSONShape(t *testing.T) {
	n := shard.New().WithID(fixedID).Set("a", 1).Set("z", "s")
	data, err := Marshal(n, WithFormat(format.JSON))
	require.NoError(t, err)

	want := `{"id":"` + fixedID + `","fqn":"shard.Node",` +
		`"intrinsic":{"isFlat":true},"content":{"a":1,"z":"s"},"children":[]}`
	require.Equal(t, want, string(data))
}

func TestJSONFloatKind(t *testing.T) {
	n := shard.New().Set("whole", 2.0).Set("count", 2)
	data, err := Marshal(n, WithFormat(format.JSON))
	require.NoError(t, err)
	require.Contains(t, string(data), `"whole":2.0`)
	require.Contains(t, string(data), `"count":2`)

	dst := shard.New()
	require.NoError(t, Unmarshal(dst, data, WithFormat(format.JSON)))
	require.IsType(t, float64(0), dst.Get("whole"))
	require.IsType(t, int64(0), dst.Get("count"))
}

func TestJSONRejectsNaN(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Marshal(shard.New().Set("f", v), WithFormat(format.JSON))
		require.ErrorIs(t, err, ErrValue)
	}
}

func TestJSONIndent(t *testing.T) {
	data, err := Marshal(buildDoc(), WithFormat(format.JSON), WithIndent(2))
	require.NoError(t, err)
	require.True(t, strings.Contains(string(data), "\n  \"fqn\""))

	// indented output decodes the same
	dst := shard.New()
	require.NoError(t, Unmarshal(dst, data, WithFormat(format.JSON)))
	require.True(t, dst.Like(buildDoc()))
}

func TestJSONTolerantInput(t *testing.T) {
	// missing id, missing intrinsic, null children, unknown field
	in := `{"fqn":"shard.Node","content":{"a":true},"children":null,"extra":{"x":[1]}}`
	dst := shard.New()
	require.NoError(t, Unmarshal(dst, []byte(in), WithFormat(format.JSON)))
	require.Equal(t, true, dst.Get("a"))
	require.Zero(t, dst.NumChildren())
	// absent id keeps the factory's fresh one
	require.Len(t, dst.ID(), 36)
}

func TestJSONBadInput(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"trailing data", `{"fqn":"shard.Node","content":{},"children":[]} {}`},
		{"content not object", `{"fqn":"shard.Node","content":[1]}`},
		{"children not array", `{"fqn":"shard.Node","children":{}}`},
		{"value not primitive", `{"fqn":"shard.Node","content":{"a":[1]}}`},
		{"not json", `}{`},
		{"empty", ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := shard.New().Set("keep", 1)
			err := Unmarshal(dst, []byte(tt.in), WithFormat(format.JSON))
			require.ErrorIs(t, err, ErrDecode)
			require.Equal(t, int64(1), dst.Get("keep"))
		})
	}
}
