package debug

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/ciacob/go-shard/encode"
	"github.com/ciacob/go-shard/format"
	"github.com/ciacob/go-shard/shard"
)

// Diff renders a line diff between the pretty-JSON forms of two trees.
// Equal trees yield the empty string.
func Diff(a, b *shard.Node) (string, error) {
	if a.Same(b) {
		return "", nil
	}
	da, err := encode.Marshal(a, encode.WithFormat(format.JSON), encode.WithIndent(2))
	if err != nil {
		return "", err
	}
	db, err := encode.Marshal(b, encode.WithFormat(format.JSON), encode.WithIndent(2))
	if err != nil {
		return "", err
	}
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(string(da)+"\n", string(db)+"\n")
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	return renderDiff(diffs), nil
}

func renderDiff(diffs []diffpatch.Diff) string {
	b := &strings.Builder{}
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
		case diffpatch.DiffInsert:
			prefix = "+ "
		}
		for _, line := range splitKeepNonEmpty(d.Text) {
			b.WriteString(prefix)
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func splitKeepNonEmpty(text string) []string {
	var res []string
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			if i > start {
				res = append(res, text[start:i])
			}
			start = i + 1
		}
	}
	if start < len(text) {
		res = append(res, text[start:])
	}
	return res
}
