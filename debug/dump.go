package debug

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/ciacob/go-shard/shard"
)

// Colors maps dump elements to sprint functions. A nil *Colors disables
// color entirely.
type Colors struct {
	Route func(string, ...any) string
	FQN   func(string, ...any) string
	ID    func(string, ...any) string
	Key   func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Route: color.HiBlackString,
		FQN:   color.CyanString,
		ID:    color.HiBlackString,
		Key:   color.YellowString,
	}
}

func (c *Colors) paint(f func(*Colors) func(string, ...any) string, s string) string {
	if c == nil {
		return s
	}
	fn := f(c)
	if fn == nil {
		return s
	}
	return fn("%s", s)
}

func (c *Colors) route(s string) string { return c.paint(func(c *Colors) func(string, ...any) string { return c.Route }, s) }
func (c *Colors) fqn(s string) string   { return c.paint(func(c *Colors) func(string, ...any) string { return c.FQN }, s) }
func (c *Colors) id(s string) string    { return c.paint(func(c *Colors) func(string, ...any) string { return c.ID }, s) }
func (c *Colors) key(s string) string   { return c.paint(func(c *Colors) func(string, ...any) string { return c.Key }, s) }

// Dump writes a one-line-per-node rendition of n's subtree to w: route,
// type name, id and content in slot order. Output is colorized when w is a
// terminal.
func Dump(w io.Writer, n *shard.Node) {
	var colors *Colors
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		colors = NewColors()
	}
	FdumpColors(w, n, colors)
}

// Sdump returns Dump's output as a string, never colorized.
func Sdump(n *shard.Node) string {
	buf := &strings.Builder{}
	FdumpColors(buf, n, nil)
	return buf.String()
}

func FdumpColors(w io.Writer, n *shard.Node, colors *Colors) {
	base := n.Level()
	n.Walk(func(m *shard.Node, _ func()) {
		indent := strings.Repeat("  ", m.Level()-base)
		fmt.Fprintf(w, "%s%s %s %s %s\n",
			indent,
			colors.route(m.Route()),
			colors.fqn(m.FQN()),
			colors.id(m.ID()),
			contentString(m, colors),
		)
	})
}

func contentString(n *shard.Node, colors *Colors) string {
	b := &strings.Builder{}
	b.WriteByte('{')
	for i, e := range n.Entries() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(colors.key(e.Key))
		b.WriteString(": ")
		fmt.Fprintf(b, "%#v", e.Value)
	}
	b.WriteByte('}')
	return b.String()
}
