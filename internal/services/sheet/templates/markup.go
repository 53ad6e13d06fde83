package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// markup writes escaped HTML and SVG, keeping the first write error.
type markup struct {
	ctx context.Context
	w   io.Writer
	err error
}

// component adapts a markup writer function to templ.Component.
func component(fn func(m *markup)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := &markup{ctx: ctx, w: w}
		fn(m)
		return m.err
	})
}

func (m *markup) raw(parts ...string) {
	for _, part := range parts {
		if m.err != nil {
			return
		}
		_, m.err = io.WriteString(m.w, part)
	}
}

func (m *markup) text(s string) {
	m.raw(templ.EscapeString(s))
}

// attrs writes name/value pairs. Pairs with an empty value are skipped.
func (m *markup) attrs(pairs []string) {
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			continue
		}
		m.raw(" ", pairs[i], `="`, templ.EscapeString(pairs[i+1]), `"`)
	}
}

func (m *markup) open(tag string, pairs ...string) {
	m.raw("<", tag)
	m.attrs(pairs)
	m.raw(">")
}

// void writes a self-closed element, valid for both HTML and SVG.
func (m *markup) void(tag string, pairs ...string) {
	m.raw("<", tag)
	m.attrs(pairs)
	m.raw("/>")
}

func (m *markup) close(tag string) {
	m.raw("</", tag, ">")
}

// element writes tag wrapping escaped text.
func (m *markup) element(tag, text string, pairs ...string) {
	m.open(tag, pairs...)
	m.text(text)
	m.close(tag)
}

func (m *markup) render(c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(m.ctx, m.w)
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
