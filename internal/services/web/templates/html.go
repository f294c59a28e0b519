package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// markup writes HTML pieces and latches the first write error.
type markup struct {
	w   io.Writer
	err error
}

func (m *markup) raw(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}

func (m *markup) text(s string) {
	m.raw(templ.EscapeString(s))
}

func (m *markup) int(n int) {
	m.raw(strconv.Itoa(n))
}

// attr writes ` name="value"` with value escaped.
func (m *markup) attr(name, value string) {
	m.raw(" " + name + `="`)
	m.text(value)
	m.raw(`"`)
}

// flag writes a boolean attribute when on.
func (m *markup) flag(name string, on bool) {
	if on {
		m.raw(" " + name)
	}
}

func (m *markup) component(ctx context.Context, c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(ctx, m.w)
}

// component builds a templ component from a markup writer func.
func component(fn func(ctx context.Context, m *markup)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := &markup{w: w}
		fn(ctx, m)
		return m.err
	})
}

// Option is one select or radio choice.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

func selectField(m *markup, name, id string, options []Option) {
	m.raw(`<select`)
	m.attr("name", name)
	m.attr("id", id)
	m.raw(`>`)
	for _, opt := range options {
		m.raw(`<option`)
		m.attr("value", opt.Value)
		m.flag("selected", opt.Selected)
		m.raw(`>`)
		m.text(opt.Label)
		m.raw(`</option>`)
	}
	m.raw(`</select>`)
}

func fieldError(m *markup, errs map[string]string, field string) {
	msg := errs[field]
	if msg == "" {
		return
	}
	m.raw(`<p class="field__error" role="alert">`)
	m.text(msg)
	m.raw(`</p>`)
}

func hiddenInput(m *markup, name, value string) {
	m.raw(`<input type="hidden"`)
	m.attr("name", name)
	m.attr("value", value)
	m.raw(`>`)
}
