// Package views renders the screens as HTML. Components are plain
// templ.ComponentFunc values writing escaped markup.
package views

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

var esc = templ.EscapeString

// htmlWriter remembers the first write error so components can write
// without checking every call.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) printf(format string, args ...interface{}) {
	h.raw(fmt.Sprintf(format, args...))
}

func (h *htmlWriter) render(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

func component(fn func(ctx context.Context, h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		fn(ctx, h)
		return h.err
	})
}

func notice(h *htmlWriter, class, msg string) {
	if msg == "" {
		return
	}
	h.printf(`<div class="notice %s">%s</div>`, class, esc(msg))
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}

func field(h *htmlWriter, label, name, value, kind string, required bool) {
	req := ""
	if required {
		req = " required"
		label += " *"
	}
	h.printf(`<label>%s <input type="%s" name="%s" value="%s"%s></label>`, esc(label), kind, name, esc(value), req)
}

func textarea(h *htmlWriter, label, name, value string) {
	h.printf(`<label>%s <textarea name="%s">%s</textarea></label>`, esc(label), name, esc(value))
}

func selected(ok bool) string {
	if ok {
		return " selected"
	}
	return ""
}

func checked(ok bool) string {
	if ok {
		return " checked"
	}
	return ""
}

func itoa(n int) string { return strconv.Itoa(n) }

func path(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return "/" + strings.Join(escaped, "/")
}
