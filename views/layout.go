package views

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
)

// liveScript reloads the page when the server announces a change in the
// page's room.
const liveScript = `<script>
(function () {
  var room = document.body.dataset.room;
  if (!room || !window.WebSocket) return;
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + "/ws/" + encodeURIComponent(room));
  ws.onmessage = function () { location.reload(); };
})();
</script>`

var navItems = []struct{ Href, Label string }{
	{"/", "Dashboard"},
	{"/players", "Players"},
	{"/tournaments", "Tournaments"},
	{"/venues", "Venues"},
	{"/admin", "Admin"},
}

// Page wraps body in the document shell. room names the live room whose
// events reload the page; empty disables live reload.
func Page(title, room string, body templ.Component) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.printf(`<title>%s · Scouting</title></head>`, esc(title))
		h.printf(`<body data-room="%s"><nav class="nav">`, esc(room))
		for _, item := range navItems {
			h.printf(`<a href="%s">%s</a>`, item.Href, item.Label)
		}
		h.raw(`</nav><main>`)
		h.render(ctx, body)
		h.raw(`</main>`)
		h.raw(liveScript)
		h.raw(`</body></html>`)
	})
}

// ErrorPage shows a failed request.
func ErrorPage(status int, message, back string) templ.Component {
	return Page(http.StatusText(status), "", component(func(ctx context.Context, h *htmlWriter) {
		h.printf(`<section class="error"><h1>%d %s</h1>`, status, esc(http.StatusText(status)))
		notice(h, "notice-error", message)
		if back != "" {
			h.printf(`<p><a href="%s">Back</a></p>`, esc(back))
		}
		h.raw(`</section>`)
	}))
}

// ConfirmPage asks before a destructive action. The form posts confirm=yes
// to action.
func ConfirmPage(title, question, action, cancel string) templ.Component {
	return Page(title, "", component(func(ctx context.Context, h *htmlWriter) {
		h.printf(`<section class="confirm"><h1>%s</h1><p>%s</p>`, esc(title), esc(question))
		h.printf(`<form method="post" action="%s"><input type="hidden" name="confirm" value="yes">`, esc(action))
		h.raw(`<button type="submit" class="danger">Delete</button> `)
		h.printf(`<a href="%s">Cancel</a></form></section>`, esc(cancel))
	}))
}
