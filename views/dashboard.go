package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/Dosada05/scouting-system/editor"
	"github.com/Dosada05/scouting-system/live"
	"github.com/Dosada05/scouting-system/models"
)

func Dashboard(stats models.DashboardStats) templ.Component {
	return Page("Dashboard", live.RoomDashboard, component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section class="dashboard"><h1>Dashboard</h1>`)
		for _, msg := range stats.Errors {
			notice(h, "notice-error", msg)
		}
		h.raw(`<div class="stats">`)
		for _, c := range []struct {
			id, label, href string
			n               int
		}{
			{"players", "Players", "/players", stats.PlayersTotal},
			{"tournaments", "Tournaments", "/tournaments", stats.TournamentsTotal},
			{"venues", "Venues", "/venues", stats.VenuesTotal},
		} {
			h.printf(`<a class="stat" id="stat-%s" href="%s"><strong>%d</strong> %s</a>`, c.id, c.href, c.n, c.label)
		}
		h.raw(`</div><h2>Upcoming tournaments</h2><ul id="upcoming">`)
		for _, t := range stats.Upcoming {
			h.printf(`<li data-id="%s"><a href="%s">%s</a> <span>%s</span> <span>%s</span></li>`,
				esc(t.ID), esc(editor.TabOverview.Path(t.ID)), esc(orDash(t.Name)), esc(orDash(t.Start)), esc(orDash(t.VenueName())))
		}
		if len(stats.Upcoming) == 0 {
			h.raw(`<li class="empty">Nothing scheduled.</li>`)
		}
		h.raw(`</ul></section>`)
	}))
}
