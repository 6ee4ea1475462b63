package views

import (
	"context"
	"net/url"
	"strconv"

	"github.com/a-h/templ"

	"github.com/Dosada05/scouting-system/editor"
	"github.com/Dosada05/scouting-system/listing"
	"github.com/Dosada05/scouting-system/live"
	"github.com/Dosada05/scouting-system/services"
)

type column struct {
	Label string
	Field string // empty: not sortable
}

// listState is what list links need from a listing.Result.
type listState struct {
	base       string
	search     string
	sort       listing.SortState
	page       int
	perPage    int
	totalPages int
	total      int
}

func stateOf[T any](base string, r listing.Result[T]) listState {
	return listState{base: base, search: r.Search, sort: r.Sort, page: r.Page, perPage: r.PerPage, totalPages: r.TotalPages, total: r.Total}
}

func (s listState) link(sort listing.SortState, page, perPage int) string {
	v := url.Values{}
	if s.search != "" {
		v.Set("q", s.search)
	}
	v.Set("sort", sort.Field)
	v.Set("dir", string(sort.Dir))
	v.Set("page", strconv.Itoa(page))
	v.Set("perPage", strconv.Itoa(perPage))
	return s.base + "?" + v.Encode()
}

func searchForm(h *htmlWriter, s listState, placeholder string) {
	h.printf(`<form method="get" action="%s" class="search">`, s.base)
	h.printf(`<input type="search" name="q" value="%s" placeholder="%s">`, esc(s.search), esc(placeholder))
	h.printf(`<input type="hidden" name="sort" value="%s"><input type="hidden" name="dir" value="%s">`, esc(s.sort.Field), esc(string(s.sort.Dir)))
	h.raw(`<select name="perPage">`)
	for _, n := range listing.PerPageOptions {
		h.printf(`<option value="%d"%s>%d per page</option>`, n, selected(n == s.perPage), n)
	}
	h.raw(`</select><button type="submit">Search</button></form>`)
}

func tableHead(h *htmlWriter, s listState, cols []column) {
	h.raw(`<thead><tr>`)
	for _, c := range cols {
		if c.Field == "" {
			h.printf(`<th>%s</th>`, esc(c.Label))
			continue
		}
		marker := ""
		if s.sort.Field == c.Field {
			marker = " ▲"
			if s.sort.Dir == listing.Desc {
				marker = " ▼"
			}
		}
		h.printf(`<th><a class="sort" data-field="%s" href="%s">%s%s</a></th>`,
			c.Field, esc(s.link(s.sort.Toggle(c.Field), 1, s.perPage)), esc(c.Label), marker)
	}
	h.raw(`</tr></thead>`)
}

func pagination(h *htmlWriter, s listState) {
	h.printf(`<nav class="pagination" data-total="%d"><span>Page %d of %d</span>`, s.total, s.page, s.totalPages)
	if s.page > 1 {
		h.printf(` <a rel="prev" href="%s">Previous</a>`, esc(s.link(s.sort, s.page-1, s.perPage)))
	}
	if s.page < s.totalPages {
		h.printf(` <a rel="next" href="%s">Next</a>`, esc(s.link(s.sort, s.page+1, s.perPage)))
	}
	h.raw(`</nav>`)
}

func PlayersList(view *services.PlayerListView) templ.Component {
	s := stateOf("/players", view.Result)
	return Page("Players", live.RoomPlayers, component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section class="list"><header><h1>Players</h1><a class="button" href="/players/new">New player</a></header>`)
		notice(h, "notice-error", view.Error)
		searchForm(h, s, "Search name, nation, club, level…")
		h.raw(`<table id="players">`)
		tableHead(h, s, []column{{"Name", "name"}, {"Club", "club"}, {"Nation", "nation"}, {"Level", "level"}, {"Age", "age"}, {"Foot", ""}})
		h.raw(`<tbody>`)
		for _, row := range view.Items {
			p := row.Player
			age := "—"
			if row.HasAge {
				age = itoa(row.Age)
			}
			h.printf(`<tr data-id="%s"><td><a href="%s">%s</a></td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
				esc(p.ID), esc(path("players", p.ID)), esc(orDash(p.FullName())), esc(orDash(p.Club)), esc(orDash(p.Nation)),
				esc(orDash(p.Level)), age, esc(orDash(p.Foot)))
		}
		if len(view.Items) == 0 {
			h.raw(`<tr><td colspan="6" class="empty">No players found.</td></tr>`)
		}
		h.raw(`</tbody></table>`)
		pagination(h, s)
		h.raw(`</section>`)
	}))
}

func TournamentsList(view *services.TournamentListView) templ.Component {
	s := stateOf("/tournaments", view.Result)
	return Page("Tournaments", live.RoomTournaments, component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section class="list"><header><h1>Tournaments</h1><a class="button" href="/tournaments/new">New tournament</a></header>`)
		notice(h, "notice-error", view.Error)
		searchForm(h, s, "Search name or venue…")
		h.raw(`<table id="tournaments">`)
		tableHead(h, s, []column{{"Name", "name"}, {"Start", "start"}, {"End", ""}, {"Venue", "venue"}, {"Participants", ""}})
		h.raw(`<tbody>`)
		for _, t := range view.Items {
			h.printf(`<tr data-id="%s"><td><a href="%s">%s</a></td><td>%s</td><td>%s</td><td>%s</td><td>%d</td></tr>`,
				esc(t.ID), esc(editor.TabOverview.Path(t.ID)), esc(orDash(t.Name)), esc(orDash(t.Start)), esc(orDash(t.End)),
				esc(orDash(t.VenueName())), len(t.Participants))
		}
		if len(view.Items) == 0 {
			h.raw(`<tr><td colspan="5" class="empty">No tournaments found.</td></tr>`)
		}
		h.raw(`</tbody></table>`)
		pagination(h, s)
		h.raw(`</section>`)
	}))
}

func VenuesList(view *services.VenueListView) templ.Component {
	s := stateOf("/venues", view.Result)
	return Page("Venues", live.RoomVenues, component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section class="list"><header><h1>Venues</h1><a class="button" href="/venues/new">New venue</a></header>`)
		notice(h, "notice-error", view.Error)
		searchForm(h, s, "Search name, address, home club…")
		h.raw(`<table id="venues">`)
		tableHead(h, s, []column{{"Name", "name"}, {"Address", ""}, {"Home club", "homeClub"}, {"Pitches", "pitches"}})
		h.raw(`<tbody>`)
		for _, v := range view.Items {
			h.printf(`<tr data-id="%s"><td><a href="%s">%s</a></td><td>%s</td><td>%s</td><td>%d</td></tr>`,
				esc(v.ID), esc(path("venues", v.ID)), esc(orDash(v.Name)), esc(orDash(v.Address)), esc(orDash(v.HomeClub)), len(v.Pitches))
		}
		if len(view.Items) == 0 {
			h.raw(`<tr><td colspan="4" class="empty">No venues found.</td></tr>`)
		}
		h.raw(`</tbody></table>`)
		pagination(h, s)
		h.raw(`</section>`)
	}))
}
