package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/Dosada05/scouting-system/live"
	"github.com/Dosada05/scouting-system/models"
)

func VenueDetail(v models.Venue) templ.Component {
	return Page(v.Name, live.RoomVenues, component(func(ctx context.Context, h *htmlWriter) {
		h.printf(`<section class="detail" data-id="%s"><header>`, esc(v.ID))
		if v.PhotoData != "" {
			h.printf(`<img class="photo" src="%s" alt="%s">`, esc(v.PhotoData), esc(v.Name))
		}
		h.printf(`<h1>%s</h1>`, esc(orDash(v.Name)))
		h.printf(`<a class="button" href="%s">Edit</a> <a class="button danger" href="%s">Delete</a></header>`,
			esc(path("venues", v.ID, "edit")), esc(path("venues", v.ID, "delete")))
		h.raw(`<dl>`)
		for _, row := range [][2]string{
			{"Address", v.Address}, {"Home club", v.HomeClub}, {"Contact", v.Contact}, {"Price", v.Price}, {"Note", v.Note},
		} {
			h.printf(`<dt>%s</dt><dd>%s</dd>`, row[0], esc(orDash(row[1])))
		}
		h.raw(`</dl><h2>Pitches</h2><ul class="pitches">`)
		for _, p := range v.Pitches {
			lights := ""
			if p.Lights {
				lights = " · lights"
			}
			h.printf(`<li>%s %s%s</li>`, esc(p.Label), esc(p.Surface), lights)
		}
		if len(v.Pitches) == 0 {
			h.raw(`<li class="empty">No pitches.</li>`)
		}
		h.raw(`</ul></section>`)
	}))
}

// VenueForm renders the new and edit form. Pitch rows are posted as parallel
// pitchId/pitchLabel/pitchSurface fields; lights use pitchLights-<row>.
func VenueForm(title, action string, v models.Venue, errMsg string) templ.Component {
	return Page(title, "", component(func(ctx context.Context, h *htmlWriter) {
		h.printf(`<section class="form"><h1>%s</h1>`, esc(title))
		notice(h, "notice-error", errMsg)
		h.printf(`<form method="post" action="%s" enctype="multipart/form-data">`, esc(action))
		field(h, "Name", "name", v.Name, "text", true)
		field(h, "Address", "address", v.Address, "text", false)
		field(h, "Home club", "homeClub", v.HomeClub, "text", false)
		field(h, "Contact", "contact", v.Contact, "text", false)
		field(h, "Price", "price", v.Price, "text", false)
		textarea(h, "Note", "note", v.Note)

		h.raw(`<fieldset class="pitches"><legend>Pitches</legend>`)
		for i, p := range v.Pitches {
			h.printf(`<div class="row" data-row="%d"><input type="hidden" name="pitchId" value="%s">`, i, esc(p.ID))
			h.printf(`<input name="pitchLabel" value="%s" placeholder="Label">`, esc(p.Label))
			h.printf(`<input name="pitchSurface" value="%s" placeholder="Surface">`, esc(p.Surface))
			h.printf(`<label><input type="checkbox" name="pitchLights-%d" value="true"%s> Lights</label>`, i, checked(p.Lights))
			h.printf(`<button type="submit" name="action" value="remove-pitch:%d">Remove</button></div>`, i)
		}
		h.raw(`<button type="submit" name="action" value="add-pitch">Add pitch</button></fieldset>`)

		h.raw(`<label>Photo <input type="file" name="photo" accept="image/*"></label>`)
		h.raw(`<button type="submit" name="action" value="save">Save</button>`)
		h.raw(`</form></section>`)
	}))
}
