package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/Dosada05/scouting-system/live"
	"github.com/Dosada05/scouting-system/models"
	"github.com/Dosada05/scouting-system/services"
)

func avatar(h *htmlWriter, p models.Player) {
	if p.PhotoData != "" {
		h.printf(`<img class="avatar" src="%s" alt="%s">`, esc(p.PhotoData), esc(p.FullName()))
		return
	}
	h.printf(`<span class="avatar initials">%s</span>`, esc(p.Initials()))
}

func PlayerDetail(view *services.PlayerDetailView) templ.Component {
	p := view.Player
	return Page(p.FullName(), live.RoomPlayers, component(func(ctx context.Context, h *htmlWriter) {
		h.printf(`<section class="detail" data-id="%s"><header>`, esc(p.ID))
		avatar(h, p)
		h.printf(`<h1>%s</h1>`, esc(orDash(p.FullName())))
		h.printf(`<a class="button" href="%s">Edit</a> <a class="button danger" href="%s">Delete</a></header>`,
			esc(path("players", p.ID, "edit")), esc(path("players", p.ID, "delete")))

		age := "—"
		if view.HasAge {
			age = itoa(view.Age)
		}
		h.raw(`<dl>`)
		for _, row := range [][2]string{
			{"Birthdate", p.Birthdate}, {"Age", age}, {"Nation", p.Nation}, {"Plays in", p.PlaysIn},
			{"Position", p.Position}, {"Club", p.Club}, {"Level", p.Level}, {"Height", p.Height},
			{"Foot", p.Foot}, {"Note", p.Note},
		} {
			h.printf(`<dt>%s</dt><dd>%s</dd>`, row[0], esc(orDash(row[1])))
		}
		h.raw(`</dl>`)

		h.raw(`<h2>Evaluations</h2>`)
		notice(h, "notice-error", view.EvaluationsError)
		if len(view.Evaluations) == 0 && view.EvaluationsError == "" {
			h.raw(`<p class="empty">No evaluations yet.</p>`)
		}
		h.raw(`<ul class="evaluations">`)
		for _, e := range view.Evaluations {
			evaluationItem(h, e)
		}
		h.raw(`</ul></section>`)
	}))
}

func evaluationItem(h *htmlWriter, e models.Evaluation) {
	h.printf(`<li class="evaluation"><strong>%s</strong> <span class="average">Ø %.1f</span> `, esc(orDash(e.ScoutName)), e.Average())
	h.printf(`<span>T %d · P %d · I %d · M %d · Imp %d</span>`,
		e.RatingTechnique, e.RatingPhysical, e.RatingIntelligence, e.RatingMentality, e.RatingImpact)
	for _, text := range []struct {
		label string
		value *string
	}{{"Strengths", e.Strengths}, {"Weaknesses", e.Weaknesses}, {"Remarks", e.Remarks}} {
		if text.value != nil && *text.value != "" {
			h.printf(`<p><em>%s:</em> %s</p>`, text.label, esc(*text.value))
		}
	}
	h.raw(`</li>`)
}

// PlayerForm renders the new and edit form. p carries the current values.
func PlayerForm(title, action string, p models.Player, errMsg string) templ.Component {
	return Page(title, "", component(func(ctx context.Context, h *htmlWriter) {
		h.printf(`<section class="form"><h1>%s</h1>`, esc(title))
		notice(h, "notice-error", errMsg)
		h.printf(`<form method="post" action="%s" enctype="multipart/form-data">`, esc(action))
		field(h, "First name", "firstName", p.FirstName, "text", true)
		field(h, "Last name", "lastName", p.LastName, "text", true)
		field(h, "Birthdate (YYYY-MM-DD or DD.MM.YYYY)", "birthdate", p.Birthdate, "text", true)
		field(h, "Nation", "nation", p.Nation, "text", true)
		field(h, "Plays in", "playsIn", p.PlaysIn, "text", false)
		field(h, "Position", "position", p.Position, "text", false)
		field(h, "Club", "club", p.Club, "text", false)
		field(h, "Level", "level", p.Level, "text", false)
		field(h, "Height", "height", p.Height, "text", false)
		field(h, "Foot", "foot", p.Foot, "text", false)
		textarea(h, "Note", "note", p.Note)
		h.printf(`<label><input type="checkbox" name="shortlisted" value="true"%s> Shortlisted</label>`, checked(p.Shortlisted))
		if p.PhotoData != "" {
			avatar(h, p)
		}
		h.raw(`<label>Photo <input type="file" name="photo" accept="image/*"></label>`)
		h.raw(`<button type="submit">Save</button>`)
		h.raw(`</form></section>`)
	}))
}
