package views

import (
	"context"
	"fmt"

	"github.com/a-h/templ"

	"github.com/Dosada05/scouting-system/editor"
	"github.com/Dosada05/scouting-system/live"
	"github.com/Dosada05/scouting-system/models"
	"github.com/Dosada05/scouting-system/services"
)

// TournamentFormData is the state of the tournament form between submits.
// Suggestions are computed on the server from the two search boxes.
type TournamentFormData struct {
	Title        string
	Action       string
	Input        services.TournamentInput
	VenueSearch  string
	PlayerSearch string
	Suggestions  *services.TournamentSuggestions
	Error        string
}

func TournamentForm(d TournamentFormData) templ.Component {
	return Page(d.Title, "", component(func(ctx context.Context, h *htmlWriter) {
		in := d.Input
		h.printf(`<section class="form"><h1>%s</h1>`, esc(d.Title))
		notice(h, "notice-error", d.Error)
		h.printf(`<form method="post" action="%s">`, esc(d.Action))
		field(h, "Name", "name", in.Name, "text", true)
		field(h, "Country", "country", in.Country, "text", false)
		field(h, "Start", "start", in.Start, "date", false)
		field(h, "End", "end", in.End, "date", false)
		textarea(h, "Note", "note", in.Note)

		var sg services.TournamentSuggestions
		if d.Suggestions != nil {
			sg = *d.Suggestions
			notice(h, "notice-error", sg.Error)
		}

		h.raw(`<fieldset class="venue"><legend>Venue</legend>`)
		h.printf(`<input type="hidden" name="venueId" value="%s">`, esc(in.VenueID))
		if in.VenueID != "" {
			name := in.VenueID
			if sg.Venue != nil {
				name = sg.Venue.Name
			}
			h.printf(`<p class="chosen">Selected: %s <button type="submit" name="action" value="venue:">Clear</button></p>`, esc(name))
		}
		h.printf(`<input type="search" name="venueSearch" value="%s" placeholder="Search venues">`, esc(d.VenueSearch))
		h.raw(`<button type="submit" name="action" value="suggest">Search</button><ul class="suggestions venues">`)
		for _, v := range sg.Venues {
			h.printf(`<li><button type="submit" name="action" value="venue:%s">%s</button></li>`, esc(v.ID), esc(orDash(v.Name)))
		}
		h.raw(`</ul></fieldset>`)

		h.raw(`<fieldset class="participants"><legend>Participants</legend><ul class="chosen">`)
		chosen := make(map[string]string, len(sg.Chosen))
		for _, p := range sg.Chosen {
			chosen[p.ID] = p.FullName()
		}
		for _, id := range in.Participants {
			name := chosen[id]
			if name == "" {
				name = id
			}
			h.printf(`<li><input type="hidden" name="participants" value="%s">%s `, esc(id), esc(name))
			h.printf(`<button type="submit" name="action" value="remove-participant:%s">Remove</button></li>`, esc(id))
		}
		h.raw(`</ul>`)
		h.printf(`<input type="search" name="playerSearch" value="%s" placeholder="Search players">`, esc(d.PlayerSearch))
		h.raw(`<button type="submit" name="action" value="suggest">Search</button><ul class="suggestions players">`)
		for _, p := range sg.Players {
			h.printf(`<li><button type="submit" name="action" value="add-participant:%s">%s</button></li>`, esc(p.ID), esc(orDash(p.FullName())))
		}
		h.raw(`</ul></fieldset>`)

		h.raw(`<button type="submit" name="action" value="save">Save</button></form></section>`)
	}))
}

// TournamentEditor renders the tournament view with the tab in view.Tab.
func TournamentEditor(view *services.EditorView) templ.Component {
	t := view.Tournament
	return Page(t.Name, live.TournamentRoom(t.ID), component(func(ctx context.Context, h *htmlWriter) {
		h.printf(`<section class="tournament" data-id="%s"><header><h1>%s</h1>`, esc(t.ID), esc(orDash(t.Name)))
		h.printf(`<p class="meta">%s – %s · %s · %s</p>`, esc(orDash(t.Start)), esc(orDash(t.End)), esc(orDash(t.VenueName())), esc(orDash(t.Country)))
		h.printf(`<a class="button" href="%s">Edit</a> <a class="button danger" href="%s">Delete</a></header>`,
			esc(path("tournaments", t.ID, "edit")), esc(path("tournaments", t.ID, "delete")))
		notice(h, "notice-error", view.Error)

		h.raw(`<nav class="tabs">`)
		for _, tab := range editor.Tabs {
			class := ""
			if tab == view.Tab {
				class = ` class="active"`
			}
			h.printf(`<a%s data-tab="%s" href="%s">%s</a>`, class, tab, esc(tab.Path(t.ID)), tab.Label())
		}
		h.raw(`</nav>`)

		switch view.Tab {
		case editor.TabTeams:
			teamsTab(h, view)
		case editor.TabGames:
			gamesTab(h, view)
		case editor.TabEvaluation:
			evaluationTab(h, view)
		default:
			overviewTab(h, view)
		}
		h.raw(`</section>`)
	}))
}

func overviewTab(h *htmlWriter, view *services.EditorView) {
	if view.Overview == nil {
		return
	}
	ov := view.Overview
	h.printf(`<div class="overview" data-evaluations="%d"><h2>Teams</h2>`, ov.Evaluations)
	if len(ov.Teams) == 0 {
		h.raw(`<p class="empty">No teams yet.</p>`)
	}
	for _, ts := range ov.Teams {
		h.printf(`<article class="team" data-id="%s"><h3><span class="kit" style="background:%s"></span> %s</h3><ol>`,
			esc(ts.Team.ID), esc(ts.Team.KitColor), esc(orDash(ts.Team.Name)))
		for _, m := range ts.Members {
			h.printf(`<li><span class="number">%s</span> %s</li>`, esc(m.Number), esc(m.Name))
		}
		h.raw(`</ol></article>`)
	}

	h.raw(`<h2>Participants</h2><table id="participants"><thead><tr><th>Name</th><th>Club</th><th>Evaluations</th><th>Ø</th></tr></thead><tbody>`)
	for _, ps := range ov.Participants {
		avg := "—"
		if ps.Evaluations > 0 {
			avg = fmt.Sprintf("%.1f", ps.Average)
		}
		h.printf(`<tr data-id="%s"><td><a href="%s">%s</a></td><td>%s</td><td>%d</td><td>%s</td></tr>`,
			esc(ps.Player.ID), esc(path("players", ps.Player.ID)), esc(orDash(ps.Player.FullName())), esc(orDash(ps.Player.Club)),
			ps.Evaluations, avg)
	}
	if len(ov.Participants) == 0 {
		h.raw(`<tr><td colspan="4" class="empty">No participants.</td></tr>`)
	}
	h.raw(`</tbody></table></div>`)
}

func teamsTab(h *htmlWriter, view *services.EditorView) {
	t := view.Tournament
	h.raw(`<div class="teams"><h2>Teams</h2><ul>`)
	for _, team := range t.Teams {
		h.printf(`<li data-id="%s"><span class="kit" style="background:%s"></span> %s (%d) <a class="danger" href="%s">Delete</a></li>`,
			esc(team.ID), esc(team.KitColor), esc(orDash(team.Name)), len(team.Roster),
			esc(path("tournaments", t.ID, "teams", team.ID, "delete")))
	}
	h.raw(`</ul>`)

	form := view.Drafts.Team
	h.raw(`<h2>New team</h2>`)
	notice(h, "notice-error", view.Drafts.TeamError)
	if len(view.Participants) == 0 {
		h.raw(`<p class="empty">Add participants to the tournament first.</p>`)
	}
	h.printf(`<form method="post" action="%s" id="team-builder">`, esc(path("tournaments", t.ID, "teams")))
	field(h, "Name", "name", form.Name, "text", true)
	h.printf(`<label>Kit colour <input type="color" name="kitColor" value="%s"></label>`, esc(form.KitColor))

	h.raw(`<datalist id="participant-names">`)
	for _, p := range view.Participants {
		h.printf(`<option value="%s">`, esc(p.FullName()))
	}
	h.raw(`</datalist><ol class="roster">`)
	for i, row := range form.Rows {
		state := "unresolved"
		if row.PlayerID != "" {
			state = "resolved"
		}
		h.printf(`<li class="%s" data-row="%d">`, state, i)
		h.printf(`<input name="rowSearch" list="participant-names" value="%s" placeholder="Player">`, esc(row.Search))
		h.printf(`<input name="rowNumber" value="%s" size="3">`, esc(row.Number))
		h.printf(`<button type="submit" name="action" value="remove-row:%d">Remove</button></li>`, i)
	}
	h.raw(`</ol>`)
	h.printf(`<button type="submit" name="action" value="%s">Add player</button> `, services.TeamActionAddRow)
	h.printf(`<button type="submit" name="action" value="%s">Save draft</button> `, services.TeamActionSave)
	h.printf(`<button type="submit" name="action" value="%s">Create team</button>`, services.TeamActionCreate)
	h.raw(`</form></div>`)
}

func gamesTab(h *htmlWriter, view *services.EditorView) {
	t := view.Tournament
	h.raw(`<div class="games"><h2>Games</h2><table id="games"><thead><tr><th>Kickoff</th><th>Team A</th><th>Team B</th><th>Pitch</th><th></th></tr></thead><tbody>`)
	for _, g := range view.Games {
		teamB := g.TeamB
		if g.Training {
			teamB = "Training"
		}
		h.printf(`<tr data-id="%s"><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>`,
			esc(g.Game.ID), esc(orDash(g.Kickoff)), esc(orDash(g.TeamA)), esc(teamB), esc(orDash(g.PitchLabel)))
		h.printf(`<a href="%s">Open</a> `, esc(path("tournaments", t.ID, "games", g.Game.ID)))
		h.printf(`<form method="post" action="%s?gameId=%s" class="inline"><button type="submit">Edit</button></form> `,
			esc(path("tournaments", t.ID, "games", "form")), esc(g.Game.ID))
		h.printf(`<a class="danger" href="%s">Delete</a></td></tr>`, esc(path("tournaments", t.ID, "games", g.Game.ID, "delete")))
	}
	if len(view.Games) == 0 {
		h.raw(`<tr><td colspan="5" class="empty">No games scheduled.</td></tr>`)
	}
	h.raw(`</tbody></table>`)

	if !view.Drafts.ShowGameForm {
		h.printf(`<form method="post" action="%s"><button type="submit">Add game</button></form></div>`, esc(path("tournaments", t.ID, "games", "form")))
		return
	}
	gameForm(h, t, view.Drafts.Game, view.Drafts.GameError)
	h.raw(`</div>`)
}

func gameForm(h *htmlWriter, t models.Tournament, form editor.GameForm, errMsg string) {
	title := "New game"
	if form.Editing() {
		title = "Edit game"
	}
	h.printf(`<h2>%s</h2>`, title)
	notice(h, "notice-error", errMsg)
	h.printf(`<form method="post" action="%s" id="game-form">`, esc(path("tournaments", t.ID, "games")))
	h.printf(`<input type="hidden" name="id" value="%s">`, esc(form.ID))
	teamSelect(h, t, "Team A *", "teamAId", form.TeamAID, "Choose a team")
	teamSelect(h, t, "Team B", "teamBId", form.TeamBID, "Training (no opponent)")
	field(h, "Date", "date", form.Date, "date", false)
	field(h, "Time", "time", form.Time, "time", false)
	h.raw(`<label>Pitch <select name="pitchId"><option value="">—</option>`)
	if t.Venue != nil {
		for _, p := range t.Venue.Pitches {
			h.printf(`<option value="%s"%s>%s</option>`, esc(p.ID), selected(p.ID == form.PitchID), esc(p.Label))
		}
	}
	h.raw(`</select></label>`)
	textarea(h, "Note", "note", form.Note)
	h.raw(`<button type="submit">Save game</button> `)
	h.printf(`<button type="submit" formaction="%s">Cancel</button></form>`, esc(path("tournaments", t.ID, "games", "cancel")))
}

func teamSelect(h *htmlWriter, t models.Tournament, label, name, value, empty string) {
	h.printf(`<label>%s <select name="%s"><option value="">%s</option>`, esc(label), name, esc(empty))
	for _, team := range t.Teams {
		h.printf(`<option value="%s"%s>%s</option>`, esc(team.ID), selected(team.ID == value), esc(team.Name))
	}
	h.raw(`</select></label>`)
}

func evaluationTab(h *htmlWriter, view *services.EditorView) {
	t := view.Tournament
	d := view.Drafts
	form := d.Evaluation
	h.raw(`<div class="evaluation"><h2>Evaluate a player</h2>`)
	notice(h, "notice-error", d.EvalError)
	notice(h, "notice-success", d.EvalNotice)

	h.printf(`<form method="post" action="%s" id="evaluation-player"><select name="playerId"><option value="">Choose a participant</option>`,
		esc(path("tournaments", t.ID, "evaluation", "player")))
	for _, p := range view.Participants {
		h.printf(`<option value="%s"%s>%s</option>`, esc(p.ID), selected(p.ID == form.PlayerID), esc(p.FullName()))
	}
	h.raw(`</select><button type="submit">Select</button></form>`)

	if form.PlayerID == "" {
		h.raw(`</div>`)
		return
	}

	h.printf(`<form method="post" action="%s" id="evaluation-form">`, esc(path("tournaments", t.ID, "evaluations")))
	h.printf(`<input type="hidden" name="playerId" value="%s">`, esc(form.PlayerID))
	field(h, "Scout", "scoutName", form.ScoutName, "text", false)
	for _, rf := range form.Ratings.Fields() {
		h.printf(`<label>%s <select name="%s">`, rf.Label, rf.Key)
		for v := editor.MinRating; v <= editor.MaxRating; v++ {
			h.printf(`<option value="%d"%s>%d</option>`, v, selected(v == rf.Value), v)
		}
		h.raw(`</select></label>`)
	}
	textarea(h, "Strengths", "strengths", form.Strengths)
	textarea(h, "Weaknesses", "weaknesses", form.Weaknesses)
	textarea(h, "Remarks", "remarks", form.Remarks)
	h.raw(`<button type="submit">Save evaluation</button></form>`)

	h.raw(`<h3>Previous evaluations</h3><ul class="evaluations">`)
	for _, e := range view.Evaluations {
		evaluationItem(h, e)
	}
	if len(view.Evaluations) == 0 {
		h.raw(`<li class="empty">None yet.</li>`)
	}
	h.raw(`</ul></div>`)
}
