package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/Dosada05/scouting-system/editor"
	"github.com/Dosada05/scouting-system/live"
	"github.com/Dosada05/scouting-system/services"
)

// GameDetail shows one game with its lineup, videos and the upload form.
// notice is shown after a successful upload.
func GameDetail(view *services.GameDetailView, noticeMsg, errMsg string) templ.Component {
	t := view.Tournament
	s := view.Summary
	g := s.Game
	title := s.TeamA + " – " + s.TeamB
	if s.Training {
		title = s.TeamA + " training"
	}
	return Page(title, live.TournamentRoom(t.ID), component(func(ctx context.Context, h *htmlWriter) {
		h.printf(`<section class="game" data-id="%s"><header><h1>%s</h1>`, esc(g.ID), esc(title))
		h.printf(`<p class="meta">%s · %s · <a href="%s">%s</a></p></header>`,
			esc(orDash(s.Kickoff)), esc(orDash(s.PitchLabel)), esc(editor.TabGames.Path(t.ID)), esc(orDash(t.Name)))
		notice(h, "notice-success", noticeMsg)
		notice(h, "notice-error", errMsg)
		if g.Note != "" {
			h.printf(`<p class="note">%s</p>`, esc(g.Note))
		}

		if len(g.Lineup) > 0 {
			h.raw(`<h2>Lineup</h2><table id="lineup"><thead><tr><th>#</th><th>Player</th><th>Team</th><th>Position</th></tr></thead><tbody>`)
			for _, e := range g.Lineup {
				h.printf(`<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
					esc(e.Number), esc(e.PlayerID), esc(editor.TeamName(t, e.TeamID)), esc(orDash(e.Position)))
			}
			h.raw(`</tbody></table>`)
		}

		h.raw(`<h2>Videos</h2><ul id="videos">`)
		for _, v := range g.Videos {
			h.printf(`<li data-status="%s">%s <span class="status">%s</span></li>`, esc(string(v.Status)), esc(v.Name), esc(string(v.Status)))
		}
		if len(g.Videos) == 0 {
			h.raw(`<li class="empty">No videos.</li>`)
		}
		h.raw(`</ul>`)

		h.printf(`<form method="post" action="%s" enctype="multipart/form-data" id="video-upload">`, esc(path("tournaments", t.ID, "games", g.ID, "video")))
		h.raw(`<input type="file" name="video" accept="video/*" required>`)
		if !view.VideoStorage {
			h.raw(`<p class="hint">Object storage is not configured; only the file name is recorded.</p>`)
		}
		h.raw(`<button type="submit">Upload</button></form></section>`)
	}))
}
