package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/Dosada05/scouting-system/models"
	"github.com/Dosada05/scouting-system/services"
)

// AdminPage renders the maintenance screen. message is the result of the
// last action, errMsg its failure.
func AdminPage(message, errMsg string) templ.Component {
	return Page("Admin", "", component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section class="admin"><h1>Admin</h1>`)
		notice(h, "notice-success", message)
		notice(h, "notice-error", errMsg)

		h.raw(`<h2>Seed data</h2><form method="post" action="/admin/seed" id="seed">`)
		h.raw(`<select name="entity">`)
		for _, e := range []models.SeedEntity{models.SeedPlayers, models.SeedVenues} {
			h.printf(`<option value="%s">%s</option>`, e, e)
		}
		h.printf(`</select><input type="number" name="count" value="10" min="%d" max="%d"><button type="submit">Seed</button></form>`,
			services.MinSeedCount, services.MaxSeedCount)

		h.raw(`<h2>Duplicates</h2><form method="post" action="/admin/dedupe" id="dedupe">`)
		h.raw(`<p>Removes duplicate player records on the backend.</p><button type="submit">Clean players</button></form>`)
		h.raw(`</section>`)
	}))
}
