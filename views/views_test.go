package views

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"

	"github.com/Dosada05/scouting-system/editor"
	"github.com/Dosada05/scouting-system/listing"
	"github.com/Dosada05/scouting-system/models"
	"github.com/Dosada05/scouting-system/services"
)

func render(t *testing.T, c templ.Component) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func TestPlayersListRowsAndSortLinks(t *testing.T) {
	rows := []services.PlayerRow{
		{Player: models.Player{ID: "p1", FirstName: "Ada", LastName: "<script>", Club: "FC"}, Age: 17, HasAge: true},
		{Player: models.Player{ID: "p2", FirstName: "Ben"}},
	}
	res := listing.Apply(rows, listing.Query{Sort: listing.SortState{Field: "name", Dir: listing.Asc}, Page: 1, PerPage: 10}, services.PlayerListSpec())
	doc := render(t, PlayersList(&services.PlayerListView{Result: res}))

	trs := doc.Find("table#players tbody tr[data-id]")
	if trs.Length() != 2 {
		t.Fatalf("rows = %d, want 2", trs.Length())
	}
	first := trs.First()
	if got := first.Find("td").First().Text(); got != "Ada <script>" {
		t.Errorf("name cell = %q", got)
	}
	if got := strings.TrimSpace(first.Find("td").Eq(4).Text()); got != "17" {
		t.Errorf("age cell = %q", got)
	}
	if got := trs.Eq(1).Find("td").Eq(4).Text(); got != "—" {
		t.Errorf("missing age = %q", got)
	}

	href, _ := doc.Find(`a.sort[data-field="name"]`).Attr("href")
	if !strings.Contains(href, "dir=desc") {
		t.Errorf("active column link %q should flip to desc", href)
	}
	href, _ = doc.Find(`a.sort[data-field="club"]`).Attr("href")
	if !strings.Contains(href, "sort=club") || !strings.Contains(href, "dir=asc") {
		t.Errorf("club link = %q", href)
	}
	if doc.Find(`body[data-room="players"]`).Length() != 1 {
		t.Error("players page should join the players room")
	}
}

func TestPlayersListEmptyAndError(t *testing.T) {
	view := &services.PlayerListView{Result: listing.Paginate([]services.PlayerRow{}, 1, 10), Error: "Loading players failed. Please try again."}
	doc := render(t, PlayersList(view))
	if doc.Find(".notice-error").Text() != view.Error {
		t.Errorf("error notice = %q", doc.Find(".notice-error").Text())
	}
	if doc.Find("td.empty").Length() != 1 {
		t.Error("expected empty row")
	}
	if doc.Find(`a[rel="next"]`).Length() != 0 {
		t.Error("single page should have no next link")
	}
}

func editorView(tab editor.Tab) *services.EditorView {
	teamB := "t2"
	kick := "2024-06-01T10:00:00Z"
	tour := models.Tournament{
		ID: "e1", Name: "Cup", Start: "2024-06-01", End: "2024-06-03",
		Participants: []string{"p1", "p2"},
		Teams: []models.Team{
			{ID: "t1", Name: "Red", KitColor: "#ff0000", Roster: []models.RosterEntry{{PlayerID: "p1", Number: "2"}}},
			{ID: "t2", Name: "Blue", KitColor: "#0000ff"},
		},
		Games: []models.Game{{ID: "g1", TeamAID: "t1", TeamBID: &teamB, Kickoff: &kick}},
	}
	players := []models.Player{{ID: "p1", FirstName: "Ada", LastName: "A"}, {ID: "p2", FirstName: "Ben", LastName: "B"}}
	ov := editor.BuildOverview(tour, players, nil)
	drafts := editor.NewDrafts(tour, "Scout")
	return &services.EditorView{
		Tournament:   tour,
		Tab:          tab,
		Participants: players,
		Overview:     &ov,
		Games:        editor.DescribeGames(tour, time.UTC),
		Drafts:       drafts,
	}
}

func TestTournamentEditorOverview(t *testing.T) {
	doc := render(t, TournamentEditor(editorView(editor.TabOverview)))
	if doc.Find("article.team").Length() != 2 {
		t.Errorf("teams = %d", doc.Find("article.team").Length())
	}
	if doc.Find("table#participants tbody tr[data-id]").Length() != 2 {
		t.Error("expected both participants")
	}
	if doc.Find(`nav.tabs a.active[data-tab="overview"]`).Length() != 1 {
		t.Error("overview tab should be active")
	}
	if doc.Find(`body[data-room="tournament_e1"]`).Length() != 1 {
		t.Error("editor should join the tournament room")
	}
}

func TestTournamentEditorTeamsTab(t *testing.T) {
	view := editorView(editor.TabTeams)
	view.Drafts.Team.AddRow()
	view.Drafts.Team.Rows[0].Search = "Ada A"
	view.Drafts.Team.Rows[0].PlayerID = "p1"
	view.Drafts.TeamError = "Team name is required."
	doc := render(t, TournamentEditor(view))

	if doc.Find("#team-builder ol.roster li.resolved").Length() != 1 {
		t.Error("resolved row missing")
	}
	if v, _ := doc.Find(`#team-builder input[name="rowNumber"]`).Attr("value"); v != "2" {
		t.Errorf("suggested number = %q", v)
	}
	if doc.Find("#participant-names option").Length() != 2 {
		t.Error("datalist should offer every participant")
	}
	if !strings.Contains(doc.Find(".notice-error").Text(), "Team name") {
		t.Error("team error not shown")
	}
}

func TestTournamentEditorGamesTab(t *testing.T) {
	view := editorView(editor.TabGames)
	doc := render(t, TournamentEditor(view))
	if doc.Find("#game-form").Length() != 0 {
		t.Error("game form should be closed")
	}
	if doc.Find("table#games tbody tr[data-id]").Length() != 1 {
		t.Error("game row missing")
	}

	view.Drafts.ShowGameForm = true
	view.Drafts.Game = editor.GameForm{ID: "g1", TeamAID: "t1", Date: "2024-06-01", Time: "12:00"}
	doc = render(t, TournamentEditor(view))
	if doc.Find("#game-form").Length() != 1 {
		t.Fatal("game form should be open")
	}
	if v, _ := doc.Find(`#game-form select[name="teamAId"] option[selected]`).Attr("value"); v != "t1" {
		t.Errorf("team A selection = %q", v)
	}
	if doc.Find(`#game-form select[name="teamBId"] option[selected]`).Length() != 0 {
		t.Error("training game should have no team B selected")
	}
	if doc.Find("h2").Last().Text() != "Edit game" {
		t.Errorf("heading = %q", doc.Find("h2").Last().Text())
	}
}

func TestTournamentEditorEvaluationTab(t *testing.T) {
	view := editorView(editor.TabEvaluation)
	doc := render(t, TournamentEditor(view))
	if doc.Find("#evaluation-form").Length() != 0 {
		t.Error("form needs a selected player")
	}

	view.Drafts.Evaluation.PlayerID = "p2"
	doc = render(t, TournamentEditor(view))
	if doc.Find(`#evaluation-form select`).Length() != 5 {
		t.Errorf("rating selects = %d", doc.Find(`#evaluation-form select`).Length())
	}
	if v, _ := doc.Find(`#evaluation-form select[name="impact"] option[selected]`).Attr("value"); v != "3" {
		t.Errorf("default rating = %q", v)
	}
	if v, _ := doc.Find(`#evaluation-player option[selected]`).Attr("value"); v != "p2" {
		t.Errorf("selected player = %q", v)
	}
}

func TestTournamentFormSuggestions(t *testing.T) {
	doc := render(t, TournamentForm(TournamentFormData{
		Title:  "New tournament",
		Action: "/tournaments",
		Input:  services.TournamentInput{Name: "Cup", Participants: []string{"p1"}},
		Suggestions: &services.TournamentSuggestions{
			Venues:  []models.Venue{{ID: "v1", Name: "Park"}},
			Players: []models.Player{{ID: "p2", FirstName: "Ben"}},
			Chosen:  []models.Player{{ID: "p1", FirstName: "Ada"}},
		},
	}))
	if v, _ := doc.Find(`input[name="participants"]`).Attr("value"); v != "p1" {
		t.Errorf("hidden participant = %q", v)
	}
	if doc.Find(`button[value="add-participant:p2"]`).Length() != 1 {
		t.Error("player suggestion missing")
	}
	if doc.Find(`button[value="venue:v1"]`).Length() != 1 {
		t.Error("venue suggestion missing")
	}
}

func TestConfirmPagePostsConfirmation(t *testing.T) {
	doc := render(t, ConfirmPage("Delete player", "Really?", "/players/p1/delete", "/players/p1"))
	form := doc.Find("form")
	if action, _ := form.Attr("action"); action != "/players/p1/delete" {
		t.Errorf("action = %q", action)
	}
	if v, _ := form.Find(`input[name="confirm"]`).Attr("value"); v != "yes" {
		t.Errorf("confirm = %q", v)
	}
}

func TestDashboardShowsCountsAndErrors(t *testing.T) {
	doc := render(t, Dashboard(models.DashboardStats{
		PlayersTotal: 3,
		Upcoming:     []models.Tournament{{ID: "e1", Name: "Cup"}},
		Errors:       []string{"Loading venues failed. Please try again."},
	}))
	if got := doc.Find("#stat-players strong").Text(); got != "3" {
		t.Errorf("players stat = %q", got)
	}
	if doc.Find("#upcoming li[data-id]").Length() != 1 {
		t.Error("upcoming tournament missing")
	}
	if doc.Find(".notice-error").Length() != 1 {
		t.Error("error notice missing")
	}
}
