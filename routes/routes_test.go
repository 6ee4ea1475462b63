package routes

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/Dosada05/scouting-system/handlers"
	"github.com/Dosada05/scouting-system/live"
	"github.com/Dosada05/scouting-system/models"
	"github.com/Dosada05/scouting-system/repositories"
	"github.com/Dosada05/scouting-system/services"
	"github.com/Dosada05/scouting-system/storage"
)

// backend serves the few REST endpoints the routes below touch.
type backend struct {
	mu          sync.Mutex
	players     []models.Player
	tournaments []models.Tournament
	failCreate  bool
}

func (b *backend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /players", func(w http.ResponseWriter, r *http.Request) { writeBody(w, b.players) })
	mux.HandleFunc("GET /players/{id}", func(w http.ResponseWriter, r *http.Request) {
		for _, p := range b.players {
			if p.ID == r.PathValue("id") {
				writeBody(w, p)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("GET /players/{id}/evaluations", func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, []models.Evaluation{})
	})
	mux.HandleFunc("POST /players", func(w http.ResponseWriter, r *http.Request) {
		if b.failCreate {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		var p models.Player
		json.NewDecoder(r.Body).Decode(&p)
		p.ID = "p-new"
		b.players = append(b.players, p)
		writeBody(w, p)
	})
	mux.HandleFunc("DELETE /players/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /venues", func(w http.ResponseWriter, r *http.Request) { writeBody(w, []models.Venue{}) })
	mux.HandleFunc("GET /tournaments", func(w http.ResponseWriter, r *http.Request) { writeBody(w, b.tournaments) })
	mux.HandleFunc("GET /tournaments/{id}", func(w http.ResponseWriter, r *http.Request) {
		for _, t := range b.tournaments {
			if t.ID == r.PathValue("id") {
				writeBody(w, t)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("POST /tournaments/{id}/teams", func(w http.ResponseWriter, r *http.Request) {
		var team models.Team
		json.NewDecoder(r.Body).Decode(&team)
		team.ID = "team-new"
		writeBody(w, team)
	})

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		mux.ServeHTTP(w, r)
	})
}

func writeBody(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func newTestBackend() *backend {
	return &backend{
		players: []models.Player{
			{ID: "p1", FirstName: "Mia", LastName: "Hansen", Birthdate: "2008-04-01", Nation: "NOR"},
			{ID: "p2", FirstName: "Lea", LastName: "Berg", Birthdate: "2009-01-15", Nation: "SWE"},
		},
		tournaments: []models.Tournament{
			{ID: "t1", Name: "Nordic Cup", Start: "2026-06-01", End: "2026-06-05", Participants: []string{"p1", "p2"}},
		},
	}
}

// newTestServer wires the router the same way main does, against b.
func newTestServer(t *testing.T, b *backend) *httptest.Server {
	t.Helper()
	api := httptest.NewServer(b.handler())
	t.Cleanup(api.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := repositories.NewClient(api.URL, 5*time.Second, logger)
	playerRepo := repositories.NewAPIPlayerRepository(client)
	venueRepo := repositories.NewAPIVenueRepository(client)
	tournamentRepo := repositories.NewAPITournamentRepository(client)
	evaluationRepo := repositories.NewAPIEvaluationRepository(client)

	drafts, err := storage.NewBoltDraftStore(filepath.Join(t.TempDir(), "drafts.db"), logger)
	if err != nil {
		t.Fatalf("drafts: %v", err)
	}
	t.Cleanup(func() { drafts.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	hub := live.NewHub(logger)
	go hub.Run(ctx)

	collections := services.NewCollections(playerRepo, tournamentRepo, venueRepo, logger)
	editorService := services.NewEditorService(tournamentRepo, evaluationRepo, collections.Players, drafts, hub, logger,
		services.EditorOptions{Location: time.UTC, ScoutName: "Scout"})

	router := chi.NewRouter()
	SetupRoutes(router, Handlers{
		Dashboard:   handlers.NewDashboardHandler(services.NewDashboardService(collections)),
		Players:     handlers.NewPlayerHandler(services.NewPlayerService(playerRepo, evaluationRepo, collections.Players, hub, logger)),
		Venues:      handlers.NewVenueHandler(services.NewVenueService(venueRepo, collections.Venues, hub, logger)),
		Tournaments: handlers.NewTournamentHandler(services.NewTournamentService(tournamentRepo, collections, drafts, hub, logger)),
		Editor:      handlers.NewEditorHandler(editorService),
		Games:       handlers.NewGameHandler(editorService),
		Admin:       handlers.NewAdminHandler(services.NewAdminService(repositories.NewAPIOpsRepository(client), collections, hub, logger)),
		WebSocket:   handlers.NewWebSocketHandler(hub, []string{"*"}, logger),
	}, []string{"*"}, logger)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

// noRedirect keeps 303 responses visible to the test.
var noRedirect = &http.Client{
	CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
}

func do(t *testing.T, method, target, contentType, body string, accept string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, target, strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	resp, err := noRedirect.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

const formType = "application/x-www-form-urlencoded"

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, newTestBackend())
	resp := do(t, http.MethodGet, srv.URL+"/healthz", "", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestPlayersListNegotiatesContent(t *testing.T) {
	srv := newTestServer(t, newTestBackend())

	resp := do(t, http.MethodGet, srv.URL+"/players?sort=name", "", "", "application/json")
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content-type = %q", ct)
	}
	var view services.PlayerListView
	if err := json.NewDecoder(resp.Body).Decode(&view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if view.Total != 2 || view.Items[0].Player.LastName != "Berg" {
		t.Errorf("view = %+v", view)
	}

	resp = do(t, http.MethodGet, srv.URL+"/players?q=hansen", "", "", "text/html")
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	rows := doc.Find("tr[data-id]")
	if rows.Length() != 1 || rows.AttrOr("data-id", "") != "p1" {
		t.Errorf("rows = %d", rows.Length())
	}
}

func TestCreatePlayerFromForm(t *testing.T) {
	srv := newTestServer(t, newTestBackend())

	form := url.Values{"firstName": {"Ida"}, "lastName": {"Lund"}, "birthdate": {"01.02.2010"}, "nation": {"DEN"}}
	resp := do(t, http.MethodPost, srv.URL+"/players", formType, form.Encode(), "")
	if resp.StatusCode != http.StatusSeeOther || resp.Header.Get("Location") != "/players/p-new" {
		t.Fatalf("status = %d location = %q", resp.StatusCode, resp.Header.Get("Location"))
	}

	form.Del("nation")
	resp = do(t, http.MethodPost, srv.URL+"/players", formType, form.Encode(), "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Find(".notice-error").Length() == 0 {
		t.Error("form shows no error")
	}
	if v, _ := doc.Find(`input[name="firstName"]`).Attr("value"); v != "Ida" {
		t.Errorf("firstName kept as %q", v)
	}
}

func TestCreatePlayerJSON(t *testing.T) {
	b := newTestBackend()
	srv := newTestServer(t, b)

	body := `{"firstName":"Ida","lastName":"Lund","birthdate":"2010-02-01","nation":"DEN"}`
	resp := do(t, http.MethodPost, srv.URL+"/players", "application/json", body, "")
	if resp.StatusCode != http.StatusCreated || resp.Header.Get("Location") != "/players/p-new" {
		t.Fatalf("status = %d location = %q", resp.StatusCode, resp.Header.Get("Location"))
	}

	b.failCreate = true
	resp = do(t, http.MethodPost, srv.URL+"/players", "application/json", body, "")
	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var env map[string]string
	json.NewDecoder(resp.Body).Decode(&env)
	if env["error"] != "Saving player failed (status 500)." {
		t.Errorf("error = %q", env["error"])
	}
}

func TestDeletePlayerNeedsConfirmation(t *testing.T) {
	srv := newTestServer(t, newTestBackend())

	resp := do(t, http.MethodDelete, srv.URL+"/players/p1", "", "", "application/json")
	if resp.StatusCode != http.StatusPreconditionRequired {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	resp = do(t, http.MethodGet, srv.URL+"/players/p1/delete", "", "", "")
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if action, _ := doc.Find("section.confirm form").Attr("action"); action != "/players/p1/delete" {
		t.Errorf("confirm form action = %q", action)
	}

	resp = do(t, http.MethodPost, srv.URL+"/players/p1/delete", formType, "confirm=yes", "")
	if resp.StatusCode != http.StatusSeeOther || resp.Header.Get("Location") != "/players" {
		t.Errorf("status = %d location = %q", resp.StatusCode, resp.Header.Get("Location"))
	}

	resp = do(t, http.MethodDelete, srv.URL+"/players/p1?confirm=true", "", "", "application/json")
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func TestTeamFormErrorSurvivesRedirect(t *testing.T) {
	srv := newTestServer(t, newTestBackend())

	form := url.Values{"name": {""}, "kitColor": {"#ff0000"}, "rowSearch": {"Mia Hansen"}, "rowNumber": {"9"}, "action": {"create"}}
	resp := do(t, http.MethodPost, srv.URL+"/tournaments/t1/teams", formType, form.Encode(), "")
	if resp.StatusCode != http.StatusSeeOther || resp.Header.Get("Location") != "/tournaments/t1/teams" {
		t.Fatalf("status = %d location = %q", resp.StatusCode, resp.Header.Get("Location"))
	}

	resp = do(t, http.MethodGet, srv.URL+"/tournaments/t1/teams", "", "", "")
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if msg := doc.Find(".notice-error").First().Text(); msg != "Team name is required." {
		t.Errorf("notice = %q", msg)
	}
	if v, _ := doc.Find(`input[name="rowSearch"]`).First().Attr("value"); v != "Mia Hansen" {
		t.Errorf("row search = %q", v)
	}
}

func TestCreateTeamJSON(t *testing.T) {
	srv := newTestServer(t, newTestBackend())

	body := `{"form":{"name":"Blue","kitColor":"#0000ff","rows":[{"search":"Mia Hansen","number":"9"}]},"action":"create"}`
	resp := do(t, http.MethodPost, srv.URL+"/tournaments/t1/teams", "application/json", body, "")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var env struct {
		Team models.Team `json:"team"`
	}
	json.NewDecoder(resp.Body).Decode(&env)
	if env.Team.ID != "team-new" || len(env.Team.Roster) != 1 || env.Team.Roster[0].PlayerID != "p1" {
		t.Errorf("team = %+v", env.Team)
	}
}

func TestUnknownTournamentIsNotFound(t *testing.T) {
	srv := newTestServer(t, newTestBackend())
	resp := do(t, http.MethodGet, srv.URL+"/tournaments/nope", "", "", "application/json")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func TestWebSocketRooms(t *testing.T) {
	srv := newTestServer(t, newTestBackend())

	resp := do(t, http.MethodGet, srv.URL+"/ws/lobby", "", "", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown room status = %d", resp.StatusCode)
	}

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/tournament_t1"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	conn.Close()
}
