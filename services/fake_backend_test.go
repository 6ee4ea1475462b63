package services

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/Dosada05/scouting-system/models"
	"github.com/Dosada05/scouting-system/repositories"
	"github.com/Dosada05/scouting-system/storage"
)

// fakeBackend is an in-memory stand-in for the scouting REST API.
type fakeBackend struct {
	mu          sync.Mutex
	players     []models.Player
	venues      []models.Venue
	tournaments []models.Tournament
	evaluations []models.Evaluation
	requests    []string
	bodies      map[string][]byte
	// failGetByID makes single-entity GETs fail with 500.
	failGetByID bool
	failStatus  map[string]int
	nextID      int
}

func (b *fakeBackend) id() string {
	b.nextID++
	return "id-" + strconv.Itoa(b.nextID)
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /players", func(w http.ResponseWriter, r *http.Request) { b.write(w, b.players) })
	mux.HandleFunc("GET /players/{id}", func(w http.ResponseWriter, r *http.Request) {
		if b.failGetByID {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		for _, p := range b.players {
			if p.ID == r.PathValue("id") {
				b.write(w, p)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("POST /players", func(w http.ResponseWriter, r *http.Request) {
		var p models.Player
		b.read(r, &p)
		p.ID = b.id()
		b.players = append(b.players, p)
		b.write(w, p)
	})
	mux.HandleFunc("PUT /players/{id}", func(w http.ResponseWriter, r *http.Request) {
		var p models.Player
		b.read(r, &p)
		for i := range b.players {
			if b.players[i].ID == r.PathValue("id") {
				b.players[i] = p
			}
		}
		b.write(w, p)
	})
	mux.HandleFunc("DELETE /players/{id}", func(w http.ResponseWriter, r *http.Request) {
		kept := b.players[:0]
		for _, p := range b.players {
			if p.ID != r.PathValue("id") {
				kept = append(kept, p)
			}
		}
		b.players = kept
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /players/{id}/evaluations", func(w http.ResponseWriter, r *http.Request) {
		out := []models.Evaluation{}
		for _, e := range b.evaluations {
			if e.PlayerID == r.PathValue("id") {
				out = append(out, e)
			}
		}
		b.write(w, out)
	})
	mux.HandleFunc("POST /evaluations", func(w http.ResponseWriter, r *http.Request) {
		var req models.EvaluationRequest
		b.read(r, &req)
		e := models.Evaluation{ID: b.id(), EventID: req.EventID, PlayerID: req.PlayerID, ScoutName: req.ScoutName,
			RatingTechnique: req.RatingTechnique, RatingPhysical: req.RatingPhysical, RatingIntelligence: req.RatingIntelligence,
			RatingMentality: req.RatingMentality, RatingImpact: req.RatingImpact,
			Strengths: req.Strengths, Weaknesses: req.Weaknesses, Remarks: req.Remarks}
		b.evaluations = append(b.evaluations, e)
		b.write(w, e)
	})

	mux.HandleFunc("GET /venues", func(w http.ResponseWriter, r *http.Request) { b.write(w, b.venues) })

	mux.HandleFunc("GET /tournaments", func(w http.ResponseWriter, r *http.Request) { b.write(w, b.tournaments) })
	mux.HandleFunc("GET /tournaments/{id}", func(w http.ResponseWriter, r *http.Request) {
		if t := b.tournament(r.PathValue("id")); t != nil {
			b.write(w, t)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("POST /tournaments", func(w http.ResponseWriter, r *http.Request) {
		var req models.TournamentRequest
		b.read(r, &req)
		t := models.Tournament{ID: b.id(), Name: req.Name, Participants: req.Participants}
		b.tournaments = append(b.tournaments, t)
		b.write(w, t)
	})
	mux.HandleFunc("PUT /tournaments/{id}", func(w http.ResponseWriter, r *http.Request) {
		var req models.TournamentRequest
		b.read(r, &req)
		t := b.tournament(r.PathValue("id"))
		if t == nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		t.Name = req.Name
		b.write(w, t)
	})
	mux.HandleFunc("PUT /tournaments/{id}/participants", func(w http.ResponseWriter, r *http.Request) {
		var req models.ParticipantsRequest
		b.read(r, &req)
		if t := b.tournament(r.PathValue("id")); t != nil {
			t.Participants = req.Participants
		}
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("POST /tournaments/{id}/teams", func(w http.ResponseWriter, r *http.Request) {
		var team models.Team
		b.read(r, &team)
		team.ID = b.id()
		t := b.tournament(r.PathValue("id"))
		t.Teams = append(t.Teams, team)
		b.write(w, team)
	})
	mux.HandleFunc("POST /tournaments/{id}/games", func(w http.ResponseWriter, r *http.Request) {
		var req models.GameRequest
		b.read(r, &req)
		g := models.Game{ID: b.id(), TeamAID: req.TeamAID, TeamBID: req.TeamBID, Kickoff: req.Kickoff, PitchID: req.PitchID}
		t := b.tournament(r.PathValue("id"))
		t.Games = append(t.Games, g)
		b.write(w, g)
	})
	mux.HandleFunc("DELETE /tournaments/{id}/games/{gameId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("PUT /tournaments/{id}/games/{gameId}/video", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	mux.HandleFunc("POST /seed", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	mux.HandleFunc("POST /ops/dedupe-players", func(w http.ResponseWriter, r *http.Request) {
		b.write(w, models.DedupeResult{Removed: 3, Kept: 12})
	})

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		key := r.Method + " " + r.URL.Path
		b.requests = append(b.requests, key)
		if code, ok := b.failStatus[key]; ok {
			w.WriteHeader(code)
			return
		}
		mux.ServeHTTP(w, r)
	})
}

func (b *fakeBackend) tournament(id string) *models.Tournament {
	for i := range b.tournaments {
		if b.tournaments[i].ID == id {
			return &b.tournaments[i]
		}
	}
	return nil
}

func (b *fakeBackend) read(r *http.Request, v interface{}) {
	data, _ := io.ReadAll(r.Body)
	if b.bodies == nil {
		b.bodies = map[string][]byte{}
	}
	b.bodies[r.Method+" "+r.URL.Path] = data
	json.Unmarshal(data, v)
}

func (b *fakeBackend) write(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func (b *fakeBackend) requested(key string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, r := range b.requests {
		if r == key {
			return true
		}
	}
	return false
}

type recordingNotifier struct {
	mu    sync.Mutex
	rooms []string
}

func (n *recordingNotifier) BroadcastToRoom(roomID string, message interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.rooms = append(n.rooms, roomID)
}

func (n *recordingNotifier) got(room string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, r := range n.rooms {
		if r == room {
			return true
		}
	}
	return false
}

type testEnv struct {
	backend     *fakeBackend
	notifier    *recordingNotifier
	collections *Collections
	drafts      *storage.BoltDraftStore
	players     PlayerService
	venues      VenueService
	tournaments TournamentService
	editor      EditorService
	admin       AdminService
	dashboard   DashboardService
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEnv(t *testing.T, backend *fakeBackend, opts EditorOptions) *testEnv {
	t.Helper()
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	logger := discardLogger()
	client := repositories.NewClient(srv.URL, 5*time.Second, logger)
	playerRepo := repositories.NewAPIPlayerRepository(client)
	venueRepo := repositories.NewAPIVenueRepository(client)
	tournamentRepo := repositories.NewAPITournamentRepository(client)
	evaluationRepo := repositories.NewAPIEvaluationRepository(client)
	opsRepo := repositories.NewAPIOpsRepository(client)

	drafts, err := storage.NewBoltDraftStore(filepath.Join(t.TempDir(), "drafts.db"), logger)
	if err != nil {
		t.Fatalf("drafts: %v", err)
	}
	t.Cleanup(func() { drafts.Close() })

	notifier := &recordingNotifier{}
	collections := NewCollections(playerRepo, tournamentRepo, venueRepo, logger)

	return &testEnv{
		backend:     backend,
		notifier:    notifier,
		collections: collections,
		drafts:      drafts,
		players:     NewPlayerService(playerRepo, evaluationRepo, collections.Players, notifier, logger),
		venues:      NewVenueService(venueRepo, collections.Venues, notifier, logger),
		tournaments: NewTournamentService(tournamentRepo, collections, drafts, notifier, logger),
		editor:      NewEditorService(tournamentRepo, evaluationRepo, collections.Players, drafts, notifier, logger, opts),
		admin:       NewAdminService(opsRepo, collections, notifier, logger),
		dashboard:   NewDashboardService(collections),
	}
}
