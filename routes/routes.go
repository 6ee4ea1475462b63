package routes

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Dosada05/scouting-system/docs"
	"github.com/Dosada05/scouting-system/handlers"
	"github.com/Dosada05/scouting-system/middleware"
)

type Handlers struct {
	Dashboard   *handlers.DashboardHandler
	Players     *handlers.PlayerHandler
	Venues      *handlers.VenueHandler
	Tournaments *handlers.TournamentHandler
	Editor      *handlers.EditorHandler
	Games       *handlers.GameHandler
	Admin       *handlers.AdminHandler
	WebSocket   *handlers.WebSocketHandler
}

func SetupRoutes(router *chi.Mux, h Handlers, allowedOrigins []string, logger *slog.Logger) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(middleware.RequestLogger(logger))
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Location"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/healthz", handlers.Healthz)
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	router.Get("/ws/{room}", h.WebSocket.ServeWs)

	router.Get("/", h.Dashboard.Stats)

	router.Route("/players", func(r chi.Router) {
		r.Get("/", h.Players.ListPlayers)
		r.Post("/", h.Players.CreatePlayer)
		r.Get("/new", h.Players.NewPlayerForm)
		r.Route("/{playerID}", func(r chi.Router) {
			r.Get("/", h.Players.GetPlayer)
			r.Post("/", h.Players.UpdatePlayer)
			r.Put("/", h.Players.UpdatePlayer)
			r.Delete("/", h.Players.DeletePlayer)
			r.Get("/edit", h.Players.EditPlayerForm)
			r.Get("/delete", h.Players.ConfirmDeletePlayer)
			r.Post("/delete", h.Players.DeletePlayer)
		})
	})

	router.Route("/venues", func(r chi.Router) {
		r.Get("/", h.Venues.ListVenues)
		r.Post("/", h.Venues.CreateVenue)
		r.Get("/new", h.Venues.NewVenueForm)
		r.Route("/{venueID}", func(r chi.Router) {
			r.Get("/", h.Venues.GetVenue)
			r.Post("/", h.Venues.UpdateVenue)
			r.Put("/", h.Venues.UpdateVenue)
			r.Delete("/", h.Venues.DeleteVenue)
			r.Get("/edit", h.Venues.EditVenueForm)
			r.Get("/delete", h.Venues.ConfirmDeleteVenue)
			r.Post("/delete", h.Venues.DeleteVenue)
		})
	})

	router.Route("/tournaments", func(r chi.Router) {
		r.Get("/", h.Tournaments.ListTournaments)
		r.Post("/", h.Tournaments.CreateTournament)
		r.Get("/new", h.Tournaments.NewTournamentForm)
		r.Get("/suggestions", h.Tournaments.Suggestions)

		r.Route("/{tournamentID}", func(r chi.Router) {
			r.Get("/", h.Editor.ShowTournament)
			r.Post("/", h.Tournaments.UpdateTournament)
			r.Put("/", h.Tournaments.UpdateTournament)
			r.Delete("/", h.Tournaments.DeleteTournament)
			r.Get("/edit", h.Tournaments.EditTournamentForm)
			r.Get("/delete", h.Tournaments.ConfirmDeleteTournament)
			r.Post("/delete", h.Tournaments.DeleteTournament)
			r.Get("/{tab}", h.Editor.ShowTournament)

			r.Post("/teams", h.Editor.ApplyTeamForm)
			r.Route("/teams/{teamID}", func(r chi.Router) {
				r.Put("/", h.Editor.UpdateTeam)
				r.Delete("/", h.Editor.DeleteTeam)
				r.Get("/delete", h.Editor.ConfirmDeleteTeam)
				r.Post("/delete", h.Editor.DeleteTeam)
			})

			r.Post("/games", h.Editor.SubmitGame)
			r.Post("/games/form", h.Editor.OpenGameForm)
			r.Post("/games/cancel", h.Editor.CancelGame)
			r.Route("/games/{gameID}", func(r chi.Router) {
				r.Get("/", h.Games.GetGame)
				r.Delete("/", h.Games.DeleteGame)
				r.Get("/delete", h.Games.ConfirmDeleteGame)
				r.Post("/delete", h.Games.DeleteGame)
				r.Post("/video", h.Games.UploadVideo)
			})

			r.Post("/evaluation/player", h.Editor.SelectEvaluationPlayer)
			r.Post("/evaluations", h.Editor.SubmitEvaluation)
		})
	})

	router.Route("/admin", func(r chi.Router) {
		r.Get("/", h.Admin.AdminPage)
		r.Post("/seed", h.Admin.Seed)
		r.Post("/dedupe", h.Admin.DedupePlayers)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})
}
