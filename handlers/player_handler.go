package handlers

import (
	"net/http"
	"strings"

	"github.com/Dosada05/scouting-system/models"
	"github.com/Dosada05/scouting-system/services"
	"github.com/Dosada05/scouting-system/views"
)

type PlayerHandler struct {
	playerService services.PlayerService
}

func NewPlayerHandler(ps services.PlayerService) *PlayerHandler {
	return &PlayerHandler{playerService: ps}
}

// ListPlayers godoc
// @Summary List players
// @Tags players
// @Description Searches, sorts and paginates the player collection.
// @Produce json
// @Param q query string false "Search text"
// @Param sort query string false "name, club, nation, level or age"
// @Param dir query string false "asc or desc"
// @Param page query int false "Page, starting at 1"
// @Param perPage query int false "10, 20, 50 or 100"
// @Success 200 {object} services.PlayerListView
// @Router /players [get]
func (h *PlayerHandler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	view, err := h.playerService.ListPlayers(r.Context(), parseListQuery(r))
	if err != nil {
		mapServiceErrorToHTTP(w, r, "Loading players", err)
		return
	}
	respond(w, r, http.StatusOK, view, views.PlayersList(view))
}

// GetPlayer godoc
// @Summary Get a player with age and evaluations
// @Tags players
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} services.PlayerDetailView
// @Failure 404 {object} map[string]string
// @Router /players/{playerID} [get]
func (h *PlayerHandler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	view, err := h.playerService.GetPlayerDetail(r.Context(), urlParam(r, "playerID"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, "Loading player", err)
		return
	}
	respond(w, r, http.StatusOK, view, views.PlayerDetail(view))
}

func (h *PlayerHandler) NewPlayerForm(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, views.PlayerForm("New player", "/players", models.Player{}, ""))
}

func (h *PlayerHandler) EditPlayerForm(w http.ResponseWriter, r *http.Request) {
	id := urlParam(r, "playerID")
	player, err := h.playerService.GetPlayer(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, "Loading player", err)
		return
	}
	render(w, r, http.StatusOK, views.PlayerForm("Edit player", "/players/"+id, *player, ""))
}

// CreatePlayer godoc
// @Summary Create a player
// @Tags players
// @Accept json
// @Produce json
// @Param body body services.PlayerInput true "Player"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /players [post]
func (h *PlayerHandler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	input, err := h.readInput(w, r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	player, err := h.playerService.CreatePlayer(r.Context(), input)
	if err != nil {
		h.formError(w, r, "New player", "/players", models.Player{}, input, "Saving player", err)
		return
	}
	redirect(w, r, "/players/"+player.ID, http.StatusCreated, jsonResponse{"player": player})
}

// UpdatePlayer handles both PUT from API clients and the HTML form post.
func (h *PlayerHandler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	id := urlParam(r, "playerID")
	input, err := h.readInput(w, r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	player, err := h.playerService.UpdatePlayer(r.Context(), id, input)
	if err != nil {
		h.formError(w, r, "Edit player", "/players/"+id, models.Player{ID: id}, input, "Saving player", err)
		return
	}
	redirect(w, r, "/players/"+player.ID, http.StatusOK, jsonResponse{"player": player})
}

func (h *PlayerHandler) ConfirmDeletePlayer(w http.ResponseWriter, r *http.Request) {
	id := urlParam(r, "playerID")
	player, err := h.playerService.GetPlayer(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, "Loading player", err)
		return
	}
	render(w, r, http.StatusOK, views.ConfirmPage("Delete player",
		"Delete "+player.FullName()+"? This cannot be undone.", "/players/"+id+"/delete", "/players/"+id))
}

// DeletePlayer godoc
// @Summary Delete a player
// @Tags players
// @Param playerID path string true "Player ID"
// @Param confirm query bool true "Must be true"
// @Success 204
// @Failure 428 {object} map[string]string "Confirmation missing"
// @Router /players/{playerID} [delete]
func (h *PlayerHandler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	if err := h.playerService.DeletePlayer(r.Context(), urlParam(r, "playerID"), confirmed(r)); err != nil {
		mapServiceErrorToHTTP(w, r, "Deleting player", err)
		return
	}
	if wantsJSON(r) || r.Method == http.MethodDelete {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, "/players", http.StatusSeeOther)
}

func (h *PlayerHandler) readInput(w http.ResponseWriter, r *http.Request) (services.PlayerInput, error) {
	var input services.PlayerInput
	if wantsJSON(r) {
		err := readJSON(w, r, &input)
		return input, err
	}
	if err := parseForm(r); err != nil {
		return input, err
	}
	input = services.PlayerInput{
		FirstName:   r.FormValue("firstName"),
		LastName:    r.FormValue("lastName"),
		Birthdate:   r.FormValue("birthdate"),
		Nation:      r.FormValue("nation"),
		PlaysIn:     r.FormValue("playsIn"),
		Position:    r.FormValue("position"),
		Club:        r.FormValue("club"),
		Level:       r.FormValue("level"),
		Height:      r.FormValue("height"),
		Foot:        r.FormValue("foot"),
		Note:        r.FormValue("note"),
		Shortlisted: formBool(r, "shortlisted"),
	}
	photo, err := readPhoto(r, "photo")
	if err != nil {
		return input, err
	}
	input.Photo = photo
	return input, nil
}

// formError re-renders the form with the submitted values for validation
// errors and falls back to the error page otherwise.
func (h *PlayerHandler) formError(w http.ResponseWriter, r *http.Request, title, action string, p models.Player, in services.PlayerInput, what string, err error) {
	if wantsJSON(r) || !services.IsValidation(err) {
		mapServiceErrorToHTTP(w, r, what, err)
		return
	}
	p.FirstName = strings.TrimSpace(in.FirstName)
	p.LastName = strings.TrimSpace(in.LastName)
	p.Birthdate = in.Birthdate
	p.Nation = in.Nation
	p.PlaysIn = in.PlaysIn
	p.Position = in.Position
	p.Club = in.Club
	p.Level = in.Level
	p.Height = in.Height
	p.Foot = in.Foot
	p.Note = in.Note
	p.Shortlisted = in.Shortlisted
	render(w, r, http.StatusBadRequest, views.PlayerForm(title, action, p, services.UserMessage(what, err)))
}
