package handlers

import (
	"net/http"
	"strings"

	"github.com/Dosada05/scouting-system/editor"
	"github.com/Dosada05/scouting-system/models"
	"github.com/Dosada05/scouting-system/services"
	"github.com/Dosada05/scouting-system/views"
)

type TournamentHandler struct {
	tournamentService services.TournamentService
}

func NewTournamentHandler(ts services.TournamentService) *TournamentHandler {
	return &TournamentHandler{tournamentService: ts}
}

// ListTournaments godoc
// @Summary List tournaments
// @Tags tournaments
// @Produce json
// @Param q query string false "Search text (name, venue)"
// @Param sort query string false "name, start or venue"
// @Param dir query string false "asc or desc"
// @Param page query int false "Page"
// @Param perPage query int false "Page size"
// @Success 200 {object} services.TournamentListView
// @Router /tournaments [get]
func (h *TournamentHandler) ListTournaments(w http.ResponseWriter, r *http.Request) {
	view, err := h.tournamentService.ListTournaments(r.Context(), parseListQuery(r))
	if err != nil {
		mapServiceErrorToHTTP(w, r, "Loading tournaments", err)
		return
	}
	respond(w, r, http.StatusOK, view, views.TournamentsList(view))
}

// Suggestions godoc
// @Summary Venue and participant suggestions for the tournament form
// @Tags tournaments
// @Produce json
// @Param venue query string false "Venue search"
// @Param player query string false "Player search"
// @Param chosen query []string false "Participant ids already chosen"
// @Success 200 {object} services.TournamentSuggestions
// @Router /tournaments/suggestions [get]
func (h *TournamentHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sg, err := h.tournamentService.Suggest(r.Context(), services.SuggestionQuery{
		VenueSearch:  q.Get("venue"),
		PlayerSearch: q.Get("player"),
		Chosen:       q["chosen"],
		VenueID:      q.Get("venueId"),
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, "Loading suggestions", err)
		return
	}
	if err := writeJSON(w, http.StatusOK, sg, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TournamentHandler) NewTournamentForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, http.StatusOK, views.TournamentFormData{Title: "New tournament", Action: "/tournaments"})
}

func (h *TournamentHandler) EditTournamentForm(w http.ResponseWriter, r *http.Request) {
	id := urlParam(r, "tournamentID")
	t, err := h.tournamentService.GetTournament(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, "Loading tournament", err)
		return
	}
	h.renderForm(w, r, http.StatusOK, views.TournamentFormData{
		Title:  "Edit tournament",
		Action: "/tournaments/" + id,
		Input:  inputFromTournament(*t),
	})
}

// CreateTournament godoc
// @Summary Create a tournament
// @Tags tournaments
// @Accept json
// @Produce json
// @Param body body services.TournamentInput true "Tournament"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /tournaments [post]
func (h *TournamentHandler) CreateTournament(w http.ResponseWriter, r *http.Request) {
	data, submit, err := h.readForm(w, r, "New tournament", "/tournaments")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if !submit {
		h.renderForm(w, r, http.StatusOK, data)
		return
	}

	t, err := h.tournamentService.CreateTournament(r.Context(), data.Input)
	if err != nil {
		h.formError(w, r, data, err)
		return
	}
	redirect(w, r, editor.TabOverview.Path(t.ID), http.StatusCreated, jsonResponse{"tournament": t})
}

// UpdateTournament godoc
// @Summary Update a tournament and its participants
// @Tags tournaments
// @Accept json
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Param body body services.TournamentInput true "Tournament"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tournaments/{tournamentID} [put]
func (h *TournamentHandler) UpdateTournament(w http.ResponseWriter, r *http.Request) {
	id := urlParam(r, "tournamentID")
	data, submit, err := h.readForm(w, r, "Edit tournament", "/tournaments/"+id)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if !submit {
		h.renderForm(w, r, http.StatusOK, data)
		return
	}

	t, err := h.tournamentService.UpdateTournament(r.Context(), id, data.Input)
	if err != nil {
		h.formError(w, r, data, err)
		return
	}
	redirect(w, r, editor.TabOverview.Path(t.ID), http.StatusOK, jsonResponse{"tournament": t})
}

func (h *TournamentHandler) ConfirmDeleteTournament(w http.ResponseWriter, r *http.Request) {
	id := urlParam(r, "tournamentID")
	t, err := h.tournamentService.GetTournament(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, "Loading tournament", err)
		return
	}
	render(w, r, http.StatusOK, views.ConfirmPage("Delete tournament",
		"Delete "+t.Name+" with all teams and games? This cannot be undone.",
		"/tournaments/"+id+"/delete", editor.TabOverview.Path(id)))
}

func (h *TournamentHandler) DeleteTournament(w http.ResponseWriter, r *http.Request) {
	if err := h.tournamentService.DeleteTournament(r.Context(), urlParam(r, "tournamentID"), confirmed(r)); err != nil {
		mapServiceErrorToHTTP(w, r, "Deleting tournament", err)
		return
	}
	if wantsJSON(r) || r.Method == http.MethodDelete {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, "/tournaments", http.StatusSeeOther)
}

// readForm parses the body and applies the pressed button. submit is false
// when the button only changed the form (search, pick, remove).
func (h *TournamentHandler) readForm(w http.ResponseWriter, r *http.Request, title, action string) (views.TournamentFormData, bool, error) {
	data := views.TournamentFormData{Title: title, Action: action}
	if wantsJSON(r) {
		err := readJSON(w, r, &data.Input)
		return data, true, err
	}
	if err := r.ParseForm(); err != nil {
		return data, false, err
	}
	data.Input = services.TournamentInput{
		Name:         r.PostFormValue("name"),
		Country:      r.PostFormValue("country"),
		Start:        r.PostFormValue("start"),
		End:          r.PostFormValue("end"),
		Note:         r.PostFormValue("note"),
		VenueID:      r.PostFormValue("venueId"),
		Participants: r.PostForm["participants"],
	}
	data.VenueSearch = r.PostFormValue("venueSearch")
	data.PlayerSearch = r.PostFormValue("playerSearch")

	button := r.PostFormValue("action")
	kind, arg, _ := strings.Cut(button, ":")
	switch kind {
	case "suggest":
	case "venue":
		data.Input.VenueID = arg
		data.VenueSearch = ""
	case "add-participant":
		data.Input.Participants = append(data.Input.Participants, arg)
	case "remove-participant":
		kept := data.Input.Participants[:0:0]
		for _, id := range data.Input.Participants {
			if id != arg {
				kept = append(kept, id)
			}
		}
		data.Input.Participants = kept
	default:
		return data, true, nil
	}
	return data, false, nil
}

func (h *TournamentHandler) renderForm(w http.ResponseWriter, r *http.Request, status int, data views.TournamentFormData) {
	sg, err := h.tournamentService.Suggest(r.Context(), services.SuggestionQuery{
		VenueSearch:  data.VenueSearch,
		PlayerSearch: data.PlayerSearch,
		Chosen:       data.Input.Participants,
		VenueID:      data.Input.VenueID,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, "Loading suggestions", err)
		return
	}
	data.Suggestions = sg
	render(w, r, status, views.TournamentForm(data))
}

func (h *TournamentHandler) formError(w http.ResponseWriter, r *http.Request, data views.TournamentFormData, err error) {
	if wantsJSON(r) || !services.IsValidation(err) {
		mapServiceErrorToHTTP(w, r, "Saving tournament", err)
		return
	}
	data.Error = services.UserMessage("Saving tournament", err)
	h.renderForm(w, r, http.StatusBadRequest, data)
}

func inputFromTournament(t models.Tournament) services.TournamentInput {
	venueID := t.VenueID
	if venueID == "" && t.Venue != nil {
		venueID = t.Venue.ID
	}
	return services.TournamentInput{
		Name:         t.Name,
		Country:      t.Country,
		Start:        t.Start,
		End:          t.End,
		Note:         t.Note,
		VenueID:      venueID,
		Participants: append([]string(nil), t.Participants...),
	}
}
