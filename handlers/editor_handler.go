package handlers

import (
	"errors"
	"net/http"

	"github.com/Dosada05/scouting-system/editor"
	"github.com/Dosada05/scouting-system/services"
	"github.com/Dosada05/scouting-system/views"
)

// EditorHandler serves the tournament view and its editing tabs. Browser
// forms post, store their state as drafts and redirect back to the tab.
type EditorHandler struct {
	editorService services.EditorService
}

func NewEditorHandler(es services.EditorService) *EditorHandler {
	return &EditorHandler{editorService: es}
}

type teamFormRequest struct {
	Form   editor.TeamForm `json:"form"`
	Action string          `json:"action"`
}

// ShowTournament godoc
// @Summary Tournament view with one tab loaded
// @Tags editor
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Param tab path string false "overview, teams, games or evaluation"
// @Success 200 {object} services.EditorView
// @Failure 404 {object} map[string]string
// @Router /tournaments/{tournamentID}/{tab} [get]
func (h *EditorHandler) ShowTournament(w http.ResponseWriter, r *http.Request) {
	tab := editor.ParseTab(urlParam(r, "tab"))
	view, err := h.editorService.Load(r.Context(), urlParam(r, "tournamentID"), tab)
	if err != nil {
		mapServiceErrorToHTTP(w, r, "Loading tournament", err)
		return
	}
	respond(w, r, http.StatusOK, view, views.TournamentEditor(view))
}

// ApplyTeamForm godoc
// @Summary Update the team builder or create the team
// @Tags editor
// @Accept json
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Param body body teamFormRequest true "Form state and action (save, add-row, remove-row:N, create)"
// @Success 200 {object} map[string]interface{}
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /tournaments/{tournamentID}/teams [post]
func (h *EditorHandler) ApplyTeamForm(w http.ResponseWriter, r *http.Request) {
	tid := urlParam(r, "tournamentID")
	var req teamFormRequest
	if wantsJSON(r) {
		if err := readJSON(w, r, &req); err != nil {
			badRequestResponse(w, r, err)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			badRequestResponse(w, r, err)
			return
		}
		req.Form = editor.TeamForm{
			Name:     r.PostFormValue("name"),
			KitColor: r.PostFormValue("kitColor"),
			Rows:     []editor.RosterRow{},
		}
		numbers := r.PostForm["rowNumber"]
		for i, search := range r.PostForm["rowSearch"] {
			row := editor.RosterRow{Search: search}
			if i < len(numbers) {
				row.Number = numbers[i]
			}
			req.Form.Rows = append(req.Form.Rows, row)
		}
		req.Action = r.PostFormValue("action")
	}

	action := services.ParseTeamAction(req.Action)
	team, err := h.editorService.ApplyTeamForm(r.Context(), tid, req.Form, action)
	if h.handled(w, r, tid, editor.TabTeams, "Saving the team", err) {
		return
	}
	if team != nil {
		redirect(w, r, editor.TabTeams.Path(tid), http.StatusCreated, jsonResponse{"team": team})
		return
	}
	redirect(w, r, editor.TabTeams.Path(tid), http.StatusOK, jsonResponse{"action": action.Kind})
}

// UpdateTeam godoc
// @Summary Rename a team, change its kit or replace its roster
// @Tags editor
// @Accept json
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Param teamID path string true "Team ID"
// @Param body body services.TeamInput true "Team"
// @Success 200 {object} map[string]interface{}
// @Router /tournaments/{tournamentID}/teams/{teamID} [put]
func (h *EditorHandler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	var input services.TeamInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	team, err := h.editorService.UpdateTeam(r.Context(), urlParam(r, "tournamentID"), urlParam(r, "teamID"), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, "Saving the team", err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"team": team}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *EditorHandler) ConfirmDeleteTeam(w http.ResponseWriter, r *http.Request) {
	tid, teamID := urlParam(r, "tournamentID"), urlParam(r, "teamID")
	view, err := h.editorService.Load(r.Context(), tid, editor.TabTeams)
	if err != nil {
		mapServiceErrorToHTTP(w, r, "Loading tournament", err)
		return
	}
	team, ok := view.Tournament.Team(teamID)
	if !ok {
		mapServiceErrorToHTTP(w, r, "Loading team", services.ErrTeamNotFound)
		return
	}
	render(w, r, http.StatusOK, views.ConfirmPage("Delete team",
		"Delete team "+team.Name+"?", "/tournaments/"+tid+"/teams/"+teamID+"/delete", editor.TabTeams.Path(tid)))
}

func (h *EditorHandler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	tid := urlParam(r, "tournamentID")
	if err := h.editorService.DeleteTeam(r.Context(), tid, urlParam(r, "teamID"), confirmed(r)); err != nil {
		mapServiceErrorToHTTP(w, r, "Deleting the team", err)
		return
	}
	if wantsJSON(r) || r.Method == http.MethodDelete {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, editor.TabTeams.Path(tid), http.StatusSeeOther)
}

// OpenGameForm opens the game form, filled from ?gameId= when editing.
func (h *EditorHandler) OpenGameForm(w http.ResponseWriter, r *http.Request) {
	tid := urlParam(r, "tournamentID")
	form, err := h.editorService.OpenGameForm(r.Context(), tid, r.URL.Query().Get("gameId"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, "Opening the game", err)
		return
	}
	redirect(w, r, editor.TabGames.Path(tid), http.StatusOK, jsonResponse{"form": form})
}

func (h *EditorHandler) CancelGame(w http.ResponseWriter, r *http.Request) {
	tid := urlParam(r, "tournamentID")
	if err := h.editorService.CancelGame(r.Context(), tid); err != nil {
		mapServiceErrorToHTTP(w, r, "Closing the game form", err)
		return
	}
	redirect(w, r, editor.TabGames.Path(tid), http.StatusOK, jsonResponse{"form": nil})
}

// SubmitGame godoc
// @Summary Create or update a game
// @Tags editor
// @Accept json
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Param body body editor.GameForm true "Game form; id set when editing"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Missing team A, invalid or out of range kickoff"
// @Router /tournaments/{tournamentID}/games [post]
func (h *EditorHandler) SubmitGame(w http.ResponseWriter, r *http.Request) {
	tid := urlParam(r, "tournamentID")
	var form editor.GameForm
	if wantsJSON(r) {
		if err := readJSON(w, r, &form); err != nil {
			badRequestResponse(w, r, err)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			badRequestResponse(w, r, err)
			return
		}
		form = editor.GameForm{
			ID:      r.PostFormValue("id"),
			TeamAID: r.PostFormValue("teamAId"),
			TeamBID: r.PostFormValue("teamBId"),
			Date:    r.PostFormValue("date"),
			Time:    r.PostFormValue("time"),
			PitchID: r.PostFormValue("pitchId"),
			Note:    r.PostFormValue("note"),
		}
	}

	game, err := h.editorService.SubmitGame(r.Context(), tid, form)
	if h.handled(w, r, tid, editor.TabGames, "Saving the game", err) {
		return
	}
	status := http.StatusOK
	if !form.Editing() {
		status = http.StatusCreated
	}
	redirect(w, r, editor.TabGames.Path(tid), status, jsonResponse{"game": game})
}

func (h *EditorHandler) SelectEvaluationPlayer(w http.ResponseWriter, r *http.Request) {
	tid := urlParam(r, "tournamentID")
	var playerID string
	if wantsJSON(r) {
		var req struct {
			PlayerID string `json:"playerId"`
		}
		if err := readJSON(w, r, &req); err != nil {
			badRequestResponse(w, r, err)
			return
		}
		playerID = req.PlayerID
	} else {
		playerID = r.PostFormValue("playerId")
	}

	err := h.editorService.SelectEvaluationPlayer(r.Context(), tid, playerID)
	if h.handled(w, r, tid, editor.TabEvaluation, "Selecting the player", err) {
		return
	}
	redirect(w, r, editor.TabEvaluation.Path(tid), http.StatusOK, jsonResponse{"playerId": playerID})
}

// SubmitEvaluation godoc
// @Summary Record an evaluation of a participant
// @Tags editor
// @Accept json
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Param body body editor.EvaluationForm true "Evaluation"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /tournaments/{tournamentID}/evaluations [post]
func (h *EditorHandler) SubmitEvaluation(w http.ResponseWriter, r *http.Request) {
	tid := urlParam(r, "tournamentID")
	var form editor.EvaluationForm
	if wantsJSON(r) {
		if err := readJSON(w, r, &form); err != nil {
			badRequestResponse(w, r, err)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			badRequestResponse(w, r, err)
			return
		}
		form = editor.EvaluationForm{
			PlayerID:   r.PostFormValue("playerId"),
			ScoutName:  r.PostFormValue("scoutName"),
			Strengths:  r.PostFormValue("strengths"),
			Weaknesses: r.PostFormValue("weaknesses"),
			Remarks:    r.PostFormValue("remarks"),
		}
		for _, f := range form.Ratings.Fields() {
			form.Ratings.Set(f.Key, toInt(r.PostFormValue(f.Key), editor.DefaultRating))
		}
	}

	evaluation, err := h.editorService.SubmitEvaluation(r.Context(), tid, form)
	if h.handled(w, r, tid, editor.TabEvaluation, "Saving the evaluation", err) {
		return
	}
	redirect(w, r, editor.TabEvaluation.Path(tid), http.StatusCreated, jsonResponse{"evaluation": evaluation})
}

// handled answers a failed editor action. Browsers go back to the tab,
// where the draft shows the error; only a missing tournament ends on the
// error page.
func (h *EditorHandler) handled(w http.ResponseWriter, r *http.Request, tid string, tab editor.Tab, action string, err error) bool {
	if err == nil {
		return false
	}
	if wantsJSON(r) || errors.Is(err, services.ErrTournamentNotFound) {
		mapServiceErrorToHTTP(w, r, action, err)
		return true
	}
	http.Redirect(w, r, tab.Path(tid), http.StatusSeeOther)
	return true
}
