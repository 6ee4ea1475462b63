package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Dosada05/scouting-system/editor"
	"github.com/Dosada05/scouting-system/services"
	"github.com/Dosada05/scouting-system/views"
)

type GameHandler struct {
	editorService services.EditorService
}

func NewGameHandler(es services.EditorService) *GameHandler {
	return &GameHandler{editorService: es}
}

// GetGame godoc
// @Summary Game detail
// @Tags games
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Param gameID path string true "Game ID"
// @Success 200 {object} services.GameDetailView
// @Failure 404 {object} map[string]string
// @Router /tournaments/{tournamentID}/games/{gameID} [get]
func (h *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	view, err := h.editorService.GetGame(r.Context(), urlParam(r, "tournamentID"), urlParam(r, "gameID"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, "Loading game", err)
		return
	}
	respond(w, r, http.StatusOK, view, views.GameDetail(view, "", ""))
}

func (h *GameHandler) ConfirmDeleteGame(w http.ResponseWriter, r *http.Request) {
	tid, gameID := urlParam(r, "tournamentID"), urlParam(r, "gameID")
	view, err := h.editorService.GetGame(r.Context(), tid, gameID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, "Loading game", err)
		return
	}
	s := view.Summary
	question := fmt.Sprintf("Delete the game %s vs %s?", s.TeamA, s.TeamB)
	if s.Training {
		question = fmt.Sprintf("Delete the training of %s?", s.TeamA)
	}
	render(w, r, http.StatusOK, views.ConfirmPage("Delete game", question,
		"/tournaments/"+tid+"/games/"+gameID+"/delete", editor.TabGames.Path(tid)))
}

func (h *GameHandler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	tid := urlParam(r, "tournamentID")
	if err := h.editorService.DeleteGame(r.Context(), tid, urlParam(r, "gameID"), confirmed(r)); err != nil {
		mapServiceErrorToHTTP(w, r, "Deleting the game", err)
		return
	}
	if wantsJSON(r) || r.Method == http.MethodDelete {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, editor.TabGames.Path(tid), http.StatusSeeOther)
}

// UploadVideo godoc
// @Summary Upload a game video
// @Tags games
// @Accept mpfd
// @Produce json
// @Param tournamentID path string true "Tournament ID"
// @Param gameID path string true "Game ID"
// @Param video formData file true "Video file"
// @Success 200 {object} services.VideoUploadResult
// @Failure 400 {object} map[string]string
// @Router /tournaments/{tournamentID}/games/{gameID}/video [post]
func (h *GameHandler) UploadVideo(w http.ResponseWriter, r *http.Request) {
	tid, gameID := urlParam(r, "tournamentID"), urlParam(r, "gameID")
	if err := r.ParseMultipartForm(maxMultipartBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		badRequestResponse(w, r, fmt.Errorf("failed to read upload: %w", err))
		return
	}

	upload := services.VideoUpload{}
	file, header, err := r.FormFile("video")
	switch {
	case err == nil:
		defer file.Close()
		upload.Filename = header.Filename
		upload.ContentType = header.Header.Get("Content-Type")
		upload.Body = file
	case !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart):
		badRequestResponse(w, r, fmt.Errorf("failed to read upload: %w", err))
		return
	}

	result, err := h.editorService.UploadVideo(r.Context(), tid, gameID, upload)
	if err != nil {
		if wantsJSON(r) || !services.IsValidation(err) {
			mapServiceErrorToHTTP(w, r, "Uploading the video", err)
			return
		}
		h.renderDetail(w, r, tid, gameID, http.StatusBadRequest, "", services.UserMessage("Uploading the video", err))
		return
	}
	if wantsJSON(r) {
		if err := writeJSON(w, http.StatusOK, result, nil); err != nil {
			serverErrorResponse(w, r, err)
		}
		return
	}
	h.renderDetail(w, r, tid, gameID, http.StatusOK, fmt.Sprintf("Video %s uploaded.", result.Report.Name), "")
}

func (h *GameHandler) renderDetail(w http.ResponseWriter, r *http.Request, tid, gameID string, status int, notice, errMsg string) {
	view, err := h.editorService.GetGame(r.Context(), tid, gameID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, "Loading game", err)
		return
	}
	render(w, r, status, views.GameDetail(view, notice, errMsg))
}
