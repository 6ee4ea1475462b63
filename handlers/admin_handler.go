package handlers

import (
	"net/http"
	"strings"

	"github.com/Dosada05/scouting-system/models"
	"github.com/Dosada05/scouting-system/services"
	"github.com/Dosada05/scouting-system/views"
)

type AdminHandler struct {
	adminService services.AdminService
}

func NewAdminHandler(s services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: s}
}

func (h *AdminHandler) AdminPage(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, views.AdminPage("", ""))
}

// Seed godoc
// @Summary Seed demo players or venues on the backend
// @Tags admin
// @Accept json
// @Produce json
// @Param body body services.SeedInput true "entity (players or venues) and count (1..500)"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /admin/seed [post]
func (h *AdminHandler) Seed(w http.ResponseWriter, r *http.Request) {
	var input services.SeedInput
	if wantsJSON(r) {
		if err := readJSON(w, r, &input); err != nil {
			badRequestResponse(w, r, err)
			return
		}
	} else {
		input.Entity = models.SeedEntity(strings.TrimSpace(r.PostFormValue("entity")))
		input.Count = toInt(r.PostFormValue("count"), 0)
	}

	message, err := h.adminService.Seed(r.Context(), input)
	if err != nil {
		h.failed(w, r, "Seed", err)
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"message": message}, views.AdminPage(message, ""))
}

// DedupePlayers godoc
// @Summary Remove duplicate players on the backend
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} map[string]string
// @Router /admin/dedupe [post]
func (h *AdminHandler) DedupePlayers(w http.ResponseWriter, r *http.Request) {
	message, result, err := h.adminService.DedupePlayers(r.Context())
	if err != nil {
		h.failed(w, r, "Cleanup", err)
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"message": message, "result": result}, views.AdminPage(message, ""))
}

// failed keeps browsers on the admin page with the status line.
func (h *AdminHandler) failed(w http.ResponseWriter, r *http.Request, action string, err error) {
	if wantsJSON(r) {
		mapServiceErrorToHTTP(w, r, action, err)
		return
	}
	render(w, r, errorStatus(err), views.AdminPage("", services.UserMessage(action, err)))
}
