package handlers

import (
	"net/http"

	"github.com/Dosada05/scouting-system/services"
	"github.com/Dosada05/scouting-system/views"
)

type DashboardHandler struct {
	dashboardService services.DashboardService
}

func NewDashboardHandler(s services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: s}
}

// Stats godoc
// @Summary Collection counts and upcoming tournaments
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.DashboardStats
// @Router / [get]
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.GetStats(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, "Loading dashboard", err)
		return
	}
	respond(w, r, http.StatusOK, stats, views.Dashboard(stats))
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, jsonResponse{"status": "ok"}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
