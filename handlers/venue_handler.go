package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Dosada05/scouting-system/models"
	"github.com/Dosada05/scouting-system/services"
	"github.com/Dosada05/scouting-system/views"
)

type VenueHandler struct {
	venueService services.VenueService
}

func NewVenueHandler(vs services.VenueService) *VenueHandler {
	return &VenueHandler{venueService: vs}
}

// ListVenues godoc
// @Summary List venues
// @Tags venues
// @Produce json
// @Param q query string false "Search text"
// @Param sort query string false "name, homeClub or pitches"
// @Param dir query string false "asc or desc"
// @Param page query int false "Page"
// @Param perPage query int false "Page size"
// @Success 200 {object} services.VenueListView
// @Router /venues [get]
func (h *VenueHandler) ListVenues(w http.ResponseWriter, r *http.Request) {
	view, err := h.venueService.ListVenues(r.Context(), parseListQuery(r))
	if err != nil {
		mapServiceErrorToHTTP(w, r, "Loading venues", err)
		return
	}
	respond(w, r, http.StatusOK, view, views.VenuesList(view))
}

func (h *VenueHandler) GetVenue(w http.ResponseWriter, r *http.Request) {
	venue, err := h.venueService.GetVenue(r.Context(), urlParam(r, "venueID"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, "Loading venue", err)
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"venue": venue}, views.VenueDetail(*venue))
}

func (h *VenueHandler) NewVenueForm(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, views.VenueForm("New venue", "/venues", models.Venue{}, ""))
}

func (h *VenueHandler) EditVenueForm(w http.ResponseWriter, r *http.Request) {
	id := urlParam(r, "venueID")
	venue, err := h.venueService.GetVenue(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, "Loading venue", err)
		return
	}
	render(w, r, http.StatusOK, views.VenueForm("Edit venue", "/venues/"+id, *venue, ""))
}

// CreateVenue godoc
// @Summary Create a venue
// @Tags venues
// @Accept json
// @Produce json
// @Param body body services.VenueInput true "Venue with pitches"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /venues [post]
func (h *VenueHandler) CreateVenue(w http.ResponseWriter, r *http.Request) {
	input, action, err := h.readInput(w, r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if h.editPitches(w, r, "New venue", "/venues", "", &input, action) {
		return
	}

	venue, err := h.venueService.CreateVenue(r.Context(), input)
	if err != nil {
		h.formError(w, r, "New venue", "/venues", "", input, err)
		return
	}
	redirect(w, r, "/venues/"+venue.ID, http.StatusCreated, jsonResponse{"venue": venue})
}

func (h *VenueHandler) UpdateVenue(w http.ResponseWriter, r *http.Request) {
	id := urlParam(r, "venueID")
	input, action, err := h.readInput(w, r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if h.editPitches(w, r, "Edit venue", "/venues/"+id, id, &input, action) {
		return
	}

	venue, err := h.venueService.UpdateVenue(r.Context(), id, input)
	if err != nil {
		h.formError(w, r, "Edit venue", "/venues/"+id, id, input, err)
		return
	}
	redirect(w, r, "/venues/"+venue.ID, http.StatusOK, jsonResponse{"venue": venue})
}

func (h *VenueHandler) ConfirmDeleteVenue(w http.ResponseWriter, r *http.Request) {
	id := urlParam(r, "venueID")
	venue, err := h.venueService.GetVenue(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, "Loading venue", err)
		return
	}
	render(w, r, http.StatusOK, views.ConfirmPage("Delete venue",
		"Delete "+venue.Name+"? This cannot be undone.", "/venues/"+id+"/delete", "/venues/"+id))
}

func (h *VenueHandler) DeleteVenue(w http.ResponseWriter, r *http.Request) {
	if err := h.venueService.DeleteVenue(r.Context(), urlParam(r, "venueID"), confirmed(r)); err != nil {
		mapServiceErrorToHTTP(w, r, "Deleting venue", err)
		return
	}
	if wantsJSON(r) || r.Method == http.MethodDelete {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, "/venues", http.StatusSeeOther)
}

// readInput parses the venue body. action is the pressed form button.
func (h *VenueHandler) readInput(w http.ResponseWriter, r *http.Request) (services.VenueInput, string, error) {
	var input services.VenueInput
	if wantsJSON(r) {
		err := readJSON(w, r, &input)
		return input, "save", err
	}
	if err := parseForm(r); err != nil {
		return input, "", err
	}
	input = services.VenueInput{
		Name:     r.FormValue("name"),
		Address:  r.FormValue("address"),
		HomeClub: r.FormValue("homeClub"),
		Contact:  r.FormValue("contact"),
		Price:    r.FormValue("price"),
		Note:     r.FormValue("note"),
	}
	ids := r.Form["pitchId"]
	labels := r.Form["pitchLabel"]
	surfaces := r.Form["pitchSurface"]
	for i, label := range labels {
		p := services.PitchInput{Label: label, Lights: formBool(r, "pitchLights-"+strconv.Itoa(i))}
		if i < len(ids) {
			p.ID = ids[i]
		}
		if i < len(surfaces) {
			p.Surface = surfaces[i]
		}
		input.Pitches = append(input.Pitches, p)
	}
	photo, err := readPhoto(r, "photo")
	if err != nil {
		return input, "", err
	}
	input.Photo = photo
	return input, r.FormValue("action"), nil
}

// editPitches handles the add and remove pitch buttons by re-rendering the
// form. It reports whether the request was handled.
func (h *VenueHandler) editPitches(w http.ResponseWriter, r *http.Request, title, action, id string, input *services.VenueInput, button string) bool {
	switch {
	case button == "add-pitch":
		input.Pitches = append(input.Pitches, services.PitchInput{})
	case strings.HasPrefix(button, "remove-pitch:"):
		i, err := strconv.Atoi(strings.TrimPrefix(button, "remove-pitch:"))
		if err == nil && i >= 0 && i < len(input.Pitches) {
			input.Pitches = append(input.Pitches[:i:i], input.Pitches[i+1:]...)
		}
	default:
		return false
	}
	render(w, r, http.StatusOK, views.VenueForm(title, action, venueFromInput(id, *input), ""))
	return true
}

func (h *VenueHandler) formError(w http.ResponseWriter, r *http.Request, title, action, id string, in services.VenueInput, err error) {
	if wantsJSON(r) || !services.IsValidation(err) {
		mapServiceErrorToHTTP(w, r, "Saving venue", err)
		return
	}
	render(w, r, http.StatusBadRequest, views.VenueForm(title, action, venueFromInput(id, in), services.UserMessage("Saving venue", err)))
}

func venueFromInput(id string, in services.VenueInput) models.Venue {
	v := models.Venue{
		ID:       id,
		Name:     in.Name,
		Address:  in.Address,
		HomeClub: in.HomeClub,
		Contact:  in.Contact,
		Price:    in.Price,
		Note:     in.Note,
	}
	for _, p := range in.Pitches {
		v.Pitches = append(v.Pitches, models.Pitch{ID: p.ID, Label: p.Label, Surface: p.Surface, Lights: p.Lights})
	}
	return v
}
