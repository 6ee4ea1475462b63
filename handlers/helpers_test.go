package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Dosada05/scouting-system/editor"
	"github.com/Dosada05/scouting-system/repositories"
	"github.com/Dosada05/scouting-system/services"
)

func TestWantsJSON(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		accept      string
		want        bool
	}{
		{"browser", "", "text/html,application/xhtml+xml,application/json;q=0.9", false},
		{"api accept", "", "application/json", true},
		{"json body", "application/json; charset=utf-8", "", true},
		{"form post", "application/x-www-form-urlencoded", "*/*", false},
		{"nothing", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.contentType != "" {
				r.Header.Set("Content-Type", tt.contentType)
			}
			if tt.accept != "" {
				r.Header.Set("Accept", tt.accept)
			}
			if got := wantsJSON(r); got != tt.want {
				t.Errorf("wantsJSON = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{services.ErrConfirmationRequired, http.StatusPreconditionRequired},
		{fmt.Errorf("load: %w", services.ErrPlayerNotFound), http.StatusNotFound},
		{services.ErrVenueNameRequired, http.StatusBadRequest},
		{fmt.Errorf("game: %w", editor.ErrKickoffOutOfRange), http.StatusBadRequest},
		{fmt.Errorf("list: %w", repositories.ErrBackendUnavailable), http.StatusBadGateway},
		{fmt.Errorf("save: %w", &repositories.StatusError{StatusCode: 503}), http.StatusBadGateway},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := errorStatus(tt.err); got != tt.want {
			t.Errorf("errorStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestConfirmed(t *testing.T) {
	for _, target := range []string{"/x?confirm=true", "/x?confirm=1", "/x?confirm=yes"} {
		if !confirmed(httptest.NewRequest(http.MethodDelete, target, nil)) {
			t.Errorf("%s not confirmed", target)
		}
	}
	if confirmed(httptest.NewRequest(http.MethodDelete, "/x", nil)) {
		t.Error("missing confirm accepted")
	}

	r := httptest.NewRequest(http.MethodPost, "/x/delete", strings.NewReader("confirm=yes"))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if !confirmed(r) {
		t.Error("form confirm not accepted")
	}
}

func TestReadJSONRejectsUnknownFields(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"A","bogus":1}`))
	w := httptest.NewRecorder()
	var dst struct {
		Name string `json:"name"`
	}
	err := readJSON(w, r, &dst)
	if err == nil || !strings.Contains(err.Error(), "bogus") {
		t.Errorf("err = %v", err)
	}
}

func TestMapServiceErrorToHTTP(t *testing.T) {
	r := httptest.NewRequest(http.MethodDelete, "/players/p1", nil)
	r.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	mapServiceErrorToHTTP(w, r, "Deleting player", services.ErrConfirmationRequired)

	if w.Code != http.StatusPreconditionRequired {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Deletion must be confirmed.") {
		t.Errorf("body = %s", w.Body.String())
	}

	r = httptest.NewRequest(http.MethodGet, "/players/p1", nil)
	w = httptest.NewRecorder()
	mapServiceErrorToHTTP(w, r, "Loading player", services.ErrPlayerNotFound)
	if w.Code != http.StatusNotFound || !strings.HasPrefix(w.Header().Get("Content-Type"), "text/html") {
		t.Errorf("status = %d content-type = %q", w.Code, w.Header().Get("Content-Type"))
	}
}

func TestOriginChecker(t *testing.T) {
	check := originChecker([]string{"https://scout.example"})

	r := httptest.NewRequest(http.MethodGet, "/ws/players", nil)
	r.Header.Set("Origin", "https://scout.example")
	if !check(r) {
		t.Error("allowed origin rejected")
	}
	r.Header.Set("Origin", "https://evil.example")
	if check(r) {
		t.Error("foreign origin accepted")
	}
	if !originChecker([]string{"*"})(r) {
		t.Error("wildcard rejected")
	}
}
