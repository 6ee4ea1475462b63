package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/Dosada05/scouting-system/listing"
	"github.com/Dosada05/scouting-system/repositories"
	"github.com/Dosada05/scouting-system/services"
	"github.com/Dosada05/scouting-system/views"
)

type jsonResponse map[string]interface{}

const (
	maxJSONBytes      = 1_048_576
	maxMultipartBytes = 32 << 20
)

func readJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxJSONBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var invalidUnmarshalError *json.InvalidUnmarshalError
		var maxBytesError *http.MaxBytesError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
			}
			return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			return fmt.Errorf("body contains unknown key %s", fieldName)
		case errors.As(err, &maxBytesError):
			return fmt.Errorf("body must not be larger than %d bytes", maxJSONBytes)
		case errors.As(err, &invalidUnmarshalError):
			panic(err)
		default:
			return err
		}
	}

	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, data interface{}, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	return err
}

// wantsJSON reports whether the client is an API client rather than a
// browser. JSON bodies and JSON-only Accept headers count.
func wantsJSON(r *http.Request) bool {
	if ct, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err == nil && ct == "application/json" {
		return true
	}
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html")
}

func render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := c.Render(r.Context(), w); err != nil {
		slog.ErrorContext(r.Context(), "failed to render page", slog.String("path", r.URL.Path), slog.Any("error", err))
	}
}

// respond writes data as JSON for API clients and page as HTML otherwise.
func respond(w http.ResponseWriter, r *http.Request, status int, data interface{}, page templ.Component) {
	if wantsJSON(r) {
		if err := writeJSON(w, status, data, nil); err != nil {
			serverErrorResponse(w, r, err)
		}
		return
	}
	render(w, r, status, page)
}

// redirect sends browsers to location after a form post. API clients get
// data with status instead.
func redirect(w http.ResponseWriter, r *http.Request, location string, status int, data interface{}) {
	if wantsJSON(r) {
		headers := http.Header{}
		if status == http.StatusCreated {
			headers.Set("Location", location)
		}
		if err := writeJSON(w, status, data, headers); err != nil {
			serverErrorResponse(w, r, err)
		}
		return
	}
	http.Redirect(w, r, location, http.StatusSeeOther)
}

func errorResponse(w http.ResponseWriter, r *http.Request, status int, message interface{}) {
	env := jsonResponse{"error": message}
	if err := writeJSON(w, status, env, nil); err != nil {
		slog.ErrorContext(r.Context(), "failed to write error response", slog.Any("error", err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "internal server error",
		slog.String("method", r.Method), slog.String("path", r.URL.Path), slog.Any("error", err))
	message := "the server encountered a problem and could not process your request"
	errorResponse(w, r, http.StatusInternalServerError, message)
}

func badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	if wantsJSON(r) {
		errorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	render(w, r, http.StatusBadRequest, views.ErrorPage(http.StatusBadRequest, err.Error(), r.Referer()))
}

// errorStatus maps a service error to its HTTP status.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrConfirmationRequired):
		return http.StatusPreconditionRequired
	case services.IsNotFound(err):
		return http.StatusNotFound
	case services.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, repositories.ErrBackendUnavailable):
		return http.StatusBadGateway
	}
	if _, ok := repositories.StatusCode(err); ok {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// mapServiceErrorToHTTP answers a failed action. The message is the same
// one-liner the screens show.
func mapServiceErrorToHTTP(w http.ResponseWriter, r *http.Request, action string, err error) {
	status := errorStatus(err)
	message := services.UserMessage(action, err)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed",
			slog.String("action", action), slog.Int("status", status), slog.Any("error", err))
	}
	if wantsJSON(r) {
		errorResponse(w, r, status, message)
		return
	}
	render(w, r, status, views.ErrorPage(status, message, r.Referer()))
}

func toInt(s string, def int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return def
}

func parseListQuery(r *http.Request) listing.Query {
	q := r.URL.Query()
	return listing.Query{
		Search:  strings.TrimSpace(q.Get("q")),
		Sort:    listing.SortState{Field: q.Get("sort"), Dir: listing.Direction(q.Get("dir"))},
		Page:    toInt(q.Get("page"), 1),
		PerPage: listing.NormalizePerPage(toInt(q.Get("perPage"), listing.DefaultPerPage)),
	}
}

// confirmed reads the delete confirmation: confirm=yes from the confirm page
// or ?confirm=true from API clients.
func confirmed(r *http.Request) bool {
	switch strings.ToLower(r.FormValue("confirm")) {
	case "yes", "true", "1":
		return true
	}
	return false
}

func urlParam(r *http.Request, key string) string {
	return chi.URLParam(r, key)
}

// parseForm accepts urlencoded and multipart bodies.
func parseForm(r *http.Request) error {
	if ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); ct == "multipart/form-data" {
		return r.ParseMultipartForm(maxMultipartBytes)
	}
	return r.ParseForm()
}

// readPhoto returns the uploaded image in field, or nil when none was sent.
func readPhoto(r *http.Request, field string) (*services.PhotoUpload, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", field, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", field, err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	return &services.PhotoUpload{ContentType: contentType, Data: data}, nil
}

func formBool(r *http.Request, key string) bool {
	v, _ := strconv.ParseBool(r.FormValue(key))
	return v
}
