package web

// errors.go provides unified error response handling for the web layer.
//
// It ensures all errors are:
//   - Logged with full technical details for debugging (server-side)
//   - Shown to users as a mapped message with its code and cause
//   - Formatted appropriately based on request type (HTMX, JSON, or HTML)
//
// The error flow:
//  1. Handler encounters an error (usually a *core.LoadError)
//  2. Calls respondError(w, r, err)
//  3. Status comes from loadStatus, the message from core.MapError
//  4. Technical error + context is logged with request and session IDs
//  5. User message is rendered in the format the client asked for

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/JonMunkholm/vinyl/internal/core"
	"github.com/JonMunkholm/vinyl/internal/logging"
	"github.com/JonMunkholm/vinyl/internal/web/templates"
)

// ErrorResponse represents the JSON structure for API error responses.
// Includes both machine-readable (Code) and human-readable (Message, Action) fields.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	Code    string `json:"code"`
}

// loadStatus picks the HTTP status for a failed collection load.
func loadStatus(err error) int {
	switch {
	case errors.Is(err, core.ErrSourceUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError handles error responses with user-friendly messages.
// It logs the technical error server-side and returns an appropriate response
// based on the request type (HTMX, JSON, or HTML). No results are rendered
// for a request that ends here.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := loadStatus(err)
	userMsg := core.MapError(err)

	logging.FromContext(r.Context()).Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
		"error", err.Error(),
		"code", userMsg.Code,
	)

	params := templates.ErrorParams{
		Message: userMsg.Message,
		Action:  userMsg.Action,
		Code:    userMsg.Code,
		Detail:  core.Cause(err),
	}

	switch {
	case isHTMX(r):
		renderComponent(w, r, templates.Results(templates.ResultsParams{Error: &params}), status)
	case wantsJSON(r):
		respondErrorJSON(w, params, status)
	default:
		page := templates.PageParams{
			Query:   r.URL.Query().Get("q"),
			View:    core.ParseView(r.URL.Query().Get("view"), s.defaultView()),
			Results: templates.ResultsParams{Error: &params},
		}
		renderComponent(w, r, templates.Page(page), status)
	}
}

// respondErrorJSON writes a JSON error response.
func respondErrorJSON(w http.ResponseWriter, e templates.ErrorParams, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error:   e.Detail,
		Message: e.Message,
		Action:  e.Action,
		Code:    e.Code,
	})
}

// renderComponent writes c as an HTML response with the given status.
func renderComponent(w http.ResponseWriter, r *http.Request, c templ.Component, status int) {
	templ.Handler(c, templ.WithStatus(status)).ServeHTTP(w, r)
}

// isHTMX checks if the request is an HTMX request.
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// wantsJSON checks if the client prefers JSON response.
func wantsJSON(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		return true
	}

	// API routes default to JSON
	return strings.HasPrefix(r.URL.Path, "/api/")
}
