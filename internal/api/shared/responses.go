// Package shared holds the response envelope and request-context plumbing
// used by every handler.
package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// FieldError is a single validation violation, rendered as a
// human-readable field/message pair.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Envelope is the uniform response shape. Every endpoint returns exactly
// this structure, in either its success or its failure form.
//
// The two validation-error list keys exist because the legacy API used
// "error" on its create endpoints and "errors" everywhere else; clients
// depend on both spellings, so the shape is preserved.
type Envelope struct {
	Success    bool         `json:"success"`
	Message    string       `json:"message"`
	Data       interface{}  `json:"data,omitempty"`
	TotalCount *int64       `json:"totalCount,omitempty"`
	Page       *int64       `json:"page,omitempty"`
	Limit      *int64       `json:"limit,omitempty"`
	Error      []FieldError `json:"error,omitempty"`
	Errors     []FieldError `json:"errors,omitempty"`
}

// RespondWithJSON writes an arbitrary JSON body with the given status code.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithSuccess writes the success form of the envelope.
func RespondWithSuccess(w http.ResponseWriter, r *http.Request, status int, message string, data interface{}) {
	RespondWithJSON(w, r, status, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// RespondWithPage writes a success envelope carrying one page of results
// plus the pagination metadata.
func RespondWithPage(w http.ResponseWriter, r *http.Request, message string, data interface{}, totalCount, page, limit int64) {
	RespondWithJSON(w, r, http.StatusOK, Envelope{
		Success:    true,
		Message:    message,
		Data:       data,
		TotalCount: &totalCount,
		Page:       &page,
		Limit:      &limit,
	})
}

// RespondWithError writes the failure form of the envelope with no
// field-error list.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	logError(r, status, message)
	RespondWithJSON(w, r, status, Envelope{
		Success: false,
		Message: message,
	})
}

// RespondWithFieldErrors writes a validation-failure envelope. The create
// endpoints render the list under the legacy "error" key; everything else
// uses "errors".
func RespondWithFieldErrors(w http.ResponseWriter, r *http.Request, status int, message string, fieldErrors []FieldError, legacyKey bool) {
	logError(r, status, message)

	envelope := Envelope{
		Success: false,
		Message: message,
	}
	if legacyKey {
		envelope.Error = fieldErrors
	} else {
		envelope.Errors = fieldErrors
	}
	RespondWithJSON(w, r, status, envelope)
}

func logError(r *http.Request, status int, message string) {
	level := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	slog.LogAttrs(r.Context(), level, "API error response",
		slog.Int("status_code", status),
		slog.String("message", message),
		slog.String("trace_id", GetTraceID(r.Context())),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method))
}
