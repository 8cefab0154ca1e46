// Package handler provides HTTP request handlers.
package handler

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/notekeeper/notekeeper/internal/apperr"
	"github.com/notekeeper/notekeeper/internal/handler/dto"
)

// Fixed error bodies.
const (
	msgUnknownEndpoint  = "unknown endpoint"
	msgMalformattedJSON = "malformatted json"
	msgBodyTooLarge     = "request body too large"
)

// Handler serves the fallback responses shared by every route.
type Handler struct {
	logger *slog.Logger
}

// New creates a new Handler instance.
func New(logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger}
}

// NotFound handles requests no route matches, by path or by method.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.logger.Debug("unknown_endpoint",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)
	writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: msgUnknownEndpoint})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already sent; nothing useful can be done with the error.
	_ = json.NewEncoder(w).Encode(data)
}

// decodeJSON reads a JSON request body into dst. An empty body leaves dst
// at its zero value so required-field checks report the missing field.
// The body is read in full first so a tripped size limit is never mistaken
// for the end of an empty body.
func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return &apperr.Error{Kind: apperr.Validation, Message: msgBodyTooLarge, Err: err}
		}
		return &apperr.Error{Kind: apperr.Validation, Message: msgMalformattedJSON, Err: err}
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return &apperr.Error{Kind: apperr.Validation, Message: msgMalformattedJSON, Err: err}
	}
	return nil
}
