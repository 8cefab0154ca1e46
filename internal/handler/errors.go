package handler

import (
	"log/slog"
	"net/http"

	"github.com/notekeeper/notekeeper/internal/apperr"
	"github.com/notekeeper/notekeeper/internal/handler/dto"
	"github.com/notekeeper/notekeeper/internal/middleware"
)

const msgInternalError = "internal server error"

// respondError is the single place where failures become HTTP responses.
// It switches over every apperr.Kind; Internal errors are logged and their
// detail is withheld from the client.
func respondError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	switch kind := apperr.KindOf(err); kind {
	case apperr.InvalidID:
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: apperr.MalformattedID})
	case apperr.Validation:
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: apperr.Message(err)})
	case apperr.NotFound:
		w.WriteHeader(http.StatusNotFound)
	case apperr.Internal:
		logger.ErrorContext(r.Context(), "internal_error",
			slog.String("request_id", middleware.GetRequestID(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: msgInternalError})
	default:
		logger.ErrorContext(r.Context(), "unmapped_error_kind",
			slog.String("kind", kind.String()),
			slog.Any("error", err),
		)
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: msgInternalError})
	}
}
