package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/notekeeper/notekeeper/internal/apperr"
	"github.com/notekeeper/notekeeper/internal/handler/dto"
	"github.com/notekeeper/notekeeper/internal/service"
)

// NoteHandler handles HTTP requests for note operations.
type NoteHandler struct {
	svc    *service.NoteService
	logger *slog.Logger
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(svc *service.NoteService, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{
		svc:    svc,
		logger: logger,
	}
}

// Routes mounts the note endpoints on r.
func (h *NoteHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// List handles GET /api/notes.
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	notes, err := h.svc.ListNotes(r.Context())
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToNoteListResponse(notes))
}

// Get handles GET /api/notes/{id}.
func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	note, err := h.svc.GetNote(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToNoteResponse(note))
}

// Create handles POST /api/notes.
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateNoteRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	note, err := h.svc.CreateNote(r.Context(), service.CreateNoteInput{
		Content:   req.Content,
		Important: req.Important,
	})
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	h.logger.Info("note_created",
		"note_id", note.ID,
		"important", note.Important,
	)

	writeJSON(w, http.StatusCreated, dto.ToNoteResponse(note))
}

// Update handles PUT /api/notes/{id}.
// An id that is well formed but unknown answers 200 with a null body.
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateNoteRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	id := chi.URLParam(r, "id")
	note, err := h.svc.UpdateNote(r.Context(), id, req.ToNoteUpdate())
	if apperr.Is(err, apperr.NotFound) {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	h.logger.Info("note_updated", "note_id", note.ID)

	writeJSON(w, http.StatusOK, dto.ToNoteResponse(note))
}

// Delete handles DELETE /api/notes/{id}.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.svc.DeleteNote(r.Context(), id); err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	h.logger.Info("note_deleted", "note_id", id)

	w.WriteHeader(http.StatusNoContent)
}
