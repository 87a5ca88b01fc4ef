package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"cbmpe-api/internal/middleware"
	"cbmpe-api/internal/model"
	"cbmpe-api/internal/service"
	"cbmpe-api/internal/validation"
	"cbmpe-api/pkg/apierror"
)

type OccurrenceHandler struct {
	service   *service.OccurrenceService
	validator *validation.Validator
}

func NewOccurrenceHandler(service *service.OccurrenceService, validator *validation.Validator) *OccurrenceHandler {
	return &OccurrenceHandler{service: service, validator: validator}
}

func (h *OccurrenceHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	subject, ok := middleware.SubjectFromContext(r.Context())
	if !ok {
		writeError(w, apierror.New("UNAUTHORIZED", "authentication required", "", http.StatusUnauthorized))
		return
	}

	var payload model.CreateOccurrenceRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validator.Validate(payload); err != nil {
		writeError(w, err)
		return
	}

	occurrence, err := h.service.Create(r.Context(), payload, subject)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, occurrence)
}

func (h *OccurrenceHandler) List(w http.ResponseWriter, r *http.Request) {
	occurrences, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, occurrences)
}

func (h *OccurrenceHandler) Get(w http.ResponseWriter, r *http.Request) {
	occurrence, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, occurrence)
}

func (h *OccurrenceHandler) Update(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.UpdateOccurrenceRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validator.Validate(payload); err != nil {
		writeError(w, err)
		return
	}

	occurrence, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, occurrence)
}

func (h *OccurrenceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"deleted": true})
}
