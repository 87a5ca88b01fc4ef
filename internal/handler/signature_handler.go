package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"cbmpe-api/internal/model"
	"cbmpe-api/internal/service"
	"cbmpe-api/internal/validation"
)

type SignatureHandler struct {
	service   *service.SignatureService
	validator *validation.Validator
}

func NewSignatureHandler(service *service.SignatureService, validator *validation.Validator) *SignatureHandler {
	return &SignatureHandler{service: service, validator: validator}
}

func (h *SignatureHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.CreateSignatureRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validator.Validate(payload); err != nil {
		writeError(w, err)
		return
	}

	signature, err := h.service.Create(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, signature)
}

func (h *SignatureHandler) List(w http.ResponseWriter, r *http.Request) {
	signatures, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, signatures)
}

func (h *SignatureHandler) ListByOccurrence(w http.ResponseWriter, r *http.Request) {
	signatures, err := h.service.ListByOccurrence(r.Context(), chi.URLParam(r, "occurrenceId"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, signatures)
}

func (h *SignatureHandler) Get(w http.ResponseWriter, r *http.Request) {
	signature, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, signature)
}

func (h *SignatureHandler) Update(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.UpdateSignatureRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validator.Validate(payload); err != nil {
		writeError(w, err)
		return
	}

	signature, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, signature)
}

func (h *SignatureHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"deleted": true})
}
