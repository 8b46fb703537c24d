package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"mfo-offers-api/internal/models"
	"mfo-offers-api/internal/service"
	"mfo-offers-api/internal/validation"
)

// Handler provides HTTP handlers for the API.
type Handler struct {
	service     *service.Service
	maxBodySize int64
}

// NewHandlerOptions holds options for creating a handler.
type NewHandlerOptions struct {
	MaxBodySize int64
}

// DefaultHandlerOptions returns default handler options.
func DefaultHandlerOptions() NewHandlerOptions {
	return NewHandlerOptions{
		MaxBodySize: 1 << 20, // 1MB default
	}
}

// NewHandler creates a new handler instance.
func NewHandler(svc *service.Service) *Handler {
	return NewHandlerWithOptions(svc, DefaultHandlerOptions())
}

// NewHandlerWithOptions creates a new handler instance with custom options.
func NewHandlerWithOptions(svc *service.Service, opts NewHandlerOptions) *Handler {
	return &Handler{
		service:     svc,
		maxBodySize: opts.MaxBodySize,
	}
}

// Root handles GET /
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, models.MessageResponse{Message: "MFO Offers API running"})
}

// ListOffers handles GET /api/offers
func (h *Handler) ListOffers(w http.ResponseWriter, r *http.Request) {
	filter, err := validation.ParseOfferFilter(r.URL.Query())
	if err != nil {
		h.respondValidationError(w, err)
		return
	}

	offers, err := h.service.ListOffers(r.Context(), filter)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, offers)
}

// CreateOffer handles POST /api/offers
func (h *Handler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	// Limit request body size to prevent abuse
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	var req models.Offer
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err == io.EOF {
			h.respondError(w, http.StatusBadRequest, "request body is required")
			return
		}
		h.respondError(w, http.StatusBadRequest, "invalid JSON in request body")
		return
	}

	// The store assigns identifiers; a client-supplied one is ignored.
	req.ID = ""
	validation.SanitizeOffer(&req)

	id, err := h.service.CreateOffer(r.Context(), req)
	if err != nil {
		var verr *validation.ValidationError
		if errors.As(err, &verr) {
			h.respondValidationError(w, verr)
			return
		}
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusCreated, models.CreateOfferResponse{ID: id})
}

// SeedOffers handles POST /api/offers/seed
func (h *Handler) SeedOffers(w http.ResponseWriter, r *http.Request) {
	inserted, alreadySeeded, err := h.service.SeedOffers(r.Context())
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := models.SeedResponse{Status: "ok", Inserted: inserted}
	if alreadySeeded {
		resp.Message = "Offers already exist"
	}

	h.respondJSON(w, http.StatusOK, resp)
}

// TestDatabase handles GET /test. It reports status and never fails.
func (h *Handler) TestDatabase(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.service.Status(r.Context()))
}

// respondJSON sends a JSON response with the given status code.
func (h *Handler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response with the given status code and message.
func (h *Handler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, models.ErrorResponse{Error: message})
}

// respondValidationError sends a 400 carrying the failing field when known.
func (h *Handler) respondValidationError(w http.ResponseWriter, err error) {
	var verr *validation.ValidationError
	if errors.As(err, &verr) {
		h.respondJSON(w, http.StatusBadRequest, models.ErrorResponse{
			Error: verr.Message,
			Field: verr.Field,
		})
		return
	}
	h.respondError(w, http.StatusBadRequest, err.Error())
}
