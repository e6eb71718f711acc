package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackaholy/Cheminv2.0/internal/inventory"
	"github.com/jackaholy/Cheminv2.0/internal/inventory/dto"
	"github.com/jackaholy/Cheminv2.0/internal/logger"
	"go.uber.org/zap"
)

// HTTPHandler exposes the live/dead toggle endpoints.
type HTTPHandler struct {
	uc     inventory.UseCase
	logger logger.ZapLogger
}

func NewHTTPHandler(uc inventory.UseCase, log logger.ZapLogger) *HTTPHandler {
	return &HTTPHandler{uc: uc, logger: log}
}

func (h *HTTPHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/chemicals", func(r chi.Router) {
		r.Post("/mark_dead", h.markDead)
		r.Post("/mark_alive", h.markAlive)
		r.Post("/mark_many_dead", h.markManyDead)
	})
}

func (h *HTTPHandler) markDead(w http.ResponseWriter, r *http.Request) {
	h.mark(w, r, true)
}

func (h *HTTPHandler) markAlive(w http.ResponseWriter, r *http.Request) {
	h.mark(w, r, false)
}

func (h *HTTPHandler) mark(w http.ResponseWriter, r *http.Request, dead bool) {
	var in dto.MarkInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "Invalid payload"})
		return
	}
	if in.InventoryID == 0 {
		respond(w, http.StatusBadRequest, map[string]string{"error": "Missing inventory_id"})
		return
	}

	var err error
	if dead {
		_, err = h.uc.MarkDead(r.Context(), in.InventoryID)
	} else {
		_, err = h.uc.MarkAlive(r.Context(), in.InventoryID)
	}
	if err != nil {
		h.respondError(w, err)
		return
	}

	msg := "Chemical marked as alive"
	if dead {
		msg = "Chemical marked as dead"
	}
	respond(w, http.StatusOK, map[string]string{"message": msg})
}

func (h *HTTPHandler) markManyDead(w http.ResponseWriter, r *http.Request) {
	var in dto.MarkManyDeadInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "Invalid payload"})
		return
	}

	n, err := h.uc.MarkManyDead(r.Context(), in.SubLocationID, in.StickerNumbers)
	if err != nil {
		h.respondError(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]string{"message": fmt.Sprintf("%d chemicals marked as dead", n)})
}

func (h *HTTPHandler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, inventory.ErrBottleNotFound):
		respond(w, http.StatusNotFound, map[string]string{"error": "Bottle not found"})
	case errors.Is(err, inventory.ErrNotOnShelf):
		respond(w, http.StatusBadRequest, map[string]string{"error": "Some sticker numbers are not in the specified sub-location"})
	case errors.Is(err, inventory.ErrNoStickers):
		respond(w, http.StatusBadRequest, map[string]string{"error": "Missing sticker_numbers"})
	default:
		h.logger.Error("Bottle status update failed", zap.Error(err))
		respond(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
