package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/jackaholy/Cheminv2.0/internal/logger"
	"github.com/jackaholy/Cheminv2.0/internal/search"
	"github.com/jackaholy/Cheminv2.0/internal/search/dto"
	"go.uber.org/zap"
)

// HTTPHandler exposes the search engine as GET /api/search.
type HTTPHandler struct {
	uc     search.UseCase
	logger logger.ZapLogger
}

func NewHTTPHandler(uc search.UseCase, log logger.ZapLogger) *HTTPHandler {
	return &HTTPHandler{uc: uc, logger: log}
}

func (h *HTTPHandler) RegisterRoutes(r chi.Router) {
	r.Get("/api/search", h.search)
}

func (h *HTTPHandler) search(w http.ResponseWriter, r *http.Request) {
	input, verr := parseSearchQuery(r.URL.Query())
	if verr != nil {
		respondValidation(w, verr)
		return
	}

	views, err := h.uc.Search(r.Context(), input)
	if err != nil {
		var ve *search.ValidationError
		if errors.As(err, &ve) {
			respondValidation(w, ve)
			return
		}
		h.logger.Error("Search failed", zap.String("query", input.Query), zap.Error(err))
		respond(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}
	respond(w, http.StatusOK, views)
}

// parseSearchQuery reads query, room, sub_location, manufacturers and synonyms.
// Manufacturers may repeat and may be comma separated.
func parseSearchQuery(values url.Values) (*dto.SearchInput, *search.ValidationError) {
	verr := &search.ValidationError{}
	input := &dto.SearchInput{
		Query:    values.Get("query"),
		Synonyms: values.Get("synonyms") == "true",
	}

	if raw := values.Get("room"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			verr.Add("room", "Not a valid integer.")
		} else {
			input.Filter.RoomID = &id
		}
	}
	if raw := values.Get("sub_location"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			verr.Add("sub_location", "Not a valid integer.")
		} else {
			input.Filter.ShelfID = &id
		}
	}

	i := 0
	for _, raw := range values["manufacturers"] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				verr.Add("manufacturers."+strconv.Itoa(i), "Not a valid integer.")
			} else {
				input.Filter.ManufacturerIDs = append(input.Filter.ManufacturerIDs, id)
			}
			i++
		}
	}

	if !verr.Empty() {
		return nil, verr
	}
	return input, nil
}

func respondValidation(w http.ResponseWriter, verr *search.ValidationError) {
	respond(w, http.StatusBadRequest, map[string]interface{}{
		"error":   "Invalid request parameters",
		"details": verr.Fields,
	})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
