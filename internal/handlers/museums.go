package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/museum-guide/internal/models"
)

// MuseumCatalog defines the read operations the museum handlers need from
// the content store.
type MuseumCatalog interface {
	Museums(ctx context.Context) []models.Museum
	MuseumByID(ctx context.Context, id int) *models.Museum
	Search(ctx context.Context, query string) []models.Museum
}

// MuseumsResponse represents a museum list response
// swagger:model MuseumsResponse
type MuseumsResponse struct {
	// Museum catalog
	Museums []models.Museum `json:"museums"`

	// Success flag
	// default: true
	Success bool `json:"success"`
}

// MuseumResponse represents a single-museum response
// swagger:model MuseumResponse
type MuseumResponse struct {
	// Museum record
	Museum *models.Museum `json:"museum"`

	// Success flag
	// default: true
	Success bool `json:"success"`
}

// MuseumErrorResponse represents an error response for museum lookups
// swagger:model MuseumErrorResponse
type MuseumErrorResponse struct {
	// Error message
	// default: Museum not found
	Message string `json:"message"`

	// Success flag
	// default: false
	Success bool `json:"success"`
}

// NewListMuseumsHandler returns an HTTP handler for the full catalog.
// @Summary List museums
// @Description Returns the full museum catalog
// @Tags museums
// @Produce json
// @Success 200 {object} handlers.MuseumsResponse "Museum catalog"
// @Router /api/museums [get]
func NewListMuseumsHandler(catalog MuseumCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(MuseumsResponse{
			Museums: catalog.Museums(r.Context()),
			Success: true,
		})
	}
}

// NewGetMuseumHandler returns an HTTP handler for a single museum by id.
// @Summary Get museum by id
// @Description Returns one museum from the catalog
// @Tags museums
// @Produce json
// @Param id path int true "Museum id"
// @Success 200 {object} handlers.MuseumResponse "Museum"
// @Failure 404 {object} handlers.MuseumErrorResponse "Museum not found"
// @Router /api/museums/{id} [get]
func NewGetMuseumHandler(catalog MuseumCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(MuseumErrorResponse{
				Message: "Museum not found",
				Success: false,
			})
			return
		}

		museum := catalog.MuseumByID(r.Context(), id)
		if museum == nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(MuseumErrorResponse{
				Message: "Museum not found",
				Success: false,
			})
			return
		}

		json.NewEncoder(w).Encode(MuseumResponse{
			Museum:  museum,
			Success: true,
		})
	}
}

// NewSearchMuseumsHandler returns an HTTP handler for catalog search.
// @Summary Search museums
// @Description Case-insensitive substring search over name, city, state and description
// @Tags museums
// @Produce json
// @Param query path string true "Search query"
// @Success 200 {object} handlers.MuseumsResponse "Matching museums, possibly empty"
// @Router /api/museums/search/{query} [get]
func NewSearchMuseumsHandler(catalog MuseumCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := chi.URLParam(r, "query")
		json.NewEncoder(w).Encode(MuseumsResponse{
			Museums: catalog.Search(r.Context(), query),
			Success: true,
		})
	}
}
