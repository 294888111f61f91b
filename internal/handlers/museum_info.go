package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/museum-guide/internal/models"
)

// InfoGetter defines the interface that the museum info service must implement.
type InfoGetter interface {
	GetMuseumInfo(ctx context.Context, name string) (string, bool)
}

// LocationFinder defines the location lookup the handlers need from the
// content store.
type LocationFinder interface {
	FindByNameCity(ctx context.Context, name, city string) *models.Museum
}

// MuseumInfoResponse represents a museum background info response
// swagger:model MuseumInfoResponse
type MuseumInfoResponse struct {
	// Whether the lookup succeeded
	// default: true
	Success bool `json:"success"`

	// Extract text, or a placeholder on failure
	Information string `json:"information"`
}

// MuseumLocationResponse represents a museum location response
// swagger:model MuseumLocationResponse
type MuseumLocationResponse struct {
	// Whether the museum was found
	// default: true
	Success bool `json:"success"`

	// Museum name
	Name string `json:"name,omitempty"`

	// City
	City string `json:"city,omitempty"`

	// Street address
	Address string `json:"address,omitempty"`

	// Google Maps search link
	MapLink string `json:"mapLink,omitempty"`

	// Error message when not found
	Message string `json:"message,omitempty"`
}

// NewMuseumInfoHandler returns an HTTP handler for museum background info.
// Lookups always answer 200; upstream failures degrade to a placeholder body.
// @Summary Get museum background info
// @Description Fetches a Wikipedia extract for the museum name, with a bounded timeout
// @Tags info
// @Produce json
// @Param name path string true "Museum name"
// @Success 200 {object} handlers.MuseumInfoResponse "Extract or placeholder"
// @Router /api/museum-info/{name} [get]
func NewMuseumInfoHandler(svc InfoGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, err := url.PathUnescape(chi.URLParam(r, "name"))
		if err != nil {
			name = chi.URLParam(r, "name")
		}

		information, ok := svc.GetMuseumInfo(r.Context(), name)
		json.NewEncoder(w).Encode(MuseumInfoResponse{
			Success:     ok,
			Information: information,
		})
	}
}

// NewMuseumLocationHandler returns an HTTP handler for museum locations.
// @Summary Get museum location
// @Description Looks up a museum by name and city and returns its address with a maps link
// @Tags info
// @Produce json
// @Param name path string true "Museum name"
// @Param city path string true "City"
// @Success 200 {object} handlers.MuseumLocationResponse "Location or not-found body"
// @Router /api/museum-location/{name}/{city} [get]
func NewMuseumLocationHandler(catalog LocationFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		city := chi.URLParam(r, "city")

		museum := catalog.FindByNameCity(r.Context(), name, city)
		if museum == nil {
			json.NewEncoder(w).Encode(MuseumLocationResponse{
				Success: false,
				Message: "Museum not found",
			})
			return
		}

		json.NewEncoder(w).Encode(MuseumLocationResponse{
			Success: true,
			Name:    museum.Name,
			City:    museum.City,
			Address: museum.Address,
			MapLink: fmt.Sprintf("https://www.google.com/maps/search/%s", url.QueryEscape(museum.Address)),
		})
	}
}
