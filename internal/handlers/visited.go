package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/museum-guide/internal/models"
)

// VisitAppender defines the interface for recording visits.
type VisitAppender interface {
	AddVisited(ctx context.Context, username string, museumID int, visitDate string) ([]models.VisitEntry, error)
}

// VisitedRequest represents the JSON body for a visit
// swagger:model VisitedRequest
type VisitedRequest struct {
	// Museum id
	// required: true
	// default: 1
	MuseumID int `json:"museumId"`

	// Visit date as supplied by the client
	// default: 2026-08-30
	VisitDate string `json:"visitDate"`
}

// VisitedResponse represents the visited log after a mutation
// swagger:model VisitedResponse
type VisitedResponse struct {
	// Result message
	// default: Added to visited log
	Message string `json:"message"`

	// Current visited log
	VisitedLog []models.VisitEntry `json:"visitedLog"`
}

// NewAddVisitedHandler returns an HTTP handler for recording a visit.
// Marking a museum visited unlocks its review form and quiz.
// @Summary Record a museum visit
// @Description Appends a visit to the user's visited log; duplicates are permitted
// @Tags user
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param visitedRequest body handlers.VisitedRequest true "Visit to record"
// @Success 200 {object} handlers.VisitedResponse "Current visited log"
// @Failure 404 {object} handlers.UserErrorResponse "User not found"
// @Router /api/user/visited/{username} [post]
// @Security BearerAuth
func NewAddVisitedHandler(svc VisitAppender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		var req VisitedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UserErrorResponse{
				Message: "museumId and visitDate required",
			})
			return
		}

		visitedLog, err := svc.AddVisited(r.Context(), username, req.MuseumID, req.VisitDate)
		if err != nil {
			writeUserError(w, err)
			return
		}

		json.NewEncoder(w).Encode(VisitedResponse{
			Message:    "Added to visited log",
			VisitedLog: visitedLog,
		})
	}
}
