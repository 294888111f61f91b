package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/museum-guide/internal/models"
)

// ReviewAppender defines the interface for recording reviews.
type ReviewAppender interface {
	AddReview(ctx context.Context, username string, museumID, rating int, notes string) ([]models.ReviewEntry, error)
}

// ReviewRequest represents the JSON body for a review
// swagger:model ReviewRequest
type ReviewRequest struct {
	// Museum id
	// required: true
	// default: 1
	MuseumID int `json:"museumId"`

	// Rating in [1,5]
	// required: true
	// default: 4
	Rating int `json:"rating"`

	// Review text
	// required: true
	// default: Wonderful collection
	Notes string `json:"notes"`
}

// ReviewResponse represents the review diary after a mutation
// swagger:model ReviewResponse
type ReviewResponse struct {
	// Result message
	// default: Review added
	Message string `json:"message"`

	// Current review diary
	ReviewDiary []models.ReviewEntry `json:"reviewDiary"`
}

// NewAddReviewHandler returns an HTTP handler for recording a review.
// The museum must already appear in the user's visited log.
// @Summary Add a museum review
// @Description Appends a review; requires a prior visit, a rating in [1,5] and non-empty notes
// @Tags user
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param reviewRequest body handlers.ReviewRequest true "Review to record"
// @Success 200 {object} handlers.ReviewResponse "Current review diary"
// @Failure 400 {object} handlers.UserErrorResponse "Validation failed"
// @Failure 404 {object} handlers.UserErrorResponse "User not found"
// @Router /api/user/review/{username} [post]
// @Security BearerAuth
func NewAddReviewHandler(svc ReviewAppender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		var req ReviewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UserErrorResponse{
				Message: "museumId, rating and notes required",
			})
			return
		}

		reviewDiary, err := svc.AddReview(r.Context(), username, req.MuseumID, req.Rating, req.Notes)
		if err != nil {
			writeUserError(w, err)
			return
		}

		json.NewEncoder(w).Encode(ReviewResponse{
			Message:     "Review added",
			ReviewDiary: reviewDiary,
		})
	}
}
