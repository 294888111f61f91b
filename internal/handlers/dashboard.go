package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/museum-guide/internal/logger"
	"github.com/sbilibin2017/museum-guide/internal/models"
	"github.com/sbilibin2017/museum-guide/internal/services"
)

// DashboardGetter defines the interface that the dashboard service must implement.
type DashboardGetter interface {
	Dashboard(ctx context.Context, username string) (*models.User, error)
}

// DashboardResponse represents the full user activity record
// swagger:model DashboardResponse
type DashboardResponse struct {
	// Username
	// default: john_doe
	Username string `json:"username"`

	// Wishlist entries
	Wishlist []models.WishlistEntry `json:"wishlist"`

	// Visited log entries
	VisitedLog []models.VisitEntry `json:"visitedLog"`

	// Review diary entries
	ReviewDiary []models.ReviewEntry `json:"reviewDiary"`

	// Quiz attempts
	QuizScores []models.QuizScore `json:"quizScores"`
}

// UserErrorResponse represents an error response for user routes
// swagger:model UserErrorResponse
type UserErrorResponse struct {
	// Error message
	// default: User not found
	Message string `json:"message"`
}

// NewDashboardHandler returns an HTTP handler for the user dashboard.
// @Summary Get user dashboard
// @Description Returns the user's wishlist, visited log, review diary and quiz history
// @Tags user
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} handlers.DashboardResponse "User activity record"
// @Failure 404 {object} handlers.UserErrorResponse "User not found"
// @Router /api/user/dashboard/{username} [get]
// @Security BearerAuth
func NewDashboardHandler(svc DashboardGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		user, err := svc.Dashboard(r.Context(), username)
		if err != nil {
			writeUserError(w, err)
			return
		}

		json.NewEncoder(w).Encode(DashboardResponse{
			Username:    user.Username,
			Wishlist:    user.Wishlist,
			VisitedLog:  user.VisitedLog,
			ReviewDiary: user.ReviewDiary,
			QuizScores:  user.QuizScores,
		})
	}
}

// writeUserError maps ledger service errors onto the user-route status codes.
func writeUserError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(UserErrorResponse{
			Message: "User not found",
		})
	case errors.Is(err, services.ErrInvalidRating),
		errors.Is(err, services.ErrEmptyNotes),
		errors.Is(err, services.ErrMuseumNotVisited),
		errors.Is(err, services.ErrInvalidQuizScore):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(UserErrorResponse{
			Message: err.Error(),
		})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(UserErrorResponse{
			Message: "Internal server error",
		})
	}
}
