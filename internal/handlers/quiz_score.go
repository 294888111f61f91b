package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/museum-guide/internal/models"
)

// QuizScoreAppender defines the interface for recording quiz attempts.
type QuizScoreAppender interface {
	AddQuizScore(ctx context.Context, username string, record models.QuizScore) ([]models.QuizScore, *models.QuizScore, error)
}

// QuizHistoryGetter defines the interface for reading quiz attempts.
type QuizHistoryGetter interface {
	QuizHistory(ctx context.Context, username string) ([]models.QuizScore, error)
}

// QuizScoreRequest represents the JSON body for a quiz attempt
// swagger:model QuizScoreRequest
type QuizScoreRequest struct {
	// Museum id
	// required: true
	// default: 1
	MuseumID int `json:"museumId"`

	// Museum name at attempt time
	// default: City Art Museum
	MuseumName string `json:"museumName"`

	// Correct answers
	// required: true
	// default: 7
	Score int `json:"score"`

	// Questions in the quiz
	// required: true
	// default: 10
	TotalQuestions int `json:"totalQuestions"`

	// Percentage; computed server-side when omitted
	// default: 70.00
	Percentage float64 `json:"percentage,omitempty"`

	// Per-question answers
	Answers []models.QuizAnswer `json:"answers"`
}

// QuizScoreResponse represents the quiz history after a recorded attempt
// swagger:model QuizScoreResponse
type QuizScoreResponse struct {
	// Result message
	// default: Quiz score recorded
	Message string `json:"message"`

	// All recorded attempts
	QuizScores []models.QuizScore `json:"quizScores"`

	// The attempt just recorded
	LatestScore *models.QuizScore `json:"latestScore"`
}

// NewAddQuizScoreHandler returns an HTTP handler for recording a quiz attempt.
// @Summary Record a quiz score
// @Description Appends a quiz attempt; percentage is computed server-side when omitted
// @Tags quiz
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param quizScoreRequest body handlers.QuizScoreRequest true "Attempt to record"
// @Success 200 {object} handlers.QuizScoreResponse "Quiz history with latest attempt"
// @Failure 400 {object} handlers.UserErrorResponse "Validation failed"
// @Failure 404 {object} handlers.UserErrorResponse "User not found"
// @Router /api/user/quiz-score/{username} [post]
// @Security BearerAuth
func NewAddQuizScoreHandler(svc QuizScoreAppender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		var req QuizScoreRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UserErrorResponse{
				Message: "museumId, score and totalQuestions required",
			})
			return
		}

		quizScores, latest, err := svc.AddQuizScore(r.Context(), username, models.QuizScore{
			MuseumID:       req.MuseumID,
			MuseumName:     req.MuseumName,
			Score:          req.Score,
			TotalQuestions: req.TotalQuestions,
			Percentage:     req.Percentage,
			Answers:        req.Answers,
		})
		if err != nil {
			writeUserError(w, err)
			return
		}

		json.NewEncoder(w).Encode(QuizScoreResponse{
			Message:     "Quiz score recorded",
			QuizScores:  quizScores,
			LatestScore: latest,
		})
	}
}

// NewQuizHistoryHandler returns an HTTP handler for the user's quiz history.
// @Summary Get quiz history
// @Description Returns all recorded quiz attempts as a bare array
// @Tags quiz
// @Produce json
// @Param username path string true "Username"
// @Success 200 {array} models.QuizScore "Quiz attempts"
// @Failure 404 {object} handlers.UserErrorResponse "User not found"
// @Router /api/user/quiz-history/{username} [get]
// @Security BearerAuth
func NewQuizHistoryHandler(svc QuizHistoryGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		quizScores, err := svc.QuizHistory(r.Context(), username)
		if err != nil {
			writeUserError(w, err)
			return
		}

		json.NewEncoder(w).Encode(quizScores)
	}
}
