package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/museum-guide/internal/models"
)

// QuizCatalog defines the quiz read operations the quiz handlers need from
// the content store.
type QuizCatalog interface {
	Quizzes(ctx context.Context) []models.Question
	MuseumQuiz(ctx context.Context, museumID string) *models.MuseumQuiz
}

// QuizzesResponse represents the general quiz question pool
// swagger:model QuizzesResponse
type QuizzesResponse struct {
	// Quiz questions
	Quizzes []models.Question `json:"quizzes"`

	// Success flag
	// default: true
	Success bool `json:"success"`

	// Question count
	// default: 10
	Count int `json:"count"`
}

// QuizErrorResponse represents an error response for quiz routes
// swagger:model QuizErrorResponse
type QuizErrorResponse struct {
	// Error message
	// default: Quiz data not loaded
	Message string `json:"message"`

	// Success flag
	// default: false
	Success bool `json:"success"`

	// Empty question list, kept for client compatibility
	Quizzes []models.Question `json:"quizzes,omitempty"`
}

// MuseumQuizResponse represents a per-museum quiz
// swagger:model MuseumQuizResponse
type MuseumQuizResponse struct {
	// Success flag
	// default: true
	Success bool `json:"success"`

	// Question set for the museum
	Quiz *models.MuseumQuiz `json:"quiz"`
}

// NewListQuizzesHandler returns an HTTP handler for the general question pool.
// @Summary List quiz questions
// @Description Returns the general quiz question pool; 500 when no questions were loaded
// @Tags quiz
// @Produce json
// @Success 200 {object} handlers.QuizzesResponse "Question pool"
// @Failure 500 {object} handlers.QuizErrorResponse "Quiz data not loaded"
// @Router /api/quiz [get]
func NewListQuizzesHandler(catalog QuizCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quizzes := catalog.Quizzes(r.Context())
		if len(quizzes) == 0 {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(QuizErrorResponse{
				Message: "Quiz data not loaded",
				Success: false,
				Quizzes: []models.Question{},
			})
			return
		}

		json.NewEncoder(w).Encode(QuizzesResponse{
			Quizzes: quizzes,
			Success: true,
			Count:   len(quizzes),
		})
	}
}

// NewMuseumQuizHandler returns an HTTP handler for a museum's question set.
// @Summary Get museum quiz
// @Description Returns the question set for one museum
// @Tags quiz
// @Produce json
// @Param museumId path int true "Museum id"
// @Success 200 {object} handlers.MuseumQuizResponse "Museum quiz"
// @Failure 404 {object} handlers.QuizErrorResponse "No quiz for this museum"
// @Router /api/museum-quiz/{museumId} [get]
func NewMuseumQuizHandler(catalog QuizCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		museumID := chi.URLParam(r, "museumId")

		quiz := catalog.MuseumQuiz(r.Context(), museumID)
		if quiz == nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(QuizErrorResponse{
				Message: "No quiz found for this museum",
				Success: false,
			})
			return
		}

		json.NewEncoder(w).Encode(MuseumQuizResponse{
			Success: true,
			Quiz:    quiz,
		})
	}
}
