package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/museum-guide/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestListQuizzesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := NewMockQuizCatalog(ctrl)

	// loaded pool
	catalog.EXPECT().Quizzes(gomock.Any()).Return([]models.Question{
		{ID: 1, Question: "Which city hosts the City Art Museum?", Options: []string{"Springfield", "Shelbyville"}, CorrectAnswer: 0},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/quiz", nil)
	w := httptest.NewRecorder()

	NewListQuizzesHandler(catalog).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp QuizzesResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.Count)
	assert.Len(t, resp.Quizzes, 1)

	// empty pool answers 500
	catalog.EXPECT().Quizzes(gomock.Any()).Return([]models.Question{})

	req = httptest.NewRequest(http.MethodGet, "/api/quiz", nil)
	w = httptest.NewRecorder()

	NewListQuizzesHandler(catalog).ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var errResp QuizErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.False(t, errResp.Success)
	assert.Equal(t, "Quiz data not loaded", errResp.Message)
}

func TestMuseumQuizHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := NewMockQuizCatalog(ctrl)

	quiz := &models.MuseumQuiz{
		MuseumName: "City Art Museum",
		Questions:  []models.Question{{ID: 1, Question: "What hangs in the main hall?", CorrectAnswer: 0}},
	}
	catalog.EXPECT().MuseumQuiz(gomock.Any(), "1").Return(quiz)

	req := httptest.NewRequest(http.MethodGet, "/api/museum-quiz/1", nil)
	req = withURLParams(req, map[string]string{"museumId": "1"})
	w := httptest.NewRecorder()

	NewMuseumQuizHandler(catalog).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp MuseumQuizResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "City Art Museum", resp.Quiz.MuseumName)

	// no quiz for the museum
	catalog.EXPECT().MuseumQuiz(gomock.Any(), "99").Return(nil)

	req = httptest.NewRequest(http.MethodGet, "/api/museum-quiz/99", nil)
	req = withURLParams(req, map[string]string{"museumId": "99"})
	w = httptest.NewRecorder()

	NewMuseumQuizHandler(catalog).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var errResp QuizErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.False(t, errResp.Success)
	assert.Equal(t, "No quiz found for this museum", errResp.Message)
}
