package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sbilibin2017/museum-guide/internal/logger"
	"github.com/sbilibin2017/museum-guide/internal/models"
)

// ContentRepository holds the read-only content snapshot: museums, the general
// quiz question pool and the per-museum quizzes. All three sources are read once
// at construction time; a source that fails to load degrades to an empty
// collection so startup never aborts.
type ContentRepository struct {
	museums       []models.Museum
	quizzes       []models.Question
	museumQuizzes map[string]models.MuseumQuiz
}

// museumsFile matches both {"museums": [...]} and a bare array.
type museumsFile struct {
	Museums []models.Museum `json:"museums"`
}

type quizzesFile struct {
	Quizzes []models.Question `json:"quizzes"`
}

type museumQuizzesFile struct {
	MuseumQuizzes map[string]models.MuseumQuiz `json:"museumQuizzes"`
}

// NewContentRepository loads museums.json, quiz.json and museum-quiz.json from dataDir.
func NewContentRepository(dataDir string) *ContentRepository {
	r := &ContentRepository{
		museums:       []models.Museum{},
		quizzes:       []models.Question{},
		museumQuizzes: map[string]models.MuseumQuiz{},
	}

	if museums, err := loadMuseums(filepath.Join(dataDir, "museums.json")); err != nil {
		logger.Log.Errorw("failed to load museums, continuing with empty catalog", "error", err)
	} else {
		r.museums = museums
		logger.Log.Infow("loaded museums", "count", len(museums))
	}

	if quizzes, err := loadQuizzes(filepath.Join(dataDir, "quiz.json")); err != nil {
		logger.Log.Errorw("failed to load quiz questions, continuing with empty pool", "error", err)
	} else {
		r.quizzes = quizzes
		logger.Log.Infow("loaded quiz questions", "count", len(quizzes))
	}

	if museumQuizzes, err := loadMuseumQuizzes(filepath.Join(dataDir, "museum-quiz.json")); err != nil {
		logger.Log.Errorw("failed to load museum quizzes, continuing with none", "error", err)
	} else {
		r.museumQuizzes = museumQuizzes
		logger.Log.Infow("loaded museum quizzes", "count", len(museumQuizzes))
	}

	return r
}

func loadMuseums(path string) ([]models.Museum, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var wrapped museumsFile
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Museums != nil {
		return wrapped.Museums, nil
	}

	var bare []models.Museum
	if err := json.Unmarshal(data, &bare); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return bare, nil
}

func loadQuizzes(path string) ([]models.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var wrapped quizzesFile
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Quizzes != nil {
		return wrapped.Quizzes, nil
	}

	var bare []models.Question
	if err := json.Unmarshal(data, &bare); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return bare, nil
}

func loadMuseumQuizzes(path string) (map[string]models.MuseumQuiz, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var wrapped museumQuizzesFile
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if wrapped.MuseumQuizzes == nil {
		return map[string]models.MuseumQuiz{}, nil
	}
	return wrapped.MuseumQuizzes, nil
}

// Museums returns the full museum catalog.
func (r *ContentRepository) Museums(ctx context.Context) []models.Museum {
	return r.museums
}

// MuseumByID returns the museum with the given id, or nil if absent.
func (r *ContentRepository) MuseumByID(ctx context.Context, id int) *models.Museum {
	for i := range r.museums {
		if r.museums[i].ID == id {
			return &r.museums[i]
		}
	}
	return nil
}

// Search returns museums whose name, city, state or description contains the
// query, case-insensitively. An empty or whitespace-only query returns the
// full catalog.
func (r *ContentRepository) Search(ctx context.Context, query string) []models.Museum {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return r.museums
	}

	results := []models.Museum{}
	for _, m := range r.museums {
		if strings.Contains(strings.ToLower(m.Name), q) ||
			strings.Contains(strings.ToLower(m.City), q) ||
			strings.Contains(strings.ToLower(m.State), q) ||
			strings.Contains(strings.ToLower(m.Description), q) {
			results = append(results, m)
		}
	}
	return results
}

// FindByNameCity returns the first museum whose name contains name
// (case-insensitive) and whose city matches exactly, ignoring case.
func (r *ContentRepository) FindByNameCity(ctx context.Context, name, city string) *models.Museum {
	for i := range r.museums {
		m := &r.museums[i]
		if strings.Contains(strings.ToLower(m.Name), strings.ToLower(name)) &&
			strings.EqualFold(m.City, city) {
			return m
		}
	}
	return nil
}

// Quizzes returns the general quiz question pool.
func (r *ContentRepository) Quizzes(ctx context.Context) []models.Question {
	return r.quizzes
}

// MuseumQuiz returns the question set for the museum id (JSON object key), or
// nil if no quiz exists for it.
func (r *ContentRepository) MuseumQuiz(ctx context.Context, museumID string) *models.MuseumQuiz {
	quiz, ok := r.museumQuizzes[museumID]
	if !ok {
		return nil
	}
	return &quiz
}
