package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/museum-guide/internal/models"
	"github.com/stretchr/testify/assert"
)

// withURLParams attaches chi route parameters to a request outside a router.
func withURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestListMuseumsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := NewMockMuseumCatalog(ctrl)
	museums := []models.Museum{
		{ID: 1, Name: "City Art Museum", City: "Springfield"},
		{ID: 2, Name: "Museum of Natural History", City: "Shelbyville"},
	}
	catalog.EXPECT().Museums(gomock.Any()).Return(museums)

	req := httptest.NewRequest(http.MethodGet, "/api/museums", nil)
	w := httptest.NewRecorder()

	NewListMuseumsHandler(catalog).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp MuseumsResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Museums, 2)
}

func TestGetMuseumHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := NewMockMuseumCatalog(ctrl)

	tests := []struct {
		name         string
		id           string
		mockSetup    func()
		expectedCode int
	}{
		{
			name: "found",
			id:   "1",
			mockSetup: func() {
				catalog.EXPECT().MuseumByID(gomock.Any(), 1).
					Return(&models.Museum{ID: 1, Name: "City Art Museum"})
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "not found",
			id:   "42",
			mockSetup: func() {
				catalog.EXPECT().MuseumByID(gomock.Any(), 42).Return(nil)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "non-numeric id",
			id:           "abc",
			mockSetup:    func() {},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/api/museums/"+tt.id, nil)
			req = withURLParams(req, map[string]string{"id": tt.id})
			w := httptest.NewRecorder()

			NewGetMuseumHandler(catalog).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var resp MuseumResponse
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.True(t, resp.Success)
				assert.Equal(t, "City Art Museum", resp.Museum.Name)
			} else {
				var resp MuseumErrorResponse
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.False(t, resp.Success)
				assert.Equal(t, "Museum not found", resp.Message)
			}
		})
	}
}

func TestSearchMuseumsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := NewMockMuseumCatalog(ctrl)
	catalog.EXPECT().Search(gomock.Any(), "springfield").
		Return([]models.Museum{{ID: 1, Name: "City Art Museum", City: "Springfield"}})

	req := httptest.NewRequest(http.MethodGet, "/api/museums/search/springfield", nil)
	req = withURLParams(req, map[string]string{"query": "springfield"})
	w := httptest.NewRecorder()

	NewSearchMuseumsHandler(catalog).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp MuseumsResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Museums, 1)

	// no matches is still a 200 with an empty list
	catalog.EXPECT().Search(gomock.Any(), "aquarium").Return([]models.Museum{})

	req = httptest.NewRequest(http.MethodGet, "/api/museums/search/aquarium", nil)
	req = withURLParams(req, map[string]string{"query": "aquarium"})
	w = httptest.NewRecorder()

	NewSearchMuseumsHandler(catalog).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Museums)
}
