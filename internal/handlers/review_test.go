package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/museum-guide/internal/models"
	"github.com/sbilibin2017/museum-guide/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestAddReviewHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockReviewAppender(ctrl)

	tests := []struct {
		name            string
		inputBody       interface{}
		mockSetup       func()
		expectedCode    int
		expectedMessage string
	}{
		{
			name:      "success",
			inputBody: ReviewRequest{MuseumID: 1, Rating: 4, Notes: "Wonderful collection"},
			mockSetup: func() {
				mockSvc.EXPECT().AddReview(gomock.Any(), "alice", 1, 4, "Wonderful collection").
					Return([]models.ReviewEntry{{MuseumID: 1, Rating: 4, Notes: "Wonderful collection"}}, nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "Review added",
		},
		{
			name:            "invalid JSON",
			inputBody:       "{invalid json}",
			mockSetup:       func() {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "museumId, rating and notes required",
		},
		{
			name:      "rating out of range",
			inputBody: ReviewRequest{MuseumID: 1, Rating: 6, Notes: "x"},
			mockSetup: func() {
				mockSvc.EXPECT().AddReview(gomock.Any(), "alice", 1, 6, "x").
					Return(nil, services.ErrInvalidRating)
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "rating must be between 1 and 5",
		},
		{
			name:      "museum not visited",
			inputBody: ReviewRequest{MuseumID: 9, Rating: 4, Notes: "x"},
			mockSetup: func() {
				mockSvc.EXPECT().AddReview(gomock.Any(), "alice", 9, 4, "x").
					Return(nil, services.ErrMuseumNotVisited)
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "museum must be marked visited before reviewing",
		},
		{
			name:      "user not found",
			inputBody: ReviewRequest{MuseumID: 1, Rating: 4, Notes: "x"},
			mockSetup: func() {
				mockSvc.EXPECT().AddReview(gomock.Any(), "alice", 1, 4, "x").
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode:    http.StatusNotFound,
			expectedMessage: "User not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var bodyBytes []byte
			switch v := tt.inputBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/user/review/alice", bytes.NewReader(bodyBytes))
			req = withURLParams(req, map[string]string{"username": "alice"})
			w := httptest.NewRecorder()

			NewAddReviewHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedCode == http.StatusOK {
				var resp ReviewResponse
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedMessage, resp.Message)
				assert.Len(t, resp.ReviewDiary, 1)
			} else {
				var resp UserErrorResponse
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedMessage, resp.Message)
			}
		})
	}
}
