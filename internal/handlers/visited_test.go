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

func TestAddVisitedHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockVisitAppender(ctrl)

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
	}{
		{
			name:      "success",
			inputBody: VisitedRequest{MuseumID: 1, VisitDate: "2026-08-30"},
			mockSetup: func() {
				mockSvc.EXPECT().AddVisited(gomock.Any(), "alice", 1, "2026-08-30").
					Return([]models.VisitEntry{{MuseumID: 1, VisitDate: "2026-08-30"}}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "user not found",
			inputBody: VisitedRequest{MuseumID: 1, VisitDate: "2026-08-30"},
			mockSetup: func() {
				mockSvc.EXPECT().AddVisited(gomock.Any(), "alice", 1, "2026-08-30").
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
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

			req := httptest.NewRequest(http.MethodPost, "/api/user/visited/alice", bytes.NewReader(bodyBytes))
			req = withURLParams(req, map[string]string{"username": "alice"})
			w := httptest.NewRecorder()

			NewAddVisitedHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var resp VisitedResponse
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "Added to visited log", resp.Message)
				assert.Len(t, resp.VisitedLog, 1)
			}
		})
	}
}
