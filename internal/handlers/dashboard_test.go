package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/museum-guide/internal/models"
	"github.com/sbilibin2017/museum-guide/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestDashboardHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockDashboardGetter(ctrl)

	tests := []struct {
		name         string
		username     string
		mockSetup    func()
		expectedCode int
	}{
		{
			name:     "success",
			username: "alice",
			mockSetup: func() {
				user := models.NewUser("alice", "hash")
				user.Wishlist = []models.WishlistEntry{{MuseumID: 1}}
				mockSvc.EXPECT().Dashboard(gomock.Any(), "alice").Return(user, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:     "user not found",
			username: "ghost",
			mockSetup: func() {
				mockSvc.EXPECT().Dashboard(gomock.Any(), "ghost").
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:     "internal error",
			username: "alice",
			mockSetup: func() {
				mockSvc.EXPECT().Dashboard(gomock.Any(), "alice").
					Return(nil, errors.New("ledger read failed"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/api/user/dashboard/"+tt.username, nil)
			req = withURLParams(req, map[string]string{"username": tt.username})
			w := httptest.NewRecorder()

			NewDashboardHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedCode == http.StatusOK {
				var resp DashboardResponse
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "alice", resp.Username)
				assert.Len(t, resp.Wishlist, 1)

				// the password hash never leaves the server
				assert.NotContains(t, w.Body.String(), "hash")
			} else {
				var resp UserErrorResponse
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.NotEmpty(t, resp.Message)
			}
		})
	}
}
