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

func TestAddWishlistHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockWishlistAppender(ctrl)

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
	}{
		{
			name:      "success",
			inputBody: WishlistRequest{MuseumID: 1},
			mockSetup: func() {
				mockSvc.EXPECT().AddWishlist(gomock.Any(), "alice", 1).
					Return([]models.WishlistEntry{{MuseumID: 1}}, nil)
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
			inputBody: WishlistRequest{MuseumID: 1},
			mockSetup: func() {
				mockSvc.EXPECT().AddWishlist(gomock.Any(), "alice", 1).
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

			req := httptest.NewRequest(http.MethodPost, "/api/user/wishlist/alice", bytes.NewReader(bodyBytes))
			req = withURLParams(req, map[string]string{"username": "alice"})
			w := httptest.NewRecorder()

			NewAddWishlistHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var resp WishlistResponse
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "Added to wishlist", resp.Message)
				assert.Len(t, resp.Wishlist, 1)
			}
		})
	}
}

func TestRemoveWishlistHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockWishlistRemover(ctrl)

	// removal returns the remaining wishlist
	mockSvc.EXPECT().RemoveWishlist(gomock.Any(), "alice", 2).
		Return([]models.WishlistEntry{{MuseumID: 1}}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/user/wishlist/alice/2", nil)
	req = withURLParams(req, map[string]string{"username": "alice", "museumId": "2"})
	w := httptest.NewRecorder()

	NewRemoveWishlistHandler(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp WishlistResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Removed from wishlist", resp.Message)
	assert.Len(t, resp.Wishlist, 1)

	// unknown user
	mockSvc.EXPECT().RemoveWishlist(gomock.Any(), "ghost", 2).
		Return(nil, services.ErrUserNotFound)

	req = httptest.NewRequest(http.MethodDelete, "/api/user/wishlist/ghost/2", nil)
	req = withURLParams(req, map[string]string{"username": "ghost", "museumId": "2"})
	w = httptest.NewRecorder()

	NewRemoveWishlistHandler(mockSvc).ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
