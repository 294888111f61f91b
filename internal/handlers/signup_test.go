package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/museum-guide/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestSignupHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockSignuper(ctrl)

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name: "success",
			inputBody: SignupRequest{
				Username: "john_doe",
				Password: "secret123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Signup(gomock.Any(), "john_doe", "secret123").
					Return("JWT_TOKEN", nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: &SignupResponse{
				Message: "Signup successful",
				User:    SignupUser{Username: "john_doe"},
				Token:   "JWT_TOKEN",
			},
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &SignupErrorResponse{
				Message: "Username and password required",
			},
		},
		{
			name: "username too short",
			inputBody: SignupRequest{
				Username: "ab",
				Password: "secret123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Signup(gomock.Any(), "ab", "secret123").
					Return("", services.ErrUsernameTooShort)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &SignupErrorResponse{
				Message: "username must be at least 3 characters",
			},
		},
		{
			name: "password too short",
			inputBody: SignupRequest{
				Username: "john_doe",
				Password: "12345",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Signup(gomock.Any(), "john_doe", "12345").
					Return("", services.ErrPasswordTooShort)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &SignupErrorResponse{
				Message: "password must be at least 6 characters",
			},
		},
		{
			name: "username already exists",
			inputBody: SignupRequest{
				Username: "john_doe",
				Password: "secret123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Signup(gomock.Any(), "john_doe", "secret123").
					Return("", services.ErrUserAlreadyExists)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &SignupErrorResponse{
				Message: "username already exists",
			},
		},
		{
			name: "internal error",
			inputBody: SignupRequest{
				Username: "john_doe",
				Password: "secret123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Signup(gomock.Any(), "john_doe", "secret123").
					Return("", errors.New("disk full"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &SignupErrorResponse{
				Message: "Internal server error",
			},
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

			req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			handler := NewSignupHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusCreated:
				respBody = &SignupResponse{}
			default:
				respBody = &SignupErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}
