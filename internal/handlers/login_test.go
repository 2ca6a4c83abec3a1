package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/vbrandao/photogram/internal/models"
	"github.com/vbrandao/photogram/internal/services"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{UserID: uuid.New(), Name: "Alice", ProfileImage: "alice.png"}

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockLoginer)
		expectedCode int
		expectedErrs []string
	}{
		{
			name: "success",
			body: `{"email":"alice@example.com","password":"secret"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "alice@example.com", "secret").
					Return(user, "token", nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "unknown email",
			body: `{"email":"ghost@example.com","password":"secret"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "ghost@example.com", "secret").
					Return(nil, "", services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedErrs: []string{"User not found."},
		},
		{
			name: "wrong password",
			body: `{"email":"alice@example.com","password":"wrong"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "alice@example.com", "wrong").
					Return(nil, "", services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnprocessableEntity,
			expectedErrs: []string{"Invalid password."},
		},
		{
			name: "internal error",
			body: `{"email":"alice@example.com","password":"secret"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "alice@example.com", "secret").
					Return(nil, "", errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErrs: []string{msgInternalError},
		},
		{
			name:         "invalid json",
			body:         `{invalid`,
			expectedCode: http.StatusBadRequest,
			expectedErrs: []string{msgInvalidBody},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewLoginHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/users/login", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedErrs != nil {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedErrs, resp.Errors)
				return
			}

			var resp LoginResponse
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, user.UserID, resp.ID)
			assert.Equal(t, "alice.png", resp.ProfileImage)
			assert.Equal(t, "token", resp.Token)
		})
	}
}
