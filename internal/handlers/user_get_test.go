package handlers

import (
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

func TestGetUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Name: "Alice"}

	tests := []struct {
		name         string
		id           string
		mockSetup    func(m *MockUserGetter)
		expectedCode int
		expectedErrs []string
	}{
		{
			name: "success",
			id:   userID.String(),
			mockSetup: func(m *MockUserGetter) {
				m.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "malformed id",
			id:           "not-a-uuid",
			expectedCode: http.StatusBadRequest,
			expectedErrs: []string{msgInvalidID},
		},
		{
			name: "not found",
			id:   userID.String(),
			mockSetup: func(m *MockUserGetter) {
				m.EXPECT().GetByID(gomock.Any(), userID).Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedErrs: []string{"User not found."},
		},
		{
			name: "internal error",
			id:   userID.String(),
			mockSetup: func(m *MockUserGetter) {
				m.EXPECT().GetByID(gomock.Any(), userID).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErrs: []string{msgInternalError},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewGetUserHandler(mockSvc)

			req := newRequest(http.MethodGet, "/users/"+tt.id, nil, nil, tt.id)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedErrs != nil {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedErrs, resp.Errors)
				return
			}

			var got models.UserDB
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, userID, got.UserID)
		})
	}
}
