package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbrandao/photogram/internal/models"
	"github.com/vbrandao/photogram/internal/services"
)

func TestLikePhotoHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caller := &models.UserDB{UserID: uuid.New(), Name: "Bob"}
	photoID := uuid.New()

	tests := []struct {
		name         string
		id           string
		caller       *models.UserDB
		mockSetup    func(m *MockPhotoLiker)
		expectedCode int
		expectedErrs []string
	}{
		{
			name:   "success",
			id:     photoID.String(),
			caller: caller,
			mockSetup: func(m *MockPhotoLiker) {
				m.EXPECT().Like(gomock.Any(), caller, photoID).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "already liked",
			id:     photoID.String(),
			caller: caller,
			mockSetup: func(m *MockPhotoLiker) {
				m.EXPECT().Like(gomock.Any(), caller, photoID).Return(services.ErrAlreadyLiked)
			},
			expectedCode: http.StatusUnprocessableEntity,
			expectedErrs: []string{"You have already liked this photo."},
		},
		{
			name:   "not found",
			id:     photoID.String(),
			caller: caller,
			mockSetup: func(m *MockPhotoLiker) {
				m.EXPECT().Like(gomock.Any(), caller, photoID).Return(services.ErrPhotoNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedErrs: []string{"Photo not found."},
		},
		{
			name:         "malformed id",
			id:           "not-a-uuid",
			caller:       caller,
			expectedCode: http.StatusBadRequest,
			expectedErrs: []string{msgInvalidID},
		},
		{
			name:         "no user in context",
			id:           photoID.String(),
			expectedCode: http.StatusUnauthorized,
			expectedErrs: []string{"Access denied."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockPhotoLiker(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewLikePhotoHandler(mockSvc)

			req := newRequest(http.MethodPut, "/photos/like/"+tt.id, nil, tt.caller, tt.id)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedErrs != nil {
				var resp ErrorResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedErrs, resp.Errors)
				return
			}

			var resp LikePhotoResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, photoID, resp.PhotoID)
			assert.Equal(t, caller.UserID, resp.UserID)
			assert.Equal(t, "Photo liked.", resp.Message)
		})
	}
}
