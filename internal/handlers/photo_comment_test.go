package handlers

import (
	"bytes"
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

func TestCommentPhotoHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caller := &models.UserDB{UserID: uuid.New(), Name: "Bob", ProfileImage: "bob.png"}
	photoID := uuid.New()
	comment := &models.CommentDB{
		CommentID: uuid.New(),
		Comment:   "Nice shot",
		UserID:    caller.UserID,
		UserName:  caller.Name,
		UserImage: caller.ProfileImage,
	}

	tests := []struct {
		name         string
		id           string
		body         string
		caller       *models.UserDB
		mockSetup    func(m *MockPhotoCommenter)
		expectedCode int
		expectedErrs []string
	}{
		{
			name:   "success",
			id:     photoID.String(),
			body:   `{"comment":"Nice shot"}`,
			caller: caller,
			mockSetup: func(m *MockPhotoCommenter) {
				m.EXPECT().
					Comment(gomock.Any(), caller, photoID, "Nice shot").
					Return(comment, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "empty comment",
			id:           photoID.String(),
			body:         `{"comment":""}`,
			caller:       caller,
			expectedCode: http.StatusUnprocessableEntity,
			expectedErrs: []string{"Comment is required."},
		},
		{
			name:   "not found",
			id:     photoID.String(),
			body:   `{"comment":"Nice shot"}`,
			caller: caller,
			mockSetup: func(m *MockPhotoCommenter) {
				m.EXPECT().
					Comment(gomock.Any(), caller, photoID, "Nice shot").
					Return(nil, services.ErrPhotoNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedErrs: []string{"Photo not found."},
		},
		{
			name:         "malformed id",
			id:           "not-a-uuid",
			body:         `{"comment":"Nice shot"}`,
			caller:       caller,
			expectedCode: http.StatusBadRequest,
			expectedErrs: []string{msgInvalidID},
		},
		{
			name:         "invalid json",
			id:           photoID.String(),
			body:         `{invalid`,
			caller:       caller,
			expectedCode: http.StatusBadRequest,
			expectedErrs: []string{msgInvalidBody},
		},
		{
			name:         "no user in context",
			id:           photoID.String(),
			body:         `{"comment":"Nice shot"}`,
			expectedCode: http.StatusUnauthorized,
			expectedErrs: []string{"Access denied."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockPhotoCommenter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewCommentPhotoHandler(mockSvc)

			req := newRequest(http.MethodPut, "/photos/comment/"+tt.id,
				bytes.NewBufferString(tt.body), tt.caller, tt.id)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedErrs != nil {
				var resp ErrorResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedErrs, resp.Errors)
				return
			}

			var resp CommentPhotoResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, "Comment added successfully.", resp.Message)
			require.NotNil(t, resp.Comment)
			assert.Equal(t, "Nice shot", resp.Comment.Comment)
			assert.Equal(t, caller.Name, resp.Comment.UserName)
		})
	}
}
