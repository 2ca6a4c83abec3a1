package middlewares_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbrandao/photogram/internal/middlewares"
	"github.com/vbrandao/photogram/internal/models"
)

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Name: "Alice"}

	tests := []struct {
		name       string
		setupMocks func(tokener *middlewares.MockTokener, users *middlewares.MockUserLoader)
		wantStatus int
		wantErrs   []string
		wantUser   bool
	}{
		{
			name: "valid token resolves to user",
			setupMocks: func(tokener *middlewares.MockTokener, users *middlewares.MockUserLoader) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tokener.EXPECT().GetUserID(gomock.Any(), "token").Return(userID, nil)
				users.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)
			},
			wantStatus: http.StatusOK,
			wantUser:   true,
		},
		{
			name: "missing token",
			setupMocks: func(tokener *middlewares.MockTokener, users *middlewares.MockUserLoader) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("no authorization header"))
			},
			wantStatus: http.StatusUnauthorized,
			wantErrs:   []string{"Access denied."},
		},
		{
			name: "invalid token",
			setupMocks: func(tokener *middlewares.MockTokener, users *middlewares.MockUserLoader) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("bad", nil)
				tokener.EXPECT().GetUserID(gomock.Any(), "bad").Return(uuid.Nil, errors.New("invalid token"))
			},
			wantStatus: http.StatusUnauthorized,
			wantErrs:   []string{"Access denied."},
		},
		{
			name: "token user no longer exists",
			setupMocks: func(tokener *middlewares.MockTokener, users *middlewares.MockUserLoader) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tokener.EXPECT().GetUserID(gomock.Any(), "token").Return(userID, nil)
				users.EXPECT().GetByID(gomock.Any(), userID).Return(nil, nil)
			},
			wantStatus: http.StatusUnauthorized,
			wantErrs:   []string{"Access denied."},
		},
		{
			name: "user load error",
			setupMocks: func(tokener *middlewares.MockTokener, users *middlewares.MockUserLoader) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tokener.EXPECT().GetUserID(gomock.Any(), "token").Return(userID, nil)
				users.EXPECT().GetByID(gomock.Any(), userID).Return(nil, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
			wantErrs:   []string{"Internal server error, please try again later."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tokener := middlewares.NewMockTokener(ctrl)
			users := middlewares.NewMockUserLoader(ctrl)
			tt.setupMocks(tokener, users)

			var gotUser *models.UserDB
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser = middlewares.GetUserFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			handler := middlewares.AuthMiddleware(tokener, users)(next)

			req := httptest.NewRequest(http.MethodGet, "/users/profile", nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantUser {
				require.NotNil(t, gotUser)
				assert.Equal(t, userID, gotUser.UserID)
			} else {
				assert.Nil(t, gotUser)

				var body map[string][]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.wantErrs, body["errors"])
			}
		})
	}
}

func TestGetUserFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, middlewares.GetUserFromContext(req.Context()))
}
