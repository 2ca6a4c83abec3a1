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
)

func TestUpdateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caller := &models.UserDB{UserID: uuid.New(), Name: "Alice"}

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockProfileUpdater(ctrl)

		name := "New Name"
		updated := &models.UserDB{UserID: caller.UserID, Name: name}
		mockSvc.EXPECT().
			Update(gomock.Any(), caller, models.UserUpdate{Name: &name}).
			Return(updated, nil)

		handler := NewUpdateUserHandler(mockSvc)

		req := newRequest(http.MethodPut, "/users", bytes.NewBufferString(`{"name":"New Name"}`), caller, "")
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var got models.UserDB
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, name, got.Name)
	})

	t.Run("empty body is a no-op update", func(t *testing.T) {
		mockSvc := NewMockProfileUpdater(ctrl)

		mockSvc.EXPECT().
			Update(gomock.Any(), caller, models.UserUpdate{}).
			Return(caller, nil)

		handler := NewUpdateUserHandler(mockSvc)

		req := newRequest(http.MethodPut, "/users", bytes.NewBufferString(`{}`), caller, "")
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("invalid json", func(t *testing.T) {
		handler := NewUpdateUserHandler(NewMockProfileUpdater(ctrl))

		req := newRequest(http.MethodPut, "/users", bytes.NewBufferString(`{invalid`), caller, "")
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc := NewMockProfileUpdater(ctrl)

		mockSvc.EXPECT().
			Update(gomock.Any(), caller, models.UserUpdate{}).
			Return(nil, errors.New("db down"))

		handler := NewUpdateUserHandler(mockSvc)

		req := newRequest(http.MethodPut, "/users", bytes.NewBufferString(`{}`), caller, "")
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)

		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, []string{"Failed to update user."}, resp.Errors)
	})

	t.Run("no user in context", func(t *testing.T) {
		handler := NewUpdateUserHandler(NewMockProfileUpdater(ctrl))

		req := httptest.NewRequest(http.MethodPut, "/users", bytes.NewBufferString(`{}`))
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
