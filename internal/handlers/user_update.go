package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/vbrandao/photogram/internal/logger"
	"github.com/vbrandao/photogram/internal/middlewares"
	"github.com/vbrandao/photogram/internal/models"
)

// ProfileUpdater defines the interface that the service must implement.
type ProfileUpdater interface {
	Update(ctx context.Context, caller *models.UserDB, upd models.UserUpdate) (*models.UserDB, error)
}

// UpdateUserRequest represents the JSON body for a profile update.
// Absent fields are left untouched.
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	// Display name
	Name *string `json:"name,omitempty"`

	// New password, re-hashed before storing
	Password *string `json:"password,omitempty"`

	// Profile image reference
	ProfileImage *string `json:"profileImage,omitempty"`

	// Free-text bio
	Bio *string `json:"bio,omitempty"`
}

// NewUpdateUserHandler returns an HTTP handler for updating the
// caller's own profile.
// @Summary Update current user
// @Description Applies the supplied profile fields to the authenticated user
// @Tags users
// @Accept json
// @Produce json
// @Param updateUserRequest body handlers.UpdateUserRequest true "Profile update request"
// @Success 200 {object} models.UserDB "Updated user"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users [put]
// @Security BearerAuth
func NewUpdateUserHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller := middlewares.GetUserFromContext(r.Context())
		if caller == nil {
			writeErrors(w, http.StatusUnauthorized, "Access denied.")
			return
		}

		var req UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrors(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		user, err := svc.Update(r.Context(), caller, models.UserUpdate{
			Name:         req.Name,
			Password:     req.Password,
			ProfileImage: req.ProfileImage,
			Bio:          req.Bio,
		})
		if err != nil {
			logger.Log.Errorw("update user failed", "userID", caller.UserID, "err", err)
			writeErrors(w, http.StatusInternalServerError, "Failed to update user.")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
