package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vbrandao/photogram/internal/logger"
	"github.com/vbrandao/photogram/internal/middlewares"
	"github.com/vbrandao/photogram/internal/models"
	"github.com/vbrandao/photogram/internal/services"
)

// PhotoUpdater defines the interface that the service must implement.
type PhotoUpdater interface {
	Update(ctx context.Context, caller *models.UserDB, photoID uuid.UUID, upd models.PhotoUpdate) (*models.PhotoDB, error)
}

// UpdatePhotoRequest represents the JSON body for a photo update.
// Absent fields are left untouched.
// swagger:model UpdatePhotoRequest
type UpdatePhotoRequest struct {
	// Photo title
	Title *string `json:"title,omitempty"`

	// Stored image reference
	Image *string `json:"image,omitempty"`
}

// UpdatePhotoResponse represents a successful photo update response
// swagger:model UpdatePhotoResponse
type UpdatePhotoResponse struct {
	// Updated photo
	Photo *models.PhotoDB `json:"photo"`

	// Success message
	Message string `json:"message"`
}

// NewUpdatePhotoHandler returns an HTTP handler for updating a photo.
// Only the owner may update; ownership itself is immutable.
// @Summary Update a photo
// @Description Applies the supplied fields to a photo owned by the authenticated user
// @Tags photos
// @Accept json
// @Produce json
// @Param id path string true "Photo id"
// @Param updatePhotoRequest body handlers.UpdatePhotoRequest true "Photo update request"
// @Success 200 {object} handlers.UpdatePhotoResponse "Updated photo"
// @Failure 400 {object} handlers.ErrorResponse "Malformed id or body"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} handlers.ErrorResponse "Caller does not own the photo"
// @Failure 404 {object} handlers.ErrorResponse "Photo not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /photos/{id} [put]
// @Security BearerAuth
func NewUpdatePhotoHandler(svc PhotoUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller := middlewares.GetUserFromContext(r.Context())
		if caller == nil {
			writeErrors(w, http.StatusUnauthorized, "Access denied.")
			return
		}

		photoID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeErrors(w, http.StatusBadRequest, msgInvalidID)
			return
		}

		var req UpdatePhotoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrors(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		photo, err := svc.Update(r.Context(), caller, photoID, models.PhotoUpdate{
			Title: req.Title,
			Image: req.Image,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPhotoNotFound):
				writeErrors(w, http.StatusNotFound, "Photo not found.")
			case errors.Is(err, services.ErrNotPhotoOwner):
				writeErrors(w, http.StatusForbidden, "You do not have permission to change this photo.")
			default:
				logger.Log.Errorw("update photo failed", "photoID", photoID, "err", err)
				writeErrors(w, http.StatusInternalServerError, msgInternalError)
			}
			return
		}

		writeJSON(w, http.StatusOK, UpdatePhotoResponse{
			Photo:   photo,
			Message: "Photo updated successfully.",
		})
	}
}
