package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vbrandao/photogram/internal/logger"
	"github.com/vbrandao/photogram/internal/middlewares"
	"github.com/vbrandao/photogram/internal/models"
	"github.com/vbrandao/photogram/internal/services"
)

// PhotoDeleter defines the interface that the service must implement.
type PhotoDeleter interface {
	Delete(ctx context.Context, caller *models.UserDB, photoID uuid.UUID) (uuid.UUID, error)
}

// DeletePhotoResponse represents a successful deletion response
// swagger:model DeletePhotoResponse
type DeletePhotoResponse struct {
	// Deleted photo id
	ID uuid.UUID `json:"id"`

	// Success message
	Message string `json:"message"`
}

// NewDeletePhotoHandler returns an HTTP handler for deleting a photo.
// Only the owner may delete.
// @Summary Delete a photo
// @Description Deletes a photo owned by the authenticated user
// @Tags photos
// @Produce json
// @Param id path string true "Photo id"
// @Success 200 {object} handlers.DeletePhotoResponse "Deleted photo id"
// @Failure 400 {object} handlers.ErrorResponse "Malformed id"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} handlers.ErrorResponse "Caller does not own the photo"
// @Failure 404 {object} handlers.ErrorResponse "Photo not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /photos/{id} [delete]
// @Security BearerAuth
func NewDeletePhotoHandler(svc PhotoDeleter) http.HandlerFunc {
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

		deletedID, err := svc.Delete(r.Context(), caller, photoID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPhotoNotFound):
				writeErrors(w, http.StatusNotFound, "Photo not found.")
			case errors.Is(err, services.ErrNotPhotoOwner):
				writeErrors(w, http.StatusForbidden, "You do not have permission to delete this photo.")
			default:
				logger.Log.Errorw("delete photo failed", "photoID", photoID, "err", err)
				writeErrors(w, http.StatusInternalServerError, msgInternalError)
			}
			return
		}

		writeJSON(w, http.StatusOK, DeletePhotoResponse{
			ID:      deletedID,
			Message: "Photo deleted successfully.",
		})
	}
}
