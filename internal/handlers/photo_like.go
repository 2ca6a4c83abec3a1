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

// PhotoLiker defines the interface that the service must implement.
type PhotoLiker interface {
	Like(ctx context.Context, caller *models.UserDB, photoID uuid.UUID) error
}

// LikePhotoResponse represents a successful like response
// swagger:model LikePhotoResponse
type LikePhotoResponse struct {
	// Liked photo id
	PhotoID uuid.UUID `json:"photoId"`

	// Liking user id
	UserID uuid.UUID `json:"userId"`

	// Success message
	Message string `json:"message"`
}

// NewLikePhotoHandler returns an HTTP handler for liking a photo. Any
// authenticated user may like any photo, at most once.
// @Summary Like a photo
// @Description Appends the authenticated user to the photo's likers
// @Tags photos
// @Produce json
// @Param id path string true "Photo id"
// @Success 200 {object} handlers.LikePhotoResponse "Like recorded"
// @Failure 400 {object} handlers.ErrorResponse "Malformed id"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} handlers.ErrorResponse "Photo not found"
// @Failure 422 {object} handlers.ErrorResponse "Photo already liked"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /photos/like/{id} [put]
// @Security BearerAuth
func NewLikePhotoHandler(svc PhotoLiker) http.HandlerFunc {
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

		if err := svc.Like(r.Context(), caller, photoID); err != nil {
			switch {
			case errors.Is(err, services.ErrPhotoNotFound):
				writeErrors(w, http.StatusNotFound, "Photo not found.")
			case errors.Is(err, services.ErrAlreadyLiked):
				writeErrors(w, http.StatusUnprocessableEntity, "You have already liked this photo.")
			default:
				logger.Log.Errorw("like photo failed", "photoID", photoID, "err", err)
				writeErrors(w, http.StatusInternalServerError, msgInternalError)
			}
			return
		}

		writeJSON(w, http.StatusOK, LikePhotoResponse{
			PhotoID: photoID,
			UserID:  caller.UserID,
			Message: "Photo liked.",
		})
	}
}
