package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vbrandao/photogram/internal/logger"
	"github.com/vbrandao/photogram/internal/models"
	"github.com/vbrandao/photogram/internal/services"
)

// PhotoGetter defines the interface that the service must implement.
type PhotoGetter interface {
	GetByID(ctx context.Context, photoID uuid.UUID) (*models.PhotoDB, error)
}

// NewGetPhotoHandler returns an HTTP handler for fetching a photo by id
// with its likes and comments.
// @Summary Get photo by id
// @Description Returns a single photo
// @Tags photos
// @Produce json
// @Param id path string true "Photo id"
// @Success 200 {object} models.PhotoDB "Photo"
// @Failure 400 {object} handlers.ErrorResponse "Malformed id"
// @Failure 404 {object} handlers.ErrorResponse "Photo not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /photos/{id} [get]
func NewGetPhotoHandler(svc PhotoGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		photoID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeErrors(w, http.StatusBadRequest, msgInvalidID)
			return
		}

		photo, err := svc.GetByID(r.Context(), photoID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPhotoNotFound):
				writeErrors(w, http.StatusNotFound, "Photo not found.")
			default:
				logger.Log.Errorw("get photo failed", "photoID", photoID, "err", err)
				writeErrors(w, http.StatusInternalServerError, msgInternalError)
			}
			return
		}

		writeJSON(w, http.StatusOK, photo)
	}
}
