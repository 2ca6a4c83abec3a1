package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/vbrandao/photogram/internal/logger"
	"github.com/vbrandao/photogram/internal/middlewares"
	"github.com/vbrandao/photogram/internal/models"
)

// PhotoCreator defines the interface that the service must implement.
type PhotoCreator interface {
	Create(ctx context.Context, caller *models.UserDB, title, image string) (*models.PhotoDB, error)
}

// CreatePhotoRequest represents the JSON body for photo creation. The
// image field is the object key returned by the upload endpoint.
// swagger:model CreatePhotoRequest
type CreatePhotoRequest struct {
	// Photo title
	// required: true
	Title string `json:"title"`

	// Stored image reference
	// required: true
	Image string `json:"image"`
}

// NewCreatePhotoHandler returns an HTTP handler for photo creation.
// @Summary Create a photo
// @Description Persists a new photo owned by the authenticated user
// @Tags photos
// @Accept json
// @Produce json
// @Param createPhotoRequest body handlers.CreatePhotoRequest true "Photo creation request"
// @Success 201 {object} models.PhotoDB "Created photo"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 422 {object} handlers.ErrorResponse "Missing title or image"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /photos [post]
// @Security BearerAuth
func NewCreatePhotoHandler(svc PhotoCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller := middlewares.GetUserFromContext(r.Context())
		if caller == nil {
			writeErrors(w, http.StatusUnauthorized, "Access denied.")
			return
		}

		var req CreatePhotoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrors(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		var msgs []string
		if req.Title == "" {
			msgs = append(msgs, "Title is required.")
		}
		if req.Image == "" {
			msgs = append(msgs, "Image is required.")
		}
		if len(msgs) > 0 {
			writeErrors(w, http.StatusUnprocessableEntity, msgs...)
			return
		}

		photo, err := svc.Create(r.Context(), caller, req.Title, req.Image)
		if err != nil {
			logger.Log.Errorw("create photo failed", "userID", caller.UserID, "err", err)
			writeErrors(w, http.StatusUnprocessableEntity, "There was a problem, please try again later.")
			return
		}

		writeJSON(w, http.StatusCreated, photo)
	}
}
