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

// PhotoCommenter defines the interface that the service must implement.
type PhotoCommenter interface {
	Comment(ctx context.Context, caller *models.UserDB, photoID uuid.UUID, text string) (*models.CommentDB, error)
}

// CommentPhotoRequest represents the JSON body for a comment
// swagger:model CommentPhotoRequest
type CommentPhotoRequest struct {
	// Comment text
	// required: true
	Comment string `json:"comment"`
}

// CommentPhotoResponse represents a successful comment response
// swagger:model CommentPhotoResponse
type CommentPhotoResponse struct {
	// Appended comment
	Comment *models.CommentDB `json:"comment"`

	// Success message
	Message string `json:"message"`
}

// NewCommentPhotoHandler returns an HTTP handler for commenting on a
// photo. Any authenticated user may comment.
// @Summary Comment on a photo
// @Description Appends a comment with the authenticated user's name and image
// @Tags photos
// @Accept json
// @Produce json
// @Param id path string true "Photo id"
// @Param commentPhotoRequest body handlers.CommentPhotoRequest true "Comment request"
// @Success 200 {object} handlers.CommentPhotoResponse "Comment appended"
// @Failure 400 {object} handlers.ErrorResponse "Malformed id or body"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} handlers.ErrorResponse "Photo not found"
// @Failure 422 {object} handlers.ErrorResponse "Missing comment text"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /photos/comment/{id} [put]
// @Security BearerAuth
func NewCommentPhotoHandler(svc PhotoCommenter) http.HandlerFunc {
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

		var req CommentPhotoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrors(w, http.StatusBadRequest, msgInvalidBody)
			return
		}
		if req.Comment == "" {
			writeErrors(w, http.StatusUnprocessableEntity, "Comment is required.")
			return
		}

		comment, err := svc.Comment(r.Context(), caller, photoID, req.Comment)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPhotoNotFound):
				writeErrors(w, http.StatusNotFound, "Photo not found.")
			default:
				logger.Log.Errorw("comment photo failed", "photoID", photoID, "err", err)
				writeErrors(w, http.StatusInternalServerError, msgInternalError)
			}
			return
		}

		writeJSON(w, http.StatusOK, CommentPhotoResponse{
			Comment: comment,
			Message: "Comment added successfully.",
		})
	}
}
