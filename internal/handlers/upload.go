package handlers

import (
	"context"
	"net/http"

	"github.com/vbrandao/photogram/internal/logger"
	"github.com/vbrandao/photogram/internal/middlewares"
)

// UploadPresigner defines the interface that the storage must implement.
type UploadPresigner interface {
	PresignUpload(ctx context.Context) (key string, url string, err error)
}

// UploadResponse represents a presigned upload grant
// swagger:model UploadResponse
type UploadResponse struct {
	// Object key to store as the photo's image reference
	Key string `json:"key"`

	// Presigned PUT URL the image bytes go to
	URL string `json:"url"`
}

// NewUploadHandler returns an HTTP handler that issues presigned upload
// URLs. The image bytes never pass through this service.
// @Summary Request an image upload URL
// @Description Returns an object key and a presigned PUT URL for direct upload
// @Tags photos
// @Produce json
// @Success 201 {object} handlers.UploadResponse "Upload grant"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /photos/uploads [post]
// @Security BearerAuth
func NewUploadHandler(store UploadPresigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller := middlewares.GetUserFromContext(r.Context())
		if caller == nil {
			writeErrors(w, http.StatusUnauthorized, "Access denied.")
			return
		}

		key, url, err := store.PresignUpload(r.Context())
		if err != nil {
			logger.Log.Errorw("presign upload failed", "userID", caller.UserID, "err", err)
			writeErrors(w, http.StatusInternalServerError, "Failed to prepare upload.")
			return
		}

		writeJSON(w, http.StatusCreated, UploadResponse{
			Key: key,
			URL: url,
		})
	}
}
