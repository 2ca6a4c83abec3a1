package handlers

import (
	"context"
	"net/http"

	"github.com/vbrandao/photogram/internal/logger"
	"github.com/vbrandao/photogram/internal/models"
)

// PhotoSearcher defines the interface that the service must implement.
type PhotoSearcher interface {
	SearchByTitle(ctx context.Context, q string) ([]models.PhotoDB, error)
}

// NewSearchPhotosHandler returns an HTTP handler for title search. The
// query is matched as a case-insensitive literal substring.
// @Summary Search photos by title
// @Description Returns photos whose title contains the query string
// @Tags photos
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {array} models.PhotoDB "Matching photos"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /photos/search [get]
func NewSearchPhotosHandler(svc PhotoSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")

		photos, err := svc.SearchByTitle(r.Context(), q)
		if err != nil {
			logger.Log.Errorw("search photos failed", "q", q, "err", err)
			writeErrors(w, http.StatusInternalServerError, "Failed to search photos.")
			return
		}

		writeJSON(w, http.StatusOK, photos)
	}
}
