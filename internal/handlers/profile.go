package handlers

import (
	"net/http"

	"github.com/vbrandao/photogram/internal/middlewares"
)

// NewGetProfileHandler returns an HTTP handler for the current user's
// profile. The auth middleware has already resolved the caller, so no
// further lookup is performed.
// @Summary Current user profile
// @Description Returns the authenticated user's record
// @Tags users
// @Produce json
// @Success 200 {object} models.UserDB "Current user"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Router /users/profile [get]
// @Security BearerAuth
func NewGetProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			writeErrors(w, http.StatusUnauthorized, "Access denied.")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
