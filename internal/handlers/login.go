package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/vbrandao/photogram/internal/logger"
	"github.com/vbrandao/photogram/internal/models"
	"github.com/vbrandao/photogram/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (*models.UserDB, string, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	Email string `json:"email"`

	// Password
	// required: true
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Authenticated user id
	ID uuid.UUID `json:"_id"`

	// Profile image reference, may be empty
	ProfileImage string `json:"profileImage"`

	// Bearer token
	Token string `json:"token"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Verifies credentials and returns a fresh bearer token
// @Tags users
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 201 {object} handlers.LoginResponse "Token issued"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 422 {object} handlers.ErrorResponse "Invalid password"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrors(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		user, token, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeErrors(w, http.StatusNotFound, "User not found.")
			case errors.Is(err, services.ErrInvalidCredentials):
				writeErrors(w, http.StatusUnprocessableEntity, "Invalid password.")
			default:
				logger.Log.Errorw("login failed", "err", err)
				writeErrors(w, http.StatusInternalServerError, msgInternalError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, LoginResponse{
			ID:           user.UserID,
			ProfileImage: user.ProfileImage,
			Token:        token,
		})
	}
}
