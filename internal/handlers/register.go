package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/vbrandao/photogram/internal/logger"
	"github.com/vbrandao/photogram/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, name, email, password string) (uuid.UUID, string, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Display name
	// required: true
	Name string `json:"name"`

	// Email
	// required: true
	Email string `json:"email"`

	// Password
	// required: true
	Password string `json:"password"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Created user id
	ID uuid.UUID `json:"_id"`

	// Bearer token for the new user
	Token string `json:"token"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a user account with a unique email and signs it in. The password is hashed before storing.
// @Tags users
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User created, token issued"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 422 {object} handlers.ErrorResponse "Missing fields or email already in use"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrors(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		var msgs []string
		if req.Name == "" {
			msgs = append(msgs, "Name is required.")
		}
		if req.Email == "" {
			msgs = append(msgs, "Email is required.")
		}
		if req.Password == "" {
			msgs = append(msgs, "Password is required.")
		}
		if len(msgs) > 0 {
			writeErrors(w, http.StatusUnprocessableEntity, msgs...)
			return
		}

		id, token, err := svc.Register(r.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailAlreadyExists):
				writeErrors(w, http.StatusUnprocessableEntity, "Please use another e-mail.")
			default:
				logger.Log.Errorw("register failed", "err", err)
				writeErrors(w, http.StatusInternalServerError, msgInternalError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, RegisterResponse{
			ID:    id,
			Token: token,
		})
	}
}
