package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"

	"github.com/vbrandao/photogram/internal/middlewares"
	"github.com/vbrandao/photogram/internal/models"
)

// newRequest builds a test request, optionally authenticated and
// optionally carrying a chi {id} route parameter.
func newRequest(method, target string, body io.Reader, caller *models.UserDB, id string) *http.Request {
	req := httptest.NewRequest(method, target, body)

	if caller != nil {
		req = req.WithContext(middlewares.SetUserToContext(req.Context(), caller))
	}

	if id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	return req
}
