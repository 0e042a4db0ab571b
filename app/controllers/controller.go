// Package controllers translates HTTP requests into service calls and
// service results back into the JSON envelope.
package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ecofinds/ecofinds/app/services"
	"github.com/ecofinds/ecofinds/pkg/logger"
	"github.com/ecofinds/ecofinds/pkg/response"
	"github.com/ecofinds/ecofinds/pkg/router"
)

// decode reads the JSON request body into dst. On failure it writes the
// error response and reports false.
func decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// uintParam parses a URL parameter as an unsigned id. On failure it
// writes a 404 and reports false, matching how an unknown id responds.
func uintParam(w http.ResponseWriter, r *http.Request, key string) (uint, bool) {
	raw := router.Param(r, key)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.NotFound(w)
		return 0, false
	}
	return uint(id), true
}

// fail maps a service error onto the matching HTTP response. Anything
// outside the domain taxonomy is logged and answered with a 500.
func fail(w http.ResponseWriter, r *http.Request, err error) {
	if ve, ok := services.AsValidation(err); ok {
		response.ValidationError(w, ve.Fields)
		return
	}

	switch {
	case errors.Is(err, services.ErrNotFound):
		response.NotFound(w)
	case errors.Is(err, services.ErrEmptyCart):
		response.Error(w, http.StatusUnprocessableEntity, "Cart is empty.")
	case errors.Is(err, services.ErrConflict):
		response.Conflict(w, "Email is already registered.")
	case errors.Is(err, services.ErrInvalidCredentials):
		response.Error(w, http.StatusUnauthorized, "Invalid email or password.")
	default:
		logger.WithCtx(r.Context()).Error("request failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Something went wrong")
	}
}
