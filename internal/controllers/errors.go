package controllers

import (
	"errors"
	"net/http"

	"github.com/centavo-app/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"you do not have access to this resource"`
}

// status returns the appropriate HTTP status for an error from the models
// layer.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrAccessDenied) {
		return http.StatusForbidden
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}
