package main

import (
	"errors"
	"net/http"

	"github.com/emurillo541/collegebookstore/internal/apperr"
	"github.com/emurillo541/collegebookstore/internal/config"

	"github.com/labstack/echo/v4"
)

// jsonError maps the service error taxonomy onto HTTP responses. Store-level
// failures are logged and reported as 500s.
func jsonError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, apperr.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, apperr.ErrInvalidState):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		config.GetLogger().WithField("path", c.Path()).Error(err.Error())
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
