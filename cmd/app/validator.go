package main

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// apiValidator plugs go-playground/validator into echo's c.Validate.
type apiValidator struct {
	validate *validator.Validate
}

func newAPIValidator() *apiValidator {
	return &apiValidator{validate: validator.New()}
}

func (v *apiValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
