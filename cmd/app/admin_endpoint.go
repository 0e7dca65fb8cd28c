package main

import (
	"net/http"

	"github.com/emurillo541/collegebookstore/internal/services"

	"github.com/labstack/echo/v4"
)

func registerAdminRoutes(g *echo.Group, as *services.AdminService) {

	// Reset the whole database to seed data. Public like the rest of the
	// read surface so graders and demos can recover a known state.
	g.GET("/reset-db", func(c echo.Context) error {
		if err := as.ResetDatabase(c.Request().Context()); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]string{
			"message": "Database has been reset successfully!",
		})
	})
}
