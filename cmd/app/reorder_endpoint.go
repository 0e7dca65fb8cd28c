package main

import (
	"net/http"
	"strconv"

	"github.com/emurillo541/collegebookstore/internal/middleware"
	"github.com/emurillo541/collegebookstore/internal/services"

	"github.com/labstack/echo/v4"
)

type createReorderRequest struct {
	SupplierID *int64 `json:"supplierID"`
	ItemID     int64  `json:"itemID" validate:"required"`
	Quantity   int    `json:"quantity"`
	Status     string `json:"status"`
}

func registerReorderRoutes(g *echo.Group, rs *services.ReorderService) {

	g.GET("/reorders", func(c echo.Context) error {
		list, err := rs.ListReorders(c.Request().Context())
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	})

	protected := g.Group("")
	protected.Use(middleware.JWTMiddleware())

	protected.POST("/reorders", func(c echo.Context) error {
		req := new(createReorderRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := c.Validate(req); err != nil {
			return err
		}
		ro, err := rs.CreateReorder(c.Request().Context(), req.SupplierID, req.ItemID, req.Quantity, req.Status)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusCreated, map[string]interface{}{
			"reorder": ro,
			"message": "Reorder created successfully!",
		})
	})

	protected.PUT("/reorders/receive/:reorderID", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("reorderID"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		if err := rs.ReceiveReorder(c.Request().Context(), id); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]string{
			"message": "Reorder marked as received and inventory updated.",
		})
	})

	protected.PUT("/reorders/cancel/:reorderID", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("reorderID"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		ro, err := rs.CancelReorder(c.Request().Context(), id)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"reorder": ro,
			"message": "Reorder cancelled successfully.",
		})
	})

	protected.DELETE("/reorders/:reorderID", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("reorderID"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		if err := rs.DeleteReorder(c.Request().Context(), id); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "Pending reorder deleted successfully."})
	})
}
