package main

import (
	"net/http"
	"strconv"

	"github.com/emurillo541/collegebookstore/internal/middleware"
	"github.com/emurillo541/collegebookstore/internal/model"
	"github.com/emurillo541/collegebookstore/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type merchandiseRequest struct {
	ItemName     string          `json:"itemName" validate:"required"`
	ISBN         *string         `json:"ISBN"`
	Price        decimal.Decimal `json:"price"`
	SupplierID   *int64          `json:"supplierID"`
	ItemQuantity int             `json:"itemQuantity"`
}

func registerMerchandiseRoutes(g *echo.Group, ms *services.MerchandiseService) {

	g.GET("/merchandise", func(c echo.Context) error {
		list, err := ms.ListMerchandise(c.Request().Context())
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	})

	protected := g.Group("")
	protected.Use(middleware.JWTMiddleware())

	// legacy route shape kept for the admin UI
	protected.POST("/merchandise/add", func(c echo.Context) error {
		req := new(merchandiseRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := c.Validate(req); err != nil {
			return err
		}
		m := &model.Merchandise{
			ItemName:     req.ItemName,
			ISBN:         req.ISBN,
			Price:        req.Price,
			SupplierID:   req.SupplierID,
			ItemQuantity: req.ItemQuantity,
		}
		id, err := ms.CreateMerchandise(c.Request().Context(), m)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusCreated, map[string]interface{}{
			"itemID":  id,
			"message": "Merchandise added successfully.",
		})
	})

	protected.PUT("/merchandise/:itemID", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("itemID"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		req := new(merchandiseRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := c.Validate(req); err != nil {
			return err
		}
		m := &model.Merchandise{
			ItemID:       id,
			ItemName:     req.ItemName,
			ISBN:         req.ISBN,
			Price:        req.Price,
			SupplierID:   req.SupplierID,
			ItemQuantity: req.ItemQuantity,
		}
		if err := ms.UpdateMerchandise(c.Request().Context(), m); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "Merchandise updated successfully."})
	})

	protected.DELETE("/merchandise/:itemID", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("itemID"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		if err := ms.DeleteMerchandise(c.Request().Context(), id); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "Merchandise deleted successfully."})
	})
}
