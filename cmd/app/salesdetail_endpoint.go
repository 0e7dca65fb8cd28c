package main

import (
	"net/http"
	"strconv"

	"github.com/emurillo541/collegebookstore/internal/middleware"
	"github.com/emurillo541/collegebookstore/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type addSalesDetailRequest struct {
	SalesID      int64           `json:"salesID" validate:"required"`
	ItemID       int64           `json:"itemID" validate:"required"`
	ItemQuantity int             `json:"itemQuantity" validate:"required"`
	PriceEach    decimal.Decimal `json:"priceEach"`
}

type updateSalesDetailRequest struct {
	ItemQuantity int             `json:"itemQuantity"`
	PriceEach    decimal.Decimal `json:"priceEach"`
}

func registerSalesDetailRoutes(g *echo.Group, ds *services.SalesDetailService) {

	g.GET("/salesdetail/:salesID", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("salesID"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		list, err := ds.ListBySale(c.Request().Context(), id)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	})

	protected := g.Group("")
	protected.Use(middleware.JWTMiddleware())

	protected.POST("/salesdetail", func(c echo.Context) error {
		req := new(addSalesDetailRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := c.Validate(req); err != nil {
			return err
		}
		if _, err := ds.AddLineItem(c.Request().Context(), req.SalesID, req.ItemID, req.ItemQuantity, req.PriceEach); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusCreated, map[string]string{
			"message": "Line item added and inventory updated successfully.",
		})
	})

	protected.PUT("/salesdetail/:salesDetailID", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("salesDetailID"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		req := new(updateSalesDetailRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := ds.UpdateLineItem(c.Request().Context(), id, req.ItemQuantity, req.PriceEach); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]string{
			"message": "Line item updated and sale total recalculated successfully.",
		})
	})

	protected.DELETE("/salesdetail/:salesDetailID", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("salesDetailID"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		if err := ds.DeleteLineItem(c.Request().Context(), id); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]string{
			"message": "Sales detail deleted and inventory reverted successfully.",
		})
	})
}
