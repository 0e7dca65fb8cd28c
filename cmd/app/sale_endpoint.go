package main

import (
	"net/http"
	"strconv"

	"github.com/emurillo541/collegebookstore/internal/middleware"
	"github.com/emurillo541/collegebookstore/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type saleLineItemRequest struct {
	ItemID    int64           `json:"itemID" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required"`
	PriceEach decimal.Decimal `json:"priceEach"`
}

type createSaleRequest struct {
	CustomerID *int64                `json:"customerID"`
	EmployeeID *int64                `json:"employeeID"`
	LineItems  []saleLineItemRequest `json:"lineItems" validate:"dive"`
}

type updateSaleRequest struct {
	CustomerID *int64 `json:"customerID"`
	EmployeeID *int64 `json:"employeeID"`
}

func registerSalesRoutes(g *echo.Group, ss *services.SalesService) {

	g.GET("/sales", func(c echo.Context) error {
		list, err := ss.ListSales(c.Request().Context())
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	})

	protected := g.Group("")
	protected.Use(middleware.JWTMiddleware())

	// create a sale, its line items, and the inventory decrements in one
	// transaction
	protected.POST("/sales", func(c echo.Context) error {
		req := new(createSaleRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := c.Validate(req); err != nil {
			return err
		}

		lines := make([]services.LineItemInput, 0, len(req.LineItems))
		for _, li := range req.LineItems {
			lines = append(lines, services.LineItemInput{
				ItemID:    li.ItemID,
				Quantity:  li.Quantity,
				PriceEach: li.PriceEach,
			})
		}

		salesID, total, err := ss.CreateSale(c.Request().Context(), req.CustomerID, req.EmployeeID, lines)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusCreated, map[string]interface{}{
			"message":     "Sale processed successfully.",
			"salesID":     salesID,
			"totalAmount": total,
		})
	})

	protected.PUT("/sales/:salesID", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("salesID"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		req := new(updateSaleRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := ss.UpdateSaleHeader(c.Request().Context(), id, req.CustomerID, req.EmployeeID); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "Sale updated successfully."})
	})

	protected.DELETE("/sales/:salesID", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("salesID"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		if err := ss.DeleteSale(c.Request().Context(), id); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "Sale cancelled successfully."})
	})
}
