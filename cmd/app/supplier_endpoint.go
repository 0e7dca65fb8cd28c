package main

import (
	"net/http"
	"strconv"

	"github.com/emurillo541/collegebookstore/internal/middleware"
	"github.com/emurillo541/collegebookstore/internal/model"
	"github.com/emurillo541/collegebookstore/internal/services"

	"github.com/labstack/echo/v4"
)

type supplierRequest struct {
	CompanyName   string  `json:"companyName" validate:"required"`
	ContactName   *string `json:"contactName"`
	SupplierEmail *string `json:"supplierEmail"`
	Phone         *string `json:"phone"`
}

func registerSupplierRoutes(g *echo.Group, ss *services.SupplierService) {

	g.GET("/suppliers", func(c echo.Context) error {
		list, err := ss.ListSuppliers(c.Request().Context())
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	})

	protected := g.Group("")
	protected.Use(middleware.JWTMiddleware())

	protected.POST("/suppliers", func(c echo.Context) error {
		req := new(supplierRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := c.Validate(req); err != nil {
			return err
		}
		sp := &model.Supplier{
			CompanyName:   req.CompanyName,
			ContactName:   req.ContactName,
			SupplierEmail: req.SupplierEmail,
			Phone:         req.Phone,
		}
		id, err := ss.CreateSupplier(c.Request().Context(), sp)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusCreated, map[string]interface{}{
			"supplierID": id,
			"message":    "Supplier added successfully.",
		})
	})

	protected.PUT("/suppliers/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		req := new(supplierRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := c.Validate(req); err != nil {
			return err
		}
		sp := &model.Supplier{
			SupplierID:    id,
			CompanyName:   req.CompanyName,
			ContactName:   req.ContactName,
			SupplierEmail: req.SupplierEmail,
			Phone:         req.Phone,
		}
		if err := ss.UpdateSupplier(c.Request().Context(), sp); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "Supplier updated successfully."})
	})

	protected.DELETE("/suppliers/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		if err := ss.DeleteSupplier(c.Request().Context(), id); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "Supplier deleted successfully."})
	})
}
