package main

import (
	"net/http"
	"strconv"

	"github.com/emurillo541/collegebookstore/internal/middleware"
	"github.com/emurillo541/collegebookstore/internal/model"
	"github.com/emurillo541/collegebookstore/internal/services"

	"github.com/labstack/echo/v4"
)

type customerRequest struct {
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	CustEmail    *string `json:"custEmail"`
	AddressLine1 *string `json:"addressLine1"`
	AddressLine2 *string `json:"addressLine2"`
	CustZip      *string `json:"custZip"`
}

func registerCustomerRoutes(g *echo.Group, cs *services.CustomerService) {

	g.GET("/customers", func(c echo.Context) error {
		list, err := cs.ListCustomers(c.Request().Context())
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	})

	protected := g.Group("")
	protected.Use(middleware.JWTMiddleware())

	protected.POST("/customers", func(c echo.Context) error {
		req := new(customerRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		cust := &model.Customer{
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			CustEmail:    req.CustEmail,
			AddressLine1: req.AddressLine1,
			AddressLine2: req.AddressLine2,
			CustZip:      req.CustZip,
		}
		id, err := cs.CreateCustomer(c.Request().Context(), cust)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusCreated, map[string]interface{}{
			"customerID": id,
			"message":    "Customer added successfully.",
		})
	})

	protected.PUT("/customers/:customerID", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("customerID"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		req := new(customerRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		cust := &model.Customer{
			CustomerID:   id,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			CustEmail:    req.CustEmail,
			AddressLine1: req.AddressLine1,
			AddressLine2: req.AddressLine2,
			CustZip:      req.CustZip,
		}
		if err := cs.UpdateCustomer(c.Request().Context(), cust); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "Customer updated successfully."})
	})

	protected.DELETE("/customers/:customerID", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("customerID"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		if err := cs.DeleteCustomer(c.Request().Context(), id); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "Customer deleted successfully."})
	})
}
