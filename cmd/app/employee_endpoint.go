package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/emurillo541/collegebookstore/internal/middleware"
	"github.com/emurillo541/collegebookstore/internal/model"
	"github.com/emurillo541/collegebookstore/internal/services"

	"github.com/labstack/echo/v4"
)

type employeeRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	HireDate  string `json:"hireDate,omitempty"` // YYYY-MM-DD expected
}

func registerEmployeeRoutes(g *echo.Group, es *services.EmployeeService) {

	g.GET("/employees", func(c echo.Context) error {
		list, err := es.ListEmployees(c.Request().Context())
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	})

	protected := g.Group("")
	protected.Use(middleware.JWTMiddleware())

	protected.POST("/employees", func(c echo.Context) error {
		req := new(employeeRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := c.Validate(req); err != nil {
			return err
		}
		hire, err := parseDate(req.HireDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid hire date (use YYYY-MM-DD)"})
		}
		emp := &model.Employee{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			HireDate:  hire,
		}
		id, err := es.CreateEmployee(c.Request().Context(), emp)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusCreated, map[string]interface{}{
			"employeeID": id,
			"message":    "Employee added successfully.",
		})
	})

	protected.PUT("/employees/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		req := new(employeeRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := c.Validate(req); err != nil {
			return err
		}
		hire, err := parseDate(req.HireDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid hire date (use YYYY-MM-DD)"})
		}
		emp := &model.Employee{
			EmployeeID: id,
			FirstName:  req.FirstName,
			LastName:   req.LastName,
			Email:      req.Email,
			HireDate:   hire,
		}
		if err := es.UpdateEmployee(c.Request().Context(), emp); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "Employee updated successfully."})
	})

	protected.DELETE("/employees/:employeeID", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("employeeID"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		if err := es.DeleteEmployee(c.Request().Context(), id); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "Employee deleted successfully."})
	})
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
