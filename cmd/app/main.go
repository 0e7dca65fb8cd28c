package main

import (
	"context"
	"strings"

	"github.com/emurillo541/collegebookstore/internal/config"
	"github.com/emurillo541/collegebookstore/internal/db"
	"github.com/emurillo541/collegebookstore/internal/repository"
	"github.com/emurillo541/collegebookstore/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()
	logger := config.GetLogger()

	// ======================
	// INFRA
	// ======================
	pool, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Fatal(err)
	}
	defer pool.Close()

	// ======================
	// REPOSITORIES
	// ======================
	adminRepo := repository.NewAdminRepository(pool)
	customerRepo := repository.NewCustomerRepository(pool)
	employeeRepo := repository.NewEmployeeRepository(pool)
	supplierRepo := repository.NewSupplierRepository(pool)
	merchRepo := repository.NewMerchandiseRepository(pool)
	salesRepo := repository.NewSalesRepository(pool)
	detailRepo := repository.NewSalesDetailRepository(pool)
	reorderRepo := repository.NewReorderRepository(pool)

	// ======================
	// SERVICES
	// ======================
	adminSvc := services.NewAdminService(adminRepo)
	customerSvc := services.NewCustomerService(customerRepo)
	employeeSvc := services.NewEmployeeService(employeeRepo)
	supplierSvc := services.NewSupplierService(supplierRepo)
	merchSvc := services.NewMerchandiseService(merchRepo)
	salesSvc := services.NewSalesService(pool, salesRepo, detailRepo, merchRepo)
	detailSvc := services.NewSalesDetailService(pool, detailRepo, salesRepo, merchRepo)
	reorderSvc := services.NewReorderService(pool, reorderRepo, merchRepo)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOriginFunc: allowOrigin(cfg.FrontendURL),
		AllowHeaders:    []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Validator = newAPIValidator()

	api := e.Group("")

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerAdminRoutes(api, adminSvc)
	registerCustomerRoutes(api, customerSvc)
	registerEmployeeRoutes(api, employeeSvc)
	registerSupplierRoutes(api, supplierSvc)
	registerMerchandiseRoutes(api, merchSvc)
	registerSalesRoutes(api, salesSvc)
	registerSalesDetailRoutes(api, detailSvc)
	registerReorderRoutes(api, reorderSvc)

	// ======================
	// SERVER
	// ======================
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

// allowOrigin accepts the configured frontend plus vercel preview deploys.
func allowOrigin(frontendURL string) func(origin string) (bool, error) {
	return func(origin string) (bool, error) {
		if origin == "" || origin == frontendURL {
			return true, nil
		}
		return strings.HasSuffix(origin, ".vercel.app"), nil
	}
}
