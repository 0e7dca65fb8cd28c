package services

import (
	"context"
	"strings"

	"github.com/emurillo541/collegebookstore/internal/apperr"
	"github.com/emurillo541/collegebookstore/internal/model"
	"github.com/emurillo541/collegebookstore/internal/repository"
)

type SupplierService struct {
	Repo *repository.SupplierRepository
}

func NewSupplierService(r *repository.SupplierRepository) *SupplierService {
	return &SupplierService{Repo: r}
}

func (s *SupplierService) ListSuppliers(ctx context.Context) ([]model.Supplier, error) {
	return s.Repo.List(ctx)
}

func (s *SupplierService) CreateSupplier(ctx context.Context, sp *model.Supplier) (int64, error) {
	sp.CompanyName = strings.TrimSpace(sp.CompanyName)
	if sp.CompanyName == "" {
		return 0, apperr.Validation("companyName is required")
	}
	id, err := s.Repo.Create(ctx, sp)
	if err != nil {
		return 0, apperr.Store("create supplier", err)
	}
	return id, nil
}

func (s *SupplierService) UpdateSupplier(ctx context.Context, sp *model.Supplier) error {
	rows, err := s.Repo.Update(ctx, sp)
	if err != nil {
		return apperr.Store("update supplier", err)
	}
	if rows == 0 {
		return apperr.NotFound("supplier")
	}
	return nil
}

func (s *SupplierService) DeleteSupplier(ctx context.Context, supplierID int64) error {
	rows, err := s.Repo.Delete(ctx, supplierID)
	if err != nil {
		return apperr.Store("delete supplier", err)
	}
	if rows == 0 {
		return apperr.NotFound("supplier")
	}
	return nil
}
