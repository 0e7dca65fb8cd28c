package services

import (
	"context"
	"strings"

	"github.com/emurillo541/collegebookstore/internal/apperr"
	"github.com/emurillo541/collegebookstore/internal/model"
	"github.com/emurillo541/collegebookstore/internal/repository"
)

type MerchandiseService struct {
	Repo *repository.MerchandiseRepository
}

func NewMerchandiseService(r *repository.MerchandiseRepository) *MerchandiseService {
	return &MerchandiseService{Repo: r}
}

func (s *MerchandiseService) ListMerchandise(ctx context.Context) ([]model.Merchandise, error) {
	return s.Repo.List(ctx)
}

func (s *MerchandiseService) CreateMerchandise(ctx context.Context, m *model.Merchandise) (int64, error) {
	m.ItemName = strings.TrimSpace(m.ItemName)
	if m.ItemName == "" {
		return 0, apperr.Validation("itemName is required")
	}
	if m.Price.IsNegative() {
		return 0, apperr.Validation("price must be >= 0")
	}
	id, err := s.Repo.Create(ctx, m)
	if err != nil {
		return 0, apperr.Store("create merchandise", err)
	}
	return id, nil
}

func (s *MerchandiseService) UpdateMerchandise(ctx context.Context, m *model.Merchandise) error {
	m.ItemName = strings.TrimSpace(m.ItemName)
	if m.ItemName == "" {
		return apperr.Validation("itemName is required")
	}
	if m.Price.IsNegative() {
		return apperr.Validation("price must be >= 0")
	}
	rows, err := s.Repo.Update(ctx, m)
	if err != nil {
		return apperr.Store("update merchandise", err)
	}
	if rows == 0 {
		return apperr.NotFound("merchandise item")
	}
	return nil
}

func (s *MerchandiseService) DeleteMerchandise(ctx context.Context, itemID int64) error {
	return s.Repo.Delete(ctx, itemID)
}
