package services

import (
	"context"

	"github.com/emurillo541/collegebookstore/internal/apperr"
	"github.com/emurillo541/collegebookstore/internal/repository"
)

type AdminService struct {
	Repo *repository.AdminRepository
}

func NewAdminService(r *repository.AdminRepository) *AdminService {
	return &AdminService{Repo: r}
}

// ResetDatabase reinitializes every table to the seed state.
func (s *AdminService) ResetDatabase(ctx context.Context) error {
	if err := s.Repo.ResetDatabase(ctx); err != nil {
		return apperr.Store("reset database", err)
	}
	return nil
}
