package services

import (
	"context"
	"strings"

	"github.com/emurillo541/collegebookstore/internal/apperr"
	"github.com/emurillo541/collegebookstore/internal/model"
	"github.com/emurillo541/collegebookstore/internal/repository"
)

type EmployeeService struct {
	Repo *repository.EmployeeRepository
}

func NewEmployeeService(r *repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{Repo: r}
}

func (s *EmployeeService) ListEmployees(ctx context.Context) ([]model.Employee, error) {
	return s.Repo.List(ctx)
}

func (s *EmployeeService) CreateEmployee(ctx context.Context, e *model.Employee) (int64, error) {
	if strings.TrimSpace(e.FirstName) == "" || strings.TrimSpace(e.LastName) == "" {
		return 0, apperr.Validation("firstName and lastName are required")
	}
	id, err := s.Repo.Create(ctx, e)
	if err != nil {
		return 0, apperr.Store("create employee", err)
	}
	return id, nil
}

func (s *EmployeeService) UpdateEmployee(ctx context.Context, e *model.Employee) error {
	rows, err := s.Repo.Update(ctx, e)
	if err != nil {
		return apperr.Store("update employee", err)
	}
	if rows == 0 {
		return apperr.NotFound("employee")
	}
	return nil
}

func (s *EmployeeService) DeleteEmployee(ctx context.Context, employeeID int64) error {
	return s.Repo.Delete(ctx, employeeID)
}
