package services

import (
	"context"

	"github.com/emurillo541/collegebookstore/internal/model"
	"github.com/emurillo541/collegebookstore/internal/repository"
)

type CustomerService struct {
	Repo *repository.CustomerRepository
}

func NewCustomerService(r *repository.CustomerRepository) *CustomerService {
	return &CustomerService{Repo: r}
}

func (s *CustomerService) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	return s.Repo.List(ctx)
}

func (s *CustomerService) CreateCustomer(ctx context.Context, c *model.Customer) (int64, error) {
	normalizeCustomer(c)
	return s.Repo.Create(ctx, c)
}

// UpdateCustomer mirrors the legacy behavior: updating a missing ID is not an
// error, it simply touches no rows.
func (s *CustomerService) UpdateCustomer(ctx context.Context, c *model.Customer) error {
	normalizeCustomer(c)
	_, err := s.Repo.Update(ctx, c)
	return err
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, customerID int64) error {
	return s.Repo.Delete(ctx, customerID)
}

// normalizeCustomer stores blank optional fields as NULL instead of "".
func normalizeCustomer(c *model.Customer) {
	for _, f := range []**string{&c.FirstName, &c.LastName, &c.CustEmail, &c.AddressLine1, &c.AddressLine2, &c.CustZip} {
		if *f != nil && **f == "" {
			*f = nil
		}
	}
}
