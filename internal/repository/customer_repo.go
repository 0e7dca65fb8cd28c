package repository

import (
	"context"

	"github.com/emurillo541/collegebookstore/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerRepository struct {
	DB *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

// List returns all customers ordered by last then first name.
func (r *CustomerRepository) List(ctx context.Context) ([]model.Customer, error) {
	query := `SELECT customerID, firstName, lastName, custEmail, addressLine1, addressLine2, custZip FROM Customers ORDER BY lastName, firstName`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Customer{}
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.CustomerID, &c.FirstName, &c.LastName, &c.CustEmail, &c.AddressLine1, &c.AddressLine2, &c.CustZip); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CustomerRepository) Create(ctx context.Context, c *model.Customer) (int64, error) {
	var id int64
	query := `INSERT INTO Customers (firstName, lastName, custEmail, addressLine1, addressLine2, custZip) VALUES ($1, $2, $3, $4, $5, $6) RETURNING customerID`
	if err := r.DB.QueryRow(ctx, query, c.FirstName, c.LastName, c.CustEmail, c.AddressLine1, c.AddressLine2, c.CustZip).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *model.Customer) (int64, error) {
	query := `UPDATE Customers SET firstName=$1, lastName=$2, custEmail=$3, addressLine1=$4, addressLine2=$5, custZip=$6 WHERE customerID=$7`
	tag, err := r.DB.Exec(ctx, query, c.FirstName, c.LastName, c.CustEmail, c.AddressLine1, c.AddressLine2, c.CustZip, c.CustomerID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *CustomerRepository) Delete(ctx context.Context, customerID int64) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM Customers WHERE customerID=$1`, customerID)
	return err
}
