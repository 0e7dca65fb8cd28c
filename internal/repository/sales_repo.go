package repository

import (
	"context"

	"github.com/emurillo541/collegebookstore/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type SalesRepository struct {
	DB *pgxpool.Pool
}

func NewSalesRepository(db *pgxpool.Pool) *SalesRepository {
	return &SalesRepository{DB: db}
}

// List returns sale headers with customer and employee display names,
// newest first. Sales always have a customer; the employee is optional.
func (r *SalesRepository) List(ctx context.Context) ([]model.Sale, error) {
	query := `
		SELECT S.salesID, S.orderDate, S.totalAmount, S.customerID, S.employeeID,
		       C.firstName || ' ' || C.lastName,
		       E.firstName || ' ' || E.lastName
		FROM Sales S
		JOIN Customers C ON S.customerID = C.customerID
		LEFT JOIN Employees E ON S.employeeID = E.employeeID
		ORDER BY S.orderDate DESC
	`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Sale{}
	for rows.Next() {
		var s model.Sale
		if err := rows.Scan(&s.SalesID, &s.OrderDate, &s.TotalAmount, &s.CustomerID, &s.EmployeeID, &s.CustomerName, &s.EmployeeName); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// InsertTx creates the sale header with a precomputed total.
func (r *SalesRepository) InsertTx(ctx context.Context, tx pgx.Tx, customerID, employeeID *int64, total decimal.Decimal) (int64, error) {
	var id int64
	query := `INSERT INTO Sales (customerID, employeeID, totalAmount) VALUES ($1, $2, $3) RETURNING salesID`
	if err := tx.QueryRow(ctx, query, customerID, employeeID, total).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// RecalcTotalTx rewrites the header total as the full re-sum of the sale's
// current line items.
func (r *SalesRepository) RecalcTotalTx(ctx context.Context, tx pgx.Tx, salesID int64) error {
	query := `
		UPDATE Sales
		SET totalAmount = (SELECT COALESCE(SUM(itemQuantity * priceEach), 0) FROM SalesDetail WHERE salesID = $1)
		WHERE salesID = $2
	`
	_, err := tx.Exec(ctx, query, salesID, salesID)
	return err
}

func (r *SalesRepository) UpdateHeader(ctx context.Context, salesID, customerID int64, employeeID *int64) (int64, error) {
	query := `UPDATE Sales SET customerID=$1, employeeID=$2 WHERE salesID=$3`
	tag, err := r.DB.Exec(ctx, query, customerID, employeeID, salesID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Delete removes the header only. Line items and their inventory effect are
// intentionally left alone.
func (r *SalesRepository) Delete(ctx context.Context, salesID int64) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM Sales WHERE salesID=$1`, salesID)
	return err
}
