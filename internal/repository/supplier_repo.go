package repository

import (
	"context"

	"github.com/emurillo541/collegebookstore/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SupplierRepository struct {
	DB *pgxpool.Pool
}

func NewSupplierRepository(db *pgxpool.Pool) *SupplierRepository {
	return &SupplierRepository{DB: db}
}

func (r *SupplierRepository) List(ctx context.Context) ([]model.Supplier, error) {
	query := `SELECT supplierID, companyName, contactName, supplierEmail, phone FROM Suppliers ORDER BY companyName`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Supplier{}
	for rows.Next() {
		var s model.Supplier
		if err := rows.Scan(&s.SupplierID, &s.CompanyName, &s.ContactName, &s.SupplierEmail, &s.Phone); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SupplierRepository) Create(ctx context.Context, s *model.Supplier) (int64, error) {
	var id int64
	query := `INSERT INTO Suppliers (companyName, contactName, supplierEmail, phone) VALUES ($1, $2, $3, $4) RETURNING supplierID`
	if err := r.DB.QueryRow(ctx, query, s.CompanyName, s.ContactName, s.SupplierEmail, s.Phone).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *SupplierRepository) Update(ctx context.Context, s *model.Supplier) (int64, error) {
	query := `UPDATE Suppliers SET companyName=$1, contactName=$2, supplierEmail=$3, phone=$4 WHERE supplierID=$5`
	tag, err := r.DB.Exec(ctx, query, s.CompanyName, s.ContactName, s.SupplierEmail, s.Phone, s.SupplierID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *SupplierRepository) Delete(ctx context.Context, supplierID int64) (int64, error) {
	tag, err := r.DB.Exec(ctx, `DELETE FROM Suppliers WHERE supplierID=$1`, supplierID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
