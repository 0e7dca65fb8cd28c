package repository

import (
	"context"
	"errors"

	"github.com/emurillo541/collegebookstore/internal/apperr"
	"github.com/emurillo541/collegebookstore/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReorderRepository struct {
	DB *pgxpool.Pool
}

func NewReorderRepository(db *pgxpool.Pool) *ReorderRepository {
	return &ReorderRepository{DB: db}
}

func (r *ReorderRepository) List(ctx context.Context) ([]model.ReorderView, error) {
	query := `
		SELECT R.reorderID, to_char(R.reorderDate, 'YYYY-MM-DD'), R.quantity, R.status,
		       M.itemID, M.itemName, R.supplierID, S.companyName
		FROM Reorders R
		JOIN Merchandise M ON R.itemID = M.itemID
		LEFT JOIN Suppliers S ON R.supplierID = S.supplierID
		ORDER BY R.reorderDate DESC
	`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.ReorderView{}
	for rows.Next() {
		var v model.ReorderView
		if err := rows.Scan(&v.ReorderID, &v.ReorderDate, &v.Quantity, &v.Status, &v.ItemID, &v.ItemName, &v.SupplierID, &v.Supplier); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *ReorderRepository) Insert(ctx context.Context, supplierID *int64, itemID int64, quantity int, status string) (int64, error) {
	var id int64
	query := `INSERT INTO Reorders (supplierID, itemID, quantity, status) VALUES ($1, $2, $3, $4) RETURNING reorderID`
	if err := r.DB.QueryRow(ctx, query, supplierID, itemID, quantity, status).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *ReorderRepository) Get(ctx context.Context, reorderID int64) (*model.Reorder, error) {
	return get(ctx, r.DB, reorderID)
}

// GetTx reads a reorder inside the caller's transaction so the status check
// and the transition commit together.
func (r *ReorderRepository) GetTx(ctx context.Context, tx pgx.Tx, reorderID int64) (*model.Reorder, error) {
	return get(ctx, tx, reorderID)
}

// rowQuerier covers both the pool and a transaction.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func get(ctx context.Context, q rowQuerier, reorderID int64) (*model.Reorder, error) {
	var ro model.Reorder
	query := `SELECT reorderID, supplierID, itemID, quantity, status, reorderDate FROM Reorders WHERE reorderID=$1`
	err := q.QueryRow(ctx, query, reorderID).Scan(&ro.ReorderID, &ro.SupplierID, &ro.ItemID, &ro.Quantity, &ro.Status, &ro.ReorderDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("reorder")
		}
		return nil, err
	}
	return &ro, nil
}

func (r *ReorderRepository) SetStatusTx(ctx context.Context, tx pgx.Tx, reorderID int64, status string) error {
	_, err := tx.Exec(ctx, `UPDATE Reorders SET status=$1 WHERE reorderID=$2`, status, reorderID)
	return err
}

func (r *ReorderRepository) SetStatus(ctx context.Context, reorderID int64, status string) error {
	_, err := r.DB.Exec(ctx, `UPDATE Reorders SET status=$1 WHERE reorderID=$2`, status, reorderID)
	return err
}

func (r *ReorderRepository) Delete(ctx context.Context, reorderID int64) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM Reorders WHERE reorderID=$1`, reorderID)
	return err
}
