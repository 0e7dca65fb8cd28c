package repository

import (
	"context"
	"errors"

	"github.com/emurillo541/collegebookstore/internal/apperr"
	"github.com/emurillo541/collegebookstore/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type SalesDetailRepository struct {
	DB *pgxpool.Pool
}

func NewSalesDetailRepository(db *pgxpool.Pool) *SalesDetailRepository {
	return &SalesDetailRepository{DB: db}
}

// ListBySale returns a sale's line items joined with the catalog, including
// the computed line total.
func (r *SalesDetailRepository) ListBySale(ctx context.Context, salesID int64) ([]model.SaleLineView, error) {
	query := `
		SELECT SD.salesDetailID, M.itemName, M.ISBN, SD.itemQuantity, SD.priceEach,
		       SD.itemQuantity * SD.priceEach, SD.itemID
		FROM SalesDetail SD
		JOIN Merchandise M ON SD.itemID = M.itemID
		WHERE SD.salesID = $1
		ORDER BY SD.salesDetailID
	`
	rows, err := r.DB.Query(ctx, query, salesID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.SaleLineView{}
	for rows.Next() {
		var v model.SaleLineView
		if err := rows.Scan(&v.SalesDetailID, &v.ItemName, &v.ISBN, &v.ItemQuantity, &v.PriceEach, &v.LineTotal, &v.ItemID); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// GetTx reads one line item inside the caller's transaction.
func (r *SalesDetailRepository) GetTx(ctx context.Context, tx pgx.Tx, salesDetailID int64) (*model.SalesDetail, error) {
	var d model.SalesDetail
	query := `SELECT salesDetailID, salesID, itemID, itemQuantity, priceEach FROM SalesDetail WHERE salesDetailID=$1`
	err := tx.QueryRow(ctx, query, salesDetailID).Scan(&d.SalesDetailID, &d.SalesID, &d.ItemID, &d.ItemQuantity, &d.PriceEach)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("sales detail")
		}
		return nil, err
	}
	return &d, nil
}

func (r *SalesDetailRepository) InsertTx(ctx context.Context, tx pgx.Tx, salesID, itemID int64, quantity int, priceEach decimal.Decimal) (int64, error) {
	var id int64
	query := `INSERT INTO SalesDetail (salesID, itemID, itemQuantity, priceEach) VALUES ($1, $2, $3, $4) RETURNING salesDetailID`
	if err := tx.QueryRow(ctx, query, salesID, itemID, quantity, priceEach).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *SalesDetailRepository) UpdateTx(ctx context.Context, tx pgx.Tx, salesDetailID int64, quantity int, priceEach decimal.Decimal) error {
	query := `UPDATE SalesDetail SET itemQuantity=$1, priceEach=$2 WHERE salesDetailID=$3`
	_, err := tx.Exec(ctx, query, quantity, priceEach, salesDetailID)
	return err
}

func (r *SalesDetailRepository) DeleteTx(ctx context.Context, tx pgx.Tx, salesDetailID int64) error {
	_, err := tx.Exec(ctx, `DELETE FROM SalesDetail WHERE salesDetailID=$1`, salesDetailID)
	return err
}
