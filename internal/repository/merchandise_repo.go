package repository

import (
	"context"

	"github.com/emurillo541/collegebookstore/internal/apperr"
	"github.com/emurillo541/collegebookstore/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MerchandiseRepository struct {
	DB *pgxpool.Pool
}

func NewMerchandiseRepository(db *pgxpool.Pool) *MerchandiseRepository {
	return &MerchandiseRepository{DB: db}
}

// List returns every item with its supplier name when one is linked.
func (r *MerchandiseRepository) List(ctx context.Context) ([]model.Merchandise, error) {
	query := `
		SELECT M.itemID, M.itemName, M.ISBN, M.price, M.itemQuantity, M.supplierID, S.companyName
		FROM Merchandise M
		LEFT JOIN Suppliers S ON M.supplierID = S.supplierID
		ORDER BY M.itemName
	`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Merchandise{}
	for rows.Next() {
		var m model.Merchandise
		if err := rows.Scan(&m.ItemID, &m.ItemName, &m.ISBN, &m.Price, &m.ItemQuantity, &m.SupplierID, &m.SupplierName); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *MerchandiseRepository) Create(ctx context.Context, m *model.Merchandise) (int64, error) {
	var id int64
	query := `INSERT INTO Merchandise (itemName, ISBN, price, supplierID, itemQuantity) VALUES ($1, $2, $3, $4, $5) RETURNING itemID`
	if err := r.DB.QueryRow(ctx, query, m.ItemName, m.ISBN, m.Price, m.SupplierID, m.ItemQuantity).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *MerchandiseRepository) Update(ctx context.Context, m *model.Merchandise) (int64, error) {
	query := `UPDATE Merchandise SET itemName=$1, ISBN=$2, price=$3, supplierID=$4, itemQuantity=$5 WHERE itemID=$6`
	tag, err := r.DB.Exec(ctx, query, m.ItemName, m.ISBN, m.Price, m.SupplierID, m.ItemQuantity, m.ItemID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *MerchandiseRepository) Delete(ctx context.Context, itemID int64) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM Merchandise WHERE itemID=$1`, itemID)
	return err
}

// AdjustQuantityTx applies delta to an item's stock count inside the caller's
// transaction. Stock is allowed to go negative; the only failure mode besides
// the store itself is an unknown item.
func (r *MerchandiseRepository) AdjustQuantityTx(ctx context.Context, tx pgx.Tx, itemID int64, delta int) error {
	tag, err := tx.Exec(ctx, `UPDATE Merchandise SET itemQuantity = itemQuantity + $1 WHERE itemID=$2`, delta, itemID)
	if err != nil {
		return apperr.Store("adjust inventory", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("merchandise item")
	}
	return nil
}
