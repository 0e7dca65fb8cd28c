package services

import (
	"context"

	"github.com/emurillo541/collegebookstore/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// Store interfaces consumed by the transactional services. The pgx
// repositories satisfy them in production; tests substitute in-memory fakes.

type SalesHeaderStore interface {
	List(ctx context.Context) ([]model.Sale, error)
	InsertTx(ctx context.Context, tx pgx.Tx, customerID, employeeID *int64, total decimal.Decimal) (int64, error)
	RecalcTotalTx(ctx context.Context, tx pgx.Tx, salesID int64) error
	UpdateHeader(ctx context.Context, salesID, customerID int64, employeeID *int64) (int64, error)
	Delete(ctx context.Context, salesID int64) error
}

type SaleLineStore interface {
	ListBySale(ctx context.Context, salesID int64) ([]model.SaleLineView, error)
	GetTx(ctx context.Context, tx pgx.Tx, salesDetailID int64) (*model.SalesDetail, error)
	InsertTx(ctx context.Context, tx pgx.Tx, salesID, itemID int64, quantity int, priceEach decimal.Decimal) (int64, error)
	UpdateTx(ctx context.Context, tx pgx.Tx, salesDetailID int64, quantity int, priceEach decimal.Decimal) error
	DeleteTx(ctx context.Context, tx pgx.Tx, salesDetailID int64) error
}

// InventoryLedger adjusts stock counts within the caller's transaction.
type InventoryLedger interface {
	AdjustQuantityTx(ctx context.Context, tx pgx.Tx, itemID int64, delta int) error
}

type ReorderStore interface {
	List(ctx context.Context) ([]model.ReorderView, error)
	Insert(ctx context.Context, supplierID *int64, itemID int64, quantity int, status string) (int64, error)
	Get(ctx context.Context, reorderID int64) (*model.Reorder, error)
	GetTx(ctx context.Context, tx pgx.Tx, reorderID int64) (*model.Reorder, error)
	SetStatusTx(ctx context.Context, tx pgx.Tx, reorderID int64, status string) error
	SetStatus(ctx context.Context, reorderID int64, status string) error
	Delete(ctx context.Context, reorderID int64) error
}
