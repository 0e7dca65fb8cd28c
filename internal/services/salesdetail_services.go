package services

import (
	"context"
	"fmt"

	"github.com/emurillo541/collegebookstore/internal/model"
	"github.com/emurillo541/collegebookstore/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type SalesDetailService struct {
	DB     repository.Beginner
	Repo   SaleLineStore
	Sales  SalesHeaderStore
	Ledger InventoryLedger
}

func NewSalesDetailService(db repository.Beginner, repo SaleLineStore, sales SalesHeaderStore, ledger InventoryLedger) *SalesDetailService {
	return &SalesDetailService{DB: db, Repo: repo, Sales: sales, Ledger: ledger}
}

func (s *SalesDetailService) ListBySale(ctx context.Context, salesID int64) ([]model.SaleLineView, error) {
	return s.Repo.ListBySale(ctx, salesID)
}

// AddLineItem appends a line to an existing sale and decrements stock in one
// atomic unit. The parent total is NOT recomputed here: the legacy system it
// replaces never did, and the admin UI relies on the update path to repair it.
func (s *SalesDetailService) AddLineItem(ctx context.Context, salesID, itemID int64, quantity int, priceEach decimal.Decimal) (int64, error) {
	var detailID int64
	err := repository.WithTx(ctx, s.DB, func(tx pgx.Tx) error {
		id, err := s.Repo.InsertTx(ctx, tx, salesID, itemID, quantity, priceEach)
		if err != nil {
			return fmt.Errorf("insert line item: %w", err)
		}
		detailID = id
		return s.Ledger.AdjustQuantityTx(ctx, tx, itemID, -quantity)
	})
	if err != nil {
		return 0, err
	}
	return detailID, nil
}

// UpdateLineItem rewrites quantity and price on one line, applies the stock
// delta (raising a sold quantity lowers stock further, lowering it restores
// stock), and recomputes the parent total as a full re-sum of its lines.
func (s *SalesDetailService) UpdateLineItem(ctx context.Context, salesDetailID int64, quantity int, priceEach decimal.Decimal) error {
	return repository.WithTx(ctx, s.DB, func(tx pgx.Tx) error {
		old, err := s.Repo.GetTx(ctx, tx, salesDetailID)
		if err != nil {
			return err
		}

		if err := s.Repo.UpdateTx(ctx, tx, salesDetailID, quantity, priceEach); err != nil {
			return fmt.Errorf("update line item: %w", err)
		}

		delta := quantity - old.ItemQuantity
		if err := s.Ledger.AdjustQuantityTx(ctx, tx, old.ItemID, -delta); err != nil {
			return err
		}

		if err := s.Sales.RecalcTotalTx(ctx, tx, old.SalesID); err != nil {
			return fmt.Errorf("recalculate sale total: %w", err)
		}
		return nil
	})
}

// DeleteLineItem removes the line and restores its quantity to stock. The
// parent total is left as-is, mirroring the system this one replaces; the
// asymmetry with UpdateLineItem is deliberate and covered by a test.
func (s *SalesDetailService) DeleteLineItem(ctx context.Context, salesDetailID int64) error {
	return repository.WithTx(ctx, s.DB, func(tx pgx.Tx) error {
		old, err := s.Repo.GetTx(ctx, tx, salesDetailID)
		if err != nil {
			return err
		}

		if err := s.Repo.DeleteTx(ctx, tx, salesDetailID); err != nil {
			return fmt.Errorf("delete line item: %w", err)
		}
		return s.Ledger.AdjustQuantityTx(ctx, tx, old.ItemID, old.ItemQuantity)
	})
}
