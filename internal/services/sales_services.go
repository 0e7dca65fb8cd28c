package services

import (
	"context"
	"fmt"

	"github.com/emurillo541/collegebookstore/internal/apperr"
	"github.com/emurillo541/collegebookstore/internal/model"
	"github.com/emurillo541/collegebookstore/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// LineItemInput is one requested line on a new sale. PriceEach is taken as
// supplied; the caller is responsible for quoting the current catalog price.
type LineItemInput struct {
	ItemID    int64
	Quantity  int
	PriceEach decimal.Decimal
}

type SalesService struct {
	DB     repository.Beginner
	Repo   SalesHeaderStore
	Lines  SaleLineStore
	Ledger InventoryLedger
}

func NewSalesService(db repository.Beginner, repo SalesHeaderStore, lines SaleLineStore, ledger InventoryLedger) *SalesService {
	return &SalesService{DB: db, Repo: repo, Lines: lines, Ledger: ledger}
}

func (s *SalesService) ListSales(ctx context.Context) ([]model.Sale, error) {
	return s.Repo.List(ctx)
}

// CreateSale inserts the header, every line item, and the matching inventory
// decrements as one atomic unit. The total is computed here from the supplied
// prices, never re-read from the catalog.
func (s *SalesService) CreateSale(ctx context.Context, customerID, employeeID *int64, lines []LineItemInput) (int64, decimal.Decimal, error) {
	if len(lines) == 0 {
		return 0, decimal.Zero, apperr.Validation("at least one line item is required")
	}

	total := decimal.Zero
	for _, li := range lines {
		total = total.Add(li.PriceEach.Mul(decimal.NewFromInt(int64(li.Quantity))))
	}

	var salesID int64
	err := repository.WithTx(ctx, s.DB, func(tx pgx.Tx) error {
		id, err := s.Repo.InsertTx(ctx, tx, customerID, employeeID, total)
		if err != nil {
			return fmt.Errorf("insert sale: %w", err)
		}
		salesID = id

		for _, li := range lines {
			if _, err := s.Lines.InsertTx(ctx, tx, salesID, li.ItemID, li.Quantity, li.PriceEach); err != nil {
				return fmt.Errorf("insert line item: %w", err)
			}
			if err := s.Ledger.AdjustQuantityTx(ctx, tx, li.ItemID, -li.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, decimal.Zero, err
	}
	return salesID, total, nil
}

// UpdateSaleHeader changes who the sale is attributed to. Line items,
// inventory, and the total are untouched.
func (s *SalesService) UpdateSaleHeader(ctx context.Context, salesID int64, customerID *int64, employeeID *int64) error {
	if customerID == nil {
		return apperr.Validation("customerID is required")
	}
	rows, err := s.Repo.UpdateHeader(ctx, salesID, *customerID, employeeID)
	if err != nil {
		return apperr.Store("update sale", err)
	}
	if rows == 0 {
		return apperr.NotFound("sale")
	}
	return nil
}

// DeleteSale removes the header only. Its line items keep their rows and
// their inventory effect; see the workflow notes in DESIGN.md.
func (s *SalesService) DeleteSale(ctx context.Context, salesID int64) error {
	return s.Repo.Delete(ctx, salesID)
}
