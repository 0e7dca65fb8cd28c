package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/emurillo541/collegebookstore/internal/apperr"
	"github.com/emurillo541/collegebookstore/internal/model"
	"github.com/emurillo541/collegebookstore/internal/repository"

	"github.com/jackc/pgx/v5"
)

type ReorderService struct {
	DB     repository.Beginner
	Repo   ReorderStore
	Ledger InventoryLedger
}

func NewReorderService(db repository.Beginner, repo ReorderStore, ledger InventoryLedger) *ReorderService {
	return &ReorderService{DB: db, Repo: repo, Ledger: ledger}
}

func (s *ReorderService) ListReorders(ctx context.Context) ([]model.ReorderView, error) {
	return s.Repo.List(ctx)
}

// CreateReorder stores a new request. Only "pending" and "ordered" are
// accepted as an initial status; anything else (including none) is coerced
// to pending.
func (s *ReorderService) CreateReorder(ctx context.Context, supplierID *int64, itemID int64, quantity int, status string) (*model.Reorder, error) {
	if itemID <= 0 {
		return nil, apperr.Validation("itemID is required")
	}
	if quantity < 0 {
		quantity = 0
	}

	st := strings.ToLower(strings.TrimSpace(status))
	if st != model.ReorderStatusPending && st != model.ReorderStatusOrdered {
		st = model.ReorderStatusPending
	}

	id, err := s.Repo.Insert(ctx, supplierID, itemID, quantity, st)
	if err != nil {
		return nil, apperr.Store("create reorder", err)
	}
	return s.Repo.Get(ctx, id)
}

// ReceiveReorder is legal only from "ordered". Stock goes up by the reorder
// quantity and the status flips to "received", atomically.
func (s *ReorderService) ReceiveReorder(ctx context.Context, reorderID int64) error {
	return repository.WithTx(ctx, s.DB, func(tx pgx.Tx) error {
		ro, err := s.Repo.GetTx(ctx, tx, reorderID)
		if err != nil {
			return err
		}
		if ro.Status == nil || *ro.Status != model.ReorderStatusOrdered {
			return apperr.InvalidState("reorder is not in 'ordered' status")
		}

		if err := s.Ledger.AdjustQuantityTx(ctx, tx, ro.ItemID, ro.Quantity); err != nil {
			return err
		}
		if err := s.Repo.SetStatusTx(ctx, tx, reorderID, model.ReorderStatusReceived); err != nil {
			return fmt.Errorf("mark reorder received: %w", err)
		}
		return nil
	})
}

// CancelReorder moves pending, ordered, or legacy blank-status reorders to
// "cancelled". Received and already-cancelled reorders are terminal.
// Inventory is never touched. Returns the updated row.
func (s *ReorderService) CancelReorder(ctx context.Context, reorderID int64) (*model.Reorder, error) {
	ro, err := s.Repo.Get(ctx, reorderID)
	if err != nil {
		return nil, err
	}
	if !cancellable(ro.Status) {
		return nil, apperr.InvalidState("reorder already received or cancelled")
	}

	if err := s.Repo.SetStatus(ctx, reorderID, model.ReorderStatusCancelled); err != nil {
		return nil, apperr.Store("cancel reorder", err)
	}
	return s.Repo.Get(ctx, reorderID)
}

// DeleteReorder permanently removes a reorder, allowed only while it is
// still "pending". Blank statuses do not qualify here, unlike cancellation.
func (s *ReorderService) DeleteReorder(ctx context.Context, reorderID int64) error {
	ro, err := s.Repo.Get(ctx, reorderID)
	if err != nil {
		return err
	}
	if ro.Status == nil || *ro.Status != model.ReorderStatusPending {
		return apperr.InvalidState("only pending reorders can be deleted")
	}
	return s.Repo.Delete(ctx, reorderID)
}

func cancellable(status *string) bool {
	if status == nil || *status == "" {
		return true
	}
	return *status == model.ReorderStatusPending || *status == model.ReorderStatusOrdered
}
