package services

import (
	"context"
	"testing"

	"github.com/emurillo541/collegebookstore/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDetailService(store *memStore) *SalesDetailService {
	return NewSalesDetailService(store, memLines{store}, memSales{store}, store)
}

func TestUpdateLineItemAppliesDeltaAndRecomputesTotal(t *testing.T) {
	store := newMemStore()
	store.addItem(7, "Intro to Databases", 48)
	store.addItem(8, "Lab Notebook", 30)
	saleID := store.addSale(i64(1), dec("50.00"))
	store.addDetail(saleID, 8, 3, dec("10.00")) // sibling line, 30.00
	detailID := store.addDetail(saleID, 7, 2, dec("10.00"))
	svc := newDetailService(store)

	// 2 -> 5 sells three more units
	require.NoError(t, svc.UpdateLineItem(context.Background(), detailID, 5, dec("10.00")))

	assert.Equal(t, 45, store.stock(7))
	sale := store.state.sales[saleID]
	assert.True(t, sale.TotalAmount.Equal(dec("80.00")), "total = %s", sale.TotalAmount)
}

func TestUpdateLineItemLoweringQuantityRestoresStock(t *testing.T) {
	store := newMemStore()
	store.addItem(7, "Intro to Databases", 48)
	saleID := store.addSale(i64(1), dec("50.00"))
	detailID := store.addDetail(saleID, 7, 5, dec("10.00"))
	svc := newDetailService(store)

	require.NoError(t, svc.UpdateLineItem(context.Background(), detailID, 2, dec("10.00")))

	assert.Equal(t, 51, store.stock(7))
	sale := store.state.sales[saleID]
	assert.True(t, sale.TotalAmount.Equal(dec("20.00")))
}

func TestUpdateLineItemMissing(t *testing.T) {
	store := newMemStore()
	store.addItem(7, "Intro to Databases", 48)
	svc := newDetailService(store)

	err := svc.UpdateLineItem(context.Background(), 999, 5, dec("10.00"))
	require.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Equal(t, 48, store.stock(7))
}

func TestAddLineItemDecrementsStockWithoutTotalRecompute(t *testing.T) {
	store := newMemStore()
	store.addItem(7, "Intro to Databases", 48)
	saleID := store.addSale(i64(1), dec("30.00"))
	svc := newDetailService(store)

	_, err := svc.AddLineItem(context.Background(), saleID, 7, 2, dec("10.00"))
	require.NoError(t, err)

	assert.Equal(t, 46, store.stock(7))
	// the parent total is intentionally left stale on this path
	sale := store.state.sales[saleID]
	assert.True(t, sale.TotalAmount.Equal(dec("30.00")), "total = %s", sale.TotalAmount)
}

func TestAddLineItemUnknownItemRollsBack(t *testing.T) {
	store := newMemStore()
	saleID := store.addSale(i64(1), dec("0"))
	svc := newDetailService(store)

	_, err := svc.AddLineItem(context.Background(), saleID, 999, 2, dec("10.00"))
	require.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Empty(t, store.state.details)
}

func TestDeleteLineItemRestoresStock(t *testing.T) {
	store := newMemStore()
	store.addItem(7, "Intro to Databases", 48)
	saleID := store.addSale(i64(1), dec("20.00"))
	detailID := store.addDetail(saleID, 7, 2, dec("10.00"))
	svc := newDetailService(store)

	require.NoError(t, svc.DeleteLineItem(context.Background(), detailID))

	assert.Equal(t, 50, store.stock(7))
	_, ok := store.state.details[detailID]
	assert.False(t, ok)
}

// Deleting a line restores stock but does not recompute the parent total:
// the preserved asymmetry with UpdateLineItem. This test documents the gap
// rather than asserting it away.
func TestDeleteLineItemLeavesTotalStale(t *testing.T) {
	store := newMemStore()
	store.addItem(7, "Intro to Databases", 48)
	saleID := store.addSale(i64(1), dec("20.00"))
	detailID := store.addDetail(saleID, 7, 2, dec("10.00"))
	svc := newDetailService(store)

	require.NoError(t, svc.DeleteLineItem(context.Background(), detailID))

	sale := store.state.sales[saleID]
	assert.True(t, sale.TotalAmount.Equal(dec("20.00")), "total = %s", sale.TotalAmount)
}

func TestDeleteLineItemMissing(t *testing.T) {
	store := newMemStore()
	svc := newDetailService(store)

	err := svc.DeleteLineItem(context.Background(), 999)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}
