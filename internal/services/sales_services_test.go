package services

import (
	"context"
	"testing"

	"github.com/emurillo541/collegebookstore/internal/apperr"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSalesService(store *memStore) *SalesService {
	return NewSalesService(store, memSales{store}, memLines{store}, store)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func i64(v int64) *int64 {
	return &v
}

func TestCreateSaleComputesTotalAndDecrementsStock(t *testing.T) {
	store := newMemStore()
	store.addItem(7, "Intro to Databases", 50)
	svc := newSalesService(store)

	salesID, total, err := svc.CreateSale(context.Background(), i64(1), i64(2), []LineItemInput{
		{ItemID: 7, Quantity: 2, PriceEach: dec("10.00")},
	})
	require.NoError(t, err)

	assert.True(t, total.Equal(dec("20.00")), "total = %s", total)
	assert.Equal(t, 48, store.stock(7))

	sale, ok := store.state.sales[salesID]
	require.True(t, ok)
	assert.True(t, sale.TotalAmount.Equal(dec("20.00")))

	lines, err := svc.Lines.ListBySale(context.Background(), salesID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].ItemQuantity)
}

func TestCreateSaleMultipleLines(t *testing.T) {
	store := newMemStore()
	store.addItem(1, "Campus Hoodie", 10)
	store.addItem(2, "Sticker Pack", 100)
	svc := newSalesService(store)

	_, total, err := svc.CreateSale(context.Background(), i64(1), nil, []LineItemInput{
		{ItemID: 1, Quantity: 1, PriceEach: dec("39.99")},
		{ItemID: 2, Quantity: 3, PriceEach: dec("2.50")},
	})
	require.NoError(t, err)

	assert.True(t, total.Equal(dec("47.49")), "total = %s", total)
	assert.Equal(t, 9, store.stock(1))
	assert.Equal(t, 97, store.stock(2))
}

func TestCreateSaleRequiresLineItems(t *testing.T) {
	store := newMemStore()
	svc := newSalesService(store)

	_, _, err := svc.CreateSale(context.Background(), i64(1), nil, nil)
	require.ErrorIs(t, err, apperr.ErrValidation)
	assert.Empty(t, store.state.sales)
}

func TestCreateSaleRollsBackOnUnknownItem(t *testing.T) {
	store := newMemStore()
	store.addItem(7, "Intro to Databases", 50)
	svc := newSalesService(store)

	_, _, err := svc.CreateSale(context.Background(), i64(1), nil, []LineItemInput{
		{ItemID: 7, Quantity: 2, PriceEach: dec("10.00")},
		{ItemID: 999, Quantity: 1, PriceEach: dec("5.00")},
	})
	require.ErrorIs(t, err, apperr.ErrNotFound)

	// nothing from the failed unit is visible
	assert.Equal(t, 50, store.stock(7))
	assert.Empty(t, store.state.sales)
	assert.Empty(t, store.state.details)
}

func TestCreateSaleAllowsNegativeStock(t *testing.T) {
	store := newMemStore()
	store.addItem(7, "Intro to Databases", 1)
	svc := newSalesService(store)

	_, _, err := svc.CreateSale(context.Background(), i64(1), nil, []LineItemInput{
		{ItemID: 7, Quantity: 5, PriceEach: dec("10.00")},
	})
	require.NoError(t, err)
	assert.Equal(t, -4, store.stock(7))
}

func TestUpdateSaleHeaderRequiresCustomer(t *testing.T) {
	store := newMemStore()
	svc := newSalesService(store)

	err := svc.UpdateSaleHeader(context.Background(), 1, nil, nil)
	require.ErrorIs(t, err, apperr.ErrValidation)
}

func TestUpdateSaleHeaderMissingSale(t *testing.T) {
	store := newMemStore()
	svc := newSalesService(store)

	err := svc.UpdateSaleHeader(context.Background(), 42, i64(1), nil)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdateSaleHeaderLeavesTotalAlone(t *testing.T) {
	store := newMemStore()
	saleID := store.addSale(i64(1), dec("99.00"))
	svc := newSalesService(store)

	require.NoError(t, svc.UpdateSaleHeader(context.Background(), saleID, i64(3), i64(4)))

	sale := store.state.sales[saleID]
	assert.Equal(t, int64(3), *sale.CustomerID)
	assert.Equal(t, int64(4), *sale.EmployeeID)
	assert.True(t, sale.TotalAmount.Equal(dec("99.00")))
}

func TestDeleteSaleLeavesLinesAndStock(t *testing.T) {
	store := newMemStore()
	store.addItem(7, "Intro to Databases", 48)
	saleID := store.addSale(i64(1), dec("20.00"))
	detailID := store.addDetail(saleID, 7, 2, dec("10.00"))
	svc := newSalesService(store)

	require.NoError(t, svc.DeleteSale(context.Background(), saleID))

	// header is gone, but the line item and its inventory effect remain
	_, ok := store.state.sales[saleID]
	assert.False(t, ok)
	_, ok = store.state.details[detailID]
	assert.True(t, ok)
	assert.Equal(t, 48, store.stock(7))
}
