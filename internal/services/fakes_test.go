package services

import (
	"context"
	"sort"

	"github.com/emurillo541/collegebookstore/internal/apperr"
	"github.com/emurillo541/collegebookstore/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// memStore is an in-memory stand-in for the pgx repositories. Begin takes a
// snapshot of the whole state; Rollback restores it, Commit discards it, so
// the services' all-or-nothing behavior is observable without a database.
// The memSales/memLines/memReorders views share its state and satisfy the
// store interfaces the services consume.
type memStore struct {
	state *memState
}

type memItem struct {
	name string
	qty  int
}

type memState struct {
	items    map[int64]*memItem
	sales    map[int64]model.Sale
	details  map[int64]model.SalesDetail
	reorders map[int64]model.Reorder
	nextID   int64
}

func newMemStore() *memStore {
	return &memStore{state: &memState{
		items:    map[int64]*memItem{},
		sales:    map[int64]model.Sale{},
		details:  map[int64]model.SalesDetail{},
		reorders: map[int64]model.Reorder{},
		nextID:   100,
	}}
}

func (s *memState) clone() *memState {
	c := &memState{
		items:    make(map[int64]*memItem, len(s.items)),
		sales:    make(map[int64]model.Sale, len(s.sales)),
		details:  make(map[int64]model.SalesDetail, len(s.details)),
		reorders: make(map[int64]model.Reorder, len(s.reorders)),
		nextID:   s.nextID,
	}
	for id, it := range s.items {
		cp := *it
		c.items[id] = &cp
	}
	for id, v := range s.sales {
		c.sales[id] = v
	}
	for id, v := range s.details {
		c.details[id] = v
	}
	for id, v := range s.reorders {
		c.reorders[id] = v
	}
	return c
}

func (s *memState) next() int64 {
	s.nextID++
	return s.nextID
}

// seeding and inspection helpers

func (s *memStore) addItem(id int64, name string, qty int) {
	s.state.items[id] = &memItem{name: name, qty: qty}
}

func (s *memStore) stock(id int64) int {
	return s.state.items[id].qty
}

func (s *memStore) addSale(customerID *int64, total decimal.Decimal) int64 {
	id := s.state.next()
	s.state.sales[id] = model.Sale{SalesID: id, CustomerID: customerID, TotalAmount: total}
	return id
}

func (s *memStore) addDetail(salesID, itemID int64, qty int, priceEach decimal.Decimal) int64 {
	id := s.state.next()
	s.state.details[id] = model.SalesDetail{
		SalesDetailID: id,
		SalesID:       salesID,
		ItemID:        itemID,
		ItemQuantity:  qty,
		PriceEach:     priceEach,
	}
	return id
}

func (s *memStore) addReorder(itemID int64, qty int, status *string) int64 {
	id := s.state.next()
	s.state.reorders[id] = model.Reorder{ReorderID: id, ItemID: itemID, Quantity: qty, Status: status}
	return id
}

// memTx satisfies pgx.Tx by embedding the interface; only Commit and Rollback
// are ever called on it, the fake stores ignore the tx argument otherwise.
type memTx struct {
	pgx.Tx
	store *memStore
	snap  *memState
	done  bool
}

func (s *memStore) Begin(ctx context.Context) (pgx.Tx, error) {
	return &memTx{store: s, snap: s.state.clone()}, nil
}

func (t *memTx) Commit(ctx context.Context) error {
	t.done = true
	return nil
}

func (t *memTx) Rollback(ctx context.Context) error {
	if !t.done {
		t.store.state = t.snap
		t.done = true
	}
	return nil
}

// InventoryLedger

func (s *memStore) AdjustQuantityTx(ctx context.Context, tx pgx.Tx, itemID int64, delta int) error {
	it, ok := s.state.items[itemID]
	if !ok {
		return apperr.NotFound("merchandise item")
	}
	it.qty += delta
	return nil
}

// memSales implements SalesHeaderStore.

type memSales struct{ *memStore }

func (s memSales) List(ctx context.Context) ([]model.Sale, error) {
	out := make([]model.Sale, 0, len(s.state.sales))
	for _, v := range s.state.sales {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SalesID > out[j].SalesID })
	return out, nil
}

func (s memSales) InsertTx(ctx context.Context, tx pgx.Tx, customerID, employeeID *int64, total decimal.Decimal) (int64, error) {
	id := s.state.next()
	s.state.sales[id] = model.Sale{SalesID: id, CustomerID: customerID, EmployeeID: employeeID, TotalAmount: total}
	return id, nil
}

func (s memSales) RecalcTotalTx(ctx context.Context, tx pgx.Tx, salesID int64) error {
	sum := decimal.Zero
	for _, d := range s.state.details {
		if d.SalesID == salesID {
			sum = sum.Add(d.PriceEach.Mul(decimal.NewFromInt(int64(d.ItemQuantity))))
		}
	}
	if sale, ok := s.state.sales[salesID]; ok {
		sale.TotalAmount = sum
		s.state.sales[salesID] = sale
	}
	return nil
}

func (s memSales) UpdateHeader(ctx context.Context, salesID, customerID int64, employeeID *int64) (int64, error) {
	sale, ok := s.state.sales[salesID]
	if !ok {
		return 0, nil
	}
	sale.CustomerID = &customerID
	sale.EmployeeID = employeeID
	s.state.sales[salesID] = sale
	return 1, nil
}

func (s memSales) Delete(ctx context.Context, salesID int64) error {
	delete(s.state.sales, salesID)
	return nil
}

// memLines implements SaleLineStore.

type memLines struct{ *memStore }

func (s memLines) ListBySale(ctx context.Context, salesID int64) ([]model.SaleLineView, error) {
	out := []model.SaleLineView{}
	for _, d := range s.state.details {
		if d.SalesID != salesID {
			continue
		}
		name := ""
		if it, ok := s.state.items[d.ItemID]; ok {
			name = it.name
		}
		out = append(out, model.SaleLineView{
			SalesDetailID: d.SalesDetailID,
			ItemName:      name,
			ItemQuantity:  d.ItemQuantity,
			PriceEach:     d.PriceEach,
			LineTotal:     d.PriceEach.Mul(decimal.NewFromInt(int64(d.ItemQuantity))),
			ItemID:        d.ItemID,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SalesDetailID < out[j].SalesDetailID })
	return out, nil
}

func (s memLines) GetTx(ctx context.Context, tx pgx.Tx, salesDetailID int64) (*model.SalesDetail, error) {
	d, ok := s.state.details[salesDetailID]
	if !ok {
		return nil, apperr.NotFound("sales detail")
	}
	return &d, nil
}

func (s memLines) InsertTx(ctx context.Context, tx pgx.Tx, salesID, itemID int64, quantity int, priceEach decimal.Decimal) (int64, error) {
	id := s.state.next()
	s.state.details[id] = model.SalesDetail{
		SalesDetailID: id,
		SalesID:       salesID,
		ItemID:        itemID,
		ItemQuantity:  quantity,
		PriceEach:     priceEach,
	}
	return id, nil
}

func (s memLines) UpdateTx(ctx context.Context, tx pgx.Tx, salesDetailID int64, quantity int, priceEach decimal.Decimal) error {
	d, ok := s.state.details[salesDetailID]
	if !ok {
		return apperr.NotFound("sales detail")
	}
	d.ItemQuantity = quantity
	d.PriceEach = priceEach
	s.state.details[salesDetailID] = d
	return nil
}

func (s memLines) DeleteTx(ctx context.Context, tx pgx.Tx, salesDetailID int64) error {
	delete(s.state.details, salesDetailID)
	return nil
}

// memReorders implements ReorderStore.

type memReorders struct{ *memStore }

func (s memReorders) List(ctx context.Context) ([]model.ReorderView, error) {
	out := []model.ReorderView{}
	for _, ro := range s.state.reorders {
		name := ""
		if it, ok := s.state.items[ro.ItemID]; ok {
			name = it.name
		}
		out = append(out, model.ReorderView{
			ReorderID: ro.ReorderID,
			Quantity:  ro.Quantity,
			Status:    ro.Status,
			ItemID:    ro.ItemID,
			ItemName:  name,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ReorderID > out[j].ReorderID })
	return out, nil
}

func (s memReorders) Insert(ctx context.Context, supplierID *int64, itemID int64, quantity int, status string) (int64, error) {
	id := s.state.next()
	st := status
	s.state.reorders[id] = model.Reorder{
		ReorderID:  id,
		SupplierID: supplierID,
		ItemID:     itemID,
		Quantity:   quantity,
		Status:     &st,
	}
	return id, nil
}

func (s memReorders) Get(ctx context.Context, reorderID int64) (*model.Reorder, error) {
	ro, ok := s.state.reorders[reorderID]
	if !ok {
		return nil, apperr.NotFound("reorder")
	}
	return &ro, nil
}

func (s memReorders) GetTx(ctx context.Context, tx pgx.Tx, reorderID int64) (*model.Reorder, error) {
	return s.Get(ctx, reorderID)
}

func (s memReorders) SetStatusTx(ctx context.Context, tx pgx.Tx, reorderID int64, status string) error {
	return s.SetStatus(ctx, reorderID, status)
}

func (s memReorders) SetStatus(ctx context.Context, reorderID int64, status string) error {
	ro, ok := s.state.reorders[reorderID]
	if !ok {
		return apperr.NotFound("reorder")
	}
	st := status
	ro.Status = &st
	s.state.reorders[reorderID] = ro
	return nil
}

func (s memReorders) Delete(ctx context.Context, reorderID int64) error {
	delete(s.state.reorders, reorderID)
	return nil
}
