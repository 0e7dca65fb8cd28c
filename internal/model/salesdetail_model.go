package model

import "github.com/shopspring/decimal"

// SalesDetail is one line item of a sale. PriceEach is captured when the line
// is inserted and is not refreshed from the current catalog price.
type SalesDetail struct {
	SalesDetailID int64           `json:"salesDetailID"`
	SalesID       int64           `json:"salesID"`
	ItemID        int64           `json:"itemID"`
	ItemQuantity  int             `json:"itemQuantity"`
	PriceEach     decimal.Decimal `json:"priceEach"`
}

// SaleLineView is the listing shape for a sale's line items, joined with the
// merchandise catalog.
type SaleLineView struct {
	SalesDetailID int64           `json:"salesDetailID"`
	ItemName      string          `json:"itemName"`
	ISBN          *string         `json:"ISBN"`
	ItemQuantity  int             `json:"itemQuantity"`
	PriceEach     decimal.Decimal `json:"priceEach"`
	LineTotal     decimal.Decimal `json:"lineTotal"`
	ItemID        int64           `json:"itemID"`
}
