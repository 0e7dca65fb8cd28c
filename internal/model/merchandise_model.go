package model

import "github.com/shopspring/decimal"

// Merchandise is one sellable item. ItemQuantity is deliberately a plain int
// with no lower bound: sales may drive stock negative and the ledger does not
// stop them.
type Merchandise struct {
	ItemID       int64           `json:"itemID"`
	ItemName     string          `json:"itemName"`
	ISBN         *string         `json:"ISBN"`
	Price        decimal.Decimal `json:"price"`
	ItemQuantity int             `json:"quantityAvailable"`
	SupplierID   *int64          `json:"supplierID"`
	SupplierName *string         `json:"supplierName,omitempty"`
}
