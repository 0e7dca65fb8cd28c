package model

import "time"

// Reorder statuses. Legacy rows may carry NULL or "" — those count as
// pending for cancellation eligibility but are never written by this code.
const (
	ReorderStatusPending   = "pending"
	ReorderStatusOrdered   = "ordered"
	ReorderStatusReceived  = "received"
	ReorderStatusCancelled = "cancelled"
)

type Reorder struct {
	ReorderID   int64      `json:"reorderID"`
	SupplierID  *int64     `json:"supplierID"`
	ItemID      int64      `json:"itemID"`
	Quantity    int        `json:"quantity"`
	Status      *string    `json:"status"`
	ReorderDate *time.Time `json:"reorderDate,omitempty"`
}

// ReorderView is the listing shape, joined with merchandise and supplier.
type ReorderView struct {
	ReorderID   int64   `json:"reorderID"`
	ReorderDate string  `json:"reorderDate"`
	Quantity    int     `json:"quantity"`
	Status      *string `json:"status"`
	ItemID      int64   `json:"itemID"`
	ItemName    string  `json:"itemName"`
	SupplierID  *int64  `json:"supplierID"`
	Supplier    *string `json:"supplier"`
}
