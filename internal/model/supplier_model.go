package model

type Supplier struct {
	SupplierID    int64   `json:"supplierID"`
	CompanyName   string  `json:"companyName"`
	ContactName   *string `json:"contactName"`
	SupplierEmail *string `json:"supplierEmail"`
	Phone         *string `json:"phone"`
}
