package model

type Customer struct {
	CustomerID   int64   `json:"customerID"`
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	CustEmail    *string `json:"custEmail"`
	AddressLine1 *string `json:"addressLine1"`
	AddressLine2 *string `json:"addressLine2"`
	CustZip      *string `json:"custZip"`
}
