// Package addresses implements the address vertical.
package addresses

// Address represents a postal address.
type Address struct {
	ID             int64    `json:"id"`
	Street         string   `json:"street"`
	City           string   `json:"city"`
	State          *string  `json:"state"`
	Country        string   `json:"country"`
	PostalCode     *string  `json:"postalCode"`
	AddressType    *string  `json:"addressType"`
	AdditionalInfo *string  `json:"additionalInfo"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	IsPrimary      bool     `json:"isPrimary"`
	Active         bool     `json:"active"`
}
