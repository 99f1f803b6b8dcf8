// Package customers implements the customer vertical.
package customers

// Customer represents a business customer account.
type Customer struct {
	ID          int64    `json:"id"`
	CompanyName string   `json:"companyName"`
	ContactName string   `json:"contactName"`
	Email       string   `json:"email"`
	Phone       *string  `json:"phone"`
	Address     *string  `json:"address"`
	City        *string  `json:"city"`
	Country     *string  `json:"country"`
	CreditLimit *float64 `json:"creditLimit"`
	Active      bool     `json:"active"`
}
