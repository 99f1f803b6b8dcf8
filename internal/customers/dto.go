package customers

// CustomerRequest is the payload for create and full update.
type CustomerRequest struct {
	CompanyName string   `json:"companyName" validate:"required,min=2,max=100"`
	ContactName string   `json:"contactName" validate:"required,min=2,max=50"`
	Email       string   `json:"email" validate:"required,email"`
	Phone       *string  `json:"phone" validate:"omitempty,max=20"`
	Address     *string  `json:"address" validate:"omitempty,max=200"`
	City        *string  `json:"city" validate:"omitempty,max=100"`
	Country     *string  `json:"country" validate:"omitempty,max=100"`
	CreditLimit *float64 `json:"creditLimit" validate:"omitempty,gte=0"`
	Active      *bool    `json:"active"`
}

func (r CustomerRequest) toModel() Customer {
	c := Customer{
		CompanyName: r.CompanyName,
		ContactName: r.ContactName,
		Email:       r.Email,
		Phone:       r.Phone,
		Address:     r.Address,
		City:        r.City,
		Country:     r.Country,
		CreditLimit: r.CreditLimit,
		Active:      true,
	}
	if r.Active != nil {
		c.Active = *r.Active
	}
	return c
}
