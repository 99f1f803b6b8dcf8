package addresses

// AddressRequest is the payload for create and full update.
type AddressRequest struct {
	Street         string   `json:"street" validate:"required,min=5,max=200"`
	City           string   `json:"city" validate:"required,min=2,max=100"`
	State          *string  `json:"state" validate:"omitempty,max=100"`
	Country        string   `json:"country" validate:"required,min=2,max=100"`
	PostalCode     *string  `json:"postalCode" validate:"omitempty,postalcode"`
	AddressType    *string  `json:"addressType" validate:"omitempty,max=50"`
	AdditionalInfo *string  `json:"additionalInfo" validate:"omitempty,max=200"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	IsPrimary      *bool    `json:"isPrimary"`
	Active         *bool    `json:"active"`
}

// CoordinatesRequest carries a latitude/longitude pair.
type CoordinatesRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (r AddressRequest) toModel() Address {
	a := Address{
		Street:         r.Street,
		City:           r.City,
		State:          r.State,
		Country:        r.Country,
		PostalCode:     r.PostalCode,
		AddressType:    r.AddressType,
		AdditionalInfo: r.AdditionalInfo,
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		Active:         true,
	}
	if r.IsPrimary != nil {
		a.IsPrimary = *r.IsPrimary
	}
	if r.Active != nil {
		a.Active = *r.Active
	}
	return a
}
