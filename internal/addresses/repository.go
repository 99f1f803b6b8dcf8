package addresses

import "context"

// Order selects the list ordering.
type Order string

// Supported list orderings.
const (
	OrderByID          Order = ""
	OrderByCity        Order = "city"
	OrderByCountryCity Order = "country-city"
)

// Filter holds the optional list criteria. A nil field is ignored.
type Filter struct {
	StreetLike         *string
	City               *string
	CityLike           *string
	State              *string
	Country            *string
	CountryLike        *string
	PostalCode         *string
	PostalCodePattern  *string
	AddressType        *string
	AdditionalInfoLike *string
	Active             *bool
	IsPrimary          *bool
	MinLat, MaxLat     *float64
	MinLng, MaxLng     *float64
	OrderBy            Order
}

// Repository persists addresses.
type Repository interface {
	List(ctx context.Context, f Filter) ([]Address, error)
	Get(ctx context.Context, id int64) (Address, error)
	ExistsByStreetCityPostal(ctx context.Context, street, city string, postalCode *string) (bool, error)
	Create(ctx context.Context, a Address) (Address, error)
	Update(ctx context.Context, a Address) (Address, error)
	Delete(ctx context.Context, id int64) error
}
