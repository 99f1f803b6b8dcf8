package addresses

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/atlas-backoffice/atlas-backoffice/internal/platform/db"
	"github.com/atlas-backoffice/atlas-backoffice/internal/shared"
)

const addressColumns = `id, street, city, state, country, postal_code, address_type, additional_info, latitude, longitude, is_primary, active`

// SQLRepository is the pgx-backed Repository implementation.
type SQLRepository struct {
	pool *pgxpool.Pool
}

// NewSQLRepository constructs SQLRepository.
func NewSQLRepository(pool *pgxpool.Pool) *SQLRepository {
	return &SQLRepository{pool: pool}
}

func scanAddress(row pgx.Row) (Address, error) {
	var a Address
	err := row.Scan(&a.ID, &a.Street, &a.City, &a.State, &a.Country, &a.PostalCode,
		&a.AddressType, &a.AdditionalInfo, &a.Latitude, &a.Longitude, &a.IsPrimary, &a.Active)
	return a, err
}

func (r *SQLRepository) List(ctx context.Context, f Filter) ([]Address, error) {
	var conditions []string
	var args []any
	add := func(cond string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if f.StreetLike != nil {
		add(`street ILIKE $%d`, "%"+*f.StreetLike+"%")
	}
	if f.City != nil {
		add(`city = $%d`, *f.City)
	}
	if f.CityLike != nil {
		add(`city ILIKE $%d`, "%"+*f.CityLike+"%")
	}
	if f.State != nil {
		add(`state = $%d`, *f.State)
	}
	if f.Country != nil {
		add(`country = $%d`, *f.Country)
	}
	if f.CountryLike != nil {
		add(`country ILIKE $%d`, "%"+*f.CountryLike+"%")
	}
	if f.PostalCode != nil {
		add(`postal_code = $%d`, *f.PostalCode)
	}
	if f.PostalCodePattern != nil {
		add(`postal_code LIKE $%d`, *f.PostalCodePattern)
	}
	if f.AddressType != nil {
		add(`address_type = $%d`, *f.AddressType)
	}
	if f.AdditionalInfoLike != nil {
		add(`additional_info ILIKE $%d`, "%"+*f.AdditionalInfoLike+"%")
	}
	if f.Active != nil {
		add(`active = $%d`, *f.Active)
	}
	if f.IsPrimary != nil {
		add(`is_primary = $%d`, *f.IsPrimary)
	}
	if f.MinLat != nil {
		add(`latitude >= $%d`, *f.MinLat)
	}
	if f.MaxLat != nil {
		add(`latitude <= $%d`, *f.MaxLat)
	}
	if f.MinLng != nil {
		add(`longitude >= $%d`, *f.MinLng)
	}
	if f.MaxLng != nil {
		add(`longitude <= $%d`, *f.MaxLng)
	}

	query := `SELECT ` + addressColumns + ` FROM addresses`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, ` AND `)
	}
	switch f.OrderBy {
	case OrderByCity:
		query += ` ORDER BY city`
	case OrderByCountryCity:
		query += ` ORDER BY country, city`
	default:
		query += ` ORDER BY id`
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("addresses: list: %w", err)
	}
	defer rows.Close()

	var out []Address
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, fmt.Errorf("addresses: scan: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *SQLRepository) Get(ctx context.Context, id int64) (Address, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+addressColumns+` FROM addresses WHERE id = $1`, id)
	a, err := scanAddress(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Address{}, shared.NotFoundf("Address not found with id: %d", id)
	}
	if err != nil {
		return Address{}, fmt.Errorf("addresses: get: %w", err)
	}
	return a, nil
}

func (r *SQLRepository) ExistsByStreetCityPostal(ctx context.Context, street, city string, postalCode *string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM addresses WHERE street = $1 AND city = $2 AND postal_code IS NOT DISTINCT FROM $3)`,
		street, city, postalCode).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("addresses: exists: %w", err)
	}
	return exists, nil
}

func (r *SQLRepository) Create(ctx context.Context, a Address) (Address, error) {
	err := r.pool.QueryRow(ctx, `INSERT INTO addresses (street, city, state, country, postal_code, address_type, additional_info, latitude, longitude, is_primary, active)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11) RETURNING id`,
		a.Street, a.City, a.State, a.Country, a.PostalCode, a.AddressType, a.AdditionalInfo,
		a.Latitude, a.Longitude, a.IsPrimary, a.Active).Scan(&a.ID)
	if db.IsUniqueViolation(err) {
		return Address{}, shared.Conflictf("Address already exists with same street, city, and postal code")
	}
	if err != nil {
		return Address{}, fmt.Errorf("addresses: create: %w", err)
	}
	return a, nil
}

func (r *SQLRepository) Update(ctx context.Context, a Address) (Address, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE addresses SET street = $1, city = $2, state = $3, country = $4, postal_code = $5, address_type = $6, additional_info = $7, latitude = $8, longitude = $9, is_primary = $10, active = $11 WHERE id = $12`,
		a.Street, a.City, a.State, a.Country, a.PostalCode, a.AddressType, a.AdditionalInfo,
		a.Latitude, a.Longitude, a.IsPrimary, a.Active, a.ID)
	if db.IsUniqueViolation(err) {
		return Address{}, shared.Conflictf("Address already exists with same street, city, and postal code")
	}
	if err != nil {
		return Address{}, fmt.Errorf("addresses: update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return Address{}, shared.NotFoundf("Address not found with id: %d", a.ID)
	}
	return a, nil
}

func (r *SQLRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM addresses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("addresses: delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.NotFoundf("Address not found with id: %d", id)
	}
	return nil
}
