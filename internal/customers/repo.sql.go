package customers

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

const customerColumns = `id, company_name, contact_name, email, phone, address, city, country, credit_limit, active`

// SQLRepository is the pgx-backed Repository implementation.
type SQLRepository struct {
	pool *pgxpool.Pool
}

// NewSQLRepository constructs SQLRepository.
func NewSQLRepository(pool *pgxpool.Pool) *SQLRepository {
	return &SQLRepository{pool: pool}
}

func scanCustomer(row pgx.Row) (Customer, error) {
	var c Customer
	err := row.Scan(&c.ID, &c.CompanyName, &c.ContactName, &c.Email, &c.Phone,
		&c.Address, &c.City, &c.Country, &c.CreditLimit, &c.Active)
	return c, err
}

func (r *SQLRepository) List(ctx context.Context, f Filter) ([]Customer, error) {
	var conditions []string
	var args []any
	add := func(cond string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if f.CompanyLike != nil {
		add(`company_name ILIKE $%d`, "%"+*f.CompanyLike+"%")
	}
	if f.ContactLike != nil {
		add(`contact_name ILIKE $%d`, "%"+*f.ContactLike+"%")
	}
	if f.City != nil {
		add(`city = $%d`, *f.City)
	}
	if f.Country != nil {
		add(`country = $%d`, *f.Country)
	}
	if f.Phone != nil {
		add(`phone = $%d`, *f.Phone)
	}
	if f.Active != nil {
		add(`active = $%d`, *f.Active)
	}
	if f.MinCreditLimit != nil {
		add(`credit_limit > $%d`, *f.MinCreditLimit)
	}

	query := `SELECT ` + customerColumns + ` FROM customers`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, ` AND `)
	}
	query += ` ORDER BY id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("customers: list: %w", err)
	}
	defer rows.Close()

	var out []Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("customers: scan: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *SQLRepository) Get(ctx context.Context, id int64) (Customer, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
	c, err := scanCustomer(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Customer{}, shared.NotFoundf("Customer not found with id: %d", id)
	}
	if err != nil {
		return Customer{}, fmt.Errorf("customers: get: %w", err)
	}
	return c, nil
}

func (r *SQLRepository) GetByEmail(ctx context.Context, email string) (Customer, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE email = $1`, email)
	c, err := scanCustomer(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Customer{}, shared.NotFoundf("Customer not found with email: %s", email)
	}
	if err != nil {
		return Customer{}, fmt.Errorf("customers: get by email: %w", err)
	}
	return c, nil
}

func (r *SQLRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM customers WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("customers: exists by email: %w", err)
	}
	return exists, nil
}

func (r *SQLRepository) Create(ctx context.Context, c Customer) (Customer, error) {
	err := r.pool.QueryRow(ctx, `INSERT INTO customers (company_name, contact_name, email, phone, address, city, country, credit_limit, active)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9) RETURNING id`,
		c.CompanyName, c.ContactName, c.Email, c.Phone, c.Address, c.City, c.Country, c.CreditLimit, c.Active).Scan(&c.ID)
	if db.IsUniqueViolation(err) {
		return Customer{}, shared.Conflictf("Email already exists: %s", c.Email)
	}
	if err != nil {
		return Customer{}, fmt.Errorf("customers: create: %w", err)
	}
	return c, nil
}

func (r *SQLRepository) Update(ctx context.Context, c Customer) (Customer, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE customers SET company_name = $1, contact_name = $2, email = $3, phone = $4, address = $5, city = $6, country = $7, credit_limit = $8, active = $9 WHERE id = $10`,
		c.CompanyName, c.ContactName, c.Email, c.Phone, c.Address, c.City, c.Country, c.CreditLimit, c.Active, c.ID)
	if db.IsUniqueViolation(err) {
		return Customer{}, shared.Conflictf("Email already exists: %s", c.Email)
	}
	if err != nil {
		return Customer{}, fmt.Errorf("customers: update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return Customer{}, shared.NotFoundf("Customer not found with id: %d", c.ID)
	}
	return c, nil
}

func (r *SQLRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("customers: delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.NotFoundf("Customer not found with id: %d", id)
	}
	return nil
}
