package departments

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

const departmentColumns = `id, name, description, manager_name, manager_email, location, budget, employee_count, active`

// SQLRepository is the pgx-backed Repository implementation.
type SQLRepository struct {
	pool *pgxpool.Pool
}

// NewSQLRepository constructs SQLRepository.
func NewSQLRepository(pool *pgxpool.Pool) *SQLRepository {
	return &SQLRepository{pool: pool}
}

func scanDepartment(row pgx.Row) (Department, error) {
	var d Department
	err := row.Scan(&d.ID, &d.Name, &d.Description, &d.ManagerName, &d.ManagerEmail,
		&d.Location, &d.Budget, &d.EmployeeCount, &d.Active)
	return d, err
}

func (r *SQLRepository) List(ctx context.Context, f Filter) ([]Department, error) {
	var conditions []string
	var args []any
	add := func(cond string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if f.NameLike != nil {
		add(`name ILIKE $%d`, "%"+*f.NameLike+"%")
	}
	if f.ManagerLike != nil {
		add(`manager_name ILIKE $%d`, "%"+*f.ManagerLike+"%")
	}
	if f.DescriptionLike != nil {
		add(`description ILIKE $%d`, "%"+*f.DescriptionLike+"%")
	}
	if f.Location != nil {
		add(`location = $%d`, *f.Location)
	}
	if f.ManagerEmail != nil {
		add(`manager_email = $%d`, *f.ManagerEmail)
	}
	if f.Active != nil {
		add(`active = $%d`, *f.Active)
	}
	if f.MinBudget != nil {
		add(`budget > $%d`, *f.MinBudget)
	}
	if f.MinEmployees != nil {
		add(`employee_count > $%d`, *f.MinEmployees)
	}

	query := `SELECT ` + departmentColumns + ` FROM departments`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, ` AND `)
	}
	query += ` ORDER BY id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("departments: list: %w", err)
	}
	defer rows.Close()

	var out []Department
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, fmt.Errorf("departments: scan: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *SQLRepository) Get(ctx context.Context, id int64) (Department, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+departmentColumns+` FROM departments WHERE id = $1`, id)
	d, err := scanDepartment(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Department{}, shared.NotFoundf("Department not found with id: %d", id)
	}
	if err != nil {
		return Department{}, fmt.Errorf("departments: get: %w", err)
	}
	return d, nil
}

func (r *SQLRepository) GetByName(ctx context.Context, name string) (Department, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+departmentColumns+` FROM departments WHERE name = $1`, name)
	d, err := scanDepartment(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Department{}, shared.NotFoundf("Department not found with name: %s", name)
	}
	if err != nil {
		return Department{}, fmt.Errorf("departments: get by name: %w", err)
	}
	return d, nil
}

func (r *SQLRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM departments WHERE name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("departments: exists by name: %w", err)
	}
	return exists, nil
}

func (r *SQLRepository) Create(ctx context.Context, d Department) (Department, error) {
	err := r.pool.QueryRow(ctx, `INSERT INTO departments (name, description, manager_name, manager_email, location, budget, employee_count, active)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8) RETURNING id`,
		d.Name, d.Description, d.ManagerName, d.ManagerEmail, d.Location, d.Budget, d.EmployeeCount, d.Active).Scan(&d.ID)
	if db.IsUniqueViolation(err) {
		return Department{}, shared.Conflictf("Department name already exists: %s", d.Name)
	}
	if err != nil {
		return Department{}, fmt.Errorf("departments: create: %w", err)
	}
	return d, nil
}

func (r *SQLRepository) Update(ctx context.Context, d Department) (Department, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE departments SET name = $1, description = $2, manager_name = $3, manager_email = $4, location = $5, budget = $6, employee_count = $7, active = $8 WHERE id = $9`,
		d.Name, d.Description, d.ManagerName, d.ManagerEmail, d.Location, d.Budget, d.EmployeeCount, d.Active, d.ID)
	if db.IsUniqueViolation(err) {
		return Department{}, shared.Conflictf("Department name already exists: %s", d.Name)
	}
	if err != nil {
		return Department{}, fmt.Errorf("departments: update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return Department{}, shared.NotFoundf("Department not found with id: %d", d.ID)
	}
	return d, nil
}

func (r *SQLRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("departments: delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.NotFoundf("Department not found with id: %d", id)
	}
	return nil
}
