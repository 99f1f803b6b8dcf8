package groups

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/atlas-backoffice/atlas-backoffice/internal/platform/db"
	"github.com/atlas-backoffice/atlas-backoffice/internal/shared"
)

const groupColumns = `id, name, description, group_type, owner_name, owner_email, max_members, current_member_count, is_public, requires_approval, tags, created_date, last_activity_date, active`

// SQLRepository is the pgx-backed Repository implementation.
type SQLRepository struct {
	pool *pgxpool.Pool
}

// NewSQLRepository constructs SQLRepository.
func NewSQLRepository(pool *pgxpool.Pool) *SQLRepository {
	return &SQLRepository{pool: pool}
}

func scanGroup(row pgx.Row) (Group, error) {
	var g Group
	err := row.Scan(&g.ID, &g.Name, &g.Description, &g.GroupType, &g.OwnerName, &g.OwnerEmail,
		&g.MaxMembers, &g.CurrentMemberCount, &g.IsPublic, &g.RequiresApproval, &g.Tags,
		&g.CreatedDate, &g.LastActivityDate, &g.Active)
	return g, err
}

func (r *SQLRepository) List(ctx context.Context, f Filter) ([]Group, error) {
	var conditions []string
	var args []any
	add := func(cond string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if f.NameLike != nil {
		add(`name ILIKE $%d`, "%"+*f.NameLike+"%")
	}
	if f.DescriptionLike != nil {
		add(`description ILIKE $%d`, "%"+*f.DescriptionLike+"%")
	}
	if f.GroupType != nil {
		add(`group_type = $%d`, *f.GroupType)
	}
	if f.GroupTypeLike != nil {
		add(`group_type ILIKE $%d`, "%"+*f.GroupTypeLike+"%")
	}
	if f.OwnerName != nil {
		add(`owner_name = $%d`, *f.OwnerName)
	}
	if f.OwnerLike != nil {
		add(`owner_name ILIKE $%d`, "%"+*f.OwnerLike+"%")
	}
	if f.OwnerEmail != nil {
		add(`owner_email = $%d`, *f.OwnerEmail)
	}
	if f.Active != nil {
		add(`active = $%d`, *f.Active)
	}
	if f.IsPublic != nil {
		add(`is_public = $%d`, *f.IsPublic)
	}
	if f.RequiresApproval != nil {
		add(`requires_approval = $%d`, *f.RequiresApproval)
	}
	if f.MinMembers != nil {
		add(`current_member_count > $%d`, *f.MinMembers)
	}
	if f.MaxMembersBelow != nil {
		add(`current_member_count < $%d`, *f.MaxMembersBelow)
	}
	if f.HasCapacity {
		conditions = append(conditions, `max_members IS NOT NULL AND current_member_count < max_members`)
	}
	if f.MinMaxMembers != nil {
		add(`max_members > $%d`, *f.MinMaxMembers)
	}
	if f.CreatedAfter != nil {
		add(`created_date > $%d`, *f.CreatedAfter)
	}
	if f.ActiveAfter != nil {
		add(`last_activity_date > $%d`, *f.ActiveAfter)
	}
	if f.Tag != nil {
		add(`tags ILIKE $%d`, "%"+*f.Tag+"%")
	}

	query := `SELECT ` + groupColumns + ` FROM groups`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, ` AND `)
	}
	switch f.OrderBy {
	case OrderByName:
		query += ` ORDER BY name`
	case OrderByCreated:
		query += ` ORDER BY created_date DESC`
	case OrderByMemberCount:
		query += ` ORDER BY current_member_count DESC`
	case OrderByActivity:
		query += ` ORDER BY last_activity_date DESC`
	default:
		query += ` ORDER BY id`
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("groups: list: %w", err)
	}
	defer rows.Close()

	var out []Group
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("groups: scan: %w", err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *SQLRepository) Get(ctx context.Context, id int64) (Group, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+groupColumns+` FROM groups WHERE id = $1`, id)
	g, err := scanGroup(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Group{}, shared.NotFoundf("Group not found with id: %d", id)
	}
	if err != nil {
		return Group{}, fmt.Errorf("groups: get: %w", err)
	}
	return g, nil
}

func (r *SQLRepository) GetByName(ctx context.Context, name string) (Group, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+groupColumns+` FROM groups WHERE name = $1`, name)
	g, err := scanGroup(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Group{}, shared.NotFoundf("Group not found with name: %s", name)
	}
	if err != nil {
		return Group{}, fmt.Errorf("groups: get by name: %w", err)
	}
	return g, nil
}

func (r *SQLRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM groups WHERE name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("groups: exists by name: %w", err)
	}
	return exists, nil
}

func (r *SQLRepository) Create(ctx context.Context, g Group) (Group, error) {
	err := r.pool.QueryRow(ctx, `INSERT INTO groups (name, description, group_type, owner_name, owner_email, max_members, current_member_count, is_public, requires_approval, tags, created_date, last_activity_date, active)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13) RETURNING id`,
		g.Name, g.Description, g.GroupType, g.OwnerName, g.OwnerEmail, g.MaxMembers,
		g.CurrentMemberCount, g.IsPublic, g.RequiresApproval, g.Tags,
		g.CreatedDate, g.LastActivityDate, g.Active).Scan(&g.ID)
	if db.IsUniqueViolation(err) {
		return Group{}, shared.Conflictf("Group name already exists: %s", g.Name)
	}
	if err != nil {
		return Group{}, fmt.Errorf("groups: create: %w", err)
	}
	return g, nil
}

// execer is satisfied by both *pgxpool.Pool and pgx.Tx, so the update
// statement serves the plain Update path and the locked Patch path.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func updateGroup(ctx context.Context, ex execer, g Group) (Group, error) {
	tag, err := ex.Exec(ctx, `UPDATE groups SET name = $1, description = $2, group_type = $3, owner_name = $4, owner_email = $5, max_members = $6, current_member_count = $7, is_public = $8, requires_approval = $9, tags = $10, last_activity_date = $11, active = $12 WHERE id = $13`,
		g.Name, g.Description, g.GroupType, g.OwnerName, g.OwnerEmail, g.MaxMembers,
		g.CurrentMemberCount, g.IsPublic, g.RequiresApproval, g.Tags,
		g.LastActivityDate, g.Active, g.ID)
	if db.IsUniqueViolation(err) {
		return Group{}, shared.Conflictf("Group name already exists: %s", g.Name)
	}
	if err != nil {
		return Group{}, fmt.Errorf("groups: update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return Group{}, shared.NotFoundf("Group not found with id: %d", g.ID)
	}
	return g, nil
}

func (r *SQLRepository) Update(ctx context.Context, g Group) (Group, error) {
	return updateGroup(ctx, r.pool, g)
}

// Patch re-reads the row under a FOR UPDATE lock inside a transaction before
// applying mutate, so increments from concurrent mutators serialize instead
// of overwriting each other.
func (r *SQLRepository) Patch(ctx context.Context, id int64, mutate func(*Group) error) (Group, error) {
	var out Group
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `SELECT `+groupColumns+` FROM groups WHERE id = $1 FOR UPDATE`, id)
		g, err := scanGroup(row)
		if errors.Is(err, pgx.ErrNoRows) {
			return shared.NotFoundf("Group not found with id: %d", id)
		}
		if err != nil {
			return fmt.Errorf("groups: patch: %w", err)
		}
		if err := mutate(&g); err != nil {
			return err
		}
		out, err = updateGroup(ctx, tx, g)
		return err
	})
	if err != nil {
		return Group{}, err
	}
	return out, nil
}

func (r *SQLRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("groups: delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.NotFoundf("Group not found with id: %d", id)
	}
	return nil
}
