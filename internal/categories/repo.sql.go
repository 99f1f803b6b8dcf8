package categories

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

const categoryColumns = `id, name, description, category_code, parent_category_id, display_order, image_url, icon, color, product_count, is_featured, is_visible, meta_title, meta_description, tags, created_date, last_modified_date, active`

// SQLRepository is the pgx-backed Repository implementation.
type SQLRepository struct {
	pool *pgxpool.Pool
}

// NewSQLRepository constructs SQLRepository.
func NewSQLRepository(pool *pgxpool.Pool) *SQLRepository {
	return &SQLRepository{pool: pool}
}

func scanCategory(row pgx.Row) (Category, error) {
	var c Category
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.CategoryCode, &c.ParentCategoryID,
		&c.DisplayOrder, &c.ImageURL, &c.Icon, &c.Color, &c.ProductCount,
		&c.IsFeatured, &c.IsVisible, &c.MetaTitle, &c.MetaDescription, &c.Tags,
		&c.CreatedDate, &c.LastModifiedDate, &c.Active)
	return c, err
}

func (r *SQLRepository) List(ctx context.Context, f Filter) ([]Category, error) {
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
	if f.ParentID != nil {
		add(`parent_category_id = $%d`, *f.ParentID)
	}
	if f.RootOnly {
		conditions = append(conditions, `parent_category_id IS NULL`)
	}
	if f.Active != nil {
		add(`active = $%d`, *f.Active)
	}
	if f.IsVisible != nil {
		add(`is_visible = $%d`, *f.IsVisible)
	}
	if f.IsFeatured != nil {
		add(`is_featured = $%d`, *f.IsFeatured)
	}
	if f.MinProducts != nil {
		add(`product_count > $%d`, *f.MinProducts)
	}
	if f.MaxProductsBelow != nil {
		add(`product_count < $%d`, *f.MaxProductsBelow)
	}
	if f.NoProducts {
		conditions = append(conditions, `product_count = 0`)
	}
	if f.CreatedAfter != nil {
		add(`created_date > $%d`, *f.CreatedAfter)
	}
	if f.ModifiedAfter != nil {
		add(`last_modified_date > $%d`, *f.ModifiedAfter)
	}
	if f.Tag != nil {
		add(`tags ILIKE $%d`, "%"+*f.Tag+"%")
	}
	if f.MetaTitleLike != nil {
		add(`meta_title ILIKE $%d`, "%"+*f.MetaTitleLike+"%")
	}
	if f.Color != nil {
		add(`color = $%d`, *f.Color)
	}

	query := `SELECT ` + categoryColumns + ` FROM product_categories`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, ` AND `)
	}
	switch f.OrderBy {
	case OrderByDisplayOrder:
		query += ` ORDER BY display_order`
	case OrderByName:
		query += ` ORDER BY name`
	case OrderByProductCount:
		query += ` ORDER BY product_count DESC`
	case OrderByCreated:
		query += ` ORDER BY created_date DESC`
	case OrderByModified:
		query += ` ORDER BY last_modified_date DESC`
	default:
		query += ` ORDER BY id`
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("categories: list: %w", err)
	}
	defer rows.Close()

	var out []Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("categories: scan: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *SQLRepository) Get(ctx context.Context, id int64) (Category, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+categoryColumns+` FROM product_categories WHERE id = $1`, id)
	c, err := scanCategory(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Category{}, shared.NotFoundf("Category not found with id: %d", id)
	}
	if err != nil {
		return Category{}, fmt.Errorf("categories: get: %w", err)
	}
	return c, nil
}

func (r *SQLRepository) GetByName(ctx context.Context, name string) (Category, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+categoryColumns+` FROM product_categories WHERE name = $1`, name)
	c, err := scanCategory(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Category{}, shared.NotFoundf("Category not found with name: %s", name)
	}
	if err != nil {
		return Category{}, fmt.Errorf("categories: get by name: %w", err)
	}
	return c, nil
}

func (r *SQLRepository) GetByCode(ctx context.Context, code string) (Category, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+categoryColumns+` FROM product_categories WHERE category_code = $1`, code)
	c, err := scanCategory(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Category{}, shared.NotFoundf("Category not found with code: %s", code)
	}
	if err != nil {
		return Category{}, fmt.Errorf("categories: get by code: %w", err)
	}
	return c, nil
}

func (r *SQLRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM product_categories WHERE name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("categories: exists by name: %w", err)
	}
	return exists, nil
}

func (r *SQLRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM product_categories WHERE category_code = $1)`, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("categories: exists by code: %w", err)
	}
	return exists, nil
}

func (r *SQLRepository) CountChildren(ctx context.Context, parentID int64) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM product_categories WHERE parent_category_id = $1`, parentID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("categories: count children: %w", err)
	}
	return count, nil
}

func (r *SQLRepository) Create(ctx context.Context, c Category) (Category, error) {
	err := r.pool.QueryRow(ctx, `INSERT INTO product_categories (name, description, category_code, parent_category_id, display_order, image_url, icon, color, product_count, is_featured, is_visible, meta_title, meta_description, tags, created_date, last_modified_date, active)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17) RETURNING id`,
		c.Name, c.Description, c.CategoryCode, c.ParentCategoryID, c.DisplayOrder,
		c.ImageURL, c.Icon, c.Color, c.ProductCount, c.IsFeatured, c.IsVisible,
		c.MetaTitle, c.MetaDescription, c.Tags, c.CreatedDate, c.LastModifiedDate, c.Active).Scan(&c.ID)
	if db.IsUniqueViolation(err) {
		return Category{}, shared.Conflictf("Category name already exists: %s", c.Name)
	}
	if err != nil {
		return Category{}, fmt.Errorf("categories: create: %w", err)
	}
	return c, nil
}

func (r *SQLRepository) Update(ctx context.Context, c Category) (Category, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE product_categories SET name = $1, description = $2, category_code = $3, parent_category_id = $4, display_order = $5, image_url = $6, icon = $7, color = $8, product_count = $9, is_featured = $10, is_visible = $11, meta_title = $12, meta_description = $13, tags = $14, last_modified_date = $15, active = $16 WHERE id = $17`,
		c.Name, c.Description, c.CategoryCode, c.ParentCategoryID, c.DisplayOrder,
		c.ImageURL, c.Icon, c.Color, c.ProductCount, c.IsFeatured, c.IsVisible,
		c.MetaTitle, c.MetaDescription, c.Tags, c.LastModifiedDate, c.Active, c.ID)
	if db.IsUniqueViolation(err) {
		return Category{}, shared.Conflictf("Category name already exists: %s", c.Name)
	}
	if err != nil {
		return Category{}, fmt.Errorf("categories: update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return Category{}, shared.NotFoundf("Category not found with id: %d", c.ID)
	}
	return c, nil
}

func (r *SQLRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM product_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("categories: delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.NotFoundf("Category not found with id: %d", id)
	}
	return nil
}
