package products

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

const productColumns = `id, name, description, long_description, sku, brand, model, price, cost, sale_price, stock_quantity, min_stock_level, max_stock_level, category_id, weight, weight_unit, dimensions, color, size, image_url, image_gallery, is_featured, is_digital, requires_shipping, is_taxable, track_inventory, allow_backorder, rating, review_count, view_count, sales_count, meta_title, meta_description, tags, status, created_date, last_modified_date, published_date, active`

// SQLRepository is the pgx-backed Repository implementation.
type SQLRepository struct {
	pool *pgxpool.Pool
}

// NewSQLRepository constructs SQLRepository.
func NewSQLRepository(pool *pgxpool.Pool) *SQLRepository {
	return &SQLRepository{pool: pool}
}

func scanProduct(row pgx.Row) (Product, error) {
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.LongDescription, &p.SKU, &p.Brand, &p.Model,
		&p.Price, &p.Cost, &p.SalePrice, &p.StockQuantity, &p.MinStockLevel, &p.MaxStockLevel,
		&p.CategoryID, &p.Weight, &p.WeightUnit, &p.Dimensions, &p.Color, &p.Size,
		&p.ImageURL, &p.ImageGallery, &p.IsFeatured, &p.IsDigital, &p.RequiresShipping,
		&p.IsTaxable, &p.TrackInventory, &p.AllowBackorder, &p.Rating, &p.ReviewCount,
		&p.ViewCount, &p.SalesCount, &p.MetaTitle, &p.MetaDescription, &p.Tags, &p.Status,
		&p.CreatedDate, &p.LastModifiedDate, &p.PublishedDate, &p.Active)
	return p, err
}

func (r *SQLRepository) List(ctx context.Context, f Filter) ([]Product, error) {
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
	if f.SearchTerm != nil {
		args = append(args, "%"+*f.SearchTerm+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(`(name ILIKE $%d OR description ILIKE $%d OR brand ILIKE $%d OR tags ILIKE $%d)`, n, n, n, n))
	}
	if f.Brand != nil {
		add(`brand = $%d`, *f.Brand)
	}
	if f.BrandLike != nil {
		add(`brand ILIKE $%d`, "%"+*f.BrandLike+"%")
	}
	if f.Model != nil {
		add(`model = $%d`, *f.Model)
	}
	if f.CategoryID != nil {
		add(`category_id = $%d`, *f.CategoryID)
	}
	if f.Status != nil {
		add(`status = $%d`, string(*f.Status))
	}
	if f.Active != nil {
		add(`active = $%d`, *f.Active)
	}
	if f.IsFeatured != nil {
		add(`is_featured = $%d`, *f.IsFeatured)
	}
	if f.IsDigital != nil {
		add(`is_digital = $%d`, *f.IsDigital)
	}
	if f.RequiresShipping != nil {
		add(`requires_shipping = $%d`, *f.RequiresShipping)
	}
	if f.IsTaxable != nil {
		add(`is_taxable = $%d`, *f.IsTaxable)
	}
	if f.TrackInventory != nil {
		add(`track_inventory = $%d`, *f.TrackInventory)
	}
	if f.Color != nil {
		add(`color = $%d`, *f.Color)
	}
	if f.Size != nil {
		add(`size = $%d`, *f.Size)
	}
	if f.MinPrice != nil {
		add(`price >= $%d`, *f.MinPrice)
	}
	if f.MaxPrice != nil {
		add(`price <= $%d`, *f.MaxPrice)
	}
	if f.PriceAbove != nil {
		add(`price > $%d`, *f.PriceAbove)
	}
	if f.PriceBelow != nil {
		add(`price < $%d`, *f.PriceBelow)
	}
	if f.OnSale {
		conditions = append(conditions, `sale_price IS NOT NULL AND sale_price < price`)
	}
	if f.StockAbove != nil {
		add(`stock_quantity > $%d`, *f.StockAbove)
	}
	if f.StockBelow != nil {
		add(`stock_quantity < $%d`, *f.StockBelow)
	}
	if f.OutOfStock {
		conditions = append(conditions, `stock_quantity = 0`)
	}
	if f.LowStock {
		conditions = append(conditions, `stock_quantity <= min_stock_level AND min_stock_level > 0`)
	}
	if f.RatingAbove != nil {
		add(`rating > $%d`, *f.RatingAbove)
	}
	if f.MinRating != nil {
		add(`rating >= $%d`, *f.MinRating)
	}
	if f.MaxRating != nil {
		add(`rating <= $%d`, *f.MaxRating)
	}
	if f.MinReviews != nil {
		add(`review_count >= $%d`, *f.MinReviews)
	}
	if f.MinSales != nil {
		add(`sales_count > $%d`, *f.MinSales)
	}
	if f.MinViews != nil {
		add(`view_count > $%d`, *f.MinViews)
	}
	if f.CreatedAfter != nil {
		add(`created_date > $%d`, *f.CreatedAfter)
	}
	if f.PublishedAfter != nil {
		add(`published_date > $%d`, *f.PublishedAfter)
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

	query := `SELECT ` + productColumns + ` FROM products`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, ` AND `)
	}
	switch f.OrderBy {
	case OrderByName:
		query += ` ORDER BY name`
	case OrderByPriceAsc:
		query += ` ORDER BY price`
	case OrderByPriceDesc:
		query += ` ORDER BY price DESC`
	case OrderByCreated:
		query += ` ORDER BY created_date DESC`
	case OrderByRating:
		query += ` ORDER BY rating DESC`
	case OrderBySales:
		query += ` ORDER BY sales_count DESC`
	case OrderByViews:
		query += ` ORDER BY view_count DESC`
	case OrderByStock:
		query += ` ORDER BY stock_quantity DESC`
	default:
		query += ` ORDER BY id`
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("products: list: %w", err)
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("products: scan: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *SQLRepository) Get(ctx context.Context, id int64) (Product, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Product{}, shared.NotFoundf("Product not found with id: %d", id)
	}
	if err != nil {
		return Product{}, fmt.Errorf("products: get: %w", err)
	}
	return p, nil
}

func (r *SQLRepository) GetByName(ctx context.Context, name string) (Product, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE name = $1`, name)
	p, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Product{}, shared.NotFoundf("Product not found with name: %s", name)
	}
	if err != nil {
		return Product{}, fmt.Errorf("products: get by name: %w", err)
	}
	return p, nil
}

func (r *SQLRepository) GetBySKU(ctx context.Context, sku string) (Product, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE sku = $1`, sku)
	p, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Product{}, shared.NotFoundf("Product not found with sku: %s", sku)
	}
	if err != nil {
		return Product{}, fmt.Errorf("products: get by sku: %w", err)
	}
	return p, nil
}

func (r *SQLRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("products: exists by name: %w", err)
	}
	return exists, nil
}

func (r *SQLRepository) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE sku = $1)`, sku).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("products: exists by sku: %w", err)
	}
	return exists, nil
}

func (r *SQLRepository) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE category_id = $1`, categoryID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("products: count by category: %w", err)
	}
	return count, nil
}

func (r *SQLRepository) CountByBrand(ctx context.Context, brand string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE brand = $1`, brand).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("products: count by brand: %w", err)
	}
	return count, nil
}

func (r *SQLRepository) CountByStatus(ctx context.Context, status Status) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE status = $1`, string(status)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("products: count by status: %w", err)
	}
	return count, nil
}

func (r *SQLRepository) Create(ctx context.Context, p Product) (Product, error) {
	err := r.pool.QueryRow(ctx, `INSERT INTO products (name, description, long_description, sku, brand, model, price, cost, sale_price, stock_quantity, min_stock_level, max_stock_level, category_id, weight, weight_unit, dimensions, color, size, image_url, image_gallery, is_featured, is_digital, requires_shipping, is_taxable, track_inventory, allow_backorder, rating, review_count, view_count, sales_count, meta_title, meta_description, tags, status, created_date, last_modified_date, published_date, active)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26,$27,$28,$29,$30,$31,$32,$33,$34,$35,$36,$37,$38) RETURNING id`,
		p.Name, p.Description, p.LongDescription, p.SKU, p.Brand, p.Model, p.Price, p.Cost,
		p.SalePrice, p.StockQuantity, p.MinStockLevel, p.MaxStockLevel, p.CategoryID,
		p.Weight, p.WeightUnit, p.Dimensions, p.Color, p.Size, p.ImageURL, p.ImageGallery,
		p.IsFeatured, p.IsDigital, p.RequiresShipping, p.IsTaxable, p.TrackInventory,
		p.AllowBackorder, p.Rating, p.ReviewCount, p.ViewCount, p.SalesCount,
		p.MetaTitle, p.MetaDescription, p.Tags, string(p.Status),
		p.CreatedDate, p.LastModifiedDate, p.PublishedDate, p.Active).Scan(&p.ID)
	if db.IsUniqueViolation(err) {
		return Product{}, shared.Conflictf("Product name already exists: %s", p.Name)
	}
	if err != nil {
		return Product{}, fmt.Errorf("products: create: %w", err)
	}
	return p, nil
}

// execer is satisfied by both *pgxpool.Pool and pgx.Tx, so the update
// statement serves the plain Update path and the locked Patch path.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func updateProduct(ctx context.Context, ex execer, p Product) (Product, error) {
	tag, err := ex.Exec(ctx, `UPDATE products SET name = $1, description = $2, long_description = $3, sku = $4, brand = $5, model = $6, price = $7, cost = $8, sale_price = $9, stock_quantity = $10, min_stock_level = $11, max_stock_level = $12, category_id = $13, weight = $14, weight_unit = $15, dimensions = $16, color = $17, size = $18, image_url = $19, image_gallery = $20, is_featured = $21, is_digital = $22, requires_shipping = $23, is_taxable = $24, track_inventory = $25, allow_backorder = $26, rating = $27, review_count = $28, view_count = $29, sales_count = $30, meta_title = $31, meta_description = $32, tags = $33, status = $34, last_modified_date = $35, published_date = $36, active = $37 WHERE id = $38`,
		p.Name, p.Description, p.LongDescription, p.SKU, p.Brand, p.Model, p.Price, p.Cost,
		p.SalePrice, p.StockQuantity, p.MinStockLevel, p.MaxStockLevel, p.CategoryID,
		p.Weight, p.WeightUnit, p.Dimensions, p.Color, p.Size, p.ImageURL, p.ImageGallery,
		p.IsFeatured, p.IsDigital, p.RequiresShipping, p.IsTaxable, p.TrackInventory,
		p.AllowBackorder, p.Rating, p.ReviewCount, p.ViewCount, p.SalesCount,
		p.MetaTitle, p.MetaDescription, p.Tags, string(p.Status),
		p.LastModifiedDate, p.PublishedDate, p.Active, p.ID)
	if db.IsUniqueViolation(err) {
		return Product{}, shared.Conflictf("Product name already exists: %s", p.Name)
	}
	if err != nil {
		return Product{}, fmt.Errorf("products: update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return Product{}, shared.NotFoundf("Product not found with id: %d", p.ID)
	}
	return p, nil
}

func (r *SQLRepository) Update(ctx context.Context, p Product) (Product, error) {
	return updateProduct(ctx, r.pool, p)
}

// Patch re-reads the row under a FOR UPDATE lock inside a transaction before
// applying mutate, so stock updates and counter bumps from concurrent callers
// serialize instead of overwriting each other.
func (r *SQLRepository) Patch(ctx context.Context, id int64, mutate func(*Product) error) (Product, error) {
	var out Product
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1 FOR UPDATE`, id)
		p, err := scanProduct(row)
		if errors.Is(err, pgx.ErrNoRows) {
			return shared.NotFoundf("Product not found with id: %d", id)
		}
		if err != nil {
			return fmt.Errorf("products: patch: %w", err)
		}
		if err := mutate(&p); err != nil {
			return err
		}
		out, err = updateProduct(ctx, tx, p)
		return err
	})
	if err != nil {
		return Product{}, err
	}
	return out, nil
}

func (r *SQLRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("products: delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.NotFoundf("Product not found with id: %d", id)
	}
	return nil
}
