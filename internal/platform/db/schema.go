package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema owns the table layout for all six collections. Uniqueness is
// enforced here, at the storage layer, so concurrent create/update calls
// cannot race past the service-level existence checks.
const schema = `
CREATE TABLE IF NOT EXISTS departments (
	id              BIGSERIAL PRIMARY KEY,
	name            TEXT NOT NULL,
	description     TEXT,
	manager_name    TEXT NOT NULL,
	manager_email   TEXT,
	location        TEXT,
	budget          NUMERIC(12,2),
	employee_count  INTEGER,
	active          BOOLEAN NOT NULL DEFAULT TRUE
);
CREATE UNIQUE INDEX IF NOT EXISTS departments_name_key ON departments (name);

CREATE TABLE IF NOT EXISTS customers (
	id            BIGSERIAL PRIMARY KEY,
	company_name  TEXT NOT NULL,
	contact_name  TEXT NOT NULL,
	email         TEXT NOT NULL,
	phone         TEXT,
	address       TEXT,
	city          TEXT,
	country       TEXT,
	credit_limit  NUMERIC(12,2),
	active        BOOLEAN NOT NULL DEFAULT TRUE
);
CREATE UNIQUE INDEX IF NOT EXISTS customers_email_key ON customers (email);

CREATE TABLE IF NOT EXISTS addresses (
	id              BIGSERIAL PRIMARY KEY,
	street          TEXT NOT NULL,
	city            TEXT NOT NULL,
	state           TEXT,
	country         TEXT NOT NULL,
	postal_code     TEXT,
	address_type    TEXT,
	additional_info TEXT,
	latitude        DOUBLE PRECISION,
	longitude       DOUBLE PRECISION,
	is_primary      BOOLEAN NOT NULL DEFAULT FALSE,
	active          BOOLEAN NOT NULL DEFAULT TRUE
);
CREATE UNIQUE INDEX IF NOT EXISTS addresses_street_city_postal_key
	ON addresses (street, city, postal_code);

CREATE TABLE IF NOT EXISTS groups (
	id                   BIGSERIAL PRIMARY KEY,
	name                 TEXT NOT NULL,
	description          TEXT,
	group_type           TEXT,
	owner_name           TEXT NOT NULL,
	owner_email          TEXT,
	max_members          INTEGER,
	current_member_count INTEGER NOT NULL DEFAULT 0,
	is_public            BOOLEAN NOT NULL DEFAULT TRUE,
	requires_approval    BOOLEAN NOT NULL DEFAULT FALSE,
	tags                 TEXT,
	created_date         TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	last_activity_date   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	active               BOOLEAN NOT NULL DEFAULT TRUE
);
CREATE UNIQUE INDEX IF NOT EXISTS groups_name_key ON groups (name);

CREATE TABLE IF NOT EXISTS product_categories (
	id                 BIGSERIAL PRIMARY KEY,
	name               TEXT NOT NULL,
	description        TEXT,
	category_code      TEXT,
	parent_category_id BIGINT,
	display_order      INTEGER NOT NULL DEFAULT 0,
	image_url          TEXT,
	icon               TEXT,
	color              TEXT,
	product_count      INTEGER NOT NULL DEFAULT 0,
	is_featured        BOOLEAN NOT NULL DEFAULT FALSE,
	is_visible         BOOLEAN NOT NULL DEFAULT TRUE,
	meta_title         TEXT,
	meta_description   TEXT,
	tags               TEXT,
	created_date       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	last_modified_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	active             BOOLEAN NOT NULL DEFAULT TRUE
);
CREATE UNIQUE INDEX IF NOT EXISTS product_categories_name_key ON product_categories (name);
CREATE UNIQUE INDEX IF NOT EXISTS product_categories_code_key
	ON product_categories (category_code) WHERE category_code IS NOT NULL;

CREATE TABLE IF NOT EXISTS products (
	id                 BIGSERIAL PRIMARY KEY,
	name               TEXT NOT NULL,
	description        TEXT,
	long_description   TEXT,
	sku                TEXT,
	brand              TEXT,
	model              TEXT,
	price              NUMERIC(12,2),
	cost               NUMERIC(12,2),
	sale_price         NUMERIC(12,2),
	stock_quantity     INTEGER NOT NULL DEFAULT 0,
	min_stock_level    INTEGER NOT NULL DEFAULT 0,
	max_stock_level    INTEGER,
	category_id        BIGINT,
	weight             DOUBLE PRECISION,
	weight_unit        TEXT,
	dimensions         TEXT,
	color              TEXT,
	size               TEXT,
	image_url          TEXT,
	image_gallery      TEXT,
	is_featured        BOOLEAN NOT NULL DEFAULT FALSE,
	is_digital         BOOLEAN NOT NULL DEFAULT FALSE,
	requires_shipping  BOOLEAN NOT NULL DEFAULT TRUE,
	is_taxable         BOOLEAN NOT NULL DEFAULT TRUE,
	track_inventory    BOOLEAN NOT NULL DEFAULT TRUE,
	allow_backorder    BOOLEAN NOT NULL DEFAULT FALSE,
	rating             DOUBLE PRECISION NOT NULL DEFAULT 0,
	review_count       INTEGER NOT NULL DEFAULT 0,
	view_count         INTEGER NOT NULL DEFAULT 0,
	sales_count        INTEGER NOT NULL DEFAULT 0,
	meta_title         TEXT,
	meta_description   TEXT,
	tags               TEXT,
	status             TEXT NOT NULL DEFAULT 'DRAFT',
	created_date       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	last_modified_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	published_date     TIMESTAMPTZ,
	active             BOOLEAN NOT NULL DEFAULT TRUE
);
CREATE UNIQUE INDEX IF NOT EXISTS products_name_key ON products (name);
CREATE UNIQUE INDEX IF NOT EXISTS products_sku_key
	ON products (sku) WHERE sku IS NOT NULL;
`

// EnsureSchema creates the tables and unique indexes if they do not exist.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("platform/db: ensure schema: %w", err)
	}
	return nil
}
