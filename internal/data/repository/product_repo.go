package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"catalog-api/internal/data/entity"
	"catalog-api/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ProductFilter holds the optional listing filters. Set fields are
// AND-composed; nil fields are ignored.
type ProductFilter struct {
	Name       *string
	CategoryID *int64
	BrandID    *int64
	MinPrice   *float64
	MaxPrice   *float64
	IsActive   *bool
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
	// Exists reports whether another product with the same normalized
	// name and brand exists. excludeID skips one row (0 for none).
	Exists(ctx context.Context, name string, brandID *int64, excludeID int64) (bool, error)
	FindAll(ctx context.Context, filter ProductFilter, limit, offset int) ([]*entity.Product, error)
	CountAll(ctx context.Context, filter ProductFilter) (int64, error)
	Update(ctx context.Context, product *entity.Product) error
	Deactivate(ctx context.Context, id int64) error
}

type productRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProductRepository(db database.PgxIface, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log.With(zap.String("repository", "product")),
	}
}

// joinedColumns is the projection used by every read: the product row
// plus its eagerly attached category and brand.
const joinedColumns = `
		p.id, p.name, p.price, p.photo, p.category_id, p.brand_id,
		p.is_active, p.created_at, p.updated_at,
		c.id, c.name, c.description, c.is_active, c.created_at, c.updated_at,
		b.id, b.name, b.description, b.logo, b.is_active, b.created_at, b.updated_at`

const joinedFrom = `
	FROM products p
	LEFT JOIN categories c ON c.id = p.category_id
	LEFT JOIN brands b ON b.id = p.brand_id`

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (name, price, photo, category_id, brand_id,
		                     is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		product.Name,
		product.Price,
		product.Photo,
		product.CategoryID,
		product.BrandID,
		product.IsActive,
		product.CreatedAt,
		product.UpdatedAt,
	).Scan(&product.ID)

	if err != nil {
		r.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("name", product.Name),
		)
		return fmt.Errorf("create product %s: %w", product.Name, err)
	}

	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := "SELECT" + joinedColumns + joinedFrom + `
	WHERE p.id = $1`

	product, err := scanProduct(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find product by ID",
			zap.Error(err),
			zap.Int64("product_id", id),
		)
		return nil, fmt.Errorf("find product %d: %w", id, err)
	}

	return product, nil
}

func (r *productRepository) Exists(ctx context.Context, name string, brandID *int64, excludeID int64) (bool, error) {
	// IS NOT DISTINCT FROM makes the brand-less case (NULL) compare
	// equal, matching the unique index semantics used for the check.
	query := `
		SELECT EXISTS (
			SELECT 1 FROM products
			WHERE name = $1 AND brand_id IS NOT DISTINCT FROM $2 AND id <> $3
		)
	`

	var exists bool
	err := r.db.QueryRow(ctx, query, name, brandID, excludeID).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check product existence",
			zap.Error(err),
			zap.String("name", name),
		)
		return false, fmt.Errorf("check product %s exists: %w", name, err)
	}

	return exists, nil
}

// buildFilter appends WHERE conditions for each set filter field and
// returns the clause. Placeholders continue from len(*args)+1.
func buildFilter(filter ProductFilter, args *[]interface{}) string {
	var clauses []string

	add := func(condition string, value interface{}) {
		*args = append(*args, value)
		clauses = append(clauses, fmt.Sprintf(condition, len(*args)))
	}

	if filter.Name != nil && *filter.Name != "" {
		add("LOWER(p.name) LIKE LOWER($%d)", "%"+*filter.Name+"%")
	}
	if filter.CategoryID != nil {
		add("p.category_id = $%d", *filter.CategoryID)
	}
	if filter.BrandID != nil {
		add("p.brand_id = $%d", *filter.BrandID)
	}
	if filter.MinPrice != nil {
		add("p.price >= $%d", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		add("p.price <= $%d", *filter.MaxPrice)
	}
	if filter.IsActive != nil {
		add("p.is_active = $%d", *filter.IsActive)
	}

	if len(clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(clauses, " AND ")
}

func (r *productRepository) FindAll(ctx context.Context, filter ProductFilter, limit, offset int) ([]*entity.Product, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString("SELECT" + joinedColumns + joinedFrom)

	args := []interface{}{}
	queryBuilder.WriteString(buildFilter(filter, &args))

	// Deterministic ordering keeps pagination stable across calls.
	queryBuilder.WriteString(fmt.Sprintf(
		" ORDER BY p.updated_at DESC, p.created_at DESC LIMIT $%d OFFSET $%d",
		len(args)+1, len(args)+2,
	))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find all products",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			r.log.Error("Failed to scan product row", zap.Error(err))
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	r.log.Debug("Products found",
		zap.Int("count", len(products)),
		zap.Int("limit", limit),
		zap.Int("offset", offset),
	)

	return products, nil
}

func (r *productRepository) CountAll(ctx context.Context, filter ProductFilter) (int64, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString("SELECT COUNT(*) FROM products p")

	args := []interface{}{}
	queryBuilder.WriteString(buildFilter(filter, &args))

	var total int64
	err := r.db.QueryRow(ctx, queryBuilder.String(), args...).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count products", zap.Error(err))
		return 0, fmt.Errorf("count products: %w", err)
	}

	return total, nil
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, price = $3, photo = $4, category_id = $5,
		    brand_id = $6, is_active = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Price,
		product.Photo,
		product.CategoryID,
		product.BrandID,
		product.IsActive,
		product.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update product",
			zap.Error(err),
			zap.Int64("product_id", product.ID),
		)
		return fmt.Errorf("update product %d: %w", product.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product %d not found", product.ID)
	}

	return nil
}

// Deactivate soft-deletes: the row keeps existing with is_active
// false, so a second call succeeds the same way.
func (r *productRepository) Deactivate(ctx context.Context, id int64) error {
	query := `UPDATE products SET is_active = FALSE, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to deactivate product",
			zap.Error(err),
			zap.Int64("product_id", id),
		)
		return fmt.Errorf("deactivate product %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product %d not found", id)
	}

	r.log.Info("Product soft deleted", zap.Int64("product_id", id))
	return nil
}

// scanProduct scans the joined projection; the category and brand
// columns arrive NULL when the reference is unset.
func scanProduct(row pgx.Row) (*entity.Product, error) {
	var (
		product entity.Product

		catID                *int64
		catName, catDesc     *string
		catActive            *bool
		catCreated           *time.Time
		catUpdated           *time.Time
		brID                 *int64
		brName               *string
		brDesc, brLogo       *string
		brActive             *bool
		brCreated, brUpdated *time.Time
	)

	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Price,
		&product.Photo,
		&product.CategoryID,
		&product.BrandID,
		&product.IsActive,
		&product.CreatedAt,
		&product.UpdatedAt,
		&catID, &catName, &catDesc, &catActive, &catCreated, &catUpdated,
		&brID, &brName, &brDesc, &brLogo, &brActive, &brCreated, &brUpdated,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if catID != nil {
		product.Category = &entity.Category{
			ID:          *catID,
			Name:        *catName,
			Description: catDesc,
			IsActive:    *catActive,
			Timestamps:  entity.Timestamps{CreatedAt: *catCreated, UpdatedAt: *catUpdated},
		}
	}
	if brID != nil {
		product.Brand = &entity.Brand{
			ID:          *brID,
			Name:        *brName,
			Description: brDesc,
			Logo:        brLogo,
			IsActive:    *brActive,
			Timestamps:  entity.Timestamps{CreatedAt: *brCreated, UpdatedAt: *brUpdated},
		}
	}

	return &product, nil
}
