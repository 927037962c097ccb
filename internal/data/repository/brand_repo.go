package repository

import (
	"context"
	"fmt"

	"catalog-api/internal/data/entity"
	"catalog-api/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BrandRepository interface {
	Create(ctx context.Context, brand *entity.Brand) error
	FindByID(ctx context.Context, id int64) (*entity.Brand, error)
	FindByName(ctx context.Context, name string) (*entity.Brand, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Brand, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, brand *entity.Brand) error
	Deactivate(ctx context.Context, id int64) error
}

type brandRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBrandRepository(db database.PgxIface, log *zap.Logger) BrandRepository {
	return &brandRepository{
		db:  db,
		log: log.With(zap.String("repository", "brand")),
	}
}

func (r *brandRepository) Create(ctx context.Context, brand *entity.Brand) error {
	query := `
		INSERT INTO brands (name, description, logo, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		brand.Name,
		brand.Description,
		brand.Logo,
		brand.IsActive,
		brand.CreatedAt,
		brand.UpdatedAt,
	).Scan(&brand.ID)

	if err != nil {
		r.log.Error("Failed to create brand",
			zap.Error(err),
			zap.String("name", brand.Name),
		)
		return fmt.Errorf("create brand %s: %w", brand.Name, err)
	}

	return nil
}

func (r *brandRepository) FindByID(ctx context.Context, id int64) (*entity.Brand, error) {
	query := `
		SELECT id, name, description, logo, is_active, created_at, updated_at
		FROM brands
		WHERE id = $1
	`

	brand, err := r.scanOne(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find brand by ID",
			zap.Error(err),
			zap.Int64("brand_id", id),
		)
		return nil, fmt.Errorf("find brand %d: %w", id, err)
	}

	return brand, nil
}

func (r *brandRepository) FindByName(ctx context.Context, name string) (*entity.Brand, error) {
	query := `
		SELECT id, name, description, logo, is_active, created_at, updated_at
		FROM brands
		WHERE name = $1
	`

	brand, err := r.scanOne(r.db.QueryRow(ctx, query, name))
	if err != nil {
		r.log.Error("Failed to find brand by name",
			zap.Error(err),
			zap.String("name", name),
		)
		return nil, fmt.Errorf("find brand by name %s: %w", name, err)
	}

	return brand, nil
}

func (r *brandRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Brand, error) {
	query := `
		SELECT id, name, description, logo, is_active, created_at, updated_at
		FROM brands
		ORDER BY name ASC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find all brands", zap.Error(err))
		return nil, fmt.Errorf("find brands: %w", err)
	}
	defer rows.Close()

	var brands []*entity.Brand
	for rows.Next() {
		var brand entity.Brand
		err := rows.Scan(
			&brand.ID,
			&brand.Name,
			&brand.Description,
			&brand.Logo,
			&brand.IsActive,
			&brand.CreatedAt,
			&brand.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan brand row", zap.Error(err))
			return nil, fmt.Errorf("scan brand row: %w", err)
		}
		brands = append(brands, &brand)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate brand rows: %w", err)
	}

	return brands, nil
}

func (r *brandRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM brands`).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count brands", zap.Error(err))
		return 0, fmt.Errorf("count brands: %w", err)
	}
	return total, nil
}

func (r *brandRepository) Update(ctx context.Context, brand *entity.Brand) error {
	query := `
		UPDATE brands
		SET name = $2, description = $3, logo = $4, is_active = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		brand.ID,
		brand.Name,
		brand.Description,
		brand.Logo,
		brand.IsActive,
		brand.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update brand",
			zap.Error(err),
			zap.Int64("brand_id", brand.ID),
		)
		return fmt.Errorf("update brand %d: %w", brand.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("brand %d not found", brand.ID)
	}

	return nil
}

func (r *brandRepository) Deactivate(ctx context.Context, id int64) error {
	query := `UPDATE brands SET is_active = FALSE, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to deactivate brand",
			zap.Error(err),
			zap.Int64("brand_id", id),
		)
		return fmt.Errorf("deactivate brand %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("brand %d not found", id)
	}

	r.log.Info("Brand soft deleted", zap.Int64("brand_id", id))
	return nil
}

func (r *brandRepository) scanOne(row pgx.Row) (*entity.Brand, error) {
	var brand entity.Brand
	err := row.Scan(
		&brand.ID,
		&brand.Name,
		&brand.Description,
		&brand.Logo,
		&brand.IsActive,
		&brand.CreatedAt,
		&brand.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &brand, nil
}
