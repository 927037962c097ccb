package repository

import (
	"context"
	"fmt"

	"catalog-api/internal/data/entity"
	"catalog-api/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	FindByID(ctx context.Context, id int64) (*entity.Category, error)
	FindByName(ctx context.Context, name string) (*entity.Category, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Category, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, category *entity.Category) error
	Deactivate(ctx context.Context, id int64) error
}

type categoryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCategoryRepository(db database.PgxIface, log *zap.Logger) CategoryRepository {
	return &categoryRepository{
		db:  db,
		log: log.With(zap.String("repository", "category")),
	}
}

func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	query := `
		INSERT INTO categories (name, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		category.Name,
		category.Description,
		category.IsActive,
		category.CreatedAt,
		category.UpdatedAt,
	).Scan(&category.ID)

	if err != nil {
		r.log.Error("Failed to create category",
			zap.Error(err),
			zap.String("name", category.Name),
		)
		return fmt.Errorf("create category %s: %w", category.Name, err)
	}

	return nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id int64) (*entity.Category, error) {
	query := `
		SELECT id, name, description, is_active, created_at, updated_at
		FROM categories
		WHERE id = $1
	`

	category, err := r.scanOne(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find category by ID",
			zap.Error(err),
			zap.Int64("category_id", id),
		)
		return nil, fmt.Errorf("find category %d: %w", id, err)
	}

	return category, nil
}

func (r *categoryRepository) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	query := `
		SELECT id, name, description, is_active, created_at, updated_at
		FROM categories
		WHERE name = $1
	`

	category, err := r.scanOne(r.db.QueryRow(ctx, query, name))
	if err != nil {
		r.log.Error("Failed to find category by name",
			zap.Error(err),
			zap.String("name", name),
		)
		return nil, fmt.Errorf("find category by name %s: %w", name, err)
	}

	return category, nil
}

func (r *categoryRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Category, error) {
	query := `
		SELECT id, name, description, is_active, created_at, updated_at
		FROM categories
		ORDER BY name ASC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find all categories", zap.Error(err))
		return nil, fmt.Errorf("find categories: %w", err)
	}
	defer rows.Close()

	var categories []*entity.Category
	for rows.Next() {
		var category entity.Category
		err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.Description,
			&category.IsActive,
			&category.CreatedAt,
			&category.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan category row", zap.Error(err))
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate category rows: %w", err)
	}

	return categories, nil
}

func (r *categoryRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count categories", zap.Error(err))
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return total, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	query := `
		UPDATE categories
		SET name = $2, description = $3, is_active = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		category.ID,
		category.Name,
		category.Description,
		category.IsActive,
		category.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update category",
			zap.Error(err),
			zap.Int64("category_id", category.ID),
		)
		return fmt.Errorf("update category %d: %w", category.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("category %d not found", category.ID)
	}

	return nil
}

func (r *categoryRepository) Deactivate(ctx context.Context, id int64) error {
	query := `UPDATE categories SET is_active = FALSE, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to deactivate category",
			zap.Error(err),
			zap.Int64("category_id", id),
		)
		return fmt.Errorf("deactivate category %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("category %d not found", id)
	}

	r.log.Info("Category soft deleted", zap.Int64("category_id", id))
	return nil
}

func (r *categoryRepository) scanOne(row pgx.Row) (*entity.Category, error) {
	var category entity.Category
	err := row.Scan(
		&category.ID,
		&category.Name,
		&category.Description,
		&category.IsActive,
		&category.CreatedAt,
		&category.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &category, nil
}
