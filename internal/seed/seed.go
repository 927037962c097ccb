package seed

import (
	"context"
	"fmt"
	"time"

	"catalog-api/internal/data/entity"
	"catalog-api/internal/data/repository"
	"catalog-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type seedProduct struct {
	name     string
	price    float64
	category string
	brand    string
}

var (
	seedBrands = []entity.Brand{
		{Name: "acme", Description: ptr("General purpose goods")},
		{Name: "northwind", Description: ptr("Outdoor equipment")},
		{Name: "contoso", Description: ptr("Consumer electronics")},
	}

	seedCategories = []entity.Category{
		{Name: "electronics", Description: ptr("Phones, audio and accessories")},
		{Name: "outdoor", Description: ptr("Camping and hiking gear")},
		{Name: "home", Description: ptr("Household items")},
	}

	seedProducts = []seedProduct{
		{name: "wireless earbuds", price: 59.99, category: "electronics", brand: "contoso"},
		{name: "trail backpack 40l", price: 89.50, category: "outdoor", brand: "northwind"},
		{name: "camping stove", price: 34.00, category: "outdoor", brand: "northwind"},
		{name: "desk lamp", price: 19.90, category: "home", brand: "acme"},
	}
)

func ptr(s string) *string { return &s }

// Run inserts the starter dataset. Existing rows are left untouched so
// the seeder is safe to run repeatedly.
func Run(ctx context.Context, repo *repository.Repository, log *zap.Logger) error {
	now := time.Now()

	brandIDs := make(map[string]int64, len(seedBrands))
	for i := range seedBrands {
		b := seedBrands[i]
		existing, err := repo.Brand.FindByName(ctx, b.Name)
		if err != nil {
			return fmt.Errorf("seed brand %s: %w", b.Name, err)
		}
		if existing != nil {
			brandIDs[b.Name] = existing.ID
			continue
		}

		b.IsActive = true
		b.Timestamps = entity.Timestamps{CreatedAt: now, UpdatedAt: now}
		if err := repo.Brand.Create(ctx, &b); err != nil {
			return fmt.Errorf("seed brand %s: %w", b.Name, err)
		}
		brandIDs[b.Name] = b.ID
		log.Info("Seeded brand", zap.String("name", b.Name))
	}

	categoryIDs := make(map[string]int64, len(seedCategories))
	for i := range seedCategories {
		c := seedCategories[i]
		existing, err := repo.Category.FindByName(ctx, c.Name)
		if err != nil {
			return fmt.Errorf("seed category %s: %w", c.Name, err)
		}
		if existing != nil {
			categoryIDs[c.Name] = existing.ID
			continue
		}

		c.IsActive = true
		c.Timestamps = entity.Timestamps{CreatedAt: now, UpdatedAt: now}
		if err := repo.Category.Create(ctx, &c); err != nil {
			return fmt.Errorf("seed category %s: %w", c.Name, err)
		}
		categoryIDs[c.Name] = c.ID
		log.Info("Seeded category", zap.String("name", c.Name))
	}

	for _, p := range seedProducts {
		brandID := brandIDs[p.brand]
		exists, err := repo.Product.Exists(ctx, p.name, &brandID, 0)
		if err != nil {
			return fmt.Errorf("seed product %s: %w", p.name, err)
		}
		if exists {
			continue
		}

		categoryID := categoryIDs[p.category]
		product := &entity.Product{
			Name:       p.name,
			Price:      p.price,
			CategoryID: &categoryID,
			BrandID:    &brandID,
			IsActive:   true,
			Timestamps: entity.Timestamps{CreatedAt: now, UpdatedAt: now},
		}
		if err := repo.Product.Create(ctx, product); err != nil {
			return fmt.Errorf("seed product %s: %w", p.name, err)
		}
		log.Info("Seeded product", zap.String("name", p.name))
	}

	return seedAdmin(ctx, repo, log, now)
}

func seedAdmin(ctx context.Context, repo *repository.Repository, log *zap.Logger, now time.Time) error {
	const adminEmail = "admin@example.com"

	existing, err := repo.User.FindByEmail(ctx, adminEmail)
	if err != nil {
		return fmt.Errorf("seed admin lookup: %w", err)
	}
	if existing != nil {
		return nil
	}

	hash, err := utils.HashPassword("Admin123!")
	if err != nil {
		return fmt.Errorf("seed admin hash: %w", err)
	}

	admin := &entity.User{
		ID:           uuid.New(),
		Username:     "admin",
		Email:        adminEmail,
		PasswordHash: hash,
		FullName:     "Administrator",
		IsActive:     true,
		Roles:        []string{entity.RoleUser, "admin"},
		Timestamps:   entity.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	if err := repo.User.Create(ctx, admin); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	log.Info("Seeded admin user", zap.String("email", adminEmail))
	return nil
}
