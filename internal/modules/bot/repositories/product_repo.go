package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/catalog"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/modules/bot/models"
)

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepo {
	return &productRepo{db: db}
}

func (r *productRepo) ListProducts(ctx context.Context, tenantID string) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("id DESC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepo) CreateProduct(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepo) ListCatalog(ctx context.Context, tenantID string, limit int) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("tenant_id = ?", tenantID).
		Order("id DESC").
		Limit(limit).
		Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (r *productRepo) FindProductByName(ctx context.Context, tenantID, name string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND LOWER(name) = LOWER(?)", tenantID, name).
		First(&product).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &product, nil
}

func (r *productRepo) FindBestMatch(ctx context.Context, tenantID, normalizedMessage string) (*models.Product, error) {
	products, err := r.ListProducts(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return catalog.BestMatch(products, normalizedMessage), nil
}
