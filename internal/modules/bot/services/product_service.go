package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/tenant"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/modules/bot/models"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/modules/bot/repositories"
)

type ProductService struct {
	productRepo repositories.ProductRepo
}

func NewProductService(productRepo repositories.ProductRepo) *ProductService {
	return &ProductService{productRepo: productRepo}
}

func (s *ProductService) ListProducts(ctx context.Context, botID string) ([]models.Product, error) {
	products, err := s.productRepo.ListProducts(ctx, tenant.ID(botID))
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, invalidf("product name is required")
	}
	if req.Price == nil || *req.Price < 0 {
		return nil, invalidf("price must be zero or more")
	}
	if req.Stock == nil || *req.Stock < 0 {
		return nil, invalidf("stock must be zero or more")
	}

	product := &models.Product{
		TenantID: tenant.ID(req.BotID),
		Name:     name,
		Price:    *req.Price,
		Stock:    *req.Stock,
	}
	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}
