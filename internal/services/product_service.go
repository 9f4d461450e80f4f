package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gorm.io/gorm"

	"github.com/shopdesk/product-api/internal/models"
)

// ErrProductNotFound is returned when the requested id has no row. Handlers
// map it to a 404 envelope.
var ErrProductNotFound = errors.New("product not found")

type ProductService struct {
	db *gorm.DB
}

// CreateProductRequest carries the full payload for a new product. Price and
// quantity are pointers so that an absent field fails `required` while an
// explicit zero passes.
type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,max=255"`
	Description *string  `json:"description"`
	Price       *Decimal `json:"price" validate:"required,min=0"`
	Quantity    *Integer `json:"quantity" validate:"required,min=0"`
}

// UpdateProductRequest is a field-level merge: only non-nil fields are
// applied, each validated with the same rule as on create. Validation is
// all-or-nothing; a single invalid field rejects the whole update.
type UpdateProductRequest struct {
	Name        *string  `json:"name" validate:"omitnil,min=1,max=255"`
	Description *string  `json:"description"`
	Price       *Decimal `json:"price" validate:"omitnil,min=0"`
	Quantity    *Integer `json:"quantity" validate:"omitnil,min=0"`
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &product, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, req *CreateProductRequest) (*models.Product, error) {
	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       roundPrice(float64(*req.Price)),
		Quantity:    int(*req.Quantity),
	}

	if err := s.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id uint, req *UpdateProductRequest) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	// Only supplied fields change; absent fields keep their stored value.
	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = roundPrice(float64(*req.Price))
	}
	if req.Quantity != nil {
		updates["quantity"] = int(*req.Quantity)
	}

	if len(updates) == 0 {
		return &product, nil
	}

	if err := s.db.WithContext(ctx).Model(&product).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	// Reload so the caller always sees the full stored row.
	if err := s.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Product{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// roundPrice keeps prices at the 2 fractional digits the decimal column
// stores, so responses match what a follow-up read returns.
func roundPrice(v float64) float64 {
	return math.Round(v*100) / 100
}
