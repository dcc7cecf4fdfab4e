package product

import (
	"context"
	"database/sql"
	stderrors "errors"
	"strings"
	"time"

	"github.com/muhammadheryan/wms/constant"
	"github.com/muhammadheryan/wms/model"
	inventoryRepo "github.com/muhammadheryan/wms/repository/inventory"
	productRepo "github.com/muhammadheryan/wms/repository/product"
	"github.com/muhammadheryan/wms/utils/errors"
	"github.com/muhammadheryan/wms/utils/logger"
	"go.uber.org/zap"
)

type ProductApp interface {
	ListProducts(ctx context.Context, filter *model.ProductFilter) (*model.ProductListResponse, error)
	GetProduct(ctx context.Context, id uint64) (*model.Product, error)
	CreateProduct(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error)
	UpdateProduct(ctx context.Context, id uint64, req *model.UpdateProductRequest) (*model.Product, error)
	DeleteProduct(ctx context.Context, id uint64) error
}

type productAppImpl struct {
	productRepo   productRepo.ProductRepository
	inventoryRepo inventoryRepo.InventoryRepository
}

func NewProductApp(productRepo productRepo.ProductRepository, inventoryRepo inventoryRepo.InventoryRepository) ProductApp {
	return &productAppImpl{productRepo: productRepo, inventoryRepo: inventoryRepo}
}

func (s *productAppImpl) ListProducts(ctx context.Context, filter *model.ProductFilter) (*model.ProductListResponse, error) {
	if filter.Page <= 0 {
		filter.Page = constant.DefaultPage
	}
	if filter.PageSize <= 0 {
		filter.PageSize = constant.DefaultPageSize
	}
	if filter.PageSize > constant.MaxPageSize {
		filter.PageSize = constant.MaxPageSize
	}

	items, total, err := s.productRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListProducts] error productRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	pageSize := int64(filter.PageSize)
	return &model.ProductListResponse{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: (total + pageSize - 1) / pageSize,
	}, nil
}

func (s *productAppImpl) GetProduct(ctx context.Context, id uint64) (*model.Product, error) {
	result, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetProduct] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if result == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	return result, nil
}

func (s *productAppImpl) CreateProduct(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error) {
	sku := strings.TrimSpace(req.SKU)
	if sku == "" || strings.TrimSpace(req.Name) == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	existing, err := s.productRepo.GetBySKU(ctx, sku)
	if err != nil && !errors.Is(err, constant.ErrSKUAmbiguous) {
		logger.Error("[CreateProduct] error productRepo.GetBySKU", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil || err != nil {
		return nil, errors.SetCustomError(constant.ErrSKUExists)
	}

	created, err := s.productRepo.Create(ctx, &model.Product{
		SKU:       sku,
		Name:      strings.TrimSpace(req.Name),
		Category:  req.Category,
		Unit:      req.Unit,
		ImageURL:  req.ImageURL,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, errors.Internal("[CreateProduct] error productRepo.Create", err)
	}
	return created, nil
}

// UpdateProduct changes descriptive fields only; the SKU is the product's identity.
func (s *productAppImpl) UpdateProduct(ctx context.Context, id uint64, req *model.UpdateProductRequest) (*model.Product, error) {
	p, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Unit != nil {
		p.Unit = *req.Unit
	}
	if req.ImageURL != nil {
		p.ImageURL = *req.ImageURL
	}

	if err := s.productRepo.Update(ctx, p); err != nil {
		logger.Error("[UpdateProduct] error productRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return p, nil
}

// DeleteProduct refuses while any warehouse still holds the product.
func (s *productAppImpl) DeleteProduct(ctx context.Context, id uint64) error {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return err
	}

	onHand, err := s.inventoryRepo.SumOnHandByProduct(ctx, id)
	if err != nil {
		logger.Error("[DeleteProduct] error inventoryRepo.SumOnHandByProduct", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if onHand > 0 {
		return errors.SetCustomError(constant.ErrProductHasStock)
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		return errors.Internal("[DeleteProduct] error productRepo.Delete", err)
	}
	return nil
}
