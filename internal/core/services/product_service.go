package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/books_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/books_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/books_backend/internal/core/ports/services"
	"github.com/SscSPs/books_backend/internal/dto"
	"github.com/google/uuid"
)

type productService struct {
	BaseService
	productRepo portsrepo.ProductRepositoryFacade
	taxRepo     portsrepo.TaxReader
}

// NewProductService creates a new product catalogue service. Default taxes are checked against taxRepo.
func NewProductService(repo portsrepo.ProductRepositoryFacade, taxRepo portsrepo.TaxReader) portssvc.ProductSvcFacade {
	return &productService{BaseService: newBaseService(), productRepo: repo, taxRepo: taxRepo}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

func (s *productService) checkTax(ctx context.Context, taxID *string) error {
	if taxID == nil {
		return nil
	}
	if _, err := s.taxRepo.FindTaxByID(ctx, *taxID); err != nil {
		return fmt.Errorf("default tax: %w", err)
	}
	return nil
}

func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, userID string) (*domain.Product, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if err := s.checkTax(ctx, req.TaxID); err != nil {
		return nil, err
	}

	product := domain.Product{
		ProductID:     uuid.NewString(),
		Name:          req.Name,
		SKU:           req.SKU,
		Unit:          req.Unit,
		HSNCode:       req.HSNCode,
		PurchasePrice: *req.PurchasePrice,
		SalePrice:     *req.SalePrice,
		TaxID:         req.TaxID,
		AuditFields:   domain.NewAuditFields(userID, s.Now()),
	}
	if product.Unit == "" {
		product.Unit = "pcs"
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		s.LogUnexpected(ctx, err, "Failed to save product")
		return nil, err
	}

	return &product, nil
}

func (s *productService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to find product", slog.String("product_id", productID))
		return nil, err
	}
	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, params dto.ListProductsParams) ([]domain.Product, error) {
	filter := portsrepo.ProductFilter{Search: params.Search, Limit: params.Limit, Offset: params.Offset}
	if filter.Limit <= 0 {
		filter.Limit = defaultPageSize
	}
	products, err := s.productRepo.ListProducts(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	if products == nil {
		return []domain.Product{}, nil
	}
	return products, nil
}

func (s *productService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, userID string) (*domain.Product, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to find product for update", slog.String("product_id", productID))
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.SKU != nil {
		product.SKU = req.SKU
	}
	if req.Unit != nil {
		product.Unit = *req.Unit
	}
	if req.HSNCode != nil {
		product.HSNCode = req.HSNCode
	}
	if req.PurchasePrice != nil {
		product.PurchasePrice = *req.PurchasePrice
	}
	if req.SalePrice != nil {
		product.SalePrice = *req.SalePrice
	}
	switch {
	case req.ClearTax:
		product.TaxID = nil
	case req.TaxID != nil:
		if err := s.checkTax(ctx, req.TaxID); err != nil {
			return nil, err
		}
		product.TaxID = req.TaxID
	}
	product.LastUpdatedAt = s.Now()
	product.LastUpdatedBy = userID

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		s.LogUnexpected(ctx, err, "Failed to update product", slog.String("product_id", productID))
		return nil, err
	}
	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, productID string) error {
	if err := s.productRepo.DeleteProduct(ctx, productID); err != nil {
		s.LogUnexpected(ctx, err, "Failed to delete product", slog.String("product_id", productID))
		return err
	}
	return nil
}

func (s *productService) CreateHSNCode(ctx context.Context, req dto.CreateHSNCodeRequest, userID string) (*domain.HSNCode, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	code := domain.HSNCode{
		Code:        req.Code,
		Description: req.Description,
		AuditFields: domain.NewAuditFields(userID, s.Now()),
	}
	if err := s.productRepo.SaveHSNCode(ctx, code); err != nil {
		s.LogUnexpected(ctx, err, "Failed to save HSN code", slog.String("hsn_code", code.Code))
		return nil, err
	}
	return &code, nil
}

func (s *productService) ListHSNCodes(ctx context.Context) ([]domain.HSNCode, error) {
	codes, err := s.productRepo.ListHSNCodes(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list HSN codes")
		return nil, fmt.Errorf("failed to list HSN codes: %w", err)
	}
	if codes == nil {
		return []domain.HSNCode{}, nil
	}
	return codes, nil
}

// DeleteHSNCode removes a code. Products carrying it keep existing without one.
func (s *productService) DeleteHSNCode(ctx context.Context, code string) error {
	if err := s.productRepo.DeleteHSNCode(ctx, code); err != nil {
		s.LogUnexpected(ctx, err, "Failed to delete HSN code", slog.String("hsn_code", code))
		return err
	}
	return nil
}
