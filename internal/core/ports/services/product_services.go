package services

import (
	"context"

	"github.com/SscSPs/books_backend/internal/core/domain"
	"github.com/SscSPs/books_backend/internal/dto"
)

// ProductSvc manages the product catalogue.
type ProductSvc interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest, userID string) (*domain.Product, error)
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context, params dto.ListProductsParams) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, userID string) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID string) error
}

// HSNCodeSvc manages HSN classification codes.
type HSNCodeSvc interface {
	CreateHSNCode(ctx context.Context, req dto.CreateHSNCodeRequest, userID string) (*domain.HSNCode, error)
	ListHSNCodes(ctx context.Context) ([]domain.HSNCode, error)
	DeleteHSNCode(ctx context.Context, code string) error
}

// ProductSvcFacade combines product and HSN code operations
type ProductSvcFacade interface {
	ProductSvc
	HSNCodeSvc
}
