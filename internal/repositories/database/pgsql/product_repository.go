package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/books_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/books_backend/internal/core/ports/repositories"
	"github.com/SscSPs/books_backend/internal/models"
	"github.com/SscSPs/books_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

const productColumns = `product_id, name, sku, unit, hsn_code, purchase_price, sale_price, tax_id,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxProductRepository stores products and the HSN codes they are classified under.
type PgxProductRepository struct {
	BaseRepository
}

func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProductID, m.Name, m.SKU, m.Unit, m.HSNCode, m.PurchasePrice, m.SalePrice, m.TaxID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save product %s: %w", m.Name, mapPgError(err, "product", m.Name))
	}
	return nil
}

func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1;`
	m, err := collectOne[models.Product](ctx, r.Pool, query, productID)
	if err != nil {
		return nil, mapPgError(err, "product", productID)
	}
	p := mapping.ToDomainProduct(m)
	return &p, nil
}

func (r *PgxProductRepository) FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error) {
	if len(productIDs) == 0 {
		return map[string]domain.Product{}, nil
	}
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = ANY($1);`
	ms, err := collect[models.Product](ctx, r.Pool, query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query products by IDs: %w", err)
	}

	products := make(map[string]domain.Product, len(ms))
	for _, m := range ms {
		products[m.ProductID] = mapping.ToDomainProduct(m)
	}
	return products, nil
}

// ListProducts lists products by name. A zero limit returns every match.
func (r *PgxProductRepository) ListProducts(ctx context.Context, filter portsrepo.ProductFilter) ([]domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE ($1::text = '' OR name ILIKE '%' || $1 || '%' OR sku ILIKE '%' || $1 || '%')
		ORDER BY LOWER(name), product_id
		LIMIT NULLIF($2::int, 0) OFFSET $3;
	`
	ms, err := collect[models.Product](ctx, r.Pool, query, filter.Search, filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return mapping.ToDomainProductSlice(ms), nil
}

func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	query := `
		UPDATE products
		SET name = $2, sku = $3, unit = $4, hsn_code = $5, purchase_price = $6, sale_price = $7, tax_id = $8,
			last_updated_at = $9, last_updated_by = $10
		WHERE product_id = $1;
	`
	return execOne(ctx, r.Pool, "product", m.ProductID, query,
		m.ProductID, m.Name, m.SKU, m.Unit, m.HSNCode, m.PurchasePrice, m.SalePrice, m.TaxID, m.LastUpdatedAt, m.LastUpdatedBy,
	)
}

func (r *PgxProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	return execOne(ctx, r.Pool, "product", productID, `DELETE FROM products WHERE product_id = $1;`, productID)
}

func (r *PgxProductRepository) SaveHSNCode(ctx context.Context, code domain.HSNCode) error {
	query := `
		INSERT INTO hsn_codes (code, description, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		code.Code, code.Description, code.CreatedAt, code.CreatedBy, code.LastUpdatedAt, code.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save HSN code %s: %w", code.Code, mapPgError(err, "hsn code", code.Code))
	}
	return nil
}

func (r *PgxProductRepository) ListHSNCodes(ctx context.Context) ([]domain.HSNCode, error) {
	query := `
		SELECT code, description, created_at, created_by, last_updated_at, last_updated_by
		FROM hsn_codes
		ORDER BY code;
	`
	ms, err := collect[models.HSNCode](ctx, r.Pool, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list HSN codes: %w", err)
	}
	return mapping.ToDomainHSNCodeSlice(ms), nil
}

// DeleteHSNCode removes a code. Products classified under it keep no code.
func (r *PgxProductRepository) DeleteHSNCode(ctx context.Context, code string) error {
	return execOne(ctx, r.Pool, "hsn code", code, `DELETE FROM hsn_codes WHERE code = $1;`, code)
}
