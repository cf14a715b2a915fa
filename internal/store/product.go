package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/Ashupap/ShorelineVision-sub000/types"
)

const productColumns = `id, name, slug, description, category, image_url, specifications, featured, active, sort_order, created_at, updated_at`

// ProductRepository handles persistence for catalogue products.
type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func scanProduct(row rowScanner) (types.Product, error) {
	var product types.Product
	var specJSON []byte
	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Slug,
		&product.Description,
		&product.Category,
		&product.ImageURL,
		&specJSON,
		&product.Featured,
		&product.Active,
		&product.SortOrder,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Product{}, ErrNotFound
		}
		return types.Product{}, err
	}
	product.Specifications = json.RawMessage(specJSON)
	return product, nil
}

// List returns products in display order. activeOnly hides retired
// products; a non-empty category narrows the result.
func (r *ProductRepository) List(ctx context.Context, activeOnly bool, category string) ([]types.Product, error) {
	const query = `
		SELECT ` + productColumns + `
		FROM products
		WHERE ($1 = FALSE OR active = TRUE)
		  AND ($2 = '' OR category = $2)
		ORDER BY sort_order, name`
	rows, err := r.db.QueryContext(ctx, query, activeOnly, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []types.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

func (r *ProductRepository) Get(ctx context.Context, id int) (types.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return scanProduct(r.db.QueryRowContext(ctx, query, id))
}

func (r *ProductRepository) GetBySlug(ctx context.Context, slug string) (types.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products WHERE slug = $1`
	return scanProduct(r.db.QueryRowContext(ctx, query, slug))
}

func (r *ProductRepository) Create(ctx context.Context, product types.Product) (types.Product, error) {
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now
	product.Specifications = specificationsOrEmpty(product.Specifications)

	const query = `
		INSERT INTO products (name, slug, description, category, image_url, specifications, featured, active, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		product.Name,
		product.Slug,
		product.Description,
		product.Category,
		product.ImageURL,
		[]byte(product.Specifications),
		product.Featured,
		product.Active,
		product.SortOrder,
		product.CreatedAt,
		product.UpdatedAt,
	).Scan(&product.ID); err != nil {
		return types.Product{}, translateError(err)
	}
	return product, nil
}

func (r *ProductRepository) Update(ctx context.Context, product types.Product) (types.Product, error) {
	const query = `
		UPDATE products
		SET name = $1,
			slug = $2,
			description = $3,
			category = $4,
			image_url = $5,
			specifications = $6,
			featured = $7,
			active = $8,
			sort_order = $9,
			updated_at = $10
		WHERE id = $11
		RETURNING ` + productColumns
	updated, err := scanProduct(r.db.QueryRowContext(
		ctx,
		query,
		product.Name,
		product.Slug,
		product.Description,
		product.Category,
		product.ImageURL,
		[]byte(specificationsOrEmpty(product.Specifications)),
		product.Featured,
		product.Active,
		product.SortOrder,
		time.Now().UTC(),
		product.ID,
	))
	if err != nil {
		return types.Product{}, translateError(err)
	}
	return updated, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	return deleteByID(ctx, r.db, `DELETE FROM products WHERE id = $1`, id)
}

func specificationsOrEmpty(spec json.RawMessage) json.RawMessage {
	if len(spec) == 0 || string(spec) == "null" {
		return json.RawMessage(`{}`)
	}
	return spec
}
