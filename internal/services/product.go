package services

import (
	"context"

	"github.com/Ashupap/ShorelineVision-sub000/types"
)

// ProductRepository defines persistence operations for catalogue products.
type ProductRepository interface {
	List(ctx context.Context, activeOnly bool, category string) ([]types.Product, error)
	Get(ctx context.Context, id int) (types.Product, error)
	GetBySlug(ctx context.Context, slug string) (types.Product, error)
	Create(ctx context.Context, product types.Product) (types.Product, error)
	Update(ctx context.Context, product types.Product) (types.Product, error)
	Delete(ctx context.Context, id int) error
}

// ProductService encapsulates product catalogue use-cases.
type ProductService struct {
	repo ProductRepository
}

func NewProductService(repo ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) List(ctx context.Context, includeInactive bool, category string) ([]types.Product, error) {
	return s.repo.List(ctx, !includeInactive, category)
}

func (s *ProductService) GetBySlug(ctx context.Context, slug string, includeInactive bool) (types.Product, error) {
	product, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return types.Product{}, err
	}
	if !product.Active && !includeInactive {
		return types.Product{}, ErrNotFound
	}
	return product, nil
}

func (s *ProductService) Create(ctx context.Context, product types.Product) (types.Product, error) {
	product.Slug = slugOr(product.Slug, product.Name)
	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return types.Product{}, translateDuplicate(err)
	}
	return created, nil
}

func (s *ProductService) Update(ctx context.Context, id int, product types.Product) (types.Product, error) {
	product.ID = id
	product.Slug = slugOr(product.Slug, product.Name)
	updated, err := s.repo.Update(ctx, product)
	if err != nil {
		return types.Product{}, translateDuplicate(err)
	}
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
